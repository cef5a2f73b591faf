package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MrSaltyFish/Grocery-Price-Comparison/internal/cart"
	"github.com/MrSaltyFish/Grocery-Price-Comparison/internal/catalog"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps the boundary taxonomy onto HTTP statuses. Failures are
// non-fatal and leave state unchanged, so the body is just the message.
func writeError(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, catalog.ErrNotFound), errors.Is(err, cart.ErrSessionNotFound):
		code = http.StatusNotFound
	case errors.Is(err, catalog.ErrValidation), errors.Is(err, cart.ErrEmptyCart):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, catalog.ErrConflict), errors.Is(err, cart.ErrCheckoutFinal):
		code = http.StatusConflict
	case errors.Is(err, catalog.ErrUnavailable):
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, map[string]string{"error": err.Error()})
}
