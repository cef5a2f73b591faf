package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrSaltyFish/Grocery-Price-Comparison/internal/cart"
	"github.com/MrSaltyFish/Grocery-Price-Comparison/internal/catalog"
	"github.com/MrSaltyFish/Grocery-Price-Comparison/internal/compare"
)

// CartHandler drives the cart/checkout state machine over HTTP. Each
// mutation goes through the session store, which serializes writes to a
// cart, and responds with the full recomputed view.
type CartHandler struct {
	Sessions *cart.Store
	Orders   catalog.OrderSubmitter
}

func (h *CartHandler) Register(r *chi.Mux) {
	r.Post("/carts", h.createCart)
	r.Get("/carts/{id}", h.getCart)
	r.Patch("/carts/{id}/items/{itemID}", h.changeQuantity)
	r.Delete("/carts/{id}/items/{itemID}", h.removeItem)
	r.Put("/carts/{id}/delivery", h.setDeliveryOption)
	r.Post("/carts/{id}/checkout/advance", h.advance)
	r.Post("/carts/{id}/checkout/back", h.retreat)
	r.Post("/carts/{id}/favorites/{storeID}", h.toggleFavorite)
}

// CartView is the session plus every derived figure the summary panel
// shows. Derived values are computed per response so they can never go
// stale.
type CartView struct {
	ID             string              `json:"id"`
	Groups         []cart.StoreGroup   `json:"groups"`
	DeliveryOption cart.DeliveryOption `json:"delivery_option"`
	Subtotal       int                 `json:"subtotal"`
	DeliveryFee    int                 `json:"delivery_fee"`
	Total          int                 `json:"total"`
	Step           cart.Step           `json:"step"`
	OrderRef       string              `json:"order_ref,omitempty"`
	Favorites      []string            `json:"favorites"`
}

func viewOf(s cart.Session) CartView {
	favs := make([]string, 0, len(s.Favorites))
	for id := range s.Favorites {
		favs = append(favs, id)
	}
	sort.Strings(favs)
	return CartView{
		ID:             s.ID,
		Groups:         s.Cart.ItemsByStore(),
		DeliveryOption: s.Cart.DeliveryOption,
		Subtotal:       s.Cart.Subtotal(),
		DeliveryFee:    s.Cart.DeliveryFee(),
		Total:          s.Cart.Total(),
		Step:           s.Step,
		OrderRef:       s.OrderRef,
		Favorites:      favs,
	}
}

func (h *CartHandler) createCart(w http.ResponseWriter, r *http.Request) {
	s := h.Sessions.Create()
	writeJSON(w, http.StatusCreated, viewOf(s))
}

func (h *CartHandler) getCart(w http.ResponseWriter, r *http.Request) {
	s, err := h.Sessions.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, viewOf(s))
}

type changeQuantityReq struct {
	Delta int `json:"delta"`
}

func (h *CartHandler) changeQuantity(w http.ResponseWriter, r *http.Request) {
	var req changeQuantityReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	itemID := chi.URLParam(r, "itemID")
	s, err := h.Sessions.Update(chi.URLParam(r, "id"), func(s *cart.Session) error {
		s.Cart.ChangeQuantity(itemID, req.Delta)
		return nil
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, viewOf(s))
}

func (h *CartHandler) removeItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemID")
	s, err := h.Sessions.Update(chi.URLParam(r, "id"), func(s *cart.Session) error {
		s.Cart.RemoveItem(itemID)
		return nil
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, viewOf(s))
}

type deliveryOptionReq struct {
	Option cart.DeliveryOption `json:"option"`
}

func (h *CartHandler) setDeliveryOption(w http.ResponseWriter, r *http.Request) {
	var req deliveryOptionReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	if !req.Option.Valid() {
		writeError(w, catalog.ErrValidation)
		return
	}
	s, err := h.Sessions.Update(chi.URLParam(r, "id"), func(s *cart.Session) error {
		s.Cart.SetDeliveryOption(req.Option)
		return nil
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, viewOf(s))
}

func (h *CartHandler) advance(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	s, err := h.Sessions.Update(chi.URLParam(r, "id"), func(s *cart.Session) error {
		prev := s.Step
		if err := s.Advance(); err != nil {
			return err
		}
		// Crossing Payment places the order through the submitter seam.
		if prev == cart.StepPayment && s.Step == cart.StepConfirmation {
			conf, err := h.Orders.SubmitOrder(ctx, s.Cart)
			if err != nil {
				return err
			}
			s.OrderRef = conf.OrderRef
		}
		return nil
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, viewOf(s))
}

func (h *CartHandler) retreat(w http.ResponseWriter, r *http.Request) {
	s, err := h.Sessions.Update(chi.URLParam(r, "id"), func(s *cart.Session) error {
		return s.Retreat()
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, viewOf(s))
}

func (h *CartHandler) toggleFavorite(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "storeID")
	s, err := h.Sessions.Update(chi.URLParam(r, "id"), func(s *cart.Session) error {
		s.Favorites = compare.ToggleFavorite(s.Favorites, storeID)
		return nil
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, viewOf(s))
}
