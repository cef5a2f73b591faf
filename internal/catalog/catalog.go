package catalog

import (
	"context"
	"errors"

	"github.com/MrSaltyFish/Grocery-Price-Comparison/internal/cart"
	"github.com/MrSaltyFish/Grocery-Price-Comparison/internal/compare"
)

// Boundary error taxonomy. A real backend slots in behind the interfaces
// below and surfaces failures through these; local state stays unchanged on
// any error.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation failed")
	ErrConflict    = errors.New("conflict")
	ErrUnavailable = errors.New("unavailable")
)

// Store is a grocery outlet in the directory.
type Store struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Type     string           `json:"type"`
	Rating   float64          `json:"rating"`
	Address  string           `json:"address"`
	Distance compare.Distance `json:"distance"`
	Phone    string           `json:"phone"`
	Hours    string           `json:"hours"`
	Features []string         `json:"features"`
}

// OrderConfirmation is what placing an order yields.
type OrderConfirmation struct {
	OrderID  string `json:"order_id"`
	OrderRef string `json:"order_ref"`
	Total    int    `json:"total"`
}

// ProductSource is the seam a real search/offers backend would fill.
type ProductSource interface {
	SearchProducts(ctx context.Context, query string) ([]compare.ProductComparison, error)
	GetStoreOffers(ctx context.Context, productID string) ([]compare.StoreOffer, error)
	GetProduct(ctx context.Context, productID string) (compare.ProductComparison, error)
}

// StoreSource lists nearby stores.
type StoreSource interface {
	ListStores(ctx context.Context) ([]Store, error)
}

// DealSource lists ongoing deals, optionally filtered by tab.
type DealSource interface {
	ListDeals(ctx context.Context, tab DealTab) ([]Deal, error)
}

// PlanSource lists subscription plans.
type PlanSource interface {
	ListPlans(ctx context.Context) ([]Plan, error)
}

// OrderSubmitter is the seam a real order backend would fill. The in-memory
// implementation only mints a confirmation; nothing is persisted.
type OrderSubmitter interface {
	SubmitOrder(ctx context.Context, c cart.Cart) (OrderConfirmation, error)
}
