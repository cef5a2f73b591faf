package catalog

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/MrSaltyFish/Grocery-Price-Comparison/internal/cart"
	"github.com/MrSaltyFish/Grocery-Price-Comparison/internal/compare"
)

// Memory serves the sample dataset. It implements every source interface so
// the HTTP layer is written against the seams a real backend would fill.
type Memory struct {
	products []compare.ProductComparison
	stores   []Store
	deals    []Deal
	plans    []Plan
}

func NewMemory() *Memory {
	return &Memory{
		products: sampleProducts(),
		stores:   sampleStores(),
		deals:    sampleDeals(),
		plans:    samplePlans(),
	}
}

func (m *Memory) SearchProducts(_ context.Context, query string) ([]compare.ProductComparison, error) {
	return compare.Search(m.products, query), nil
}

func (m *Memory) GetProduct(_ context.Context, productID string) (compare.ProductComparison, error) {
	for _, pc := range m.products {
		if pc.ProductID == productID {
			return pc, nil
		}
	}
	return compare.ProductComparison{}, fmt.Errorf("product %s: %w", productID, ErrNotFound)
}

func (m *Memory) GetStoreOffers(ctx context.Context, productID string) ([]compare.StoreOffer, error) {
	pc, err := m.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	out := make([]compare.StoreOffer, len(pc.Offers))
	copy(out, pc.Offers)
	return out, nil
}

func (m *Memory) ListStores(_ context.Context) ([]Store, error) {
	out := make([]Store, len(m.stores))
	copy(out, m.stores)
	return out, nil
}

func (m *Memory) ListDeals(_ context.Context, tab DealTab) ([]Deal, error) {
	return FilterDeals(m.deals, tab), nil
}

func (m *Memory) ListPlans(_ context.Context) ([]Plan, error) {
	out := make([]Plan, len(m.plans))
	copy(out, m.plans)
	return out, nil
}

// SubmitOrder mints a confirmation for a non-empty cart. Nothing is
// persisted; a real order service replaces this.
func (m *Memory) SubmitOrder(_ context.Context, c cart.Cart) (OrderConfirmation, error) {
	if c.IsEmpty() {
		return OrderConfirmation{}, fmt.Errorf("empty cart: %w", ErrValidation)
	}
	return OrderConfirmation{
		OrderID:  uuid.NewString(),
		OrderRef: newOrderRef(),
		Total:    c.Total(),
	}, nil
}

// Order references look like GC78952. Display value only; the order ID is
// the uuid.
func newOrderRef() string {
	return fmt.Sprintf("GC%05d", rand.IntN(100000))
}
