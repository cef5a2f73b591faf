package httpx

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrSaltyFish/Grocery-Price-Comparison/internal/catalog"
	"github.com/MrSaltyFish/Grocery-Price-Comparison/internal/compare"
)

// CompareHandler serves the catalog read surface: product comparisons,
// ranked offers, the store directory, deals and subscription plans.
type CompareHandler struct {
	Products catalog.ProductSource
	Stores   catalog.StoreSource
	Deals    catalog.DealSource
	Plans    catalog.PlanSource
}

func (h *CompareHandler) Register(r *chi.Mux) {
	r.Get("/products", h.listProducts)
	r.Get("/products/{id}", h.getProduct)
	r.Get("/products/{id}/offers", h.listOffers)
	r.Get("/stores", h.listStores)
	r.Get("/deals", h.listDeals)
	r.Get("/plans", h.listPlans)
	r.Post("/apikeys", h.createAPIKey)
}

type PriceRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// ProductSummary is a comparison plus the derived figures the product
// header shows.
type ProductSummary struct {
	compare.ProductComparison
	LowestPrice   int        `json:"lowest_price"`
	CheapestStore string     `json:"cheapest_store_id"`
	PriceRange    PriceRange `json:"price_range"`
	StoreCount    int        `json:"store_count"`
}

func summarize(pc compare.ProductComparison) ProductSummary {
	s := ProductSummary{ProductComparison: pc, StoreCount: len(pc.Offers)}
	if price, storeID, ok := compare.ComputeLowestPrice(pc); ok {
		s.LowestPrice = price
		s.CheapestStore = storeID
	}
	if lo, hi, ok := compare.PriceRange(pc); ok {
		s.PriceRange = PriceRange{Min: lo, Max: hi}
	}
	return s
}

func (h *CompareHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	products, err := h.Products.SearchProducts(ctx, r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]ProductSummary, 0, len(products))
	for _, pc := range products {
		out = append(out, summarize(pc))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *CompareHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	pc, err := h.Products.GetProduct(ctx, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summarize(pc))
}

func (h *CompareHandler) listOffers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	offers, err := h.Products.GetStoreOffers(ctx, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	if r.URL.Query().Get("delivery_only") == "true" {
		offers = compare.FilterDeliverable(offers)
	}
	offers = compare.RankOffers(offers, compare.ParseSortKey(r.URL.Query().Get("sort")))
	writeJSON(w, http.StatusOK, offers)
}

func (h *CompareHandler) listStores(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	stores, err := h.Stores.ListStores(ctx)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stores)
}

func (h *CompareHandler) listDeals(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	deals, err := h.Deals.ListDeals(ctx, catalog.ParseDealTab(r.URL.Query().Get("tab")))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, deals)
}

type PlanView struct {
	catalog.Plan
	AnnualSavings int `json:"annual_savings"`
}

func (h *CompareHandler) listPlans(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	plans, err := h.Plans.ListPlans(ctx)
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]PlanView, 0, len(plans))
	for _, p := range plans {
		out = append(out, PlanView{Plan: p, AnnualSavings: p.AnnualSavings()})
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *CompareHandler) createAPIKey(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusCreated, map[string]string{"api_key": catalog.NewAPIKey()})
}
