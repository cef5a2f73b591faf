package catalog

// DealType classifies a promotion.
type DealType string

const (
	DealFlash      DealType = "flash"
	DealCashback   DealType = "cashback"
	DealBOGO       DealType = "bogo"
	DealFirstOrder DealType = "first_order"
	DealSeasonal   DealType = "seasonal"
	DealDelivery   DealType = "delivery"
)

// Deal is one ongoing promotion at a store.
type Deal struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Store    string   `json:"store"`
	Discount string   `json:"discount"`
	Category string   `json:"category"`
	Expiry   string   `json:"expiry"`
	Type     DealType `json:"type"`
}

// DealTab mirrors the deals page tabs.
type DealTab string

const (
	TabAll       DealTab = "all"
	TabDiscounts DealTab = "discounts"
	TabBOGO      DealTab = "bogo"
	TabCashback  DealTab = "cashback"
	TabDelivery  DealTab = "delivery"
)

// ParseDealTab maps a query value onto a tab, defaulting to all.
func ParseDealTab(s string) DealTab {
	switch DealTab(s) {
	case TabDiscounts, TabBOGO, TabCashback, TabDelivery:
		return DealTab(s)
	default:
		return TabAll
	}
}

// FilterDeals keeps the deals belonging to the tab, preserving order. The
// discounts tab covers flash sales and seasonal offers.
func FilterDeals(deals []Deal, tab DealTab) []Deal {
	if tab == TabAll {
		out := make([]Deal, len(deals))
		copy(out, deals)
		return out
	}
	out := make([]Deal, 0, len(deals))
	for _, d := range deals {
		switch tab {
		case TabDiscounts:
			if d.Type == DealFlash || d.Type == DealSeasonal {
				out = append(out, d)
			}
		case TabBOGO:
			if d.Type == DealBOGO {
				out = append(out, d)
			}
		case TabCashback:
			if d.Type == DealCashback {
				out = append(out, d)
			}
		case TabDelivery:
			if d.Type == DealDelivery {
				out = append(out, d)
			}
		}
	}
	return out
}
