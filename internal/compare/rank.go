package compare

import "sort"

type SortKey string

const (
	SortByPrice    SortKey = "price"
	SortByDistance SortKey = "distance"
	SortByRating   SortKey = "rating"
)

// ParseSortKey maps a query value onto a SortKey, defaulting to price.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortByDistance:
		return SortByDistance
	case SortByRating:
		return SortByRating
	default:
		return SortByPrice
	}
}

// RankOffers returns a new slice sorted by the given key: price ascending,
// distance ascending (Online always last), rating descending. The sort is
// stable so tied offers keep their input order. The input is not mutated.
func RankOffers(offers []StoreOffer, key SortKey) []StoreOffer {
	out := make([]StoreOffer, len(offers))
	copy(out, offers)
	sort.SliceStable(out, func(i, j int) bool {
		switch key {
		case SortByDistance:
			return out[i].Distance.Less(out[j].Distance)
		case SortByRating:
			return out[i].Rating > out[j].Rating
		default:
			return out[i].Price < out[j].Price
		}
	})
	return out
}

// FilterDeliverable keeps only offers from stores that deliver, preserving
// order. Returns a new slice.
func FilterDeliverable(offers []StoreOffer) []StoreOffer {
	out := make([]StoreOffer, 0, len(offers))
	for _, o := range offers {
		if o.HasDelivery {
			out = append(out, o)
		}
	}
	return out
}

// ComputeLowestPrice scans the comparison's offers and returns the minimum
// price and the store that offers it. On a tie the first offer in input
// order wins. ok is false for a comparison with no offers.
func ComputeLowestPrice(pc ProductComparison) (price int, storeID string, ok bool) {
	if len(pc.Offers) == 0 {
		return 0, "", false
	}
	price, storeID = pc.Offers[0].Price, pc.Offers[0].StoreID
	for _, o := range pc.Offers[1:] {
		if o.Price < price {
			price, storeID = o.Price, o.StoreID
		}
	}
	return price, storeID, true
}

// PriceRange returns the minimum and maximum offer price.
func PriceRange(pc ProductComparison) (lo, hi int, ok bool) {
	if len(pc.Offers) == 0 {
		return 0, 0, false
	}
	lo, hi = pc.Offers[0].Price, pc.Offers[0].Price
	for _, o := range pc.Offers[1:] {
		if o.Price < lo {
			lo = o.Price
		}
		if o.Price > hi {
			hi = o.Price
		}
	}
	return lo, hi, true
}

// ToggleFavorite adds the store to the set if absent and removes it if
// present, returning a new set. The input set is not mutated.
func ToggleFavorite(favorites map[string]bool, storeID string) map[string]bool {
	out := make(map[string]bool, len(favorites)+1)
	for id := range favorites {
		if favorites[id] {
			out[id] = true
		}
	}
	if out[storeID] {
		delete(out, storeID)
	} else {
		out[storeID] = true
	}
	return out
}
