package compare

import (
	"fmt"
	"strconv"
	"strings"
)

// Distance is how far a store is from the shopper. Online-only stores carry
// the Online sentinel instead of a kilometre value and always sort after
// physical stores.
type Distance struct {
	Km     float64
	Online bool
}

func Km(v float64) Distance { return Distance{Km: v} }

func OnlineDistance() Distance { return Distance{Online: true} }

func (d Distance) IsOnline() bool { return d.Online }

// Less orders physical stores by kilometres and pushes Online last.
func (d Distance) Less(other Distance) bool {
	if d.Online {
		return false
	}
	if other.Online {
		return true
	}
	return d.Km < other.Km
}

func (d Distance) String() string {
	if d.Online {
		return "Online"
	}
	return strconv.FormatFloat(d.Km, 'f', -1, 64) + " km"
}

func (d Distance) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

func (d *Distance) UnmarshalText(b []byte) error {
	s := strings.TrimSpace(string(b))
	if strings.EqualFold(s, "Online") {
		*d = Distance{Online: true}
		return nil
	}
	s = strings.TrimSpace(strings.TrimSuffix(s, "km"))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid distance %q", string(b))
	}
	*d = Distance{Km: v}
	return nil
}

// StoreOffer is one store's price and availability for a product.
// Prices are whole rupees. DeliveryFee 0 means free delivery; it is only
// meaningful when HasDelivery is set.
type StoreOffer struct {
	StoreID       string   `json:"store_id"`
	StoreName     string   `json:"store_name"`
	StoreType     string   `json:"store_type,omitempty"`
	Price         int      `json:"price"`
	OriginalPrice int      `json:"original_price"`
	Distance      Distance `json:"distance"`
	HasDelivery   bool     `json:"has_delivery"`
	DeliveryFee   int      `json:"delivery_fee"`
	Rating        float64  `json:"rating"`
	AvailableQty  int      `json:"available_quantity"`
}

// Discount reports the rupee discount against the original price. ok is
// false when the offer has no discount, so callers never read a zero that
// actually means "unknown".
func (o StoreOffer) Discount() (amount int, ok bool) {
	if o.OriginalPrice <= o.Price {
		return 0, false
	}
	return o.OriginalPrice - o.Price, true
}

// ProductComparison is one product and the offers being compared for it.
// Store IDs are distinct; input order is the tie-break order everywhere.
type ProductComparison struct {
	ProductID   string       `json:"product_id"`
	Name        string       `json:"name"`
	Category    string       `json:"category"`
	Description string       `json:"description,omitempty"`
	Offers      []StoreOffer `json:"offers"`
}
