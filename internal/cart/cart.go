package cart

// DeliveryOption is how the shopper wants the order fulfilled.
type DeliveryOption string

const (
	OptionDelivery DeliveryOption = "delivery"
	OptionPickup   DeliveryOption = "pickup"
)

func (o DeliveryOption) Valid() bool {
	return o == OptionDelivery || o == OptionPickup
}

// Flat home-delivery charge in rupees. Pickup is free.
const deliveryCharge = 40

// LineItem is one purchasable entry in the cart. StoreName is the grouping
// key for display.
type LineItem struct {
	ItemID      string `json:"item_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	UnitPrice   int    `json:"unit_price"`
	Quantity    int    `json:"quantity"`
	StoreName   string `json:"store_name"`
}

func (li LineItem) LineTotal() int { return li.UnitPrice * li.Quantity }

// Cart holds the line items in stable display order plus the chosen
// delivery option. Totals are always derived, never stored, so they cannot
// go stale.
type Cart struct {
	Items          []LineItem     `json:"items"`
	DeliveryOption DeliveryOption `json:"delivery_option"`
}

// New returns a cart pre-populated with the given items and home delivery
// selected.
func New(items []LineItem) Cart {
	c := Cart{
		Items:          make([]LineItem, len(items)),
		DeliveryOption: OptionDelivery,
	}
	copy(c.Items, items)
	return c
}

func (c *Cart) IsEmpty() bool { return len(c.Items) == 0 }

// ChangeQuantity adjusts an item's quantity by delta, flooring at 1.
// Decrement never removes; removal is an explicit, separate action.
// An unknown item is a no-op, not an error.
func (c *Cart) ChangeQuantity(itemID string, delta int) {
	for i := range c.Items {
		if c.Items[i].ItemID != itemID {
			continue
		}
		q := c.Items[i].Quantity + delta
		if q < 1 {
			q = 1
		}
		c.Items[i].Quantity = q
		return
	}
}

// RemoveItem deletes the line item. Removing an unknown item is a no-op.
func (c *Cart) RemoveItem(itemID string) {
	for i := range c.Items {
		if c.Items[i].ItemID == itemID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// SetDeliveryOption replaces the fulfilment choice. Fee and total follow
// immediately because both are computed on read.
func (c *Cart) SetDeliveryOption(opt DeliveryOption) {
	c.DeliveryOption = opt
}

func (c *Cart) Subtotal() int {
	sum := 0
	for _, li := range c.Items {
		sum += li.LineTotal()
	}
	return sum
}

func (c *Cart) DeliveryFee() int {
	if c.DeliveryOption == OptionDelivery {
		return deliveryCharge
	}
	return 0
}

func (c *Cart) Total() int { return c.Subtotal() + c.DeliveryFee() }

// StoreGroup is the per-store slice of a cart, in first-appearance order.
type StoreGroup struct {
	StoreName string     `json:"store_name"`
	Items     []LineItem `json:"items"`
}

// ItemsByStore groups line items by store, keeping both the store order and
// the item order stable for display.
func (c *Cart) ItemsByStore() []StoreGroup {
	idx := make(map[string]int, len(c.Items))
	groups := make([]StoreGroup, 0, len(c.Items))
	for _, li := range c.Items {
		i, ok := idx[li.StoreName]
		if !ok {
			i = len(groups)
			idx[li.StoreName] = i
			groups = append(groups, StoreGroup{StoreName: li.StoreName})
		}
		groups[i].Items = append(groups[i].Items, li)
	}
	return groups
}
