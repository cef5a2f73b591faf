package catalog

import (
	"github.com/MrSaltyFish/Grocery-Price-Comparison/internal/cart"
	"github.com/MrSaltyFish/Grocery-Price-Comparison/internal/compare"
)

// Sample dataset. A real deployment swaps this for the search/offer/order
// backends behind the interfaces in catalog.go; until then the service is
// self-contained.

func sampleProducts() []compare.ProductComparison {
	return []compare.ProductComparison{
		{
			ProductID:   "organic-milk",
			Name:        "Organic Milk",
			Category:    "Dairy",
			Description: "Fresh organic cow milk, 500ml",
			Offers: []compare.StoreOffer{
				{
					StoreID: "fresh-market", StoreName: "Fresh Market", StoreType: "Supermarket",
					Price: 45, OriginalPrice: 50, Distance: compare.Km(0.5),
					HasDelivery: true, DeliveryFee: 0, Rating: 4.2, AvailableQty: 20,
				},
				{
					StoreID: "kirana-store", StoreName: "Kirana Store", StoreType: "Local Store",
					Price: 42, OriginalPrice: 45, Distance: compare.Km(0.8),
					HasDelivery: true, DeliveryFee: 10, Rating: 4.0, AvailableQty: 15,
				},
				{
					StoreID: "bigbasket", StoreName: "BigBasket", StoreType: "Online Store",
					Price: 48, OriginalPrice: 48, Distance: compare.OnlineDistance(),
					HasDelivery: true, DeliveryFee: 20, Rating: 4.5, AvailableQty: 100,
				},
				{
					StoreID: "premium-grocery", StoreName: "Premium Grocery", StoreType: "Supermarket",
					Price: 55, OriginalPrice: 60, Distance: compare.Km(1.2),
					HasDelivery: false, Rating: 4.7, AvailableQty: 30,
				},
			},
		},
		{
			ProductID: "basmati-rice-1kg", Name: "Basmati Rice (1kg)", Category: "Grains",
			Offers: marketplaceOffers(95, 92, 91),
		},
		{
			ProductID: "sugar-1kg", Name: "Sugar (1kg)", Category: "Essentials",
			Offers: marketplaceOffers(55, 52, 50),
		},
		{
			ProductID: "peanuts-500g", Name: "Peanuts (500g)", Category: "Dry Fruits",
			Offers: marketplaceOffers(120, 125, 115),
		},
		{
			ProductID: "tur-dal-1kg", Name: "Tur Dal (1kg)", Category: "Pulses",
			Offers: marketplaceOffers(145, 140, 138),
		},
		{
			ProductID: "wheat-1kg", Name: "Wheat (1kg)", Category: "Grains",
			Offers: marketplaceOffers(42, 45, 38),
		},
	}
}

// marketplaceOffers builds the standard three-way comparison used by the
// staples: BigBasket, Blinkit and the local-store average.
func marketplaceOffers(bigbasket, blinkit, local int) []compare.StoreOffer {
	return []compare.StoreOffer{
		{
			StoreID: "bigbasket", StoreName: "BigBasket", StoreType: "Online Store",
			Price: bigbasket, OriginalPrice: bigbasket, Distance: compare.OnlineDistance(),
			HasDelivery: true, DeliveryFee: 20, Rating: 4.5, AvailableQty: 100,
		},
		{
			StoreID: "blinkit", StoreName: "Blinkit", StoreType: "Online Store",
			Price: blinkit, OriginalPrice: blinkit, Distance: compare.OnlineDistance(),
			HasDelivery: true, DeliveryFee: 15, Rating: 4.3, AvailableQty: 80,
		},
		{
			StoreID: "local-market", StoreName: "Local Store", StoreType: "Local Store",
			Price: local, OriginalPrice: local, Distance: compare.Km(0.9),
			HasDelivery: false, Rating: 4.0, AvailableQty: 25,
		},
	}
}

func sampleStores() []Store {
	return []Store{
		{
			ID: "fresh-market", Name: "Fresh Market", Type: "Supermarket", Rating: 4.2,
			Address: "123 Market Street, Andheri East, Mumbai", Distance: compare.Km(0.5),
			Phone: "+91 98765 43210", Hours: "8:00 AM - 10:00 PM",
			Features: []string{"Home Delivery", "Online Ordering", "Fresh Produce"},
		},
		{
			ID: "kirana-store", Name: "Kirana Store", Type: "Local Store", Rating: 4.0,
			Address: "45 Local Market, Bandra West, Mumbai", Distance: compare.Km(0.8),
			Phone: "+91 98765 43211", Hours: "7:00 AM - 9:00 PM",
			Features: []string{"Low Prices", "Local Items"},
		},
		{
			ID: "premium-grocery", Name: "Premium Grocery", Type: "Supermarket", Rating: 4.7,
			Address: "67 Shopping Center, Juhu, Mumbai", Distance: compare.Km(1.2),
			Phone: "+91 98765 43212", Hours: "9:00 AM - 11:00 PM",
			Features: []string{"Imported Products", "Home Delivery", "Premium Quality"},
		},
		{
			ID: "bigbasket", Name: "BigBasket", Type: "Online Store", Rating: 4.5,
			Address: "Online Only", Distance: compare.OnlineDistance(),
			Phone: "+91 98765 43213", Hours: "24/7 Online",
			Features: []string{"Fast Delivery", "Wide Selection", "Discounts"},
		},
		{
			ID: "neighborhood-market", Name: "Neighborhood Market", Type: "Local Store", Rating: 3.9,
			Address: "89 Local Street, Powai, Mumbai", Distance: compare.Km(1.5),
			Phone: "+91 98765 43214", Hours: "7:30 AM - 9:30 PM",
			Features: []string{"Budget Friendly", "Local Items"},
		},
		{
			ID: "organic-basket", Name: "Organic Basket", Type: "Specialty Store", Rating: 4.6,
			Address: "22 Health Avenue, Colaba, Mumbai", Distance: compare.Km(2.3),
			Phone: "+91 98765 43215", Hours: "9:00 AM - 8:00 PM",
			Features: []string{"Organic Products", "Health Foods", "Eco Friendly"},
		},
	}
}

func sampleDeals() []Deal {
	return []Deal{
		{ID: "deal-1", Title: "Weekend Flash Sale on Rice", Store: "Fresh Market", Discount: "Up to 25% off", Category: "Basmati Rice", Expiry: "2 days left", Type: DealFlash},
		{ID: "deal-2", Title: "Get 10% cashback on Peanuts", Store: "Kirana Store", Discount: "10% cashback", Category: "Whole Peanuts", Expiry: "1 week left", Type: DealCashback},
		{ID: "deal-3", Title: "Buy 1 Get 1 Free on Sugar", Store: "Premium Grocery", Discount: "Buy 1 Get 1", Category: "Pure Refined Sugar", Expiry: "3 days left", Type: DealBOGO},
		{ID: "deal-4", Title: "New User Offer on Tur Daal", Store: "BigBasket", Discount: "Flat ₹100 off", Category: "First order only", Expiry: "Ongoing", Type: DealFirstOrder},
		{ID: "deal-5", Title: "Festival Special on Wheat", Store: "Fresh Market", Discount: "Up to 30% off", Category: "Premium Wheat", Expiry: "5 days left", Type: DealSeasonal},
		{ID: "deal-6", Title: "Free Delivery with Rice", Store: "BigBasket", Discount: "Free Delivery", Category: "Orders above ₹700", Expiry: "Ongoing", Type: DealDelivery},
	}
}

func samplePlans() []Plan {
	return []Plan{
		{
			Title: "Free", Price: PlanPrice{Monthly: 0, Annual: 0},
			Features: []PlanFeature{
				{Text: "Basic price comparison", Included: true},
				{Text: "Up to 5 product searches per day", Included: true},
				{Text: "View current deals", Included: true},
				{Text: "Price history (7 days)", Included: true},
				{Text: "Ad-supported experience", Included: true},
				{Text: "Price alerts", Included: false},
				{Text: "Personalized recommendations", Included: false},
				{Text: "Advanced filters", Included: false},
			},
		},
		{
			Title: "Basic", Price: PlanPrice{Monthly: 99, Annual: 999}, Highlighted: true,
			Features: []PlanFeature{
				{Text: "Unlimited price comparisons", Included: true},
				{Text: "No daily search limits", Included: true},
				{Text: "Ad-free experience", Included: true},
				{Text: "Price history (30 days)", Included: true},
				{Text: "Price drop alerts (5 items)", Included: true},
				{Text: "Shopping list management", Included: true},
				{Text: "Basic personalized recommendations", Included: true},
				{Text: "Email support", Included: true},
			},
		},
		{
			Title: "Premium", Price: PlanPrice{Monthly: 249, Annual: 2499},
			Features: []PlanFeature{
				{Text: "All Basic features", Included: true},
				{Text: "Price history (Full history)", Included: true},
				{Text: "Unlimited price drop alerts", Included: true},
				{Text: "Advanced product filters", Included: true},
				{Text: "Exclusive deals & cashback", Included: true},
				{Text: "Detailed price analytics", Included: true},
				{Text: "Priority support", Included: true},
				{Text: "Family account sharing (up to 3)", Included: true},
			},
		},
	}
}

// SampleCartItems is what a fresh cart session starts with.
func SampleCartItems() []cart.LineItem {
	return []cart.LineItem{
		{ItemID: "organic-milk", Name: "Organic Milk", Description: "Fresh organic cow milk, 500ml", UnitPrice: 45, Quantity: 2, StoreName: "Fresh Market"},
		{ItemID: "whole-wheat-bread", Name: "Whole Wheat Bread", Description: "Freshly baked whole wheat bread, 400g", UnitPrice: 35, Quantity: 1, StoreName: "Fresh Market"},
		{ItemID: "farm-eggs", Name: "Farm Eggs", Description: "Pack of 6 free-range eggs", UnitPrice: 60, Quantity: 1, StoreName: "Kirana Store"},
		{ItemID: "tomatoes", Name: "Tomatoes", Description: "Fresh tomatoes, 500g", UnitPrice: 30, Quantity: 2, StoreName: "Premium Grocery"},
	}
}
