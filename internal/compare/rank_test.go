package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOffers() []StoreOffer {
	return []StoreOffer{
		{StoreID: "fresh-market", Price: 45, OriginalPrice: 50, Distance: Km(0.5), HasDelivery: true, Rating: 4.2},
		{StoreID: "kirana-store", Price: 42, OriginalPrice: 45, Distance: Km(0.8), HasDelivery: true, Rating: 4.0},
		{StoreID: "bigbasket", Price: 48, OriginalPrice: 48, Distance: OnlineDistance(), HasDelivery: true, Rating: 4.5},
		{StoreID: "premium-grocery", Price: 55, OriginalPrice: 60, Distance: Km(1.2), HasDelivery: false, Rating: 4.7},
	}
}

func TestRankOffersByPrice(t *testing.T) {
	offers := sampleOffers()
	ranked := RankOffers(offers, SortByPrice)

	require.Len(t, ranked, len(offers))
	for i := 1; i < len(ranked); i++ {
		assert.LessOrEqual(t, ranked[i-1].Price, ranked[i].Price)
	}
	// input untouched
	assert.Equal(t, "fresh-market", offers[0].StoreID)

	// already-sorted input is a fixed point
	again := RankOffers(ranked, SortByPrice)
	assert.Equal(t, ranked, again)
}

func TestRankOffersStableOnTies(t *testing.T) {
	offers := []StoreOffer{
		{StoreID: "a", Price: 50},
		{StoreID: "b", Price: 40},
		{StoreID: "c", Price: 40},
		{StoreID: "d", Price: 40},
	}
	ranked := RankOffers(offers, SortByPrice)
	ids := []string{ranked[0].StoreID, ranked[1].StoreID, ranked[2].StoreID, ranked[3].StoreID}
	assert.Equal(t, []string{"b", "c", "d", "a"}, ids)
}

func TestRankOffersByDistanceOnlineLast(t *testing.T) {
	offers := []StoreOffer{
		{StoreID: "online-1", Distance: OnlineDistance()},
		{StoreID: "far", Distance: Km(99)},
		{StoreID: "online-2", Distance: OnlineDistance()},
		{StoreID: "near", Distance: Km(0.3)},
	}
	ranked := RankOffers(offers, SortByDistance)
	assert.Equal(t, "near", ranked[0].StoreID)
	assert.Equal(t, "far", ranked[1].StoreID)
	// Online after every numeric distance, regardless of magnitude;
	// stable among themselves.
	assert.Equal(t, "online-1", ranked[2].StoreID)
	assert.Equal(t, "online-2", ranked[3].StoreID)
}

func TestRankOffersByRatingDescending(t *testing.T) {
	ranked := RankOffers(sampleOffers(), SortByRating)
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Rating, ranked[i].Rating)
	}
	assert.Equal(t, "premium-grocery", ranked[0].StoreID)
}

func TestRankOffersEmpty(t *testing.T) {
	assert.Empty(t, RankOffers(nil, SortByPrice))
}

func TestFilterDeliverable(t *testing.T) {
	out := FilterDeliverable(sampleOffers())
	require.Len(t, out, 3)
	assert.Equal(t, "fresh-market", out[0].StoreID)
	assert.Equal(t, "kirana-store", out[1].StoreID)
	assert.Equal(t, "bigbasket", out[2].StoreID)
}

func TestComputeLowestPrice(t *testing.T) {
	pc := ProductComparison{
		ProductID: "basmati-rice-1kg",
		Offers: []StoreOffer{
			{StoreID: "bigbasket", Price: 95},
			{StoreID: "blinkit", Price: 92},
			{StoreID: "local-market", Price: 91},
		},
	}
	price, storeID, ok := ComputeLowestPrice(pc)
	require.True(t, ok)
	assert.Equal(t, 91, price)
	assert.Equal(t, "local-market", storeID)
}

func TestComputeLowestPriceTieFirstWins(t *testing.T) {
	pc := ProductComparison{
		Offers: []StoreOffer{
			{StoreID: "a", Price: 42},
			{StoreID: "b", Price: 42},
			{StoreID: "c", Price: 50},
		},
	}
	price, storeID, ok := ComputeLowestPrice(pc)
	require.True(t, ok)
	assert.Equal(t, 42, price)
	assert.Equal(t, "a", storeID)
}

func TestComputeLowestPriceEmpty(t *testing.T) {
	_, _, ok := ComputeLowestPrice(ProductComparison{})
	assert.False(t, ok)
}

func TestPriceRange(t *testing.T) {
	lo, hi, ok := PriceRange(ProductComparison{Offers: sampleOffers()})
	require.True(t, ok)
	assert.Equal(t, 42, lo)
	assert.Equal(t, 55, hi)
}

func TestToggleFavoriteIsPure(t *testing.T) {
	orig := map[string]bool{"fresh-market": true}

	with := ToggleFavorite(orig, "bigbasket")
	assert.True(t, with["bigbasket"])
	assert.True(t, with["fresh-market"])
	assert.NotContains(t, orig, "bigbasket")

	without := ToggleFavorite(with, "bigbasket")
	assert.NotContains(t, without, "bigbasket")
	assert.Equal(t, orig, without)
}

func TestOfferDiscount(t *testing.T) {
	amount, ok := StoreOffer{Price: 45, OriginalPrice: 50}.Discount()
	require.True(t, ok)
	assert.Equal(t, 5, amount)

	_, ok = StoreOffer{Price: 48, OriginalPrice: 48}.Discount()
	assert.False(t, ok)
}

func TestDistanceText(t *testing.T) {
	assert.Equal(t, "0.5 km", Km(0.5).String())
	assert.Equal(t, "Online", OnlineDistance().String())

	var d Distance
	require.NoError(t, d.UnmarshalText([]byte("1.2 km")))
	assert.Equal(t, Km(1.2), d)
	require.NoError(t, d.UnmarshalText([]byte("Online")))
	assert.True(t, d.IsOnline())
	assert.Error(t, d.UnmarshalText([]byte("nearby")))
}
