package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogFixture() []ProductComparison {
	return []ProductComparison{
		{ProductID: "basmati-rice-1kg", Name: "Basmati Rice (1kg)", Category: "Grains"},
		{ProductID: "sugar-1kg", Name: "Sugar (1kg)", Category: "Essentials"},
		{ProductID: "wheat-1kg", Name: "Wheat (1kg)", Category: "Grains"},
	}
}

func TestSearchCaseInsensitive(t *testing.T) {
	got := Search(catalogFixture(), "SUGAR")
	require.Len(t, got, 1)
	assert.Equal(t, "sugar-1kg", got[0].ProductID)
}

func TestSearchMatchesCategory(t *testing.T) {
	got := Search(catalogFixture(), "grains")
	require.Len(t, got, 2)
	assert.Equal(t, "basmati-rice-1kg", got[0].ProductID)
	assert.Equal(t, "wheat-1kg", got[1].ProductID)
}

func TestSearchTokenized(t *testing.T) {
	// every token must match; "rice" hits the name, "grains" the category
	got := Search(catalogFixture(), "basmati rice")
	require.Len(t, got, 1)

	got = Search(catalogFixture(), "rice grains")
	require.Len(t, got, 1)
	assert.Equal(t, "basmati-rice-1kg", got[0].ProductID)

	assert.Empty(t, Search(catalogFixture(), "rice essentials"))
}

func TestSearchBlankQueryReturnsAll(t *testing.T) {
	assert.Len(t, Search(catalogFixture(), ""), 3)
	assert.Len(t, Search(catalogFixture(), "   "), 3)
}

func TestSearchNoMatch(t *testing.T) {
	assert.Empty(t, Search(catalogFixture(), "paneer"))
}
