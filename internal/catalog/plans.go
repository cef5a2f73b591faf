package catalog

import (
	"math/rand/v2"
	"strings"
)

// PlanPrice carries both billing cycles in rupees.
type PlanPrice struct {
	Monthly int `json:"monthly"`
	Annual  int `json:"annual"`
}

// PlanFeature is one line on a plan card; Included distinguishes features
// the plan ships from ones listed as missing.
type PlanFeature struct {
	Text     string `json:"text"`
	Included bool   `json:"included"`
}

// Plan is a subscription tier.
type Plan struct {
	Title       string        `json:"title"`
	Price       PlanPrice     `json:"price"`
	Highlighted bool          `json:"highlighted"`
	Features    []PlanFeature `json:"features"`
}

// AnnualSavings is what a year of monthly billing costs over the annual
// price. Zero for free plans.
func (p Plan) AnnualSavings() int {
	if p.Price.Monthly == 0 {
		return 0
	}
	return p.Price.Monthly*12 - p.Price.Annual
}

const apiKeyChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

var apiKeyGroups = [...]int{8, 4, 4, 4, 12}

// NewAPIKey generates a display key in 8-4-4-4-12 groups of mixed-case
// alphanumerics. It is not a credential; subscribers get a real key from
// the billing backend.
func NewAPIKey() string {
	var b strings.Builder
	for gi, n := range apiKeyGroups {
		if gi > 0 {
			b.WriteByte('-')
		}
		for i := 0; i < n; i++ {
			b.WriteByte(apiKeyChars[rand.IntN(len(apiKeyChars))])
		}
	}
	return b.String()
}
