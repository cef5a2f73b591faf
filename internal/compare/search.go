package compare

import "strings"

// MatchesQuery reports whether the product matches the query under the
// text-matching contract: the query is case-folded and split into
// whitespace tokens, and every token must be a substring of the folded
// product name or category. An empty query matches everything.
func MatchesQuery(pc ProductComparison, query string) bool {
	tokens := strings.Fields(strings.ToLower(query))
	if len(tokens) == 0 {
		return true
	}
	name := strings.ToLower(pc.Name)
	category := strings.ToLower(pc.Category)
	for _, tok := range tokens {
		if !strings.Contains(name, tok) && !strings.Contains(category, tok) {
			return false
		}
	}
	return true
}

// Search filters products by MatchesQuery, preserving order. A blank query
// returns a copy of the input.
func Search(products []ProductComparison, query string) []ProductComparison {
	out := make([]ProductComparison, 0, len(products))
	for _, pc := range products {
		if MatchesQuery(pc, query) {
			out = append(out, pc)
		}
	}
	return out
}
