package catalog

import (
	"strings"

	"github.com/rogerio-castellano/storefront/internal/models"
)

// Criteria narrows a product list. A nil Category disables the category filter and a Query that
// is blank after trimming disables the text filter.
type Criteria struct {
	Category *string
	Query    string
}

// Filter returns the products matching both the category and the text query, in their original
// order. The input slice is not modified.
func Filter(products []models.Product, c Criteria) []models.Product {
	query := strings.ToLower(strings.TrimSpace(c.Query))

	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if c.Category != nil && !strings.EqualFold(p.Category, *c.Category) {
			continue
		}
		if query != "" && !matchesQuery(p, query) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

func matchesQuery(p models.Product, query string) bool {
	return strings.Contains(strings.ToLower(p.Title), query) ||
		strings.Contains(strings.ToLower(p.Description), query) ||
		strings.Contains(strings.ToLower(p.Category), query)
}
