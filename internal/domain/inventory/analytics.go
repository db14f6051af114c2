package inventory

import "strings"

// LowStockThreshold is the fixed quantity below which an item counts as low
// stock. Quantity 4 is low stock, quantity 5 is not.
const LowStockThreshold = 5

// Summary holds the dashboard aggregates, always computed over the full
// unfiltered item list.
type Summary struct {
	TotalItems int     `json:"totalItems"`
	TotalValue float64 `json:"totalValue"`
	LowStock   int     `json:"lowStock"`
}

// Filter returns the items whose name, SKU or category contains term,
// case-insensitively. Absent optional fields never match. An empty term
// returns the input unchanged, preserving order.
func Filter(items []Item, term string) []Item {
	if term == "" {
		return items
	}

	needle := strings.ToLower(term)
	filtered := make([]Item, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), needle) ||
			containsFold(item.SKU, needle) ||
			containsFold(item.Category, needle) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

func containsFold(field *string, needle string) bool {
	if field == nil {
		return false
	}
	return strings.Contains(strings.ToLower(*field), needle)
}

// Summarize computes the aggregate counters for a list of items.
func Summarize(items []Item) Summary {
	s := Summary{TotalItems: len(items)}
	for _, item := range items {
		s.TotalValue += item.Price * float64(item.Quantity)
		if item.LowStock() {
			s.LowStock++
		}
	}
	return s
}
