package menu

import (
	"sort"
	"strconv"
	"strings"

	"restaurant-menu-api/models"
)

// Visible drops items that fail either visibility flag. An empty result is
// a valid state, not an error.
func Visible(items []models.MenuItem) []models.MenuItem {
	out := make([]models.MenuItem, 0, len(items))
	for _, it := range items {
		if it.PubliclyVisible() {
			out = append(out, it)
		}
	}
	return out
}

// ForSelection keeps items matching the selection's active category. With
// nothing selected (All) every item passes through.
func ForSelection(items []models.MenuItem, sel Selection) []models.MenuItem {
	active := sel.ActiveCategory()
	if active == "" {
		return items
	}
	out := make([]models.MenuItem, 0, len(items))
	for _, it := range items {
		if it.CategoryCode == active {
			out = append(out, it)
		}
	}
	return out
}

// LessFunc orders two menu items.
type LessFunc func(a, b models.MenuItem) bool

// SortItems sorts a copy of items with a stable sort, leaving the input
// untouched.
func SortItems(items []models.MenuItem, less LessFunc) []models.MenuItem {
	out := make([]models.MenuItem, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// ByDisplayOrder sorts numerically. Items never assigned an order carry the
// zero default and sort together at the front (ascending).
func ByDisplayOrder(asc bool) LessFunc {
	return func(a, b models.MenuItem) bool {
		if asc {
			return a.DisplayOrder < b.DisplayOrder
		}
		return a.DisplayOrder > b.DisplayOrder
	}
}

// ByName sorts case-insensitively.
func ByName(asc bool) LessFunc {
	return func(a, b models.MenuItem) bool {
		an, bn := strings.ToLower(a.Name), strings.ToLower(b.Name)
		if asc {
			return an < bn
		}
		return an > bn
	}
}

// ByPrice parses the formatted price string; unparseable prices sort as 0.
func ByPrice(asc bool) LessFunc {
	return func(a, b models.MenuItem) bool {
		ap, bp := parsePrice(a.Price), parsePrice(b.Price)
		if asc {
			return ap < bp
		}
		return ap > bp
	}
}

// SorterFor maps an admin table column name to its comparator. Unknown
// columns fall back to display order.
func SorterFor(column string, asc bool) LessFunc {
	switch column {
	case "name":
		return ByName(asc)
	case "price":
		return ByPrice(asc)
	default:
		return ByDisplayOrder(asc)
	}
}

// parsePrice extracts a numeric value from a formatted price such as
// "12.50 SAR" or "SAR 12,50". Anything unparseable is treated as zero.
func parsePrice(s string) float64 {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r == '.':
			b.WriteRune(r)
		case r == ',':
			b.WriteRune('.')
		}
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return v
}

// Search keeps items where the term appears, case-insensitively, in the
// name (either language), description or code. An empty term keeps all.
func Search(items []models.MenuItem, term string) []models.MenuItem {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return items
	}
	out := make([]models.MenuItem, 0, len(items))
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.Name), term) ||
			strings.Contains(strings.ToLower(it.NameAr), term) ||
			strings.Contains(strings.ToLower(it.Description), term) ||
			strings.Contains(strings.ToLower(it.Code), term) {
			out = append(out, it)
		}
	}
	return out
}

// Paginate slices one page out of the full list. Pages are 1-based; a page
// past the end yields an empty slice.
func Paginate(items []models.MenuItem, page, size int) []models.MenuItem {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		return items
	}
	start := (page - 1) * size
	if start >= len(items) {
		return []models.MenuItem{}
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
