package menu

import (
	"testing"

	"restaurant-menu-api/models"

	"github.com/stretchr/testify/assert"
)

func TestVisibleRequiresBothFlags(t *testing.T) {
	items := []models.MenuItem{
		{Code: "a", ShowInWebsite: true, Saleable: true},
		{Code: "b", ShowInWebsite: false, Saleable: true},
		{Code: "c", ShowInWebsite: true, Saleable: false},
		{Code: "d", ShowInWebsite: false, Saleable: false},
	}
	got := Visible(items)
	assert.Len(t, got, 1)
	assert.Equal(t, "a", got[0].Code)
}

func TestForSelectionMatchesActiveCategory(t *testing.T) {
	items := []models.MenuItem{
		{Code: "espresso", CategoryCode: "hot"},
		{Code: "cola", CategoryCode: "cold"},
		{Code: "burger", CategoryCode: "mains"},
	}

	sel := Selection{Parent: "drinks", Sub: "cold"}
	got := ForSelection(items, sel)
	assert.Len(t, got, 1)
	assert.Equal(t, "cola", got[0].Code)

	// No sub selected: filter by the parent itself
	sel = Selection{Parent: "mains"}
	got = ForSelection(items, sel)
	assert.Len(t, got, 1)
	assert.Equal(t, "burger", got[0].Code)

	// All selected: everything passes
	got = ForSelection(items, Selection{})
	assert.Len(t, got, 3)
}

func TestForSelectionEmptyResultIsValid(t *testing.T) {
	items := []models.MenuItem{{Code: "burger", CategoryCode: "mains"}}
	got := ForSelection(items, Selection{Parent: "drinks"})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSortByDisplayOrder(t *testing.T) {
	items := []models.MenuItem{
		{Name: "B", DisplayOrder: 2},
		{Name: "A", DisplayOrder: 1},
	}

	asc := SortItems(items, ByDisplayOrder(true))
	assert.Equal(t, "A", asc[0].Name)
	assert.Equal(t, "B", asc[1].Name)

	desc := SortItems(items, ByDisplayOrder(false))
	assert.Equal(t, "B", desc[0].Name)
	assert.Equal(t, "A", desc[1].Name)

	// Input order untouched
	assert.Equal(t, "B", items[0].Name)
}

func TestSortMissingOrderTreatedAsZero(t *testing.T) {
	items := []models.MenuItem{
		{Name: "ordered", DisplayOrder: 5},
		{Name: "unordered"}, // zero default
	}
	asc := SortItems(items, ByDisplayOrder(true))
	assert.Equal(t, "unordered", asc[0].Name)
}

func TestSortByNameCaseInsensitive(t *testing.T) {
	items := []models.MenuItem{
		{Name: "banana shake"},
		{Name: "Apple juice"},
	}
	asc := SortItems(items, ByName(true))
	assert.Equal(t, "Apple juice", asc[0].Name)
}

func TestSortByPriceParsesFormattedStrings(t *testing.T) {
	items := []models.MenuItem{
		{Name: "pricey", Price: "25.50 SAR"},
		{Name: "cheap", Price: "9,00"},
		{Name: "free", Price: "call us"}, // unparseable → 0
	}
	asc := SortItems(items, ByPrice(true))
	assert.Equal(t, "free", asc[0].Name)
	assert.Equal(t, "cheap", asc[1].Name)
	assert.Equal(t, "pricey", asc[2].Name)
}

func TestSorterForUnknownColumnFallsBack(t *testing.T) {
	items := []models.MenuItem{
		{Name: "second", DisplayOrder: 2},
		{Name: "first", DisplayOrder: 1},
	}
	got := SortItems(items, SorterFor("nonsense", true))
	assert.Equal(t, "first", got[0].Name)
}

func TestSearchCaseInsensitiveSubstring(t *testing.T) {
	items := []models.MenuItem{
		{Name: "Coca Cola"},
		{Name: "Pepsi"},
	}
	got := Search(items, "cola")
	assert.Len(t, got, 1)
	assert.Equal(t, "Coca Cola", got[0].Name)

	assert.Len(t, Search(items, ""), 2)
	assert.Empty(t, Search(items, "fanta"))
}

func TestPaginate(t *testing.T) {
	items := []models.MenuItem{{Code: "1"}, {Code: "2"}, {Code: "3"}, {Code: "4"}, {Code: "5"}}

	page1 := Paginate(items, 1, 2)
	assert.Len(t, page1, 2)
	assert.Equal(t, "1", page1[0].Code)

	page3 := Paginate(items, 3, 2)
	assert.Len(t, page3, 1)
	assert.Equal(t, "5", page3[0].Code)

	assert.Empty(t, Paginate(items, 4, 2))
	assert.Len(t, Paginate(items, 1, 0), 5) // size 0 disables paging
}
