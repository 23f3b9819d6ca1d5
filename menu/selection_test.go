package menu

import (
	"testing"

	"restaurant-menu-api/models"

	"github.com/stretchr/testify/assert"
)

func sampleCategories() []models.MenuCategory {
	return []models.MenuCategory{
		{Code: "drinks", Name: "Drinks", DisplayOrder: 1, BranchCode: "riyadh"},
		{Code: "mains", Name: "Mains", DisplayOrder: 2, BranchCode: "riyadh"},
		{Code: "hot", Name: "Hot", ParentCode: "drinks", DisplayOrder: 2, BranchCode: "riyadh"},
		{Code: "cold", Name: "Cold", ParentCode: "drinks", DisplayOrder: 1, BranchCode: "riyadh"},
		{Code: "juices", Name: "juices", ParentCode: "drinks", DisplayOrder: 1, BranchCode: "riyadh"},
	}
}

func TestSelectParentAutoSelectsFirstSub(t *testing.T) {
	cats := sampleCategories()
	sel := NewSelection("riyadh")

	err := sel.SelectParent("drinks", cats)
	assert.NoError(t, err)
	assert.Equal(t, "drinks", sel.Parent)
	// Cold and juices share order 1; "Cold" wins the case-insensitive name tie-break
	assert.Equal(t, "cold", sel.Sub)
}

func TestSelectParentWithoutSubsClearsSub(t *testing.T) {
	cats := sampleCategories()
	sel := NewSelection("riyadh")

	assert.NoError(t, sel.SelectParent("drinks", cats))
	assert.NotEmpty(t, sel.Sub)

	assert.NoError(t, sel.SelectParent("mains", cats))
	assert.Equal(t, "mains", sel.Parent)
	assert.Empty(t, sel.Sub)
}

func TestSelectParentRejectsUnknownAndSubCategories(t *testing.T) {
	cats := sampleCategories()
	sel := NewSelection("riyadh")

	assert.ErrorIs(t, sel.SelectParent("desserts", cats), ErrUnknownCategory)
	// A sub-category code is not selectable as a parent
	assert.ErrorIs(t, sel.SelectParent("cold", cats), ErrUnknownCategory)
}

func TestSelectSubMustBelongToParent(t *testing.T) {
	cats := sampleCategories()
	sel := NewSelection("riyadh")
	assert.NoError(t, sel.SelectParent("drinks", cats))

	assert.NoError(t, sel.SelectSub("hot", cats))
	assert.Equal(t, "hot", sel.Sub)

	assert.ErrorIs(t, sel.SelectSub("mains", cats), ErrNotParentOfChild)
}

func TestSelectAllRespectsSetting(t *testing.T) {
	cats := sampleCategories()
	sel := NewSelection("riyadh")
	assert.NoError(t, sel.SelectParent("drinks", cats))

	assert.ErrorIs(t, sel.SelectAll(false), ErrAllNotAllowed)
	assert.Equal(t, "drinks", sel.Parent)

	assert.NoError(t, sel.SelectAll(true))
	assert.Empty(t, sel.Parent)
	assert.Empty(t, sel.Sub)
}

func TestSetBranchResetsSelection(t *testing.T) {
	cats := sampleCategories()
	sel := NewSelection("riyadh")
	assert.NoError(t, sel.SelectParent("drinks", cats))

	sel.SetBranch("jeddah")
	assert.Equal(t, "jeddah", sel.Branch)
	assert.Empty(t, sel.Parent)
	assert.Empty(t, sel.Sub)
}

func TestActiveCategoryPrefersSub(t *testing.T) {
	sel := Selection{Branch: "riyadh", Parent: "drinks", Sub: "cold"}
	assert.Equal(t, "cold", sel.ActiveCategory())

	sel.Sub = ""
	assert.Equal(t, "drinks", sel.ActiveCategory())

	sel.Parent = ""
	assert.Empty(t, sel.ActiveCategory())
}

func TestTopLevelOrdering(t *testing.T) {
	tops := TopLevel(sampleCategories())
	assert.Len(t, tops, 2)
	assert.Equal(t, "drinks", tops[0].Code)
	assert.Equal(t, "mains", tops[1].Code)
}
