package menu

import (
	"errors"
	"sort"
	"strings"

	"restaurant-menu-api/models"
)

// Selection tracks which slice of the menu a visitor is looking at. The
// state moves between three shapes:
//
//	All                      — no parent, no sub (only when allowed)
//	Parent selected, no sub  — parent has no sub-categories
//	Parent + sub selected    — parent has sub-categories
//
// Selecting a parent clears any sub and auto-selects the parent's first
// sub-category when one exists. Changing the branch resets everything.
type Selection struct {
	Branch string
	Parent string // category code; empty means All
	Sub    string // sub-category code; empty when parent has no subs
}

var (
	ErrAllNotAllowed    = errors.New("showing all categories is disabled for this restaurant")
	ErrUnknownCategory  = errors.New("category does not exist for this branch")
	ErrNotParentOfChild = errors.New("sub-category does not belong to the selected category")
)

// NewSelection starts a browsing session for a branch in its initial state.
func NewSelection(branch string) Selection {
	return Selection{Branch: branch}
}

// SetBranch switches the active branch and resets the selection to its
// initial condition.
func (s *Selection) SetBranch(branch string) {
	s.Branch = branch
	s.Parent = ""
	s.Sub = ""
}

// SelectAll clears both selections. Only permitted when the restaurant's
// show-all-categories setting is enabled.
func (s *Selection) SelectAll(allowed bool) error {
	if !allowed {
		return ErrAllNotAllowed
	}
	s.Parent = ""
	s.Sub = ""
	return nil
}

// SelectParent picks a top-level category. Any previous sub-category is
// cleared; if the new parent has sub-categories the first one (by display
// order, name tie-break) is selected automatically.
func (s *Selection) SelectParent(code string, categories []models.MenuCategory) error {
	found := false
	for _, c := range categories {
		if c.Code == code && c.ParentCode == "" {
			found = true
			break
		}
	}
	if !found {
		return ErrUnknownCategory
	}

	s.Parent = code
	s.Sub = ""
	if first, ok := FirstSubCategory(code, categories); ok {
		s.Sub = first.Code
	}
	return nil
}

// SelectSub picks a specific sub-category of the currently selected parent.
func (s *Selection) SelectSub(code string, categories []models.MenuCategory) error {
	for _, c := range categories {
		if c.Code == code && c.ParentCode == s.Parent && s.Parent != "" {
			s.Sub = code
			return nil
		}
	}
	return ErrNotParentOfChild
}

// ActiveCategory returns the category code the item filter should match:
// the sub-category when one is selected, else the parent, else empty for All.
func (s Selection) ActiveCategory() string {
	if s.Sub != "" {
		return s.Sub
	}
	return s.Parent
}

// SubCategories returns the sub-categories of a parent ordered by display
// order ascending, ties broken by case-insensitive name.
func SubCategories(parent string, categories []models.MenuCategory) []models.MenuCategory {
	var subs []models.MenuCategory
	for _, c := range categories {
		if c.ParentCode == parent && parent != "" {
			subs = append(subs, c)
		}
	}
	sort.SliceStable(subs, func(i, j int) bool {
		if subs[i].DisplayOrder != subs[j].DisplayOrder {
			return subs[i].DisplayOrder < subs[j].DisplayOrder
		}
		return strings.ToLower(subs[i].Name) < strings.ToLower(subs[j].Name)
	})
	return subs
}

// FirstSubCategory returns the sub-category auto-selected when its parent
// is chosen, and whether the parent has any sub-categories at all.
func FirstSubCategory(parent string, categories []models.MenuCategory) (models.MenuCategory, bool) {
	subs := SubCategories(parent, categories)
	if len(subs) == 0 {
		return models.MenuCategory{}, false
	}
	return subs[0], true
}

// TopLevel returns the top-level categories ordered for display.
func TopLevel(categories []models.MenuCategory) []models.MenuCategory {
	var tops []models.MenuCategory
	for _, c := range categories {
		if c.ParentCode == "" {
			tops = append(tops, c)
		}
	}
	sort.SliceStable(tops, func(i, j int) bool {
		if tops[i].DisplayOrder != tops[j].DisplayOrder {
			return tops[i].DisplayOrder < tops[j].DisplayOrder
		}
		return strings.ToLower(tops[i].Name) < strings.ToLower(tops[j].Name)
	})
	return tops
}
