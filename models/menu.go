package models

import "time"

// MenuCategory groups menu items for display. A category with a ParentCode
// is a sub-category of exactly one top-level category; nesting is one level
// deep. Scoped by branch.
type MenuCategory struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Code         string    `json:"code" gorm:"uniqueIndex:idx_categories_branch_code;not null"`
	Name         string    `json:"name" gorm:"not null"`
	NameAr       string    `json:"name_ar"`
	ParentCode   string    `json:"parent_code" gorm:"index"`
	BranchCode   string    `json:"branch_code" gorm:"uniqueIndex:idx_categories_branch_code;not null"`
	Image        string    `json:"image"`
	DisplayOrder int       `json:"display_order" gorm:"default:0"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// MenuItem is a single dish or drink. Price is kept as the formatted string
// the admin entered; sorting parses it and falls back to zero.
type MenuItem struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Code          string    `json:"code" gorm:"uniqueIndex:idx_items_branch_code;not null"`
	Name          string    `json:"name" gorm:"not null"`
	NameAr        string    `json:"name_ar"`
	Description   string    `json:"description"`
	DescriptionAr string    `json:"description_ar"`
	Price         string    `json:"price"`
	CategoryCode  string    `json:"category_code" gorm:"index;not null"`
	BranchCode    string    `json:"branch_code" gorm:"uniqueIndex:idx_items_branch_code;not null"`
	Image         string    `json:"image"`
	IsFasting     bool      `json:"is_fasting" gorm:"default:false"`
	IsVegetarian  bool      `json:"is_vegetarian" gorm:"default:false"`
	IsHealthy     bool      `json:"is_healthy" gorm:"default:false"`
	IsSignature   bool      `json:"is_signature" gorm:"default:false"`
	IsSpicy       bool      `json:"is_spicy" gorm:"default:false"`
	DisplayOrder  int       `json:"display_order" gorm:"default:0"`
	ShowInWebsite bool      `json:"show_in_website" gorm:"default:true"`
	Saleable      bool      `json:"saleable" gorm:"default:true"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// PubliclyVisible reports whether the item may appear on the public menu.
// Both flags must be true.
func (m MenuItem) PubliclyVisible() bool {
	return m.ShowInWebsite && m.Saleable
}
