package models

import "time"

type SocialLink struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Platform     string    `json:"platform" gorm:"not null"`
	URL          string    `json:"url" gorm:"not null"`
	Icon         string    `json:"icon"`
	DisplayOrder int       `json:"display_order" gorm:"default:0"`
	IsActive     bool      `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RestaurantInfo is a single-row table holding branding and site-wide
// settings. ShowAllCategories gates the public menu's "All" selection;
// DefaultViewStyle is the fallback when a visitor has no preference.
type RestaurantInfo struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	Name              string    `json:"name" gorm:"not null"`
	NameAr            string    `json:"name_ar"`
	Logo              string    `json:"logo"`
	About             string    `json:"about"`
	AboutAr           string    `json:"about_ar"`
	ShowAllCategories bool      `json:"show_all_categories" gorm:"default:false"`
	DefaultViewStyle  string    `json:"default_view_style"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// TagIcon maps an item tag key (fasting, vegetarian, ...) to the badge
// artwork shown on the public menu.
type TagIcon struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Tag       string    `json:"tag" gorm:"uniqueIndex;not null"`
	Label     string    `json:"label"`
	LabelAr   string    `json:"label_ar"`
	Icon      string    `json:"icon" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
