package handlers

import (
	"net/http"

	"restaurant-menu-api/config"
	"restaurant-menu-api/models"

	"github.com/gin-gonic/gin"
)

// ── Restaurant Branding (admin) ──────────────────────────────────────────────

// GetRestaurantInfo returns the branding/settings row for the admin screen
func GetRestaurantInfo(c *gin.Context) {
	var info models.RestaurantInfo
	if err := config.DB.First(&info).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant info not configured yet"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurant": info})
}

// UpdateRestaurantInfo upserts the single branding row with a whitelisted
// partial update
func UpdateRestaurantInfo(c *gin.Context) {
	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	allowed := map[string]bool{
		"name": true, "name_ar": true, "logo": true, "about": true, "about_ar": true,
		"show_all_categories": true, "default_view_style": true,
	}
	update := map[string]interface{}{}
	for k, v := range req {
		if allowed[k] {
			update[k] = v
		}
	}

	var info models.RestaurantInfo
	if err := config.DB.First(&info).Error; err != nil {
		name, _ := update["name"].(string)
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name is required when creating restaurant info"})
			return
		}
		info = models.RestaurantInfo{Name: name}
		if err := config.DB.Create(&info).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create restaurant info"})
			return
		}
	}
	if err := config.DB.Model(&info).Updates(update).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update restaurant info"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Restaurant info updated", "restaurant": info})
}

// ── Social Links (admin) ─────────────────────────────────────────────────────

type CreateSocialLinkRequest struct {
	Platform     string `json:"platform" binding:"required"`
	URL          string `json:"url" binding:"required,url"`
	Icon         string `json:"icon"`
	DisplayOrder int    `json:"display_order"`
}

// ListSocialLinks returns all links including inactive ones
func ListSocialLinks(c *gin.Context) {
	var links []models.SocialLink
	config.DB.Order("display_order").Find(&links)
	c.JSON(http.StatusOK, gin.H{"count": len(links), "social_links": links})
}

func CreateSocialLink(c *gin.Context) {
	var req CreateSocialLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	link := models.SocialLink{
		Platform:     req.Platform,
		URL:          req.URL,
		Icon:         req.Icon,
		DisplayOrder: req.DisplayOrder,
		IsActive:     true,
	}
	if err := config.DB.Create(&link).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create social link"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Social link created", "social_link": link})
}

func UpdateSocialLink(c *gin.Context) {
	var link models.SocialLink
	if err := config.DB.First(&link, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Social link not found"})
		return
	}
	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	allowed := map[string]bool{"platform": true, "url": true, "icon": true, "display_order": true, "is_active": true}
	update := map[string]interface{}{}
	for k, v := range req {
		if allowed[k] {
			update[k] = v
		}
	}
	if err := config.DB.Model(&link).Updates(update).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update social link"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Social link updated", "social_link": link})
}

func DeleteSocialLink(c *gin.Context) {
	var link models.SocialLink
	if err := config.DB.First(&link, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Social link not found"})
		return
	}
	config.DB.Delete(&link)
	c.JSON(http.StatusOK, gin.H{"message": "Social link deleted"})
}

// ── Tag Icons (admin) ────────────────────────────────────────────────────────

type CreateTagIconRequest struct {
	Tag     string `json:"tag" binding:"required"`
	Label   string `json:"label"`
	LabelAr string `json:"label_ar"`
	Icon    string `json:"icon" binding:"required"`
}

func ListTagIcons(c *gin.Context) {
	var tags []models.TagIcon
	config.DB.Order("tag").Find(&tags)
	c.JSON(http.StatusOK, gin.H{"count": len(tags), "tag_icons": tags})
}

func CreateTagIcon(c *gin.Context) {
	var req CreateTagIconRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	tag := models.TagIcon{Tag: req.Tag, Label: req.Label, LabelAr: req.LabelAr, Icon: req.Icon}
	if err := config.DB.Create(&tag).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create tag icon"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Tag icon created", "tag_icon": tag})
}

func UpdateTagIcon(c *gin.Context) {
	var tag models.TagIcon
	if err := config.DB.First(&tag, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tag icon not found"})
		return
	}
	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	allowed := map[string]bool{"label": true, "label_ar": true, "icon": true}
	update := map[string]interface{}{}
	for k, v := range req {
		if allowed[k] {
			update[k] = v
		}
	}
	if err := config.DB.Model(&tag).Updates(update).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update tag icon"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tag icon updated", "tag_icon": tag})
}

func DeleteTagIcon(c *gin.Context) {
	var tag models.TagIcon
	if err := config.DB.First(&tag, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tag icon not found"})
		return
	}
	config.DB.Delete(&tag)
	c.JSON(http.StatusOK, gin.H{"message": "Tag icon deleted"})
}
