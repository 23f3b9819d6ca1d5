package handlers

import (
	"net/http"

	"restaurant-menu-api/config"
	"restaurant-menu-api/menu"
	"restaurant-menu-api/models"

	"github.com/gin-gonic/gin"
)

// GetPublicMenu serves the menu-browsing payload for one branch: the
// category tree, the resolved selection, and the visible items sorted for
// display. Query params: category, sub_category, view.
func GetPublicMenu(c *gin.Context) {
	branchCode := c.Param("branch")
	var branch models.Branch
	if err := config.DB.Where("code = ? AND is_active = ?", branchCode, true).First(&branch).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Branch not found"})
		return
	}

	var info models.RestaurantInfo
	config.DB.First(&info) // zero value is fine when branding is not set up yet

	var categories []models.MenuCategory
	config.DB.Where("branch_code = ?", branchCode).Find(&categories)

	var items []models.MenuItem
	config.DB.Where("branch_code = ?", branchCode).Find(&items)

	sel := menu.NewSelection(branchCode)
	if parent := c.Query("category"); parent != "" {
		if err := sel.SelectParent(parent, categories); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if sub := c.Query("sub_category"); sub != "" {
			if err := sel.SelectSub(sub, categories); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
		}
	} else if !info.ShowAllCategories {
		// "All" is not reachable: land on the first top-level category
		if tops := menu.TopLevel(categories); len(tops) > 0 {
			if err := sel.SelectParent(tops[0].Code, categories); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
		}
	}

	visible := menu.ForSelection(menu.Visible(items), sel)
	sorted := menu.SortItems(visible, menu.ByDisplayOrder(true))
	view := menu.ResolveViewStyle(c.Query("view"), info.DefaultViewStyle)

	c.JSON(http.StatusOK, gin.H{
		"branch":     branch,
		"view_style": view,
		"selection": gin.H{
			"category":     sel.Parent,
			"sub_category": sel.Sub,
		},
		"categories":     menu.TopLevel(categories),
		"sub_categories": menu.SubCategories(sel.Parent, categories),
		"count":          len(sorted),
		"items":          sorted,
	})
}

// GetBranches lists active branches for the branch picker (public)
func GetBranches(c *gin.Context) {
	var branches []models.Branch
	config.DB.Where("is_active = ?", true).Order("name").Find(&branches)
	c.JSON(http.StatusOK, gin.H{"count": len(branches), "branches": branches})
}

// GetSiteInfo returns branding, social links and tag icons in one payload
func GetSiteInfo(c *gin.Context) {
	var info models.RestaurantInfo
	config.DB.First(&info)

	var links []models.SocialLink
	config.DB.Where("is_active = ?", true).Order("display_order").Find(&links)

	var tags []models.TagIcon
	config.DB.Order("tag").Find(&tags)

	c.JSON(http.StatusOK, gin.H{
		"restaurant":   info,
		"social_links": links,
		"tag_icons":    tags,
	})
}
