package handlers

import (
	"net/http"
	"strconv"

	"restaurant-menu-api/config"
	"restaurant-menu-api/menu"
	"restaurant-menu-api/models"

	"github.com/gin-gonic/gin"
)

// ── Menu Item Management (admin) ─────────────────────────────────────────────

type CreateItemRequest struct {
	Code          string `json:"code" binding:"required"`
	Name          string `json:"name" binding:"required"`
	NameAr        string `json:"name_ar"`
	Description   string `json:"description"`
	DescriptionAr string `json:"description_ar"`
	Price         string `json:"price"`
	CategoryCode  string `json:"category_code" binding:"required"`
	BranchCode    string `json:"branch_code" binding:"required"`
	Image         string `json:"image"`
	IsFasting     bool   `json:"is_fasting"`
	IsVegetarian  bool   `json:"is_vegetarian"`
	IsHealthy     bool   `json:"is_healthy"`
	IsSignature   bool   `json:"is_signature"`
	IsSpicy       bool   `json:"is_spicy"`
	DisplayOrder  int    `json:"display_order"`
}

// ListItems serves the admin item table: optional branch scope, substring
// search, column sort with direction, and pagination.
func ListItems(c *gin.Context) {
	query := config.DB.Model(&models.MenuItem{})
	if branch := c.Query("branch"); branch != "" {
		query = query.Where("branch_code = ?", branch)
	}
	if category := c.Query("category"); category != "" {
		query = query.Where("category_code = ?", category)
	}

	var items []models.MenuItem
	if err := query.Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	items = menu.Search(items, c.Query("search"))
	asc := c.DefaultQuery("dir", "asc") != "desc"
	items = menu.SortItems(items, menu.SorterFor(c.Query("sort_by"), asc))

	total := len(items)
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("page_size", "0"))
	items = menu.Paginate(items, page, size)

	c.JSON(http.StatusOK, gin.H{"total": total, "count": len(items), "items": items})
}

// CreateItem adds a new menu item
func CreateItem(c *gin.Context) {
	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var category models.MenuCategory
	if err := config.DB.Where("code = ? AND branch_code = ?", req.CategoryCode, req.BranchCode).First(&category).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist for this branch"})
		return
	}

	item := models.MenuItem{
		Code:          req.Code,
		Name:          req.Name,
		NameAr:        req.NameAr,
		Description:   req.Description,
		DescriptionAr: req.DescriptionAr,
		Price:         req.Price,
		CategoryCode:  req.CategoryCode,
		BranchCode:    req.BranchCode,
		Image:         req.Image,
		IsFasting:     req.IsFasting,
		IsVegetarian:  req.IsVegetarian,
		IsHealthy:     req.IsHealthy,
		IsSignature:   req.IsSignature,
		IsSpicy:       req.IsSpicy,
		DisplayOrder:  req.DisplayOrder,
		ShowInWebsite: true,
		Saleable:      true,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create menu item"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Menu item created", "item": item})
}

// UpdateItem applies a partial update with a whitelisted field set
func UpdateItem(c *gin.Context) {
	var item models.MenuItem
	if err := config.DB.First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	allowed := map[string]bool{
		"name": true, "name_ar": true, "description": true, "description_ar": true,
		"price": true, "category_code": true, "image": true, "display_order": true,
		"is_fasting": true, "is_vegetarian": true, "is_healthy": true,
		"is_signature": true, "is_spicy": true, "show_in_website": true, "saleable": true,
	}
	update := map[string]interface{}{}
	for k, v := range req {
		if allowed[k] {
			update[k] = v
		}
	}
	if err := config.DB.Model(&item).Updates(update).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update menu item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item updated", "item": item})
}

type UpdateOrderRequest struct {
	DisplayOrder *int `json:"display_order" binding:"required"`
}

// UpdateItemOrder commits the inline order edit from the admin table
func UpdateItemOrder(c *gin.Context) {
	var item models.MenuItem
	if err := config.DB.First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	var req UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := config.DB.Model(&item).Update("display_order", *req.DisplayOrder).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update display order"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Display order updated", "item": item})
}

// DeleteItem removes a menu item
func DeleteItem(c *gin.Context) {
	var item models.MenuItem
	if err := config.DB.First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	if err := config.DB.Delete(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete menu item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted"})
}
