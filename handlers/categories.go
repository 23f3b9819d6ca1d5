package handlers

import (
	"net/http"

	"restaurant-menu-api/config"
	"restaurant-menu-api/models"

	"github.com/gin-gonic/gin"
)

// ── Category Management (admin) ──────────────────────────────────────────────

type CreateCategoryRequest struct {
	Code         string `json:"code" binding:"required"`
	Name         string `json:"name" binding:"required"`
	NameAr       string `json:"name_ar"`
	ParentCode   string `json:"parent_code"`
	BranchCode   string `json:"branch_code" binding:"required"`
	Image        string `json:"image"`
	DisplayOrder int    `json:"display_order"`
}

// ListCategories returns all categories, optionally scoped to a branch
func ListCategories(c *gin.Context) {
	query := config.DB.Model(&models.MenuCategory{})
	if branch := c.Query("branch"); branch != "" {
		query = query.Where("branch_code = ?", branch)
	}
	var categories []models.MenuCategory
	query.Order("display_order, name").Find(&categories)
	c.JSON(http.StatusOK, gin.H{"count": len(categories), "categories": categories})
}

// CreateCategory adds a category. A parent reference must point to an
// existing top-level category of the same branch; nesting is one level.
func CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.ParentCode != "" {
		var parent models.MenuCategory
		if err := config.DB.Where("code = ? AND branch_code = ?", req.ParentCode, req.BranchCode).First(&parent).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Parent category does not exist for this branch"})
			return
		}
		if parent.ParentCode != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Sub-categories cannot have their own sub-categories"})
			return
		}
	}

	category := models.MenuCategory{
		Code:         req.Code,
		Name:         req.Name,
		NameAr:       req.NameAr,
		ParentCode:   req.ParentCode,
		BranchCode:   req.BranchCode,
		Image:        req.Image,
		DisplayOrder: req.DisplayOrder,
	}
	if err := config.DB.Create(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Category created", "category": category})
}

// UpdateCategory applies a partial update with a whitelisted field set
func UpdateCategory(c *gin.Context) {
	var category models.MenuCategory
	if err := config.DB.First(&category, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	allowed := map[string]bool{"name": true, "name_ar": true, "image": true, "display_order": true}
	update := map[string]interface{}{}
	for k, v := range req {
		if allowed[k] {
			update[k] = v
		}
	}
	if err := config.DB.Model(&category).Updates(update).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category updated", "category": category})
}

// UpdateCategoryOrder commits the inline order edit from the admin table
func UpdateCategoryOrder(c *gin.Context) {
	var category models.MenuCategory
	if err := config.DB.First(&category, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	var req UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := config.DB.Model(&category).Update("display_order", *req.DisplayOrder).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update display order"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Display order updated", "category": category})
}

// DeleteCategory refuses to delete a category that still has menu items or
// sub-categories; the caller sees the reason and the list stays unchanged.
func DeleteCategory(c *gin.Context) {
	var category models.MenuCategory
	if err := config.DB.First(&category, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	var itemCount int64
	config.DB.Model(&models.MenuItem{}).Where("category_code = ?", category.Code).Count(&itemCount)
	if itemCount > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Category still has menu items assigned to it"})
		return
	}

	var subCount int64
	config.DB.Model(&models.MenuCategory{}).Where("parent_code = ?", category.Code).Count(&subCount)
	if subCount > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Category still has sub-categories"})
		return
	}

	if err := config.DB.Delete(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}
