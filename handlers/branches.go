package handlers

import (
	"net/http"

	"restaurant-menu-api/config"
	"restaurant-menu-api/models"

	"github.com/gin-gonic/gin"
)

// ── Branch / Location Management (admin) ─────────────────────────────────────

type CreateBranchRequest struct {
	Code    string `json:"code" binding:"required"`
	Name    string `json:"name" binding:"required"`
	NameAr  string `json:"name_ar"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// ListAllBranches returns every branch including inactive ones
func ListAllBranches(c *gin.Context) {
	var branches []models.Branch
	config.DB.Order("name").Find(&branches)
	c.JSON(http.StatusOK, gin.H{"count": len(branches), "branches": branches})
}

// CreateBranch adds a location
func CreateBranch(c *gin.Context) {
	var req CreateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	branch := models.Branch{
		Code:     req.Code,
		Name:     req.Name,
		NameAr:   req.NameAr,
		Address:  req.Address,
		Phone:    req.Phone,
		IsActive: true,
	}
	if err := config.DB.Create(&branch).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create branch"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Branch created", "branch": branch})
}

// UpdateBranch applies a partial update with a whitelisted field set
func UpdateBranch(c *gin.Context) {
	var branch models.Branch
	if err := config.DB.First(&branch, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Branch not found"})
		return
	}
	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	allowed := map[string]bool{"name": true, "name_ar": true, "address": true, "phone": true, "is_active": true}
	update := map[string]interface{}{}
	for k, v := range req {
		if allowed[k] {
			update[k] = v
		}
	}
	if err := config.DB.Model(&branch).Updates(update).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update branch"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Branch updated", "branch": branch})
}

// DeleteBranch refuses to delete a branch that still has menu data
func DeleteBranch(c *gin.Context) {
	var branch models.Branch
	if err := config.DB.First(&branch, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Branch not found"})
		return
	}

	var itemCount int64
	config.DB.Model(&models.MenuItem{}).Where("branch_code = ?", branch.Code).Count(&itemCount)
	if itemCount > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Branch still has menu items; sync or delete them first"})
		return
	}

	if err := config.DB.Delete(&branch).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete branch"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Branch deleted"})
}
