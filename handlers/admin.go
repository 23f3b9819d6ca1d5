package handlers

import (
	"net/http"

	"restaurant-menu-api/config"
	"restaurant-menu-api/erp"
	"restaurant-menu-api/models"
	"restaurant-menu-api/utils"

	"github.com/gin-gonic/gin"
)

// ── Sync & Maintenance (admin) ───────────────────────────────────────────────

// SyncAllBranches pulls fresh menu data from the ERP for every active
// branch. Branches that fail are listed in the report; the rest sync anyway.
func SyncAllBranches(c *gin.Context) {
	client := erp.NewClient(config.ERPBaseURL(), config.DB)
	report := client.SyncAll(c.Request.Context())

	message := "All branches synced successfully"
	if !report.Success() {
		message = "Sync completed with failures"
	}
	c.JSON(http.StatusOK, gin.H{
		"success": report.Success(),
		"message": message,
		"synced":  report.Synced,
		"failed":  report.Failed,
	})
}

// TruncateAndSyncAllBranches wipes every branch's menu data and rebuilds it
// from the ERP. Destructive; the dashboard gates it behind a confirmation.
func TruncateAndSyncAllBranches(c *gin.Context) {
	client := erp.NewClient(config.ERPBaseURL(), config.DB)
	report, err := client.TruncateAndSyncAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	message := "Truncate and sync completed"
	if !report.Success() {
		message = "Truncate and sync completed with failures"
	}
	c.JSON(http.StatusOK, gin.H{
		"success": report.Success(),
		"message": message,
		"synced":  report.Synced,
		"failed":  report.Failed,
	})
}

// GetCurrentDatabase reports which database the service is connected to,
// so the dashboard can warn when it points at the wrong environment.
func GetCurrentDatabase(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"database": config.DatabaseName()})
}

// ── User Management (admin) ──────────────────────────────────────────────────

// ListUsers returns all dashboard accounts
func ListUsers(c *gin.Context) {
	var users []models.User
	query := config.DB
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}
	query.Find(&users)
	c.JSON(http.StatusOK, gin.H{"count": len(users), "users": users})
}

// ── Image Upload (admin) ─────────────────────────────────────────────────────

type UploadImageRequest struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
	Folder      string `json:"folder"`
}

// UploadImage stores a base64 data-URI image in object storage and returns
// its public URL for use on items, categories and branding.
func UploadImage(c *gin.Context) {
	var req UploadImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	folder := req.Folder
	if folder == "" {
		folder = "menu-images"
	}
	url, err := utils.UploadBase64Image(req.ImageBase64, folder)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed", "detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
