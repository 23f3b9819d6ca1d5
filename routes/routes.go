package routes

import (
	"restaurant-menu-api/handlers"
	"restaurant-menu-api/middleware"
	"restaurant-menu-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)

		// Menu browsing (no auth needed)
		public.GET("/branches", handlers.GetBranches)
		public.GET("/menu/:branch", handlers.GetPublicMenu)
		public.GET("/site", handlers.GetSiteInfo)

		// Customer satisfaction survey
		public.GET("/survey/questions", handlers.GetActiveQuestions)
		public.POST("/survey/responses", handlers.SubmitResponse)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", handlers.GetProfile)
	}

	// ── Dashboard routes (admin or staff) ──────────────────────────
	dashboard := r.Group("/api/admin")
	dashboard.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin, models.RoleStaff))
	{
		// Menu items
		dashboard.GET("/items", handlers.ListItems)
		dashboard.POST("/items", handlers.CreateItem)
		dashboard.PUT("/items/:id", handlers.UpdateItem)
		dashboard.PUT("/items/:id/order", handlers.UpdateItemOrder)
		dashboard.DELETE("/items/:id", handlers.DeleteItem)

		// Categories
		dashboard.GET("/categories", handlers.ListCategories)
		dashboard.POST("/categories", handlers.CreateCategory)
		dashboard.PUT("/categories/:id", handlers.UpdateCategory)
		dashboard.PUT("/categories/:id/order", handlers.UpdateCategoryOrder)
		dashboard.DELETE("/categories/:id", handlers.DeleteCategory)

		// Branches / locations
		dashboard.GET("/branches", handlers.ListAllBranches)
		dashboard.POST("/branches", handlers.CreateBranch)
		dashboard.PUT("/branches/:id", handlers.UpdateBranch)
		dashboard.DELETE("/branches/:id", handlers.DeleteBranch)

		// Branding, social links, tag icons
		dashboard.GET("/info", handlers.GetRestaurantInfo)
		dashboard.PUT("/info", handlers.UpdateRestaurantInfo)
		dashboard.GET("/social-links", handlers.ListSocialLinks)
		dashboard.POST("/social-links", handlers.CreateSocialLink)
		dashboard.PUT("/social-links/:id", handlers.UpdateSocialLink)
		dashboard.DELETE("/social-links/:id", handlers.DeleteSocialLink)
		dashboard.GET("/tag-icons", handlers.ListTagIcons)
		dashboard.POST("/tag-icons", handlers.CreateTagIcon)
		dashboard.PUT("/tag-icons/:id", handlers.UpdateTagIcon)
		dashboard.DELETE("/tag-icons/:id", handlers.DeleteTagIcon)

		// Survey
		dashboard.GET("/survey/questions", handlers.ListQuestions)
		dashboard.POST("/survey/questions", handlers.CreateQuestion)
		dashboard.PUT("/survey/questions/:id", handlers.UpdateQuestion)
		dashboard.DELETE("/survey/questions/:id", handlers.DeleteQuestion)
		dashboard.GET("/survey/responses", handlers.ListResponses)
		dashboard.GET("/survey/responses/export", handlers.ExportResponsesCSV)

		// Image upload
		dashboard.POST("/upload", handlers.UploadImage)
	}

	// ── Admin-only maintenance routes ──────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin))
	{
		admin.POST("/sync", handlers.SyncAllBranches)
		admin.POST("/sync/truncate", handlers.TruncateAndSyncAllBranches)
		admin.GET("/database", handlers.GetCurrentDatabase)
		admin.GET("/users", handlers.ListUsers)
	}
}
