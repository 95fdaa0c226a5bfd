package categoryRoutes

import (
	categoryController "lms/controllers/category"
	"lms/middleware"
	"lms/models"
	categoryValidator "lms/validators/category"

	"github.com/gofiber/fiber/v2"
)

// SetupCategoryRoutes sets up category browsing and management routes
func SetupCategoryRoutes(app *fiber.App) {
	categoryGroup := app.Group("/categories")

	categoryGroup.Get("/", categoryController.GetCategories)
	categoryGroup.Get("/all", categoryController.GetAllCategories)
	categoryGroup.Get("/:id", categoryValidator.CategoryID(), categoryController.GetCategory)

	// Category management is admin only
	categoryGroup.Post("/", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), categoryValidator.CreateCategory(), categoryController.CreateCategory)
	categoryGroup.Put("/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), categoryValidator.CategoryID(), categoryValidator.UpdateCategory(), categoryController.UpdateCategory)
}
