package userRoutes

import (
	userController "lms/controllers/user"
	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupUserRoutes sets up user profile routes
func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/users")

	userGroup.Get("/me", middleware.JWTMiddleware, userController.Me)
}
