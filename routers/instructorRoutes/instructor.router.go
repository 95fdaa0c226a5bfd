package instructorRoutes

import (
	instructorController "lms/controllers/instructor"
	"lms/middleware"
	"lms/models"
	instructorValidator "lms/validators/instructor"

	"github.com/gofiber/fiber/v2"
)

// SetupInstructorRoutes sets up instructor profile and role transition routes
func SetupInstructorRoutes(app *fiber.App) {
	instructorGroup := app.Group("/instructors")

	instructorGroup.Post("/become-instructor", middleware.JWTMiddleware, instructorController.BecomeInstructor)
	instructorGroup.Get("/me", middleware.JWTMiddleware, middleware.RequireRole(models.RoleInstructor), instructorController.GetMyProfile)
	instructorGroup.Put("/me", middleware.JWTMiddleware, middleware.RequireRole(models.RoleInstructor), instructorValidator.UpdateProfile(), instructorController.UpdateMyProfile)
	instructorGroup.Get("/:user_id", instructorController.GetPublicProfile)
}
