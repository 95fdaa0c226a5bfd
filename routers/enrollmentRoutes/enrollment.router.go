package enrollmentRoutes

import (
	controllers "lms/controllers/course"
	"lms/middleware"
	validators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupEnrollmentRoutes sets up course purchase routes
func SetupEnrollmentRoutes(app *fiber.App) {
	enrollmentGroup := app.Group("/enrollments")

	enrollmentGroup.Post("/", middleware.JWTMiddleware, validators.EnrollCourse(), controllers.EnrollInCourse)
	enrollmentGroup.Get("/me", middleware.JWTMiddleware, controllers.GetMyEnrollments)
}
