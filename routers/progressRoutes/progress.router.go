package progressRoutes

import (
	controllers "lms/controllers/course"
	"lms/middleware"
	validators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupProgressRoutes sets up lesson completion routes
func SetupProgressRoutes(app *fiber.App) {
	progressGroup := app.Group("/progress")

	progressGroup.Post("/toggle", middleware.JWTMiddleware, validators.ToggleProgress(), controllers.ToggleLessonProgress)
	progressGroup.Get("/:id", middleware.JWTMiddleware, validators.CourseID(), controllers.GetCourseProgress)
}
