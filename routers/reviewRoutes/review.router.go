package reviewRoutes

import (
	controllers "lms/controllers/course"
	"lms/middleware"
	validators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupReviewRoutes sets up course review routes
func SetupReviewRoutes(app *fiber.App) {
	reviewGroup := app.Group("/reviews")

	reviewGroup.Post("/", middleware.JWTMiddleware, validators.CreateReview(), controllers.CreateReview)
	reviewGroup.Get("/course/:id", validators.CourseID(), validators.CourseList(), controllers.GetCourseReviews)
	reviewGroup.Put("/:id/reply", middleware.JWTMiddleware, validators.ReviewID(), validators.ReviewReply(), controllers.ReplyToReview)
}
