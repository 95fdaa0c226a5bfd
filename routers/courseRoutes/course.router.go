package courseRoutes

import (
	controllers "lms/controllers/course"
	"lms/middleware"
	"lms/models"
	validators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up course, section and lesson routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/courses")

	// Browsing
	courseGroup.Get("/", validators.CourseList(), controllers.GetAllCourses)
	courseGroup.Get("/my-courses", middleware.JWTMiddleware, controllers.GetMyCourses)
	courseGroup.Get("/:id", validators.CourseID(), controllers.GetCourseDetails)

	// Authoring
	courseGroup.Post("/", middleware.JWTMiddleware, middleware.RequireRole(models.RoleInstructor, models.RoleAdmin), validators.CreateCourse(), controllers.CreateCourse)
	courseGroup.Put("/:id", middleware.JWTMiddleware, validators.CourseID(), validators.UpdateCourse(), controllers.UpdateCourse)
	courseGroup.Delete("/:id", middleware.JWTMiddleware, validators.CourseID(), controllers.DeleteCourse)

	// Sections and lessons
	courseGroup.Post("/:id/sections", middleware.JWTMiddleware, validators.CourseID(), validators.CreateSection(), controllers.CreateSection)
	courseGroup.Put("/:id/reorder", middleware.JWTMiddleware, validators.CourseID(), validators.ReorderCourse(), controllers.ReorderCourseContent)
	courseGroup.Get("/:id/lessons/:lesson_id/play", middleware.JWTMiddleware, validators.CourseID(), validators.LessonID(), controllers.PlayLesson)

	sectionGroup := app.Group("/sections")
	sectionGroup.Post("/:id/lessons", middleware.JWTMiddleware, validators.SectionID(), validators.AddLesson(), controllers.AddLesson)
}
