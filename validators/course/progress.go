package courseValidator

import (
	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

type ToggleProgressRequest struct {
	LessonID uint `json:"lesson_id" validate:"required"`
	CourseID uint `json:"course_id" validate:"required"`
}

func ToggleProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ToggleProgressRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationErrors(err))
		}

		c.Locals("validatedToggle", reqData)
		return c.Next()
	}
}
