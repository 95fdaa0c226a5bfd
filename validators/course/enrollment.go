package courseValidator

import (
	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

type EnrollRequest struct {
	CourseID uint `json:"course_id" validate:"required"`
}

func EnrollCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(EnrollRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationErrors(err))
		}

		c.Locals("validatedEnrollment", reqData)
		return c.Next()
	}
}
