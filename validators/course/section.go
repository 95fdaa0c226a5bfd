package courseValidator

import (
	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

type CreateSectionRequest struct {
	Title      string `json:"title" validate:"required,min=2"`
	OrderIndex int    `json:"order_index" validate:"gte=0"`
}

type AddLessonRequest struct {
	Title           string `json:"title" validate:"required,min=2"`
	LessonType      string `json:"lesson_type" validate:"omitempty,oneof=video pdf image quiz"`
	ResourceID      string `json:"resource_id"`
	DurationSeconds int    `json:"duration_seconds" validate:"gte=0"`
	IsFreePreview   bool   `json:"is_free_preview"`
}

type ReorderLesson struct {
	ID         uint `json:"id" validate:"required"`
	OrderIndex int  `json:"order_index" validate:"gte=0"`
}

type ReorderSection struct {
	ID         uint            `json:"id" validate:"required"`
	OrderIndex int             `json:"order_index" validate:"gte=0"`
	Lessons    []ReorderLesson `json:"lessons" validate:"dive"`
}

type ReorderRequest struct {
	Sections []ReorderSection `json:"sections" validate:"required,min=1,dive"`
}

func CreateSection() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateSectionRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationErrors(err))
		}

		c.Locals("validatedSection", reqData)
		return c.Next()
	}
}

func AddLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(AddLessonRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationErrors(err))
		}

		c.Locals("validatedLesson", reqData)
		return c.Next()
	}
}

func ReorderCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ReorderRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationErrors(err))
		}

		c.Locals("validatedReorder", reqData)
		return c.Next()
	}
}
