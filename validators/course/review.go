package courseValidator

import (
	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

type CreateReviewRequest struct {
	CourseID uint   `json:"course_id" validate:"required"`
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
	Comment  string `json:"comment"`
}

type ReviewReplyRequest struct {
	InstructorReply string `json:"instructor_reply" validate:"required"`
}

func CreateReview() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateReviewRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		// Rating range is rejected here, before any row is written
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationErrors(err))
		}

		c.Locals("validatedReview", reqData)
		return c.Next()
	}
}

func ReviewReply() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ReviewReplyRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationErrors(err))
		}

		c.Locals("validatedReply", reqData)
		return c.Next()
	}
}

// ReviewID validates the :id route parameter on review routes
func ReviewID() fiber.Handler {
	return paramID("id", "reviewID", "Invalid Review ID!")
}
