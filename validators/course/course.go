package courseValidator

import (
	"lms/middleware"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type CreateCourseRequest struct {
	Title        string   `json:"title" validate:"required,min=3"`
	Subtitle     string   `json:"subtitle"`
	Description  string   `json:"description"`
	Price        float64  `json:"price" validate:"gte=0"`
	Level        string   `json:"level"`
	CategoryID   *uint    `json:"category_id"`
	ThumbnailURL string   `json:"thumbnail_url"`
	Objectives   []string `json:"objectives"`
	Requirements []string `json:"requirements"`
}

type UpdateCourseRequest struct {
	Title        *string  `json:"title"`
	Subtitle     *string  `json:"subtitle"`
	Description  *string  `json:"description"`
	Price        *float64 `json:"price"`
	Level        *string  `json:"level"`
	CategoryID   *uint    `json:"category_id"`
	ThumbnailURL *string  `json:"thumbnail_url"`
	Status       *string  `json:"status"`
	Objectives   []string `json:"objectives"`
	Requirements []string `json:"requirements"`
}

type ListRequest struct {
	Page  *int `json:"page"`
	Limit *int `json:"limit"`
}

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCourseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationErrors(err))
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateCourseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Title != nil && len(strings.TrimSpace(*reqData.Title)) < 3 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"title": "Title must be at least 3 characters long!",
			})
		}

		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}

func CourseList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ListRequest)

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		c.Locals("validatedList", reqData)
		return c.Next()
	}
}

// CourseID validates the :id route parameter
func CourseID() fiber.Handler {
	return paramID("id", "courseID", "Invalid Course ID!")
}

// LessonID validates the :lesson_id route parameter
func LessonID() fiber.Handler {
	return paramID("lesson_id", "lessonID", "Invalid Lesson ID!")
}

// SectionID validates the :id route parameter on section routes
func SectionID() fiber.Handler {
	return paramID("id", "sectionID", "Invalid Section ID!")
}

func paramID(param, local, message string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params(param))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, message, nil)
		}

		c.Locals(local, id)
		return c.Next()
	}
}

func validationErrors(err error) map[string]string {
	errors := make(map[string]string)
	if fieldErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range fieldErrors {
			errors[fe.Field()] = "Failed validation on '" + fe.Tag() + "'!"
		}
	}
	return errors
}
