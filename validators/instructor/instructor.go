package instructorValidator

import (
	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

// UpdateProfileRequest uses pointers so that only fields explicitly supplied
// by the caller are merged into the profile
type UpdateProfileRequest struct {
	Headline    *string           `json:"headline"`
	Biography   *string           `json:"biography"`
	SocialLinks map[string]string `json:"social_links"`
}

func UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateProfileRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		c.Locals("validatedProfile", reqData)
		return c.Next()
	}
}
