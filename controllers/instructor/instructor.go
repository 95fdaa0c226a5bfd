package instructorController

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	instructorValidator "lms/validators/instructor"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// BecomeInstructor promotes a student to instructor and creates their empty
// profile. Role changes go through the explicit transition table; admins can
// never become instructors.
func BecomeInstructor(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	if user.Role == models.RoleInstructor {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You are already an instructor!", nil)
	}

	if !models.CanTransitionRole(user.Role, models.RoleInstructor) {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Administrators cannot become instructors!", nil)
	}

	db := database.Database.Db

	tx := db.Begin()

	user.Role = models.RoleInstructor
	if err := tx.Save(user).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update role!", nil)
	}

	profile := models.InstructorProfile{
		UserID:      user.ID,
		SocialLinks: datatypes.JSONMap{},
	}
	if err := tx.Create(&profile).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create instructor profile!", nil)
	}

	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Congratulations! You are now an instructor.", fiber.Map{
		"new_role": user.Role,
	})
}

// GetMyProfile returns the instructor profile of the requesting user
func GetMyProfile(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var profile models.InstructorProfile
	if err := database.Database.Db.Where("user_id = ?", user.ID).First(&profile).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Instructor profile not found. Complete your profile first!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", profile)
}

// UpdateMyProfile upserts the instructor profile, merging only the fields
// the caller supplied
func UpdateMyProfile(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedProfile").(*instructorValidator.UpdateProfileRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var profile models.InstructorProfile
	err := db.Where("user_id = ?", user.ID).First(&profile).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch profile!", nil)
		}
		profile = models.InstructorProfile{
			UserID:      user.ID,
			SocialLinks: datatypes.JSONMap{},
		}
	}

	if reqData.Headline != nil {
		profile.Headline = *reqData.Headline
	}
	if reqData.Biography != nil {
		profile.Biography = *reqData.Biography
	}
	if reqData.SocialLinks != nil {
		links := datatypes.JSONMap{}
		for key, value := range reqData.SocialLinks {
			links[key] = value
		}
		profile.SocialLinks = links
	}

	if err := db.Save(&profile).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save profile!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile saved successfully!", profile)
}

// GetPublicProfile returns the combined public view of an instructor
func GetPublicProfile(c *fiber.Ctx) error {
	userID, err := strconv.Atoi(c.Params("user_id"))
	if err != nil || userID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user ID!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ?", userID).First(&user).Error; err != nil || user.Role != models.RoleInstructor {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Instructor not found!", nil)
	}

	var profile models.InstructorProfile
	db.Where("user_id = ?", user.ID).First(&profile)

	socialLinks := profile.SocialLinks
	if socialLinks == nil {
		socialLinks = datatypes.JSONMap{}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Instructor fetched successfully!", fiber.Map{
		"user_id":        user.ID,
		"full_name":      user.FullName,
		"headline":       profile.Headline,
		"biography":      profile.Biography,
		"social_links":   socialLinks,
		"total_students": profile.TotalStudents,
		"total_reviews":  profile.TotalReviews,
	})
}
