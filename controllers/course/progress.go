package controllers

import (
	"lms/database"
	"lms/middleware"
	courseModels "lms/models/course"
	courseValidator "lms/validators/course"
	"time"

	"github.com/gofiber/fiber/v2"
)

// ToggleLessonProgress flips a lesson's completion state for the requesting
// user. An existing progress row is deleted (un-complete), a missing one is
// created (complete). Repeated calls alternate.
func ToggleLessonProgress(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedToggle").(*courseValidator.ToggleProgressRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var existing courseModels.UserLessonProgress
	if err := db.Where("user_id = ? AND lesson_id = ?", user.ID, reqData.LessonID).First(&existing).Error; err == nil {
		if err := db.Unscoped().Delete(&existing).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson unmarked!", fiber.Map{
			"lesson_id": reqData.LessonID,
			"completed": false,
		})
	}

	progress := courseModels.UserLessonProgress{
		UserID:      user.ID,
		LessonID:    reqData.LessonID,
		CourseID:    reqData.CourseID,
		CompletedAt: time.Now(),
	}

	if err := db.Create(&progress).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson marked as completed!", fiber.Map{
		"lesson_id":    reqData.LessonID,
		"completed":    true,
		"completed_at": progress.CompletedAt,
	})
}

// GetCourseProgress returns the ids of the lessons the user has completed in
// a course, scoped by the denormalized course id on the progress rows
func GetCourseProgress(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	lessonIDs := []uint{}
	if err := database.Database.Db.Model(&courseModels.UserLessonProgress{}).
		Where("user_id = ? AND course_id = ?", user.ID, courseID).
		Pluck("lesson_id", &lessonIDs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", lessonIDs)
}
