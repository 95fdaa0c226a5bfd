package controllers

import (
	"fmt"
	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	courseValidator "lms/validators/course"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CreateSection adds a section to a course. Owner only; the caller assigns
// the order index.
func CreateSection(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	reqData, ok := c.Locals("validatedSection").(*courseValidator.CreateSectionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var course courseModels.Course
	if err := db.Where("id = ?", courseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if course.UserID != user.ID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to edit this course!", nil)
	}

	section := courseModels.Section{
		CourseID:   course.ID,
		Title:      reqData.Title,
		OrderIndex: reqData.OrderIndex,
	}

	if err := db.Create(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create section!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Section created successfully!", section)
}

// AddLesson appends a lesson to a section. The new lesson's order index is
// max(existing)+1 within the section, or 0 for an empty section.
func AddLesson(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	sectionID := c.Locals("sectionID").(int)

	reqData, ok := c.Locals("validatedLesson").(*courseValidator.AddLessonRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var section courseModels.Section
	if err := db.Where("id = ?", sectionID).First(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
	}

	var course courseModels.Course
	if err := db.Where("id = ?", section.CourseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if course.UserID != user.ID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to edit this course!", nil)
	}

	// Append behind the last lesson in the section
	newOrderIndex := 0
	var lastLesson courseModels.Lesson
	if err := db.Where("section_id = ?", section.ID).Order("order_index desc").First(&lastLesson).Error; err == nil {
		newOrderIndex = lastLesson.OrderIndex + 1
	}

	lessonType := reqData.LessonType
	if lessonType == "" {
		lessonType = courseModels.LessonVideo
	}

	lesson := courseModels.Lesson{
		SectionID:       section.ID,
		Title:           reqData.Title,
		LessonType:      lessonType,
		ResourceID:      reqData.ResourceID,
		DurationSeconds: reqData.DurationSeconds,
		IsFreePreview:   reqData.IsFreePreview,
		OrderIndex:      newOrderIndex,
	}

	if err := db.Create(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lesson added successfully!", lesson)
}

// ReorderCourseContent applies a full reorder tree to one course: section
// order indexes, lesson order indexes and lesson section reassignment (moving
// a lesson across sections of the same course). Sections and lessons not
// named in the request are left untouched. Owner or admin only.
func ReorderCourseContent(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	reqData, ok := c.Locals("validatedReorder").(*courseValidator.ReorderRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var course courseModels.Course
	if err := db.Where("id = ?", courseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if course.UserID != user.ID && user.Role != models.RoleAdmin {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to edit this course!", nil)
	}

	tx := db.Begin()

	for _, sectionData := range reqData.Sections {
		var section courseModels.Section
		if err := tx.Where("id = ? AND course_id = ?", sectionData.ID, course.ID).First(&section).Error; err != nil {
			// Sections from other courses are silently skipped
			continue
		}

		section.OrderIndex = sectionData.OrderIndex
		if err := tx.Save(&section).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reorder course content!", nil)
		}

		for _, lessonData := range sectionData.Lessons {
			var lesson courseModels.Lesson
			if err := tx.Where("id = ?", lessonData.ID).First(&lesson).Error; err != nil {
				continue
			}

			// Reassigning section_id moves the lesson into this section
			lesson.SectionID = section.ID
			lesson.OrderIndex = lessonData.OrderIndex
			if err := tx.Save(&lesson).Error; err != nil {
				tx.Rollback()
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reorder course content!", nil)
			}
		}
	}

	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course content reordered successfully!", nil)
}

// PlayLesson resolves a lesson's resource locator for an enrolled student.
// Locally stored videos are resolved to the streaming endpoint so the player
// can seek.
func PlayLesson(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	lessonID := c.Locals("lessonID").(int)

	db := database.Database.Db

	var enrollment courseModels.Enrollment
	if err := db.Where("user_id = ? AND course_id = ?", user.ID, courseID).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You have not purchased this course!", nil)
	}

	var lesson courseModels.Lesson
	if err := db.Where("id = ?", lessonID).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	videoURL := lesson.ResourceID
	if lesson.LessonType == courseModels.LessonVideo && strings.HasPrefix(videoURL, "/media/") {
		filename := strings.TrimPrefix(videoURL, "/media/")
		videoURL = fmt.Sprintf("%s/files/stream/%s", config.AppConfig.PublicURL, filename)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson resolved successfully!", fiber.Map{
		"lesson_id":   lesson.ID,
		"lesson_type": lesson.LessonType,
		"video_url":   videoURL,
	})
}
