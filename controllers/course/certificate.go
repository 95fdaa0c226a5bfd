package controllers

import (
	"fmt"
	"lms/database"
	"lms/middleware"
	courseModels "lms/models/course"
	"lms/utils"
	"time"

	"github.com/gofiber/fiber/v2"
)

// DownloadCertificate renders the completion certificate for a course the
// user has fully completed. Authenticated via query token so the browser can
// download directly.
func DownloadCertificate(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	db := database.Database.Db

	var course courseModels.Course
	if err := db.Where("id = ?", courseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	// Total lessons joined through the course's sections
	var totalLessons int64
	db.Model(&courseModels.Lesson{}).
		Joins("JOIN sections ON sections.id = lessons.section_id").
		Where("sections.course_id = ? AND sections.deleted_at IS NULL", course.ID).
		Count(&totalLessons)

	if totalLessons == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "This course has no content!", nil)
	}

	// Completed lessons are counted by the denormalized course id on the
	// progress rows, not re-derived from current section membership
	var completedLessons int64
	db.Model(&courseModels.UserLessonProgress{}).
		Where("user_id = ? AND course_id = ?", user.ID, course.ID).
		Count(&completedLessons)

	if completedLessons < totalLessons {
		progressPct := int(completedLessons * 100 / totalLessons)
		return middleware.JsonResponse(c, fiber.StatusForbidden, false,
			fmt.Sprintf("You have not completed the course yet. Current progress: %d%%", progressPct), nil)
	}

	pdfBytes, err := utils.RenderCertificatePDF(user.FullName, course.Title, time.Now())
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate certificate!", nil)
	}

	filename := "Certificado_" + utils.SanitizeFilename(course.Title) + ".pdf"

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename=`+filename)
	return c.Send(pdfBytes)
}
