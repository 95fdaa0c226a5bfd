package controllers

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	"lms/utils"
	courseValidator "lms/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateCourse creates a new draft course owned by the requesting instructor
func CreateCourse(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CreateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	slug := utils.GenerateSlug(reqData.Title)

	// Check slug uniqueness (backed by a unique index on the column)
	if err := db.Where("slug = ?", slug).First(&courseModels.Course{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "A course with this title already exists!", nil)
	}

	if reqData.CategoryID != nil {
		if err := db.Where("id = ?", *reqData.CategoryID).First(&models.Category{}).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found!", nil)
		}
	}

	course := courseModels.Course{
		UserID:       user.ID,
		CategoryID:   reqData.CategoryID,
		Title:        reqData.Title,
		Subtitle:     reqData.Subtitle,
		Slug:         slug,
		Description:  reqData.Description,
		Price:        reqData.Price,
		Level:        reqData.Level,
		ThumbnailURL: reqData.ThumbnailURL,
		Status:       courseModels.StatusDraft,
	}

	for i, text := range reqData.Objectives {
		course.Objectives = append(course.Objectives, courseModels.CourseObjective{Text: text, DisplayOrder: i})
	}
	for i, text := range reqData.Requirements {
		course.Requirements = append(course.Requirements, courseModels.CourseRequirement{Text: text, DisplayOrder: i})
	}

	if err := db.Create(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// GetAllCourses lists courses with optional pagination
func GetAllCourses(c *fiber.Ctx) error {
	reqData, _ := c.Locals("validatedList").(*courseValidator.ListRequest)

	page, limit := 1, 10
	if reqData != nil {
		if reqData.Page != nil && *reqData.Page > 0 {
			page = *reqData.Page
		}
		if reqData.Limit != nil && *reqData.Limit > 0 {
			limit = *reqData.Limit
		}
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&courseModels.Course{})

	var total int64
	db.Count(&total)

	var courses []courseModels.Course
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// GetMyCourses lists the courses created by the requesting instructor
func GetMyCourses(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	if user.Role != models.RoleInstructor {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Only instructors can view their created courses!", nil)
	}

	var courses []courseModels.Course
	if err := database.Database.Db.Where("user_id = ?", user.ID).Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}

// GetCourseDetails returns a course with its ordered sections, lessons,
// objectives and requirements
func GetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	err := database.Database.Db.
		Preload("Sections", func(db *gorm.DB) *gorm.DB { return db.Order("order_index asc") }).
		Preload("Sections.Lessons", func(db *gorm.DB) *gorm.DB { return db.Order("order_index asc") }).
		Preload("Objectives", func(db *gorm.DB) *gorm.DB { return db.Order("display_order asc") }).
		Preload("Requirements", func(db *gorm.DB) *gorm.DB { return db.Order("display_order asc") }).
		Where("id = ?", courseID).First(&course).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", course)
}

// UpdateCourse updates course fields. Owner or admin only.
func UpdateCourse(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	reqData, ok := c.Locals("validatedCourseUpdate").(*courseValidator.UpdateCourseRequest)
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

	if reqData.Title != nil {
		course.Title = *reqData.Title
	}
	if reqData.Subtitle != nil {
		course.Subtitle = *reqData.Subtitle
	}
	if reqData.Description != nil {
		course.Description = *reqData.Description
	}
	if reqData.Price != nil {
		course.Price = *reqData.Price
	}
	if reqData.Level != nil {
		course.Level = *reqData.Level
	}
	if reqData.CategoryID != nil {
		course.CategoryID = reqData.CategoryID
	}
	if reqData.ThumbnailURL != nil {
		course.ThumbnailURL = *reqData.ThumbnailURL
	}
	if reqData.Status != nil {
		course.Status = *reqData.Status
	}

	tx := db.Begin()

	if err := tx.Save(&course).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	// Replace objectives/requirements wholesale when supplied
	if reqData.Objectives != nil {
		if err := tx.Where("course_id = ?", course.ID).Delete(&courseModels.CourseObjective{}).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
		}
		for i, text := range reqData.Objectives {
			if err := tx.Create(&courseModels.CourseObjective{CourseID: course.ID, Text: text, DisplayOrder: i}).Error; err != nil {
				tx.Rollback()
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
			}
		}
	}
	if reqData.Requirements != nil {
		if err := tx.Where("course_id = ?", course.ID).Delete(&courseModels.CourseRequirement{}).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
		}
		for i, text := range reqData.Requirements {
			if err := tx.Create(&courseModels.CourseRequirement{CourseID: course.ID, Text: text, DisplayOrder: i}).Error; err != nil {
				tx.Rollback()
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
			}
		}
	}

	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// DeleteCourse removes a course and cascades to its sections and lessons.
// Owner or admin only.
func DeleteCourse(c *fiber.Ctx) error {
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

	if course.UserID != user.ID && user.Role != models.RoleAdmin {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to delete this course!", nil)
	}

	tx := db.Begin()

	var sectionIDs []uint
	tx.Model(&courseModels.Section{}).Where("course_id = ?", course.ID).Pluck("id", &sectionIDs)

	if len(sectionIDs) > 0 {
		if err := tx.Where("section_id IN ?", sectionIDs).Delete(&courseModels.Lesson{}).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
		}
	}

	for _, model := range []interface{}{
		&courseModels.Section{},
		&courseModels.CourseObjective{},
		&courseModels.CourseRequirement{},
		&courseModels.Review{},
	} {
		if err := tx.Where("course_id = ?", course.ID).Delete(model).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
		}
	}

	if err := tx.Delete(&course).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}
