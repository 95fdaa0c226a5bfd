package controllers

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	courseValidator "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// CreateReview creates a review for a course. Only enrolled students can
// review, and only once per course.
func CreateReview(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedReview").(*courseValidator.CreateReviewRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var course courseModels.Course
	if err := db.Where("id = ?", reqData.CourseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	// Must be enrolled before reviewing
	var enrollment courseModels.Enrollment
	if err := db.Where("user_id = ? AND course_id = ?", user.ID, course.ID).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You must purchase the course before leaving a review!", nil)
	}

	// One review per (user, course)
	var existingReview courseModels.Review
	if err := db.Where("user_id = ? AND course_id = ?", user.ID, course.ID).First(&existingReview).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You have already reviewed this course!", nil)
	}

	review := courseModels.Review{
		CourseID: course.ID,
		UserID:   user.ID,
		Rating:   reqData.Rating,
		Comment:  reqData.Comment,
	}

	if err := db.Create(&review).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You have already reviewed this course!", nil)
	}

	type ReviewWithUser struct {
		courseModels.Review
		UserName string `json:"user_name"`
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Review created successfully!", ReviewWithUser{
		Review:   review,
		UserName: user.FullName,
	})
}

// GetCourseReviews lists a course's reviews with reviewer names (public)
func GetCourseReviews(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	reqData, _ := c.Locals("validatedList").(*courseValidator.ListRequest)

	page, limit := 1, 20
	if reqData != nil {
		if reqData.Page != nil && *reqData.Page > 0 {
			page = *reqData.Page
		}
		if reqData.Limit != nil && *reqData.Limit > 0 {
			limit = *reqData.Limit
		}
	}
	offset := (page - 1) * limit

	db := database.Database.Db

	var reviews []courseModels.Review
	if err := db.Where("course_id = ?", courseID).Offset(offset).Limit(limit).Order("created_at desc").Find(&reviews).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch reviews!", nil)
	}

	type ReviewWithUser struct {
		courseModels.Review
		UserName string `json:"user_name"`
	}

	result := make([]ReviewWithUser, len(reviews))
	for i, review := range reviews {
		userName := "User"
		var reviewer models.User
		if err := db.Where("id = ?", review.UserID).First(&reviewer).Error; err == nil {
			userName = reviewer.FullName
		}
		result[i] = ReviewWithUser{Review: review, UserName: userName}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviews fetched successfully!", result)
}

// ReplyToReview sets the single instructor reply slot on a review. Course
// owner or admin only.
func ReplyToReview(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reviewID := c.Locals("reviewID").(int)

	reqData, ok := c.Locals("validatedReply").(*courseValidator.ReviewReplyRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var review courseModels.Review
	if err := db.Where("id = ?", reviewID).First(&review).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Review not found!", nil)
	}

	var course courseModels.Course
	if err := db.Where("id = ?", review.CourseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if course.UserID != user.ID && user.Role != models.RoleAdmin {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Only the course instructor can reply!", nil)
	}

	review.InstructorReply = reqData.InstructorReply
	if err := db.Save(&review).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save reply!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reply saved successfully!", review)
}
