package controllers_test

import (
	"lms/database"
	courseModels "lms/models/course"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrollInCourse(t *testing.T) {
	app := setupTestApp(t)

	instructor, _ := createUser(t, "instructor@example.com", "INSTRUCTOR")
	_, studentToken := createUser(t, "student@example.com", "STUDENT")

	course, _ := seedCourseWithLessons(t, instructor.ID, 1)

	body := map[string]interface{}{"course_id": course.ID}

	// First enrollment succeeds and snapshots the course price
	resp, envelope := doJSON(t, app, "POST", "/enrollments", studentToken, body)
	require.Equal(t, 201, resp.StatusCode)

	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, course.Price, data["amount_paid"])

	// Second enrollment for the same (user, course) conflicts
	resp, _ = doJSON(t, app, "POST", "/enrollments", studentToken, body)
	assert.Equal(t, 409, resp.StatusCode)

	var count int64
	database.Database.Db.Model(&courseModels.Enrollment{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestEnrollUnknownCourse(t *testing.T) {
	app := setupTestApp(t)

	_, studentToken := createUser(t, "student@example.com", "STUDENT")

	resp, _ := doJSON(t, app, "POST", "/enrollments", studentToken, map[string]interface{}{"course_id": 9999})
	assert.Equal(t, 404, resp.StatusCode)
}

func TestEnrollmentPriceSurvivesPriceChange(t *testing.T) {
	app := setupTestApp(t)

	instructor, _ := createUser(t, "instructor@example.com", "INSTRUCTOR")
	student, studentToken := createUser(t, "student@example.com", "STUDENT")

	course, _ := seedCourseWithLessons(t, instructor.ID, 1)

	resp, _ := doJSON(t, app, "POST", "/enrollments", studentToken, map[string]interface{}{"course_id": course.ID})
	require.Equal(t, 201, resp.StatusCode)

	// Raise the course price after the purchase
	require.NoError(t, database.Database.Db.Model(&course).Update("price", 199.99).Error)

	var enrollment courseModels.Enrollment
	require.NoError(t, database.Database.Db.Where("user_id = ? AND course_id = ?", student.ID, course.ID).First(&enrollment).Error)
	assert.Equal(t, 49.99, enrollment.AmountPaid)
}

func TestGetMyEnrollments(t *testing.T) {
	app := setupTestApp(t)

	instructor, _ := createUser(t, "instructor@example.com", "INSTRUCTOR")
	_, studentToken := createUser(t, "student@example.com", "STUDENT")

	course, _ := seedCourseWithLessons(t, instructor.ID, 1)

	resp, _ := doJSON(t, app, "POST", "/enrollments", studentToken, map[string]interface{}{"course_id": course.ID})
	require.Equal(t, 201, resp.StatusCode)

	resp, envelope := doJSON(t, app, "GET", "/enrollments/me", studentToken, nil)
	require.Equal(t, 200, resp.StatusCode)

	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["total"])

	enrollments := data["enrollments"].([]interface{})
	first := enrollments[0].(map[string]interface{})
	courseData := first["course"].(map[string]interface{})
	assert.Equal(t, "Go Fundamentals", courseData["title"])
}
