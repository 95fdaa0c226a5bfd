package controllers_test

import (
	"lms/database"
	courseModels "lms/models/course"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCourseWithLessons(t *testing.T, ownerID uint, lessonCount int) (courseModels.Course, []courseModels.Lesson) {
	t.Helper()

	db := database.Database.Db

	course := courseModels.Course{
		UserID: ownerID,
		Title:  "Go Fundamentals",
		Slug:   "go-fundamentals",
		Price:  49.99,
	}
	require.NoError(t, db.Create(&course).Error)

	section := courseModels.Section{CourseID: course.ID, Title: "Basics", OrderIndex: 0}
	require.NoError(t, db.Create(&section).Error)

	lessons := make([]courseModels.Lesson, lessonCount)
	for i := range lessons {
		lessons[i] = courseModels.Lesson{
			SectionID:  section.ID,
			Title:      "Lesson",
			LessonType: courseModels.LessonVideo,
			OrderIndex: i,
		}
		require.NoError(t, db.Create(&lessons[i]).Error)
	}

	return course, lessons
}

func TestToggleLessonProgressAlternates(t *testing.T) {
	app := setupTestApp(t)

	instructor, _ := createUser(t, "instructor@example.com", "INSTRUCTOR")
	_, studentToken := createUser(t, "student@example.com", "STUDENT")

	course, lessons := seedCourseWithLessons(t, instructor.ID, 1)

	body := map[string]interface{}{
		"lesson_id": lessons[0].ID,
		"course_id": course.ID,
	}

	// Repeated toggles alternate true, false, true
	expected := []bool{true, false, true}
	for _, want := range expected {
		resp, envelope := doJSON(t, app, "POST", "/progress/toggle", studentToken, body)
		require.Equal(t, 200, resp.StatusCode)

		data := envelope["data"].(map[string]interface{})
		assert.Equal(t, want, data["completed"])

		if want {
			assert.NotEmpty(t, data["completed_at"])
		}
	}

	// Exactly one progress row remains after an odd number of toggles
	var count int64
	database.Database.Db.Model(&courseModels.UserLessonProgress{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestGetCourseProgressListsCompletedLessons(t *testing.T) {
	app := setupTestApp(t)

	instructor, _ := createUser(t, "instructor@example.com", "INSTRUCTOR")
	_, studentToken := createUser(t, "student@example.com", "STUDENT")

	course, lessons := seedCourseWithLessons(t, instructor.ID, 3)

	for _, lesson := range lessons[:2] {
		resp, _ := doJSON(t, app, "POST", "/progress/toggle", studentToken, map[string]interface{}{
			"lesson_id": lesson.ID,
			"course_id": course.ID,
		})
		require.Equal(t, 200, resp.StatusCode)
	}

	resp, envelope := doJSON(t, app, "GET", "/progress/"+itoa(course.ID), studentToken, nil)
	require.Equal(t, 200, resp.StatusCode)

	ids := envelope["data"].([]interface{})
	assert.Len(t, ids, 2)

	// Another user's progress stays empty
	_, otherToken := createUser(t, "other@example.com", "STUDENT")
	resp, envelope = doJSON(t, app, "GET", "/progress/"+itoa(course.ID), otherToken, nil)
	require.Equal(t, 200, resp.StatusCode)
	assert.Empty(t, envelope["data"])
}
