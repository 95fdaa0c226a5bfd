package controllers_test

import (
	"lms/database"
	courseModels "lms/models/course"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCourseGeneratesSlug(t *testing.T) {
	app := setupTestApp(t)

	_, instructorToken := createUser(t, "instructor@example.com", "INSTRUCTOR")

	body := map[string]interface{}{
		"title":      "Advanced Go: Concurrency & Channels!",
		"price":      79.99,
		"objectives": []string{"Understand goroutines", "Master channels"},
	}

	resp, envelope := doJSON(t, app, "POST", "/courses", instructorToken, body)
	require.Equal(t, 201, resp.StatusCode)

	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, "advanced-go-concurrency-channels", data["slug"])
	assert.Equal(t, "DRAFT", data["status"])

	objectives := data["objectives"].([]interface{})
	require.Len(t, objectives, 2)
	assert.Equal(t, float64(0), objectives[0].(map[string]interface{})["display_order"])

	// Same title collides on the slug
	resp, _ = doJSON(t, app, "POST", "/courses", instructorToken, body)
	assert.Equal(t, 409, resp.StatusCode)
}

func TestCreateCourseRequiresInstructorRole(t *testing.T) {
	app := setupTestApp(t)

	_, studentToken := createUser(t, "student@example.com", "STUDENT")

	resp, _ := doJSON(t, app, "POST", "/courses", studentToken, map[string]interface{}{
		"title": "Sneaky Course",
	})
	assert.Equal(t, 403, resp.StatusCode)
}

func TestAddLessonAppendsOrderIndex(t *testing.T) {
	app := setupTestApp(t)

	instructor, instructorToken := createUser(t, "instructor@example.com", "INSTRUCTOR")

	course, _ := seedCourseWithLessons(t, instructor.ID, 0)

	resp, envelope := doJSON(t, app, "POST", "/courses/"+itoa(course.ID)+"/sections", instructorToken, map[string]interface{}{
		"title":       "Advanced Topics",
		"order_index": 1,
	})
	require.Equal(t, 201, resp.StatusCode)
	sectionID := itoa(uint(envelope["data"].(map[string]interface{})["ID"].(float64)))

	// First lesson lands at index 0, the next ones append behind it
	for want := 0; want < 3; want++ {
		resp, envelope = doJSON(t, app, "POST", "/sections/"+sectionID+"/lessons", instructorToken, map[string]interface{}{
			"title": "Lesson",
		})
		require.Equal(t, 201, resp.StatusCode)

		data := envelope["data"].(map[string]interface{})
		assert.Equal(t, float64(want), data["order_index"])
		assert.Equal(t, "video", data["lesson_type"])
	}
}

func TestAddLessonOwnerOnly(t *testing.T) {
	app := setupTestApp(t)

	instructor, _ := createUser(t, "instructor@example.com", "INSTRUCTOR")
	_, otherToken := createUser(t, "other@example.com", "INSTRUCTOR")

	_, lessons := seedCourseWithLessons(t, instructor.ID, 1)

	var section courseModels.Section
	require.NoError(t, database.Database.Db.First(&section, lessons[0].SectionID).Error)

	resp, _ := doJSON(t, app, "POST", "/sections/"+itoa(section.ID)+"/lessons", otherToken, map[string]interface{}{
		"title": "Intruder Lesson",
	})
	assert.Equal(t, 403, resp.StatusCode)
}

func TestReorderMovesLessonAcrossSections(t *testing.T) {
	app := setupTestApp(t)

	instructor, instructorToken := createUser(t, "instructor@example.com", "INSTRUCTOR")

	course, lessons := seedCourseWithLessons(t, instructor.ID, 2)
	db := database.Database.Db

	secondSection := courseModels.Section{CourseID: course.ID, Title: "Deep Dive", OrderIndex: 1}
	require.NoError(t, db.Create(&secondSection).Error)

	body := map[string]interface{}{
		"sections": []map[string]interface{}{
			{
				"id":          lessons[0].SectionID,
				"order_index": 1,
				"lessons": []map[string]interface{}{
					{"id": lessons[0].ID, "order_index": 0},
				},
			},
			{
				"id":          secondSection.ID,
				"order_index": 0,
				"lessons": []map[string]interface{}{
					{"id": lessons[1].ID, "order_index": 0},
				},
			},
		},
	}

	resp, _ := doJSON(t, app, "PUT", "/courses/"+itoa(course.ID)+"/reorder", instructorToken, body)
	require.Equal(t, 200, resp.StatusCode)

	var moved courseModels.Lesson
	require.NoError(t, db.First(&moved, lessons[1].ID).Error)
	assert.Equal(t, secondSection.ID, moved.SectionID)
	assert.Equal(t, 0, moved.OrderIndex)

	var firstSection courseModels.Section
	require.NoError(t, db.First(&firstSection, lessons[0].SectionID).Error)
	assert.Equal(t, 1, firstSection.OrderIndex)
}

func TestReorderForeignSectionSkipped(t *testing.T) {
	app := setupTestApp(t)

	instructor, instructorToken := createUser(t, "instructor@example.com", "INSTRUCTOR")
	other, _ := createUser(t, "other@example.com", "INSTRUCTOR")

	course, _ := seedCourseWithLessons(t, instructor.ID, 1)
	db := database.Database.Db

	otherCourse := courseModels.Course{UserID: other.ID, Title: "Other Course", Slug: "other-course"}
	require.NoError(t, db.Create(&otherCourse).Error)
	foreignSection := courseModels.Section{CourseID: otherCourse.ID, Title: "Foreign", OrderIndex: 0}
	require.NoError(t, db.Create(&foreignSection).Error)

	resp, _ := doJSON(t, app, "PUT", "/courses/"+itoa(course.ID)+"/reorder", instructorToken, map[string]interface{}{
		"sections": []map[string]interface{}{
			{"id": foreignSection.ID, "order_index": 5},
		},
	})
	require.Equal(t, 200, resp.StatusCode)

	var untouched courseModels.Section
	require.NoError(t, db.First(&untouched, foreignSection.ID).Error)
	assert.Equal(t, 0, untouched.OrderIndex)
}

func TestReorderPermissions(t *testing.T) {
	app := setupTestApp(t)

	instructor, _ := createUser(t, "instructor@example.com", "INSTRUCTOR")
	_, otherToken := createUser(t, "other@example.com", "INSTRUCTOR")
	_, adminToken := createUser(t, "admin@example.com", "ADMIN")

	course, lessons := seedCourseWithLessons(t, instructor.ID, 1)

	body := map[string]interface{}{
		"sections": []map[string]interface{}{
			{"id": lessons[0].SectionID, "order_index": 2},
		},
	}

	resp, _ := doJSON(t, app, "PUT", "/courses/"+itoa(course.ID)+"/reorder", otherToken, body)
	assert.Equal(t, 403, resp.StatusCode)

	resp, _ = doJSON(t, app, "PUT", "/courses/"+itoa(course.ID)+"/reorder", adminToken, body)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestUpdateCourseMergesOnlySuppliedFields(t *testing.T) {
	app := setupTestApp(t)

	instructor, instructorToken := createUser(t, "instructor@example.com", "INSTRUCTOR")

	course, _ := seedCourseWithLessons(t, instructor.ID, 1)

	resp, envelope := doJSON(t, app, "PUT", "/courses/"+itoa(course.ID), instructorToken, map[string]interface{}{
		"price": 29.99,
	})
	require.Equal(t, 200, resp.StatusCode)

	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, 29.99, data["price"])
	assert.Equal(t, "Go Fundamentals", data["title"])
}

func TestDeleteCourseCascades(t *testing.T) {
	app := setupTestApp(t)

	instructor, instructorToken := createUser(t, "instructor@example.com", "INSTRUCTOR")

	course, _ := seedCourseWithLessons(t, instructor.ID, 2)

	resp, _ := doJSON(t, app, "DELETE", "/courses/"+itoa(course.ID), instructorToken, nil)
	require.Equal(t, 200, resp.StatusCode)

	db := database.Database.Db

	var courseCount, sectionCount, lessonCount int64
	db.Model(&courseModels.Course{}).Count(&courseCount)
	db.Model(&courseModels.Section{}).Count(&sectionCount)
	db.Model(&courseModels.Lesson{}).Count(&lessonCount)
	assert.Zero(t, courseCount)
	assert.Zero(t, sectionCount)
	assert.Zero(t, lessonCount)
}

func TestGetCourseDetailsOrdersContent(t *testing.T) {
	app := setupTestApp(t)

	instructor, _ := createUser(t, "instructor@example.com", "INSTRUCTOR")

	course, _ := seedCourseWithLessons(t, instructor.ID, 2)
	db := database.Database.Db

	earlier := courseModels.Section{CourseID: course.ID, Title: "Introduction", OrderIndex: -1}
	require.NoError(t, db.Create(&earlier).Error)

	resp, envelope := doJSON(t, app, "GET", "/courses/"+itoa(course.ID), "", nil)
	require.Equal(t, 200, resp.StatusCode)

	data := envelope["data"].(map[string]interface{})
	sections := data["sections"].([]interface{})
	require.Len(t, sections, 2)
	assert.Equal(t, "Introduction", sections[0].(map[string]interface{})["title"])
	assert.Equal(t, "Basics", sections[1].(map[string]interface{})["title"])
}
