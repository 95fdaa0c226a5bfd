package controllers_test

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownloadCertificateRequiresFullCompletion(t *testing.T) {
	app := setupTestApp(t)

	instructor, _ := createUser(t, "instructor@example.com", "INSTRUCTOR")
	_, studentToken := createUser(t, "student@example.com", "STUDENT")

	course, lessons := seedCourseWithLessons(t, instructor.ID, 3)

	// 2 of 3 lessons completed
	for _, lesson := range lessons[:2] {
		resp, _ := doJSON(t, app, "POST", "/progress/toggle", studentToken, map[string]interface{}{
			"lesson_id": lesson.ID,
			"course_id": course.ID,
		})
		require.Equal(t, 200, resp.StatusCode)
	}

	resp, envelope := doJSON(t, app, "GET", "/certificates/"+itoa(course.ID)+"/download?token="+studentToken, "", nil)
	require.Equal(t, 403, resp.StatusCode)
	assert.Contains(t, envelope["message"], "66%")

	// Last lesson done, certificate unlocks
	respToggle, _ := doJSON(t, app, "POST", "/progress/toggle", studentToken, map[string]interface{}{
		"lesson_id": lessons[2].ID,
		"course_id": course.ID,
	})
	require.Equal(t, 200, respToggle.StatusCode)

	req := httptest.NewRequest("GET", "/certificates/"+itoa(course.ID)+"/download?token="+studentToken, nil)
	pdfResp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, 200, pdfResp.StatusCode)

	assert.Equal(t, "application/pdf", pdfResp.Header.Get("Content-Type"))
	assert.Contains(t, pdfResp.Header.Get("Content-Disposition"), "Certificado_Go_Fundamentals.pdf")

	raw, err := io.ReadAll(pdfResp.Body)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(raw), "%PDF"))

	// Uncompressed streams keep the rendered text assertable
	assert.Contains(t, string(raw), "Test User")
	assert.Contains(t, string(raw), "Go Fundamentals")
	assert.Contains(t, string(raw), "Certificate of Completion")
}

func TestDownloadCertificateEmptyCourse(t *testing.T) {
	app := setupTestApp(t)

	instructor, _ := createUser(t, "instructor@example.com", "INSTRUCTOR")
	_, studentToken := createUser(t, "student@example.com", "STUDENT")

	course, _ := seedCourseWithLessons(t, instructor.ID, 0)

	resp, _ := doJSON(t, app, "GET", "/certificates/"+itoa(course.ID)+"/download?token="+studentToken, "", nil)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestDownloadCertificateUnknownCourse(t *testing.T) {
	app := setupTestApp(t)

	_, studentToken := createUser(t, "student@example.com", "STUDENT")

	resp, _ := doJSON(t, app, "GET", "/certificates/9999/download?token="+studentToken, "", nil)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestDownloadCertificateRejectsMissingToken(t *testing.T) {
	app := setupTestApp(t)

	instructor, _ := createUser(t, "instructor@example.com", "INSTRUCTOR")
	course, _ := seedCourseWithLessons(t, instructor.ID, 1)

	resp, _ := doJSON(t, app, "GET", "/certificates/"+itoa(course.ID)+"/download", "", nil)
	assert.Equal(t, 401, resp.StatusCode)
}
