package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	certificateRoutes "lms/routers/certificateRoutes"
	courseRoutes "lms/routers/courseRoutes"
	enrollmentRoutes "lms/routers/enrollmentRoutes"
	progressRoutes "lms/routers/progressRoutes"
	reviewRoutes "lms/routers/reviewRoutes"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestApp wires a Fiber app with the course-related routes against a
// fresh in-memory database
func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{
		Port:      "3000",
		JWTKey:    "test-secret",
		SaltRound: bcrypt.MinCost,
		UploadDir: t.TempDir(),
		PublicURL: "http://localhost:3000",
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	courseRoutes.SetupCourseRoutes(app)
	enrollmentRoutes.SetupEnrollmentRoutes(app)
	progressRoutes.SetupProgressRoutes(app)
	reviewRoutes.SetupReviewRoutes(app)
	certificateRoutes.SetupCertificateRoutes(app)

	return app
}

// createUser inserts a user with the given role and returns it with a valid
// bearer token
func createUser(t *testing.T, email, role string) (*models.User, string) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		Email:    email,
		Password: string(hash),
		FullName: "Test User",
		Role:     role,
		IsActive: true,
	}
	require.NoError(t, database.Database.Db.Create(&user).Error)

	token, err := middleware.GenerateJWT(&user)
	require.NoError(t, err)

	return &user, token
}

// itoa formats a database id for use in a URL path
func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// doJSON performs a JSON request against the app and decodes the response
// envelope
func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var envelope map[string]interface{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 && json.Valid(raw) {
		require.NoError(t, json.Unmarshal(raw, &envelope))
	}

	return resp, envelope
}
