package mediaRoutes

import (
	mediaController "lms/controllers/media"
	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupMediaRoutes sets up file upload and streaming routes
func SetupMediaRoutes(app *fiber.App) {
	fileGroup := app.Group("/files")

	fileGroup.Post("/upload", middleware.JWTMiddleware, mediaController.UploadFile)
	fileGroup.Get("/stream/:filename", mediaController.StreamFile)
}
