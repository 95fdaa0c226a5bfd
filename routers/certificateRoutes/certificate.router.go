package certificateRoutes

import (
	controllers "lms/controllers/course"
	"lms/middleware"
	validators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCertificateRoutes sets up the certificate download route. The token
// travels in a query parameter so a plain browser link can trigger the
// download.
func SetupCertificateRoutes(app *fiber.App) {
	certificateGroup := app.Group("/certificates")

	certificateGroup.Get("/:id/download", middleware.JWTQueryMiddleware, validators.CourseID(), controllers.DownloadCertificate)
}
