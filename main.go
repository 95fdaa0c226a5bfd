package main

import (
	"lms/config"
	"lms/database"
	authRoutes "lms/routers/authRoutes"
	categoryRoutes "lms/routers/categoryRoutes"
	certificateRoutes "lms/routers/certificateRoutes"
	courseRoutes "lms/routers/courseRoutes"
	enrollmentRoutes "lms/routers/enrollmentRoutes"
	instructorRoutes "lms/routers/instructorRoutes"
	mediaRoutes "lms/routers/mediaRoutes"
	progressRoutes "lms/routers/progressRoutes"
	reviewRoutes "lms/routers/reviewRoutes"
	userRoutes "lms/routers/userRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"log"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve uploaded files (thumbnails, lesson PDFs, videos) directly
	app.Static("/media", config.AppConfig.UploadDir)

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	categoryRoutes.SetupCategoryRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	enrollmentRoutes.SetupEnrollmentRoutes(app)
	progressRoutes.SetupProgressRoutes(app)
	reviewRoutes.SetupReviewRoutes(app)
	instructorRoutes.SetupInstructorRoutes(app)
	mediaRoutes.SetupMediaRoutes(app)
	certificateRoutes.SetupCertificateRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
