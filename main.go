package main

import (
	"lms/config"
	"lms/database"
	"lms/middleware"
	authRoutes "lms/routers/authRoutes"
	courseRoutes "lms/routers/courseRoutes"
	noteRoutes "lms/routers/noteRoutes"
	quizRoutes "lms/routers/quizRoutes"
	resumeRoutes "lms/routers/resumeRoutes"
	supportRoutes "lms/routers/supportRoutes"
	userRoutes "lms/routers/userRoutes"
	"lms/utils"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
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

	// Coarse auth/role check on every request; handlers re-check role
	app.Use(middleware.AccessGate)

	// Serve the page shell and uploaded files
	app.Static("/", "./public")
	app.Static("/uploads", config.AppConfig.UploadDir)
	app.Get("/auth", func(c *fiber.Ctx) error {
		return c.SendFile("./public/auth.html")
	})
	app.Get("/unauthorized", func(c *fiber.Ctx) error {
		return c.SendFile("./public/unauthorized.html")
	})
	app.Get("/dashboard", func(c *fiber.Ctx) error {
		return c.SendFile("./public/dashboard.html")
	})

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	quizRoutes.SetupQuizRoutes(app)
	noteRoutes.SetupNoteRoutes(app)
	resumeRoutes.SetupResumeRoutes(app)
	supportRoutes.SetupSupportRoutes(app)

	utils.StartQuizScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
