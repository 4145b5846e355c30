package resumeRoutes

import (
	resumeControllers "lms/controllers/resume"
	"lms/middleware"
	resumeValidators "lms/validators/resume"

	"github.com/gofiber/fiber/v2"
)

func SetupResumeRoutes(app *fiber.App) {
	resumeGroup := app.Group("/api/resume")

	resumeGroup.Get("/", middleware.JWTMiddleware, resumeControllers.GetResume)
	resumeGroup.Put("/", middleware.JWTMiddleware, resumeValidators.SaveResume(), resumeControllers.SaveResume)
	resumeGroup.Post("/enhance", middleware.JWTMiddleware, resumeValidators.EnhanceResume(), resumeControllers.EnhanceResume)
}
