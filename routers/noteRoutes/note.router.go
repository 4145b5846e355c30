package noteRoutes

import (
	noteControllers "lms/controllers/notes"
	"lms/middleware"
	noteValidators "lms/validators/note"

	"github.com/gofiber/fiber/v2"
)

func SetupNoteRoutes(app *fiber.App) {
	app.Get("/api/notes", noteControllers.GetNotes)

	adminGroup := app.Group("/api/admin/notes")
	adminGroup.Post("/", middleware.JWTMiddleware, noteValidators.CreateNote(), noteControllers.AdminCreateNote)
	adminGroup.Put("/:id", middleware.JWTMiddleware, noteValidators.CreateNote(), noteControllers.AdminUpdateNote)
	adminGroup.Delete("/:id", middleware.JWTMiddleware, noteControllers.AdminDeleteNote)
}
