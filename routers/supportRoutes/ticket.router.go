package supportRoutes

import (
	supportControllers "lms/controllers/support"
	"lms/middleware"
	supportValidators "lms/validators/support"

	"github.com/gofiber/fiber/v2"
)

func SetupSupportRoutes(app *fiber.App) {
	supportGroup := app.Group("/api/support")
	supportGroup.Post("/", middleware.JWTMiddleware, supportValidators.CreateTicket(), supportControllers.CreateTicket)
	supportGroup.Get("/", middleware.JWTMiddleware, supportControllers.GetMyTickets)

	adminGroup := app.Group("/api/admin/support")
	adminGroup.Get("/", middleware.JWTMiddleware, supportControllers.AdminListTickets)
	adminGroup.Put("/:id/reply", middleware.JWTMiddleware, supportValidators.ReplyTicket(), supportControllers.AdminReplyTicket)
}
