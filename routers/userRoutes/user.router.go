package userRoutes

import (
	userControllers "lms/controllers/userControllers"
	"lms/middleware"
	userValidators "lms/validators/user"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	// Self-service profile
	userGroup := app.Group("/api/users")
	userGroup.Put("/profile", middleware.JWTMiddleware, userValidators.UpdateProfile(), userControllers.UpdateProfile)
	userGroup.Post("/profile/image", middleware.JWTMiddleware, userControllers.UploadProfileImage)

	// Admin user management
	adminGroup := app.Group("/api/admin/users")
	adminGroup.Get("/", middleware.JWTMiddleware, userValidators.UserList(), userControllers.AdminListUsers)
	adminGroup.Get("/:id", middleware.JWTMiddleware, userControllers.AdminGetUser)
	adminGroup.Put("/:id", middleware.JWTMiddleware, userValidators.UpdateUser(), userControllers.AdminUpdateUser)
	adminGroup.Delete("/:id/hard", middleware.JWTMiddleware, userControllers.AdminHardDeleteUser)
	adminGroup.Delete("/:id", middleware.JWTMiddleware, userControllers.AdminSoftDeleteUser)
	adminGroup.Post("/:id/restore", middleware.JWTMiddleware, userControllers.AdminRestoreUser)
}
