package courseRoutes

import (
	courseControllers "lms/controllers/course"
	"lms/middleware"
	courseValidators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

func SetupCourseRoutes(app *fiber.App) {
	// Public reads
	courseGroup := app.Group("/api/courses")
	courseGroup.Get("/", courseValidators.CourseList(), courseControllers.GetAllCourses)
	courseGroup.Get("/:id", courseControllers.GetCourseDetails)
	courseGroup.Get("/:id/chapters/:chapter_id/modules", courseControllers.GetChapterModules)

	// Admin writes
	adminGroup := app.Group("/api/admin/courses")
	adminGroup.Post("/", middleware.JWTMiddleware, courseValidators.CreateCourse("validatedCourse", true), courseControllers.AdminCreateCourse)
	adminGroup.Put("/:id", middleware.JWTMiddleware, courseValidators.CreateCourse("validatedCourseUpdate", false), courseControllers.AdminUpdateCourse)
	adminGroup.Delete("/:id", middleware.JWTMiddleware, courseControllers.AdminDeleteCourse)

	// Chapter management
	adminGroup.Post("/:id/chapters", middleware.JWTMiddleware, courseValidators.CreateChapter(), courseControllers.AdminCreateChapter)
	adminGroup.Put("/:course_id/chapters/:chapter_id", middleware.JWTMiddleware, courseValidators.CreateChapter(), courseControllers.AdminUpdateChapter)
	adminGroup.Delete("/:course_id/chapters/:chapter_id", middleware.JWTMiddleware, courseControllers.AdminDeleteChapter)

	// Module management
	adminGroup.Post("/:course_id/chapters/:chapter_id/modules", middleware.JWTMiddleware, courseValidators.CreateModule(), courseControllers.AdminCreateModule)
	adminGroup.Put("/:course_id/chapters/:chapter_id/modules/:module_id", middleware.JWTMiddleware, courseValidators.CreateModule(), courseControllers.AdminUpdateModule)
	adminGroup.Delete("/:course_id/chapters/:chapter_id/modules/:module_id", middleware.JWTMiddleware, courseControllers.AdminDeleteModule)
}
