package noteValidator

import (
	"lms/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CreateNote validator middleware, shared between create and update. On
// update, empty fields mean "leave unchanged".
func CreateNote() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title     string `json:"title"`
			Link      string `json:"link"`
			CourseID  uint   `json:"course_id"`
			ChapterID uint   `json:"chapter_id"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if c.Method() == fiber.MethodPost {
			if strings.TrimSpace(reqData.Title) == "" {
				errors["title"] = "Title is required!"
			}
			if strings.TrimSpace(reqData.Link) == "" {
				errors["link"] = "Link is required!"
			}
		}
		if reqData.Link != "" && !strings.HasPrefix(reqData.Link, "http") {
			errors["link"] = "Link must be a valid URL!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedNote", reqData)
		return c.Next()
	}
}
