package resumeValidator

import (
	"lms/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// SaveResume validator middleware
func SaveResume() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title   string         `json:"title"`
			Content datatypes.JSON `json:"content"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if len(reqData.Content) == 0 {
			errors["content"] = "Content is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedResume", reqData)
		return c.Next()
	}
}

// EnhanceResume validator middleware
func EnhanceResume() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Text string `json:"text"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(strings.TrimSpace(reqData.Text)) < 20 {
			errors["text"] = "Resume text must be at least 20 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedEnhance", reqData)
		return c.Next()
	}
}
