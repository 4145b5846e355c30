package supportValidator

import (
	"lms/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CreateTicket validator middleware
func CreateTicket() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Subject string `json:"subject"`
			Message string `json:"message"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(strings.TrimSpace(reqData.Subject)) < 3 {
			errors["subject"] = "Subject must be at least 3 characters long!"
		}
		if len(strings.TrimSpace(reqData.Message)) < 10 {
			errors["message"] = "Message must be at least 10 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTicket", reqData)
		return c.Next()
	}
}

// ReplyTicket validator middleware
func ReplyTicket() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Reply string `json:"reply"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Reply) == "" {
			errors["reply"] = "Reply is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedReply", reqData)
		return c.Next()
	}
}
