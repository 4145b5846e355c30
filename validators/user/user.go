package userValidator

import (
	"lms/middleware"
	"regexp"

	"github.com/gofiber/fiber/v2"
)

var mobileRe = regexp.MustCompile(`^\d{10}$`)

// UserList validator middleware for paginated listings
func UserList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page  *int `json:"page" query:"page"`
			Limit *int `json:"limit" query:"limit"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		errors := make(map[string]string)

		if reqData.Page != nil && *reqData.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}
		if reqData.Limit != nil && (*reqData.Limit < 1 || *reqData.Limit > 100) {
			errors["limit"] = "Limit must be between 1 and 100!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedList", reqData)
		return c.Next()
	}
}

// UpdateUser validator middleware for admin edits
func UpdateUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name     string `json:"name"`
			Mobile   string `json:"mobile"`
			Stream   string `json:"stream"`
			Year     string `json:"year"`
			Division string `json:"division"`
			Gender   string `json:"gender"`
			Role     string `json:"role"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Mobile != "" && !mobileRe.MatchString(reqData.Mobile) {
			errors["mobile"] = "Invalid mobile number!"
		}
		if reqData.Role != "" && reqData.Role != "STUDENT" && reqData.Role != "ADMIN" {
			errors["role"] = "Role must be STUDENT or ADMIN!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUserUpdate", reqData)
		return c.Next()
	}
}

// UpdateProfile validator middleware for self-service edits
func UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name     string `json:"name"`
			Mobile   string `json:"mobile"`
			Stream   string `json:"stream"`
			Year     string `json:"year"`
			Division string `json:"division"`
			Gender   string `json:"gender"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Mobile != "" && !mobileRe.MatchString(reqData.Mobile) {
			errors["mobile"] = "Invalid mobile number!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProfile", reqData)
		return c.Next()
	}
}
