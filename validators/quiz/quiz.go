package quizValidator

import (
	"lms/middleware"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// CreateQuiz validator middleware. Each question must carry at least two
// options and a correct index pointing at one of them.
func CreateQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string     `json:"title"`
			Description string     `json:"description"`
			CourseID    uint       `json:"course_id"`
			StartTime   *time.Time `json:"start_time"`
			EndTime     *time.Time `json:"end_time"`
			Questions   []struct {
				Text         string   `json:"text"`
				Options      []string `json:"options"`
				CorrectIndex int      `json:"correct_index"`
			} `json:"questions"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}
		if len(reqData.Questions) == 0 {
			errors["questions"] = "At least one question is required!"
		}
		for _, q := range reqData.Questions {
			if strings.TrimSpace(q.Text) == "" {
				errors["questions"] = "Every question needs text!"
				break
			}
			if len(q.Options) < 2 {
				errors["questions"] = "Every question needs at least two options!"
				break
			}
			if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
				errors["questions"] = "Correct index must point at one of the options!"
				break
			}
		}
		if reqData.StartTime != nil && reqData.EndTime != nil && !reqData.EndTime.After(*reqData.StartTime) {
			errors["end_time"] = "End time must be after start time!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuiz", reqData)
		return c.Next()
	}
}

// UpdateQuiz validator middleware
func UpdateQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string     `json:"title"`
			Description string     `json:"description"`
			StartTime   *time.Time `json:"start_time"`
			EndTime     *time.Time `json:"end_time"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Title != "" && len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}
		if reqData.StartTime != nil && reqData.EndTime != nil && !reqData.EndTime.After(*reqData.StartTime) {
			errors["end_time"] = "End time must be after start time!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuizUpdate", reqData)
		return c.Next()
	}
}

// SubmitQuiz validator middleware
func SubmitQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Answers   []int `json:"answers"`
			TimeTaken int   `json:"time_taken"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(reqData.Answers) == 0 {
			errors["answers"] = "Answers are required!"
		}
		if reqData.TimeTaken < 0 {
			errors["time_taken"] = "Time taken must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSubmission", reqData)
		return c.Next()
	}
}
