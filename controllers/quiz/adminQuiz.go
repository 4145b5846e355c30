package quizController

import (
	"encoding/json"
	"lms/database"
	"lms/middleware"
	"lms/models"
	"time"

	"github.com/gofiber/fiber/v2"
)

func requireAdmin(c *fiber.Ctx) (*models.User, error) {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return nil, middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return nil, middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if user.Role != models.RoleAdmin {
		return nil, middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	return &user, nil
}

// AdminCreateQuiz creates a quiz together with its ordered question list
func AdminCreateQuiz(c *fiber.Ctx) error {
	if _, err := requireAdmin(c); err != nil {
		return err
	}

	reqData, ok := c.Locals("validatedQuiz").(*struct {
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
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	quiz := models.Quiz{
		Title:       reqData.Title,
		Description: reqData.Description,
		CourseID:    reqData.CourseID,
		Status:      models.QuizStatusDraft,
		StartTime:   reqData.StartTime,
		EndTime:     reqData.EndTime,
	}

	if err := database.Database.Db.Create(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create quiz!", nil)
	}

	for i, q := range reqData.Questions {
		optionsJSON, err := json.Marshal(q.Options)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save questions!", nil)
		}

		question := models.Question{
			QuizID:       quiz.ID,
			Text:         q.Text,
			Options:      optionsJSON,
			CorrectIndex: q.CorrectIndex,
			OrderIndex:   i,
		}
		if err := database.Database.Db.Create(&question).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save questions!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Quiz created successfully!", quiz)
}

// AdminUpdateQuiz updates quiz metadata and its publish window
func AdminUpdateQuiz(c *fiber.Ctx) error {
	if _, err := requireAdmin(c); err != nil {
		return err
	}

	quizID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid quiz id!", nil)
	}

	var quiz models.Quiz
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", quizID, false).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	reqData, ok := c.Locals("validatedQuizUpdate").(*struct {
		Title       string     `json:"title"`
		Description string     `json:"description"`
		StartTime   *time.Time `json:"start_time"`
		EndTime     *time.Time `json:"end_time"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Title != "" {
		quiz.Title = reqData.Title
	}
	if reqData.Description != "" {
		quiz.Description = reqData.Description
	}
	if reqData.StartTime != nil {
		quiz.StartTime = reqData.StartTime
	}
	if reqData.EndTime != nil {
		quiz.EndTime = reqData.EndTime
	}

	if err := database.Database.Db.Save(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz updated successfully!", quiz)
}

// AdminPublishQuiz opens a quiz for submissions immediately
func AdminPublishQuiz(c *fiber.Ctx) error {
	if _, err := requireAdmin(c); err != nil {
		return err
	}

	quizID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid quiz id!", nil)
	}

	var quiz models.Quiz
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", quizID, false).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	quiz.Status = models.QuizStatusActive
	if err := database.Database.Db.Save(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to publish quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz published successfully!", quiz)
}

// AdminCloseQuiz closes a quiz for submissions
func AdminCloseQuiz(c *fiber.Ctx) error {
	if _, err := requireAdmin(c); err != nil {
		return err
	}

	quizID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid quiz id!", nil)
	}

	var quiz models.Quiz
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", quizID, false).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	quiz.Status = models.QuizStatusClosed
	if err := database.Database.Db.Save(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to close quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz closed successfully!", quiz)
}

// AdminDeleteQuiz soft deletes a quiz
func AdminDeleteQuiz(c *fiber.Ctx) error {
	if _, err := requireAdmin(c); err != nil {
		return err
	}

	quizID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid quiz id!", nil)
	}

	var quiz models.Quiz
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", quizID, false).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	quiz.IsDeleted = true
	if err := database.Database.Db.Save(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz deleted successfully!", nil)
}

// AdminListAttempts lists all attempts, optionally filtered by quiz
func AdminListAttempts(c *fiber.Ctx) error {
	if _, err := requireAdmin(c); err != nil {
		return err
	}

	db := database.Database.Db.Model(&models.QuizAttempt{})
	if quizID := c.QueryInt("quiz_id"); quizID > 0 {
		db = db.Where("quiz_id = ?", quizID)
	}

	var attempts []models.QuizAttempt
	if err := db.Order("created_at desc").Find(&attempts).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch attempts!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Attempts fetched successfully!", attempts)
}
