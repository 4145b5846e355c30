package quizController

import (
	"encoding/json"
	"lms/database"
	"lms/middleware"
	"lms/models"

	"github.com/gofiber/fiber/v2"
)

// GetAllQuizzes lists quizzes. Public read; drafts stay hidden.
func GetAllQuizzes(c *fiber.Ctx) error {
	db := database.Database.Db.Model(&models.Quiz{}).
		Where("is_deleted = ? AND status <> ?", false, models.QuizStatusDraft)

	if courseID := c.QueryInt("course_id"); courseID > 0 {
		db = db.Where("course_id = ?", courseID)
	}

	var quizzes []models.Quiz
	if err := db.Order("created_at desc").Find(&quizzes).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch quizzes!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quizzes fetched successfully!", quizzes)
}

// GetQuizDetails returns a quiz and its questions without correct indices
func GetQuizDetails(c *fiber.Ctx) error {
	quizID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid quiz id!", nil)
	}

	var quiz models.Quiz
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND status <> ?", quizID, false, models.QuizStatusDraft).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	var questions []models.Question
	database.Database.Db.Where("quiz_id = ? AND is_deleted = ?", quiz.ID, false).
		Order("order_index asc").Find(&questions)

	// Strip correct answers from the public payload
	sanitized := make([]fiber.Map, len(questions))
	for i, q := range questions {
		sanitized[i] = fiber.Map{
			"id":          q.ID,
			"text":        q.Text,
			"options":     q.Options,
			"order_index": q.OrderIndex,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz fetched successfully!", fiber.Map{
		"quiz":      quiz,
		"questions": sanitized,
	})
}

// SubmitQuiz scores a submission and records an immutable attempt.
// Answers are matched to questions by position, not by question id.
func SubmitQuiz(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	quizID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid quiz id!", nil)
	}

	var quiz models.Quiz
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", quizID, false).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	if quiz.Status != models.QuizStatusActive {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Quiz is not open for submissions!", nil)
	}

	reqData, ok := c.Locals("validatedSubmission").(*struct {
		Answers   []int `json:"answers"`
		TimeTaken int   `json:"time_taken"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var questions []models.Question
	if err := database.Database.Db.Where("quiz_id = ? AND is_deleted = ?", quiz.ID, false).
		Order("order_index asc").Find(&questions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch questions!", nil)
	}

	score := 0
	for i, question := range questions {
		if i < len(reqData.Answers) && reqData.Answers[i] == question.CorrectIndex {
			score++
		}
	}

	answersJSON, err := json.Marshal(reqData.Answers)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit quiz!", nil)
	}

	attempt := models.QuizAttempt{
		UserID:    user.ID,
		QuizID:    quiz.ID,
		Answers:   answersJSON,
		Score:     score,
		Total:     len(questions),
		TimeTaken: reqData.TimeTaken,
	}

	if err := database.Database.Db.Create(&attempt).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz submitted successfully!", fiber.Map{
		"attempt": attempt,
		"score":   score,
		"total":   len(questions),
	})
}

// GetLeaderboard ranks each user's best attempt, ties broken by time taken
func GetLeaderboard(c *fiber.Ctx) error {
	quizID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid quiz id!", nil)
	}

	var quiz models.Quiz
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND status <> ?", quizID, false, models.QuizStatusDraft).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	var attempts []models.QuizAttempt
	if err := database.Database.Db.Where("quiz_id = ?", quiz.ID).
		Order("score desc, time_taken asc, created_at asc").Find(&attempts).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch leaderboard!", nil)
	}

	// Keep each user's best attempt only
	seen := make(map[uint]bool)
	var best []models.QuizAttempt
	for _, attempt := range attempts {
		if seen[attempt.UserID] {
			continue
		}
		seen[attempt.UserID] = true
		best = append(best, attempt)
		if len(best) == 10 {
			break
		}
	}

	userIDs := make([]uint, len(best))
	for i, attempt := range best {
		userIDs[i] = attempt.UserID
	}

	var users []models.User
	database.Database.Db.Where("id IN ?", userIDs).Find(&users)

	names := make(map[uint]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Name
	}

	leaderboard := make([]fiber.Map, len(best))
	for i, attempt := range best {
		leaderboard[i] = fiber.Map{
			"rank":       i + 1,
			"user_id":    attempt.UserID,
			"name":       names[attempt.UserID],
			"score":      attempt.Score,
			"total":      attempt.Total,
			"time_taken": attempt.TimeTaken,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Leaderboard fetched successfully!", leaderboard)
}

// GetMyAttempts lists the caller's own attempts
func GetMyAttempts(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db.Where("user_id = ?", userID)
	if quizID := c.QueryInt("quiz_id"); quizID > 0 {
		db = db.Where("quiz_id = ?", quizID)
	}

	var attempts []models.QuizAttempt
	if err := db.Order("created_at desc").Find(&attempts).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch attempts!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Attempts fetched successfully!", attempts)
}
