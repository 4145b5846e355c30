package quizController

import (
	"bytes"
	"encoding/json"
	"fmt"
	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	quizValidators "lms/validators/quiz"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func setupQuizTest(t *testing.T) *fiber.App {
	t.Helper()
	config.LoadConfig()
	database.ConnectTestDb()

	app := fiber.New()
	app.Get("/api/quizzes", GetAllQuizzes)
	app.Get("/api/quizzes/:id", GetQuizDetails)
	app.Post("/api/quizzes/:id/submit", middleware.JWTMiddleware, quizValidators.SubmitQuiz(), SubmitQuiz)
	app.Get("/api/quizzes/:id/leaderboard", GetLeaderboard)
	app.Get("/api/attempts", middleware.JWTMiddleware, GetMyAttempts)

	return app
}

func seedQuiz(t *testing.T, status string, correct []int) models.Quiz {
	t.Helper()
	db := database.Database.Db

	course := models.Course{Title: "Go Fundamentals", Description: "Intro course"}
	require.NoError(t, db.Create(&course).Error)

	quiz := models.Quiz{CourseID: course.ID, Title: "Week 1 Quiz", Status: status}
	require.NoError(t, db.Create(&quiz).Error)

	for i, ci := range correct {
		question := models.Question{
			QuizID:       quiz.ID,
			Text:         "Question",
			Options:      datatypes.JSON([]byte(`["a","b","c","d"]`)),
			CorrectIndex: ci,
			OrderIndex:   i,
		}
		require.NoError(t, db.Create(&question).Error)
	}

	return quiz
}

func seedStudent(t *testing.T, name, email string) (models.User, string) {
	t.Helper()
	user := models.User{Name: name, Email: email, Password: "x", Role: models.RoleStudent}
	require.NoError(t, database.Database.Db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Role)
	require.NoError(t, err)
	return user, token
}

func submit(t *testing.T, app *fiber.App, quizID uint, token string, answers []int, timeTaken int) *http.Response {
	t.Helper()
	payload, _ := json.Marshal(fiber.Map{"answers": answers, "time_taken": timeTaken})
	req := httptest.NewRequest("POST", fiberPath("/api/quizzes/%d/submit", quizID), bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: token})

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func fiberPath(format string, id uint) string {
	return fmt.Sprintf(format, id)
}

func TestSubmitQuizScoresByPosition(t *testing.T) {
	app := setupQuizTest(t)
	quiz := seedQuiz(t, models.QuizStatusActive, []int{1, 2, 0})
	_, token := seedStudent(t, "Student One", "s1@example.com")

	// First and third answers correct, second wrong
	resp := submit(t, app, quiz.ID, token, []int{1, 0, 0}, 45)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data struct {
			Score int `json:"score"`
			Total int `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 2, body.Data.Score)
	assert.Equal(t, 3, body.Data.Total)

	var attempt models.QuizAttempt
	require.NoError(t, database.Database.Db.Where("quiz_id = ?", quiz.ID).First(&attempt).Error)
	assert.Equal(t, 2, attempt.Score)
	assert.Equal(t, 3, attempt.Total)
	assert.Equal(t, 45, attempt.TimeTaken)
}

func TestSubmitQuizShortAnswerList(t *testing.T) {
	app := setupQuizTest(t)
	quiz := seedQuiz(t, models.QuizStatusActive, []int{1, 2, 0})
	_, token := seedStudent(t, "Student Two", "s2@example.com")

	// Only the first question answered; unanswered positions score zero
	resp := submit(t, app, quiz.ID, token, []int{1}, 10)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data struct {
			Score int `json:"score"`
			Total int `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 1, body.Data.Score)
	assert.Equal(t, 3, body.Data.Total)
}

func TestSubmitQuizLongAnswerList(t *testing.T) {
	app := setupQuizTest(t)
	quiz := seedQuiz(t, models.QuizStatusActive, []int{1, 2})
	_, token := seedStudent(t, "Student Extra", "extra@example.com")

	// Answers beyond the question list are ignored
	resp := submit(t, app, quiz.ID, token, []int{1, 2, 0, 3, 1}, 25)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data struct {
			Score int `json:"score"`
			Total int `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 2, body.Data.Score)
	assert.Equal(t, 2, body.Data.Total)
}

func TestSubmitQuizNotActive(t *testing.T) {
	app := setupQuizTest(t)
	_, token := seedStudent(t, "Student Three", "s3@example.com")

	draft := seedQuiz(t, models.QuizStatusDraft, []int{0})
	resp := submit(t, app, draft.ID, token, []int{0}, 5)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	closed := seedQuiz(t, models.QuizStatusClosed, []int{0})
	resp = submit(t, app, closed.ID, token, []int{0}, 5)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetQuizDetailsHidesCorrectIndex(t *testing.T) {
	app := setupQuizTest(t)
	quiz := seedQuiz(t, models.QuizStatusActive, []int{2, 3})

	req := httptest.NewRequest("GET", fiberPath("/api/quizzes/%d", quiz.ID), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data struct {
			Questions []map[string]interface{} `json:"questions"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Data.Questions, 2)
	for _, q := range body.Data.Questions {
		assert.NotContains(t, q, "correct_index")
		assert.Contains(t, q, "options")
	}
}

func TestGetAllQuizzesHidesDrafts(t *testing.T) {
	app := setupQuizTest(t)
	seedQuiz(t, models.QuizStatusDraft, []int{0})
	active := seedQuiz(t, models.QuizStatusActive, []int{0})

	req := httptest.NewRequest("GET", "/api/quizzes", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data []models.Quiz `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, active.ID, body.Data[0].ID)
}

func TestLeaderboardHidesDrafts(t *testing.T) {
	app := setupQuizTest(t)
	draft := seedQuiz(t, models.QuizStatusDraft, []int{0})

	req := httptest.NewRequest("GET", fiberPath("/api/quizzes/%d/leaderboard", draft.ID), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestLeaderboardRanksBestAttemptPerUser(t *testing.T) {
	app := setupQuizTest(t)
	quiz := seedQuiz(t, models.QuizStatusActive, []int{0, 1})

	fast, fastToken := seedStudent(t, "Fast Finisher", "fast@example.com")
	slow, slowToken := seedStudent(t, "Slow Improver", "slow@example.com")

	// slow scores 1/2 then retries for 2/2, slower than fast's 2/2
	submit(t, app, quiz.ID, slowToken, []int{0, 0}, 30)
	submit(t, app, quiz.ID, slowToken, []int{0, 1}, 90)
	submit(t, app, quiz.ID, fastToken, []int{0, 1}, 40)

	req := httptest.NewRequest("GET", fiberPath("/api/quizzes/%d/leaderboard", quiz.ID), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data []struct {
			Rank   int    `json:"rank"`
			UserID uint   `json:"user_id"`
			Name   string `json:"name"`
			Score  int    `json:"score"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Data, 2)

	assert.Equal(t, 1, body.Data[0].Rank)
	assert.Equal(t, fast.ID, body.Data[0].UserID)
	assert.Equal(t, "Fast Finisher", body.Data[0].Name)
	assert.Equal(t, 2, body.Data[0].Score)

	assert.Equal(t, slow.ID, body.Data[1].UserID)
	assert.Equal(t, 2, body.Data[1].Score)
}

func TestGetMyAttempts(t *testing.T) {
	app := setupQuizTest(t)
	quiz := seedQuiz(t, models.QuizStatusActive, []int{0})
	_, mine := seedStudent(t, "Mine", "mine@example.com")
	_, other := seedStudent(t, "Other", "other@example.com")

	submit(t, app, quiz.ID, mine, []int{0}, 10)
	submit(t, app, quiz.ID, other, []int{1}, 20)

	req := httptest.NewRequest("GET", "/api/attempts", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: mine})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data []models.QuizAttempt `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, 1, body.Data[0].Score)
}
