package utils

import (
	"lms/config"
	"lms/database"
	"lms/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessQuizWindows(t *testing.T) {
	config.LoadConfig()
	database.ConnectTestDb()
	db := database.Database.Db

	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)

	dueToOpen := models.Quiz{Title: "Opens now", Status: models.QuizStatusDraft, StartTime: &past}
	notYetOpen := models.Quiz{Title: "Opens later", Status: models.QuizStatusDraft, StartTime: &future}
	dueToClose := models.Quiz{Title: "Closes now", Status: models.QuizStatusActive, StartTime: &past, EndTime: &past}
	stillRunning := models.Quiz{Title: "Still running", Status: models.QuizStatusActive, StartTime: &past, EndTime: &future}
	manual := models.Quiz{Title: "Manual quiz", Status: models.QuizStatusDraft}

	for _, quiz := range []*models.Quiz{&dueToOpen, &notYetOpen, &dueToClose, &stillRunning, &manual} {
		require.NoError(t, db.Create(quiz).Error)
	}

	processQuizWindows()

	status := func(id uint) string {
		var quiz models.Quiz
		require.NoError(t, db.First(&quiz, id).Error)
		return quiz.Status
	}

	assert.Equal(t, models.QuizStatusActive, status(dueToOpen.ID))
	assert.Equal(t, models.QuizStatusDraft, status(notYetOpen.ID))
	assert.Equal(t, models.QuizStatusClosed, status(dueToClose.ID))
	assert.Equal(t, models.QuizStatusActive, status(stillRunning.ID))

	// Quizzes without a publish window are never touched
	assert.Equal(t, models.QuizStatusDraft, status(manual.ID))
}

func TestProcessQuizWindowsSkipsDeleted(t *testing.T) {
	config.LoadConfig()
	database.ConnectTestDb()
	db := database.Database.Db

	past := time.Now().Add(-time.Hour)
	deleted := models.Quiz{Title: "Deleted quiz", Status: models.QuizStatusDraft, StartTime: &past, IsDeleted: true}
	require.NoError(t, db.Create(&deleted).Error)

	processQuizWindows()

	var quiz models.Quiz
	require.NoError(t, db.First(&quiz, deleted.ID).Error)
	assert.Equal(t, models.QuizStatusDraft, quiz.Status)
}
