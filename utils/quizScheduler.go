package utils

import (
	"lms/database"
	"lms/models"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[QUIZ-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// processQuizWindows handles DRAFT -> ACTIVE and ACTIVE -> CLOSED transitions
// based on each quiz's publish window.
func processQuizWindows() {
	db := database.Database.Db
	now := time.Now()

	// Auto-activate: DRAFT -> ACTIVE when start_time reached
	var toActivate []models.Quiz
	if err := db.Where("status = ? AND is_deleted = ? AND start_time IS NOT NULL AND start_time <= ?",
		models.QuizStatusDraft, false, now).Find(&toActivate).Error; err != nil {
		logScheduler("Error fetching quizzes to activate: " + err.Error())
		return
	}

	for _, quiz := range toActivate {
		quiz.Status = models.QuizStatusActive
		if err := db.Save(&quiz).Error; err != nil {
			logScheduler("Error activating quiz: " + err.Error())
			continue
		}
		logScheduler("Activated quiz: " + quiz.Title)
	}

	// Auto-close: ACTIVE -> CLOSED when end_time passed
	var toClose []models.Quiz
	if err := db.Where("status = ? AND is_deleted = ? AND end_time IS NOT NULL AND end_time <= ?",
		models.QuizStatusActive, false, now).Find(&toClose).Error; err != nil {
		logScheduler("Error fetching quizzes to close: " + err.Error())
		return
	}

	for _, quiz := range toClose {
		quiz.Status = models.QuizStatusClosed
		if err := db.Save(&quiz).Error; err != nil {
			logScheduler("Error closing quiz: " + err.Error())
			continue
		}
		logScheduler("Closed quiz: " + quiz.Title)
	}
}

// StartQuizScheduler runs the quiz window transitions every minute
func StartQuizScheduler() *cron.Cron {
	c := cron.New()

	if _, err := c.AddFunc("@every 1m", processQuizWindows); err != nil {
		log.Fatalf("Failed to register quiz scheduler: %v", err)
	}

	c.Start()
	logScheduler("Quiz scheduler started.")
	return c
}
