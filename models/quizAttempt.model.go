package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// QuizAttempt records one submission. Created once, never mutated afterwards.
type QuizAttempt struct {
	gorm.Model
	UserID    uint           `json:"user_id" gorm:"index;not null"`
	QuizID    uint           `json:"quiz_id" gorm:"index;not null"`
	Answers   datatypes.JSON `json:"answers"` // submitted option indices, in question order
	Score     int            `json:"score"`
	Total     int            `json:"total"`
	TimeTaken int            `json:"time_taken"` // seconds
}
