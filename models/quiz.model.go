package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Quiz lifecycle states, driven by the publish window scheduler
const (
	QuizStatusDraft  = "DRAFT"
	QuizStatusActive = "ACTIVE"
	QuizStatusClosed = "CLOSED"
)

type Quiz struct {
	gorm.Model
	Title       string     `json:"title"`
	Description string     `json:"description"`
	CourseID    uint       `json:"course_id" gorm:"index;default:0"` // optional course link
	Status      string     `json:"status" gorm:"default:'DRAFT'"`    // DRAFT, ACTIVE, CLOSED
	StartTime   *time.Time `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	IsDeleted   bool       `gorm:"default:false"`
}

// Question holds its options as a JSON array; answers are matched by position
type Question struct {
	gorm.Model
	QuizID       uint           `json:"quiz_id" gorm:"index;not null"`
	Text         string         `json:"text"`
	Options      datatypes.JSON `json:"options"`
	CorrectIndex int            `json:"correct_index"`
	OrderIndex   int            `json:"order_index" gorm:"default:0"`
	IsDeleted    bool           `gorm:"default:false"`
}
