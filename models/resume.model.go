package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Resume holds one structured resume per user
type Resume struct {
	gorm.Model
	UserID  uint           `json:"user_id" gorm:"uniqueIndex;not null"`
	Title   string         `json:"title"`
	Content datatypes.JSON `json:"content"`
}
