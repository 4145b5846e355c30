package models

import "gorm.io/gorm"

type SupportTicket struct {
	gorm.Model
	UserID    uint   `json:"user_id" gorm:"index;not null"`
	Subject   string `json:"subject"`
	Message   string `json:"message" gorm:"type:text"`
	Status    string `json:"status" gorm:"default:'OPEN'"` // OPEN, RESOLVED
	Reply     string `json:"reply" gorm:"type:text"`
	IsDeleted bool   `gorm:"default:false"`
}
