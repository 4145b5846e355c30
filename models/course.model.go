package models

import "gorm.io/gorm"

// Course is the top level of the content hierarchy
type Course struct {
	gorm.Model
	Title       string `json:"title"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
	IsDeleted   bool   `gorm:"default:false"`
}
