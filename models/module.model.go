package models

import "gorm.io/gorm"

// Module is a single lesson unit within a chapter
type Module struct {
	gorm.Model
	CourseID    uint   `json:"course_id" gorm:"index;not null"`
	ChapterID   uint   `json:"chapter_id" gorm:"index;not null"`
	Title       string `json:"title"`
	VideoURL    string `json:"video_url"`
	TextContent string `json:"text_content" gorm:"type:text"`
	OrderIndex  int    `json:"order_index" gorm:"default:0"`
	IsDeleted   bool   `gorm:"default:false"`
}
