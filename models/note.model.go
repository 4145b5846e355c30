package models

import "gorm.io/gorm"

// Note is a flat link record. Course and chapter titles are denormalized
// so filtered listings never need a join.
type Note struct {
	gorm.Model
	Title        string `json:"title"`
	Link         string `json:"link"`
	CourseID     uint   `json:"course_id" gorm:"index;default:0"`
	ChapterID    uint   `json:"chapter_id" gorm:"index;default:0"`
	CourseTitle  string `json:"course_title"`
	ChapterTitle string `json:"chapter_title"`
	IsDeleted    bool   `gorm:"default:false"`
}
