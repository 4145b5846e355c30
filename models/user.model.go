package models

import "time"

// Role values attached to users and session tokens
const (
	RoleStudent = "STUDENT"
	RoleAdmin   = "ADMIN"
)

type User struct {
	ID           uint       `json:"id" gorm:"primarykey"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	Name         string     `json:"name"`
	Email        string     `json:"email" gorm:"unique;not null"`
	Password     string     `json:"-" gorm:"not null"`
	Role         string     `json:"role" gorm:"default:'STUDENT'"` // STUDENT, ADMIN
	Mobile       string     `json:"mobile" gorm:"default:''"`
	Stream       string     `json:"stream" gorm:"default:''"`
	Year         string     `json:"year" gorm:"default:''"`
	Division     string     `json:"division" gorm:"default:''"`
	Gender       string     `json:"gender" gorm:"default:''"`
	ProfileImage string     `json:"profile_image" gorm:"default:''"`
	IsDeleted    bool       `json:"is_deleted" gorm:"default:false"`
	DeletedAt    *time.Time `json:"deleted_at"`
}
