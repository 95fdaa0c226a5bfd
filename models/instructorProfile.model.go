package models

import (
	"time"

	"gorm.io/datatypes"
)

// InstructorProfile is the extended public profile for users with the INSTRUCTOR role.
// Created lazily when a student becomes an instructor or first updates their profile.
type InstructorProfile struct {
	UserID        uint              `json:"user_id" gorm:"primaryKey"`
	Headline      string            `json:"headline"`
	Biography     string            `json:"biography" gorm:"type:text"`
	SocialLinks   datatypes.JSONMap `json:"social_links"` // {"youtube": "...", "linkedin": "..."}
	TotalStudents int               `json:"total_students" gorm:"default:0"`
	TotalReviews  int               `json:"total_reviews" gorm:"default:0"`
	VerifiedAt    *time.Time        `json:"verified_at"`
}
