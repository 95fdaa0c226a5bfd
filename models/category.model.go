package models

import "gorm.io/gorm"

// Category represents a course category with support for subcategories
type Category struct {
	gorm.Model
	ParentID *uint  `json:"parent_id" gorm:"index"`
	Name     string `json:"name" gorm:"not null"`
	Slug     string `json:"slug" gorm:"uniqueIndex;not null"`
	IconURL  string `json:"icon_url"`
}
