package course

import "gorm.io/gorm"

// Section groups ordered lessons within a course
type Section struct {
	gorm.Model
	CourseID   uint   `json:"course_id" gorm:"index;not null"`
	Title      string `json:"title" gorm:"not null"`
	OrderIndex int    `json:"order_index" gorm:"not null"`

	Lessons []Lesson `json:"lessons,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}
