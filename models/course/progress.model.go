package course

import (
	"time"

	"gorm.io/gorm"
)

// UserLessonProgress marks a lesson as completed by a user. Existence of the
// row means "completed"; the toggle endpoint deletes it to un-complete.
//
// CourseID is denormalized on purpose: completion is scoped to the course
// context at the time of completion, not re-derived from the lesson's current
// section membership.
type UserLessonProgress struct {
	gorm.Model
	UserID      uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_progress_user_lesson"`
	LessonID    uint      `json:"lesson_id" gorm:"not null;uniqueIndex:idx_progress_user_lesson"`
	CourseID    uint      `json:"course_id" gorm:"index;not null"`
	CompletedAt time.Time `json:"completed_at"`
}
