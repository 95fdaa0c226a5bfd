package course

import "gorm.io/gorm"

// Review is a student's rating of a course. One review per (user, course),
// with a single instructor reply slot.
type Review struct {
	gorm.Model
	CourseID        uint   `json:"course_id" gorm:"not null;uniqueIndex:idx_review_course_user"`
	UserID          uint   `json:"user_id" gorm:"not null;uniqueIndex:idx_review_course_user"`
	Rating          int    `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"` // 1-5 rating
	Comment         string `json:"comment" gorm:"type:text"`
	InstructorReply string `json:"instructor_reply" gorm:"type:text"`
}
