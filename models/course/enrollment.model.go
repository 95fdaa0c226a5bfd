package course

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment records a user's purchase of a course. The price is snapshotted
// into AmountPaid at purchase time; later price changes never affect it.
type Enrollment struct {
	gorm.Model
	UserID      uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_enrollment_user_course"`
	CourseID    uint      `json:"course_id" gorm:"not null;uniqueIndex:idx_enrollment_user_course"`
	AmountPaid  float64   `json:"amount_paid" gorm:"not null"`
	Currency    string    `json:"currency" gorm:"default:'USD'"`
	PurchasedAt time.Time `json:"purchased_at"`

	Course Course `json:"course,omitempty" gorm:"foreignKey:CourseID"`
}
