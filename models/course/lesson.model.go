package course

import "gorm.io/gorm"

// Lesson types
const (
	LessonVideo = "video"
	LessonPDF   = "pdf"
	LessonImage = "image"
	LessonQuiz  = "quiz"
)

// Lesson is a single unit of content within a section
type Lesson struct {
	gorm.Model
	SectionID uint   `json:"section_id" gorm:"index;not null"`
	Title     string `json:"title"`

	LessonType string `json:"lesson_type" gorm:"default:'video'"` // video, pdf, image, quiz

	// Locator for the lesson resource (a /media/... path or an external URL)
	ResourceID string `json:"resource_id"`

	DurationSeconds int  `json:"duration_seconds" gorm:"default:0"`
	IsFreePreview   bool `json:"is_free_preview" gorm:"default:false"`
	OrderIndex      int  `json:"order_index" gorm:"default:0"`
}
