package course

import "gorm.io/gorm"

// Course statuses
const (
	StatusDraft     = "DRAFT"
	StatusSubmitted = "SUBMITTED"
	StatusPublished = "PUBLISHED"
	StatusRejected  = "REJECTED"
	StatusArchived  = "ARCHIVED"
)

// Course represents a learning course owned by an instructor
type Course struct {
	gorm.Model
	UserID     uint  `json:"user_id" gorm:"index;not null"` // Owning instructor
	CategoryID *uint `json:"category_id" gorm:"index"`

	Title       string `json:"title" gorm:"not null"`
	Subtitle    string `json:"subtitle"`
	Slug        string `json:"slug" gorm:"uniqueIndex;not null"`
	Description string `json:"description" gorm:"type:text"`

	Price         float64 `json:"price" gorm:"default:0"`
	OriginalPrice float64 `json:"original_price" gorm:"default:0"` // Pre-discount price, shown struck through
	Currency      string  `json:"currency" gorm:"default:'USD'"`

	Language string `json:"language" gorm:"default:'English'"`
	Level    string `json:"level"` // Beginner, Intermediate, Advanced

	ThumbnailURL        string `json:"thumbnail_url"`
	PromotionalVideoURL string `json:"promotional_video_url"`

	Status string `json:"status" gorm:"default:'DRAFT'"` // DRAFT, SUBMITTED, PUBLISHED, REJECTED, ARCHIVED

	Sections     []Section           `json:"sections,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	Objectives   []CourseObjective   `json:"objectives,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	Requirements []CourseRequirement `json:"requirements,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	Reviews      []Review            `json:"reviews,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}

// CourseObjective is one "what you will learn" bullet on the course page
type CourseObjective struct {
	gorm.Model
	CourseID     uint   `json:"course_id" gorm:"index;not null"`
	Text         string `json:"text" gorm:"not null"`
	DisplayOrder int    `json:"display_order" gorm:"default:0"`
}

// CourseRequirement is one prerequisite bullet on the course page
type CourseRequirement struct {
	gorm.Model
	CourseID     uint   `json:"course_id" gorm:"index;not null"`
	Text         string `json:"text" gorm:"not null"`
	DisplayOrder int    `json:"display_order" gorm:"default:0"`
}
