package course

import "gorm.io/gorm"

// DefaultThumbnail is used when a course is created without a thumbnail.
const DefaultThumbnail = "https://placehold.co/600x400/3498db/ffffff?text=Course"

// Course represents a learning course owned by one instructor
type Course struct {
	gorm.Model
	Title        string `json:"title" gorm:"not null"`
	Description  string `json:"description" gorm:"type:text"`
	Thumbnail    string `json:"thumbnail"`
	InstructorID uint   `json:"instructor_id" gorm:"index;not null"`
}
