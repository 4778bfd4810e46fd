package course

import "gorm.io/gorm"

// CourseWeek is one section of a course. WeekNumber is the display
// label; OrderIndex controls the sequence, all weeks of a course are
// sorted by it.
type CourseWeek struct {
	gorm.Model
	CourseID   uint   `json:"course_id" gorm:"index;not null"`
	WeekNumber int    `json:"week_number" gorm:"not null"`
	Title      string `json:"title" gorm:"not null"`
	OrderIndex int    `json:"order" gorm:"index;not null"`
}
