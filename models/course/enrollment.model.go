package course

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment links one student to one course. ProgressPercentage is a
// cached value; it is recomputed and written through on every
// completion event, never derived on read.
type Enrollment struct {
	gorm.Model
	UserID             uint      `json:"user_id" gorm:"uniqueIndex:idx_enrollment_user_course;not null"`
	CourseID           uint      `json:"course_id" gorm:"uniqueIndex:idx_enrollment_user_course;not null"`
	ProgressPercentage int       `json:"progress_percentage" gorm:"default:0"`
	CurrentWeekID      *uint     `json:"current_week_id"`
	CurrentContentID   *uint     `json:"current_content_id"`
	EnrolledAt         time.Time `json:"enrolled_at"`
}

// Progress marks one content item as completed within an enrollment.
// Score is meaningful only for quiz items; a retake overwrites it
// (latest attempt wins).
type Progress struct {
	gorm.Model
	EnrollmentID uint       `json:"enrollment_id" gorm:"uniqueIndex:idx_progress_enrollment_content;not null"`
	ContentID    uint       `json:"content_id" gorm:"uniqueIndex:idx_progress_enrollment_content;not null"`
	Completed    bool       `json:"completed" gorm:"default:false"`
	Score        *float64   `json:"score"`
	CompletedAt  *time.Time `json:"completed_at"`
}
