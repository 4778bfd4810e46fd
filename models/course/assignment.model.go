package course

import (
	"time"

	"gorm.io/gorm"
)

// SubmissionStatus tracks the lifecycle of an assignment submission.
type SubmissionStatus string

const (
	SubmissionPending   SubmissionStatus = "Pending"
	SubmissionSubmitted SubmissionStatus = "Submitted"
	SubmissionGraded    SubmissionStatus = "Graded"
)

// Assignment belongs to a course
type Assignment struct {
	gorm.Model
	CourseID    uint      `json:"course_id" gorm:"index;not null"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description" gorm:"type:text"`
	DueDate     time.Time `json:"due_date" gorm:"not null"`
	TotalPoints int       `json:"total_points" gorm:"default:100"`
}

// Submission is one student's answer to one assignment. Grade and
// Feedback are set only when the status moves to Graded. ReminderSent
// keeps the due-date scheduler from mailing the same student twice.
type Submission struct {
	gorm.Model
	AssignmentID uint             `json:"assignment_id" gorm:"uniqueIndex:idx_submission_user_assignment;not null"`
	UserID       uint             `json:"user_id" gorm:"uniqueIndex:idx_submission_user_assignment;not null"`
	Status       SubmissionStatus `json:"status" gorm:"size:16;default:'Pending'"`
	Grade        *float64         `json:"grade"`
	Feedback     string           `json:"feedback" gorm:"type:text"`
	SubmittedAt  *time.Time       `json:"submitted_at"`
	ReminderSent bool             `json:"-" gorm:"default:false"`
}
