package course

import (
	"time"

	"gorm.io/gorm"
)

// Certificate is issued once a student's enrollment reaches 100%
// progress. SerialNumber is a UUID printed on the certificate.
type Certificate struct {
	gorm.Model
	UserID       uint      `json:"user_id" gorm:"index;not null"`
	CourseID     uint      `json:"course_id" gorm:"index;not null"`
	EnrollmentID uint      `json:"enrollment_id" gorm:"uniqueIndex;not null"`
	SerialNumber string    `json:"serial_number" gorm:"unique;not null"`
	IssuedAt     time.Time `json:"issued_at"`
}
