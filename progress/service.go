package progress

import (
	courseModels "lms/models/course"
	"math"
	"time"
)

// Service keeps Enrollment.ProgressPercentage consistent with the set
// of progress rows for that enrollment, and answers student analytics
// queries.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// RecordCompletion marks a content item as completed for an enrollment,
// optionally recording a quiz score, and recomputes the cached progress
// percentage. The upsert and the recomputation run in one transaction
// so a concurrent reader never observes a half-updated percentage.
//
// A retake overwrites the previous score (latest attempt wins); there
// is no way to uncomplete an item.
func (s *Service) RecordCompletion(userID, enrollmentID, contentID uint, score *float64) (*courseModels.Progress, error) {
	var result *courseModels.Progress

	err := s.store.Transact(func(st Store) error {
		enrollment, err := st.EnrollmentByID(enrollmentID)
		if err != nil {
			return err
		}
		if enrollment.UserID != userID {
			return ErrNotEnrollmentOwner
		}

		weekID, courseID, err := st.ContentLocation(contentID)
		if err != nil {
			return err
		}
		if courseID != enrollment.CourseID {
			return ErrCourseMismatch
		}

		record, err := st.ProgressFor(enrollmentID, contentID)
		if err != nil {
			return err
		}
		if record == nil {
			record = &courseModels.Progress{
				EnrollmentID: enrollmentID,
				ContentID:    contentID,
			}
		}

		now := time.Now()
		record.Completed = true
		if score != nil {
			record.Score = score
		}
		record.CompletedAt = &now

		if err := st.SaveProgress(record); err != nil {
			return err
		}

		total, err := st.TotalContent(enrollment.CourseID)
		if err != nil {
			return err
		}
		done, err := st.CompletedCount(enrollmentID)
		if err != nil {
			return err
		}

		enrollment.ProgressPercentage = percentage(done, total)
		enrollment.CurrentWeekID = &weekID
		enrollment.CurrentContentID = &contentID

		if err := st.SaveEnrollment(enrollment); err != nil {
			return err
		}

		result = record
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// percentage rounds half-up on the floating-point ratio. A course with
// zero content items yields 0, never a division by zero.
func percentage(done, total int64) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(done) / float64(total) * 100))
}
