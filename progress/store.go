package progress

import (
	"errors"
	courseModels "lms/models/course"

	"gorm.io/gorm"
)

// QuizAttempt is one completed, scored quiz row joined against its
// content item.
type QuizAttempt struct {
	ContentID uint
	Score     float64
}

// Store is the persistence surface the progress service needs. It is
// instantiated once at process start and injected, so the service
// never touches a global registry.
type Store interface {
	// Transact runs fn against a store bound to a single transaction.
	Transact(fn func(Store) error) error

	EnrollmentByID(id uint) (*courseModels.Enrollment, error)
	EnrollmentsByUser(userID uint) ([]courseModels.Enrollment, error)

	// ContentLocation resolves a content item to its week and course.
	// Orphaned content (week missing) reports ErrContentNotFound.
	ContentLocation(contentID uint) (weekID, courseID uint, err error)

	// TotalContent counts every content item under the course's weeks.
	TotalContent(courseID uint) (int64, error)

	// CompletedCount counts completed progress rows for an enrollment.
	CompletedCount(enrollmentID uint) (int64, error)

	// ProgressFor returns the progress row for (enrollment, content),
	// or (nil, nil) when none exists yet.
	ProgressFor(enrollmentID, contentID uint) (*courseModels.Progress, error)

	SaveProgress(p *courseModels.Progress) error
	SaveEnrollment(e *courseModels.Enrollment) error

	// QuizAttempts returns completed, scored attempts whose content item
	// is a quiz, in insertion order.
	QuizAttempts(enrollmentIDs []uint) ([]QuizAttempt, error)

	// QuestionTags returns the non-empty tag lists of every question
	// under the given content items, in question insertion order.
	QuestionTags(contentIDs []uint) ([][]string, error)
}

// GormStore implements Store on a GORM connection.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Transact(fn func(Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}

func (s *GormStore) EnrollmentByID(id uint) (*courseModels.Enrollment, error) {
	var enrollment courseModels.Enrollment
	if err := s.db.First(&enrollment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEnrollmentNotFound
		}
		return nil, err
	}
	return &enrollment, nil
}

func (s *GormStore) EnrollmentsByUser(userID uint) ([]courseModels.Enrollment, error) {
	var enrollments []courseModels.Enrollment
	if err := s.db.Where("user_id = ?", userID).Order("id asc").Find(&enrollments).Error; err != nil {
		return nil, err
	}
	return enrollments, nil
}

func (s *GormStore) ContentLocation(contentID uint) (uint, uint, error) {
	var content courseModels.CourseContent
	if err := s.db.First(&content, contentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, 0, ErrContentNotFound
		}
		return 0, 0, err
	}

	var week courseModels.CourseWeek
	if err := s.db.First(&week, content.WeekID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Orphaned content must be rejected before any write.
			return 0, 0, ErrContentNotFound
		}
		return 0, 0, err
	}

	return week.ID, week.CourseID, nil
}

func (s *GormStore) TotalContent(courseID uint) (int64, error) {
	var count int64
	err := s.db.Model(&courseModels.CourseContent{}).
		Joins("JOIN course_weeks ON course_weeks.id = course_contents.week_id AND course_weeks.deleted_at IS NULL").
		Where("course_weeks.course_id = ?", courseID).
		Count(&count).Error
	return count, err
}

func (s *GormStore) CompletedCount(enrollmentID uint) (int64, error) {
	var count int64
	err := s.db.Model(&courseModels.Progress{}).
		Where("enrollment_id = ? AND completed = ?", enrollmentID, true).
		Count(&count).Error
	return count, err
}

func (s *GormStore) ProgressFor(enrollmentID, contentID uint) (*courseModels.Progress, error) {
	var record courseModels.Progress
	err := s.db.Where("enrollment_id = ? AND content_id = ?", enrollmentID, contentID).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (s *GormStore) SaveProgress(p *courseModels.Progress) error {
	return s.db.Save(p).Error
}

func (s *GormStore) SaveEnrollment(e *courseModels.Enrollment) error {
	return s.db.Save(e).Error
}

func (s *GormStore) QuizAttempts(enrollmentIDs []uint) ([]QuizAttempt, error) {
	var attempts []QuizAttempt
	err := s.db.Model(&courseModels.Progress{}).
		Select("progresses.content_id AS content_id, progresses.score AS score").
		Joins("JOIN course_contents ON course_contents.id = progresses.content_id AND course_contents.deleted_at IS NULL").
		Where("progresses.enrollment_id IN ?", enrollmentIDs).
		Where("progresses.completed = ?", true).
		Where("progresses.score IS NOT NULL").
		Where("course_contents.is_quiz = ?", true).
		Order("progresses.id asc").
		Scan(&attempts).Error
	if err != nil {
		return nil, err
	}
	return attempts, nil
}

func (s *GormStore) QuestionTags(contentIDs []uint) ([][]string, error) {
	var questions []courseModels.QuizQuestion
	err := s.db.Where("content_id IN ?", contentIDs).Order("id asc").Find(&questions).Error
	if err != nil {
		return nil, err
	}

	tagLists := make([][]string, 0, len(questions))
	for _, q := range questions {
		if len(q.Tags) == 0 {
			continue
		}
		tagLists = append(tagLists, []string(q.Tags))
	}
	return tagLists, nil
}
