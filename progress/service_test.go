package progress

import (
	"fmt"
	"lms/database"
	"lms/models"
	courseModels "lms/models/course"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func newTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewService(NewGormStore(db)), db
}

func createStudent(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()
	user := models.User{Name: "Test Student", Email: email, Password: "x", Role: models.RoleStudent}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createCourseWithWeek(t *testing.T, db *gorm.DB) (courseModels.Course, courseModels.CourseWeek) {
	t.Helper()
	crs := courseModels.Course{Title: "Web Fundamentals", Description: "d", InstructorID: 1}
	require.NoError(t, db.Create(&crs).Error)
	week := courseModels.CourseWeek{CourseID: crs.ID, WeekNumber: 1, Title: "Week 1", OrderIndex: 1}
	require.NoError(t, db.Create(&week).Error)
	return crs, week
}

func addContent(t *testing.T, db *gorm.DB, weekID uint, contentType courseModels.ContentType, order int) courseModels.CourseContent {
	t.Helper()
	content := courseModels.CourseContent{
		WeekID:      weekID,
		Title:       fmt.Sprintf("Item %d", order),
		ContentType: contentType,
		OrderIndex:  order,
		IsQuiz:      contentType == courseModels.ContentQuiz,
	}
	if contentType == courseModels.ContentText {
		content.Body = "some text"
	}
	require.NoError(t, db.Create(&content).Error)
	return content
}

func enrollStudent(t *testing.T, db *gorm.DB, userID, courseID uint) courseModels.Enrollment {
	t.Helper()
	enrollment := courseModels.Enrollment{UserID: userID, CourseID: courseID}
	require.NoError(t, db.Create(&enrollment).Error)
	return enrollment
}

func addQuestion(t *testing.T, db *gorm.DB, contentID uint, tags ...string) courseModels.QuizQuestion {
	t.Helper()
	q := courseModels.QuizQuestion{
		ContentID:     contentID,
		QuestionText:  "pick one",
		Options:       []string{"a", "b"},
		CorrectAnswer: 0,
		Points:        10,
		Tags:          tags,
	}
	require.NoError(t, db.Create(&q).Error)
	return q
}

func floatPtr(v float64) *float64 { return &v }

func TestPercentage(t *testing.T) {
	tests := []struct {
		name  string
		done  int64
		total int64
		want  int
	}{
		{name: "zero content course", done: 0, total: 0, want: 0},
		{name: "nothing done", done: 0, total: 4, want: 0},
		{name: "three quarters", done: 3, total: 4, want: 75},
		{name: "all done", done: 4, total: 4, want: 100},
		{name: "one third rounds down", done: 1, total: 3, want: 33},
		{name: "two thirds rounds up", done: 2, total: 3, want: 67},
		{name: "half rounds up", done: 1, total: 8, want: 13},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := percentage(tt.done, tt.total); got != tt.want {
				t.Errorf("percentage(%d, %d) = %d, want %d", tt.done, tt.total, got, tt.want)
			}
		})
	}
}

func TestRecordCompletionRecomputesProgress(t *testing.T) {
	svc, db := newTestService(t)

	student := createStudent(t, db, "student@example.com")
	crs, week := createCourseWithWeek(t, db)
	texts := []courseModels.CourseContent{
		addContent(t, db, week.ID, courseModels.ContentText, 1),
		addContent(t, db, week.ID, courseModels.ContentText, 2),
		addContent(t, db, week.ID, courseModels.ContentText, 3),
	}
	quiz := addContent(t, db, week.ID, courseModels.ContentQuiz, 4)
	addQuestion(t, db, quiz.ID, "css", "selectors")

	enrollment := enrollStudent(t, db, student.ID, crs.ID)

	for _, item := range texts {
		record, err := svc.RecordCompletion(student.ID, enrollment.ID, item.ID, nil)
		require.NoError(t, err)
		assert.True(t, record.Completed)
		assert.Nil(t, record.Score)
	}

	var updated courseModels.Enrollment
	require.NoError(t, db.First(&updated, enrollment.ID).Error)
	assert.Equal(t, 75, updated.ProgressPercentage)

	record, err := svc.RecordCompletion(student.ID, enrollment.ID, quiz.ID, floatPtr(40))
	require.NoError(t, err)
	require.NotNil(t, record.Score)
	assert.Equal(t, 40.0, *record.Score)

	require.NoError(t, db.First(&updated, enrollment.ID).Error)
	assert.Equal(t, 100, updated.ProgressPercentage)
	require.NotNil(t, updated.CurrentWeekID)
	require.NotNil(t, updated.CurrentContentID)
	assert.Equal(t, week.ID, *updated.CurrentWeekID)
	assert.Equal(t, quiz.ID, *updated.CurrentContentID)

	summary, err := svc.StudentSummary(student.ID)
	require.NoError(t, err)
	assert.Contains(t, summary.AreasForImprovement, "css")
	assert.Contains(t, summary.AreasForImprovement, "selectors")
}

func TestRecordCompletionLatestScoreWins(t *testing.T) {
	svc, db := newTestService(t)

	student := createStudent(t, db, "retaker@example.com")
	crs, week := createCourseWithWeek(t, db)
	quiz := addContent(t, db, week.ID, courseModels.ContentQuiz, 1)
	addContent(t, db, week.ID, courseModels.ContentText, 2)
	enrollment := enrollStudent(t, db, student.ID, crs.ID)

	_, err := svc.RecordCompletion(student.ID, enrollment.ID, quiz.ID, floatPtr(50))
	require.NoError(t, err)
	record, err := svc.RecordCompletion(student.ID, enrollment.ID, quiz.ID, floatPtr(90))
	require.NoError(t, err)
	require.NotNil(t, record.Score)
	assert.Equal(t, 90.0, *record.Score)

	// The retake must not double-count the item.
	var count int64
	require.NoError(t, db.Model(&courseModels.Progress{}).Where("enrollment_id = ?", enrollment.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	var updated courseModels.Enrollment
	require.NoError(t, db.First(&updated, enrollment.ID).Error)
	assert.Equal(t, 50, updated.ProgressPercentage)
}

func TestRecordCompletionKeepsScoreWhenRetakenWithoutOne(t *testing.T) {
	svc, db := newTestService(t)

	student := createStudent(t, db, "keeper@example.com")
	crs, week := createCourseWithWeek(t, db)
	quiz := addContent(t, db, week.ID, courseModels.ContentQuiz, 1)
	enrollment := enrollStudent(t, db, student.ID, crs.ID)

	_, err := svc.RecordCompletion(student.ID, enrollment.ID, quiz.ID, floatPtr(80))
	require.NoError(t, err)
	record, err := svc.RecordCompletion(student.ID, enrollment.ID, quiz.ID, nil)
	require.NoError(t, err)
	require.NotNil(t, record.Score)
	assert.Equal(t, 80.0, *record.Score)
}

func TestRecordCompletionIdempotent(t *testing.T) {
	svc, db := newTestService(t)

	student := createStudent(t, db, "repeat@example.com")
	crs, week := createCourseWithWeek(t, db)
	item := addContent(t, db, week.ID, courseModels.ContentText, 1)
	addContent(t, db, week.ID, courseModels.ContentText, 2)
	enrollment := enrollStudent(t, db, student.ID, crs.ID)

	for i := 0; i < 3; i++ {
		_, err := svc.RecordCompletion(student.ID, enrollment.ID, item.ID, nil)
		require.NoError(t, err)
	}

	var updated courseModels.Enrollment
	require.NoError(t, db.First(&updated, enrollment.ID).Error)
	assert.Equal(t, 50, updated.ProgressPercentage)
}

func TestRecordCompletionRejectsCrossCourseContent(t *testing.T) {
	svc, db := newTestService(t)

	student := createStudent(t, db, "crosser@example.com")
	crsA, weekA := createCourseWithWeek(t, db)
	addContent(t, db, weekA.ID, courseModels.ContentText, 1)
	_, weekB := createCourseWithWeek(t, db)
	foreign := addContent(t, db, weekB.ID, courseModels.ContentText, 1)

	enrollment := enrollStudent(t, db, student.ID, crsA.ID)

	_, err := svc.RecordCompletion(student.ID, enrollment.ID, foreign.ID, nil)
	assert.ErrorIs(t, err, ErrCourseMismatch)

	// No state change: no progress row, percentage untouched.
	var count int64
	require.NoError(t, db.Model(&courseModels.Progress{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	var updated courseModels.Enrollment
	require.NoError(t, db.First(&updated, enrollment.ID).Error)
	assert.Equal(t, 0, updated.ProgressPercentage)
	assert.Nil(t, updated.CurrentWeekID)
	assert.Nil(t, updated.CurrentContentID)
}

func TestRecordCompletionRejectsOrphanedContent(t *testing.T) {
	svc, db := newTestService(t)

	student := createStudent(t, db, "orphan@example.com")
	crs, _ := createCourseWithWeek(t, db)
	enrollment := enrollStudent(t, db, student.ID, crs.ID)

	orphan := courseModels.CourseContent{
		WeekID:      9999,
		Title:       "dangling",
		ContentType: courseModels.ContentText,
		OrderIndex:  1,
	}
	require.NoError(t, db.Create(&orphan).Error)

	_, err := svc.RecordCompletion(student.ID, enrollment.ID, orphan.ID, nil)
	assert.ErrorIs(t, err, ErrContentNotFound)
}

func TestRecordCompletionOwnershipAndExistence(t *testing.T) {
	svc, db := newTestService(t)

	student := createStudent(t, db, "owner@example.com")
	other := createStudent(t, db, "other@example.com")
	crs, week := createCourseWithWeek(t, db)
	item := addContent(t, db, week.ID, courseModels.ContentText, 1)
	enrollment := enrollStudent(t, db, student.ID, crs.ID)

	_, err := svc.RecordCompletion(other.ID, enrollment.ID, item.ID, nil)
	assert.ErrorIs(t, err, ErrNotEnrollmentOwner)

	_, err = svc.RecordCompletion(student.ID, 4242, item.ID, nil)
	assert.ErrorIs(t, err, ErrEnrollmentNotFound)

	_, err = svc.RecordCompletion(student.ID, enrollment.ID, 4242, nil)
	assert.ErrorIs(t, err, ErrContentNotFound)
}
