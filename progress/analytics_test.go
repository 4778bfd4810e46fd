package progress

import (
	courseModels "lms/models/course"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudentSummaryNoEnrollments(t *testing.T) {
	svc, db := newTestService(t)
	student := createStudent(t, db, "lonely@example.com")

	summary, err := svc.StudentSummary(student.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.CoursesEnrolled)
	assert.Nil(t, summary.AverageScore)
	assert.NotNil(t, summary.AreasForImprovement)
	assert.Empty(t, summary.AreasForImprovement)
}

func TestStudentSummaryAverageAndWeakAreas(t *testing.T) {
	svc, db := newTestService(t)

	student := createStudent(t, db, "quizzer@example.com")
	crs, week := createCourseWithWeek(t, db)
	quizHigh := addContent(t, db, week.ID, courseModels.ContentQuiz, 1)
	quizLow := addContent(t, db, week.ID, courseModels.ContentQuiz, 2)
	addQuestion(t, db, quizHigh.ID, "html")
	addQuestion(t, db, quizLow.ID, "js", "dom")

	enrollment := enrollStudent(t, db, student.ID, crs.ID)

	_, err := svc.RecordCompletion(student.ID, enrollment.ID, quizHigh.ID, floatPtr(90))
	require.NoError(t, err)
	_, err = svc.RecordCompletion(student.ID, enrollment.ID, quizLow.ID, floatPtr(50))
	require.NoError(t, err)

	summary, err := svc.StudentSummary(student.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.CoursesEnrolled)
	require.NotNil(t, summary.AverageScore)
	assert.Equal(t, 70, *summary.AverageScore)
	assert.Contains(t, summary.AreasForImprovement, "js")
	assert.Contains(t, summary.AreasForImprovement, "dom")
	assert.NotContains(t, summary.AreasForImprovement, "html")
}

func TestStudentSummaryTagOrderingIsStable(t *testing.T) {
	svc, db := newTestService(t)

	student := createStudent(t, db, "ordered@example.com")
	crs, week := createCourseWithWeek(t, db)
	quiz := addContent(t, db, week.ID, courseModels.ContentQuiz, 1)

	// "loops" appears twice; "arrays" and "maps" tie at one each and
	// must keep their first-seen order.
	addQuestion(t, db, quiz.ID, "arrays", "loops")
	addQuestion(t, db, quiz.ID, "loops")
	addQuestion(t, db, quiz.ID, "maps")

	enrollment := enrollStudent(t, db, student.ID, crs.ID)
	_, err := svc.RecordCompletion(student.ID, enrollment.ID, quiz.ID, floatPtr(30))
	require.NoError(t, err)

	summary, err := svc.StudentSummary(student.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"loops", "arrays", "maps"}, summary.AreasForImprovement)
}

func TestStudentSummaryCapsWeakAreasAtFive(t *testing.T) {
	svc, db := newTestService(t)

	student := createStudent(t, db, "capped@example.com")
	crs, week := createCourseWithWeek(t, db)
	quiz := addContent(t, db, week.ID, courseModels.ContentQuiz, 1)
	addQuestion(t, db, quiz.ID, "t1", "t2", "t3", "t4", "t5", "t6", "t7")

	enrollment := enrollStudent(t, db, student.ID, crs.ID)
	_, err := svc.RecordCompletion(student.ID, enrollment.ID, quiz.ID, floatPtr(10))
	require.NoError(t, err)

	summary, err := svc.StudentSummary(student.ID)
	require.NoError(t, err)
	assert.Len(t, summary.AreasForImprovement, 5)
}

func TestStudentSummaryExcludesNonQuizAndUnscored(t *testing.T) {
	svc, db := newTestService(t)

	student := createStudent(t, db, "mixed@example.com")
	crs, week := createCourseWithWeek(t, db)
	text := addContent(t, db, week.ID, courseModels.ContentText, 1)
	quiz := addContent(t, db, week.ID, courseModels.ContentQuiz, 2)
	addQuestion(t, db, quiz.ID, "sql")

	enrollment := enrollStudent(t, db, student.ID, crs.ID)

	// A scored non-quiz item and an unscored quiz completion must both
	// stay out of the average.
	_, err := svc.RecordCompletion(student.ID, enrollment.ID, text.ID, floatPtr(10))
	require.NoError(t, err)
	_, err = svc.RecordCompletion(student.ID, enrollment.ID, quiz.ID, nil)
	require.NoError(t, err)

	summary, err := svc.StudentSummary(student.ID)
	require.NoError(t, err)
	assert.Nil(t, summary.AverageScore)
	assert.Empty(t, summary.AreasForImprovement)
}
