package course

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ContentType classifies a content item within a week.
type ContentType string

const (
	ContentText  ContentType = "text"
	ContentVideo ContentType = "video"
	ContentQuiz  ContentType = "quiz"
)

// Valid reports whether t is one of the known content types.
func (t ContentType) Valid() bool {
	switch t {
	case ContentText, ContentVideo, ContentQuiz:
		return true
	}
	return false
}

// CourseContent is the smallest unit of course material, ordered within
// a week. Body carries text or a video URL; it stays empty for quizzes,
// whose material lives in QuizQuestion rows instead.
type CourseContent struct {
	gorm.Model
	WeekID      uint        `json:"week_id" gorm:"index;not null"`
	Title       string      `json:"title" gorm:"not null"`
	ContentType ContentType `json:"content_type" gorm:"size:16;not null"`
	Body        string      `json:"content" gorm:"type:text"`
	OrderIndex  int         `json:"order" gorm:"index;not null"`
	IsQuiz      bool        `json:"is_quiz" gorm:"default:false"`
}

// QuizQuestion belongs to a quiz content item. CorrectAnswer is a
// zero-based index into Options. Tags feed the weak-area analytics only.
type QuizQuestion struct {
	gorm.Model
	ContentID     uint                         `json:"content_id" gorm:"index;not null"`
	QuestionText  string                       `json:"question_text" gorm:"type:text;not null"`
	Options       datatypes.JSONSlice[string]  `json:"options"`
	CorrectAnswer int                          `json:"correct_answer" gorm:"not null"`
	Points        int                          `json:"points" gorm:"default:10"`
	Tags          datatypes.JSONSlice[string]  `json:"tags"`
}
