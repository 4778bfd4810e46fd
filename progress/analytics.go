package progress

import (
	"math"
	"sort"
)

// Quiz attempts below this score count toward weak areas.
const weakScoreThreshold = 70

// At most this many tags are reported as areas for improvement.
const maxWeakAreas = 5

// Summary is the per-student analytics payload.
type Summary struct {
	CoursesEnrolled     int      `json:"coursesEnrolled"`
	AverageScore        *int     `json:"averageScore"`
	AreasForImprovement []string `json:"areasForImprovement"`
}

// StudentSummary ranks the topic tags of quizzes the student scored
// poorly on. Tags are counted across every question of every
// low-scoring quiz, sorted by frequency descending with first-seen
// order as the tie-break, so the result is reproducible.
//
// A student with zero enrollments gets an empty summary, not an error.
func (s *Service) StudentSummary(userID uint) (*Summary, error) {
	enrollments, err := s.store.EnrollmentsByUser(userID)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		CoursesEnrolled:     len(enrollments),
		AreasForImprovement: []string{},
	}
	if len(enrollments) == 0 {
		return summary, nil
	}

	enrollmentIDs := make([]uint, len(enrollments))
	for i, e := range enrollments {
		enrollmentIDs[i] = e.ID
	}

	attempts, err := s.store.QuizAttempts(enrollmentIDs)
	if err != nil {
		return nil, err
	}
	if len(attempts) == 0 {
		return summary, nil
	}

	var totalScore float64
	var lowContentIDs []uint
	for _, a := range attempts {
		totalScore += a.Score
		if a.Score < weakScoreThreshold {
			lowContentIDs = append(lowContentIDs, a.ContentID)
		}
	}

	average := int(math.Round(totalScore / float64(len(attempts))))
	summary.AverageScore = &average

	if len(lowContentIDs) == 0 {
		return summary, nil
	}

	tagLists, err := s.store.QuestionTags(lowContentIDs)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	var firstSeen []string
	for _, tags := range tagLists {
		for _, tag := range tags {
			if counts[tag] == 0 {
				firstSeen = append(firstSeen, tag)
			}
			counts[tag]++
		}
	}

	sort.SliceStable(firstSeen, func(i, j int) bool {
		return counts[firstSeen[i]] > counts[firstSeen[j]]
	})

	if len(firstSeen) > maxWeakAreas {
		firstSeen = firstSeen[:maxWeakAreas]
	}
	summary.AreasForImprovement = firstSeen

	return summary, nil
}
