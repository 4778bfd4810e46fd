package utils

import (
	"lms/database"
	"lms/models"
	courseModels "lms/models/course"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// InitializeReminderScheduler sets up the assignment due-date reminder job
func InitializeReminderScheduler() {
	log.Println("[REMINDER-SCHEDULER] Initializing assignment reminder scheduler...")

	c := cron.New()

	// Run daily at 8 AM to remind students about assignments due within 24h
	c.AddFunc("0 8 * * *", func() {
		log.Println("[REMINDER-SCHEDULER] Running daily assignment reminder check...")
		ProcessDueAssignments()
	})

	c.Start()
	log.Println("[REMINDER-SCHEDULER] Scheduler started - runs daily at 8 AM")
}

// ProcessDueAssignments emails every enrolled student who has not yet
// submitted an assignment due within the next 24 hours. A Pending
// submission row with ReminderSent set marks the student as notified,
// so nobody is mailed twice.
func ProcessDueAssignments() {
	db := database.Database.Db
	now := time.Now()
	dayFromNow := now.Add(24 * time.Hour)

	var dueAssignments []courseModels.Assignment
	if err := db.
		Where("due_date BETWEEN ? AND ?", now, dayFromNow).
		Find(&dueAssignments).Error; err != nil {
		log.Printf("[REMINDER-SCHEDULER] Error fetching due assignments: %v", err)
		return
	}

	log.Printf("[REMINDER-SCHEDULER] Found %d assignments due within 24h", len(dueAssignments))

	for _, assignment := range dueAssignments {
		var enrollments []courseModels.Enrollment
		if err := db.Where("course_id = ?", assignment.CourseID).Find(&enrollments).Error; err != nil {
			log.Printf("[REMINDER-SCHEDULER] Error fetching enrollments for course %d: %v", assignment.CourseID, err)
			continue
		}

		for _, enrollment := range enrollments {
			var submission courseModels.Submission
			err := db.Where("assignment_id = ? AND user_id = ?", assignment.ID, enrollment.UserID).First(&submission).Error

			switch {
			case err == nil && submission.Status != courseModels.SubmissionPending:
				// Already submitted or graded, nothing to remind.
				continue
			case err == nil && submission.ReminderSent:
				continue
			case err != nil:
				// First contact: record the pending submission as the
				// reminder marker.
				submission = courseModels.Submission{
					AssignmentID: assignment.ID,
					UserID:       enrollment.UserID,
					Status:       courseModels.SubmissionPending,
				}
			}

			var student models.User
			if err := db.First(&student, enrollment.UserID).Error; err != nil {
				log.Printf("[REMINDER-SCHEDULER] Error fetching user %d: %v", enrollment.UserID, err)
				continue
			}

			if err := SendAssignmentReminder(student.Email, student.Name, assignment.Title, assignment.DueDate); err != nil {
				continue
			}

			submission.ReminderSent = true
			if err := db.Save(&submission).Error; err != nil {
				log.Printf("[REMINDER-SCHEDULER] Error saving reminder state: %v", err)
				continue
			}
			log.Printf("[REMINDER-SCHEDULER] Sent reminder for assignment %d to %s", assignment.ID, student.Email)
		}
	}
}
