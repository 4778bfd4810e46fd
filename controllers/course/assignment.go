package controllers

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	"lms/utils"
	"time"

	"github.com/gofiber/fiber/v2"
)

func GetCourseAssignments(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	if _, err := courseOwner(courseID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var assignments []courseModels.Assignment
	if err := database.Database.Db.Where("course_id = ?", courseID).Order("due_date asc").Find(&assignments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch assignments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assignments fetched successfully!", assignments)
}

func CreateAssignment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedAssignment").(*struct {
		CourseID    uint      `json:"course_id"`
		Title       string    `json:"title"`
		Description string    `json:"description"`
		DueDate     time.Time `json:"due_date"`
		TotalPoints int       `json:"total_points"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	ownerID, err := courseOwner(reqData.CourseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}
	if ownerID != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own this course!", nil)
	}

	totalPoints := reqData.TotalPoints
	if totalPoints <= 0 {
		totalPoints = 100
	}

	assignment := courseModels.Assignment{
		CourseID:    reqData.CourseID,
		Title:       reqData.Title,
		Description: reqData.Description,
		DueDate:     reqData.DueDate,
		TotalPoints: totalPoints,
	}

	if err := database.Database.Db.Create(&assignment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create assignment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Assignment created successfully!", assignment)
}

func GetMySubmissions(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var submissions []courseModels.Submission
	if err := database.Database.Db.Where("user_id = ?", userID).Order("submitted_at desc").Find(&submissions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch submissions!", nil)
	}

	assignmentIDs := make([]uint, len(submissions))
	for i, submission := range submissions {
		assignmentIDs[i] = submission.AssignmentID
	}

	var assignments []courseModels.Assignment
	database.Database.Db.Where("id IN ?", assignmentIDs).Find(&assignments)

	byID := make(map[uint]courseModels.Assignment, len(assignments))
	for _, assignment := range assignments {
		byID[assignment.ID] = assignment
	}

	type SubmissionWithAssignment struct {
		courseModels.Submission
		Assignment courseModels.Assignment `json:"assignment"`
	}

	result := make([]SubmissionWithAssignment, len(submissions))
	for i, submission := range submissions {
		result[i] = SubmissionWithAssignment{
			Submission: submission,
			Assignment: byID[submission.AssignmentID],
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Submissions fetched successfully!", result)
}

func SubmitAssignment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedSubmission").(*struct {
		AssignmentID uint `json:"assignment_id"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var assignment courseModels.Assignment
	if err := database.Database.Db.First(&assignment, reqData.AssignmentID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Assignment not found!", nil)
	}

	now := time.Now()

	// The reminder scheduler may have recorded a Pending placeholder
	// already; submitting upgrades it. Re-submitting is rejected.
	var submission courseModels.Submission
	err := database.Database.Db.Where("assignment_id = ? AND user_id = ?", reqData.AssignmentID, userID).First(&submission).Error
	if err == nil {
		if submission.Status != courseModels.SubmissionPending {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "You have already submitted this assignment!", nil)
		}
		submission.Status = courseModels.SubmissionSubmitted
		submission.SubmittedAt = &now
		if err := database.Database.Db.Save(&submission).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit assignment!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusCreated, true, "Assignment submitted successfully!", submission)
	}

	submission = courseModels.Submission{
		AssignmentID: reqData.AssignmentID,
		UserID:       userID,
		Status:       courseModels.SubmissionSubmitted,
		SubmittedAt:  &now,
	}

	if err := database.Database.Db.Create(&submission).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit assignment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Assignment submitted successfully!", submission)
}

func GradeSubmission(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	submissionID := c.Locals("submissionID").(uint)

	var submission courseModels.Submission
	if err := database.Database.Db.First(&submission, submissionID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Submission not found!", nil)
	}

	var assignment courseModels.Assignment
	if err := database.Database.Db.First(&assignment, submission.AssignmentID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Assignment not found!", nil)
	}

	ownerID, err := courseOwner(assignment.CourseID)
	if err != nil || ownerID != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own the course for this submission!", nil)
	}

	reqData, ok := c.Locals("validatedGrade").(*struct {
		Grade    float64 `json:"grade"`
		Feedback string  `json:"feedback"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	grade := reqData.Grade
	submission.Grade = &grade
	submission.Feedback = reqData.Feedback
	submission.Status = courseModels.SubmissionGraded

	if err := database.Database.Db.Save(&submission).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to grade submission!", nil)
	}

	go func(sub courseModels.Submission, assignmentTitle string, totalPoints int) {
		var student models.User
		if err := database.Database.Db.First(&student, sub.UserID).Error; err != nil {
			return
		}
		utils.SendGradeNotification(student.Email, student.Name, assignmentTitle, *sub.Grade, totalPoints, sub.Feedback)
	}(submission, assignment.Title, assignment.TotalPoints)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Submission graded successfully!", submission)
}
