package controllers

import (
	"errors"
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	"lms/progress"

	"github.com/gofiber/fiber/v2"
)

// GetEnrollmentProgress lists the progress rows of one enrollment. The
// owning student may read them, as may the instructor who owns the
// course; nobody else.
func GetEnrollmentProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	role := c.Locals("role").(models.Role)

	enrollmentID := c.Locals("enrollmentID").(uint)

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.First(&enrollment, enrollmentID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}

	isOwner := enrollment.UserID == userID
	isCourseInstructor := false
	if role == models.RoleInstructor {
		if ownerID, err := courseOwner(enrollment.CourseID); err == nil && ownerID == userID {
			isCourseInstructor = true
		}
	}
	if !isOwner && !isCourseInstructor {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You cannot view this progress!", nil)
	}

	var records []courseModels.Progress
	if err := database.Database.Db.Where("enrollment_id = ?", enrollmentID).Order("id asc").Find(&records).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress records!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress records fetched successfully!", records)
}

// MarkComplete records a completion event and returns the updated
// progress record. The heavy lifting lives in the progress service.
func MarkComplete(svc *progress.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userId").(uint)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
		}

		reqData, ok := c.Locals("validatedCompletion").(*struct {
			EnrollmentID uint     `json:"enrollment_id"`
			ContentID    uint     `json:"content_id"`
			Score        *float64 `json:"score"`
		})
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		record, err := svc.RecordCompletion(userID, reqData.EnrollmentID, reqData.ContentID, reqData.Score)
		if err != nil {
			switch {
			case errors.Is(err, progress.ErrEnrollmentNotFound):
				return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
			case errors.Is(err, progress.ErrNotEnrollmentOwner):
				return middleware.JsonResponse(c, fiber.StatusForbidden, false, "This is not your enrollment!", nil)
			case errors.Is(err, progress.ErrContentNotFound):
				return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Content item not found!", nil)
			case errors.Is(err, progress.ErrCourseMismatch):
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Content item does not belong to the enrolled course!", nil)
			}
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
		}

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress updated successfully!", record)
	}
}

// StudentSummary serves the per-student analytics payload.
func StudentSummary(svc *progress.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userId").(uint)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
		}

		summary, err := svc.StudentSummary(userID)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch analytics summary!", nil)
		}

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Analytics summary fetched successfully!", summary)
	}
}
