package controllers

import (
	"errors"
	"lms/database"
	"lms/middleware"
	courseModels "lms/models/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetCourseWeeks(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	if _, err := courseOwner(courseID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var weeks []courseModels.CourseWeek
	if err := database.Database.Db.Where("course_id = ?", courseID).Order("order_index asc").Find(&weeks).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course weeks!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course weeks fetched successfully!", weeks)
}

func CreateCourseWeek(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)

	ownerID, err := courseOwner(courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create week!", nil)
	}
	if ownerID != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own this course!", nil)
	}

	reqData, ok := c.Locals("validatedWeek").(*struct {
		WeekNumber int    `json:"week_number"`
		Title      string `json:"title"`
		Order      int    `json:"order"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	week := courseModels.CourseWeek{
		CourseID:   courseID,
		WeekNumber: reqData.WeekNumber,
		Title:      reqData.Title,
		OrderIndex: reqData.Order,
	}

	if err := database.Database.Db.Create(&week).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create week!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Week created successfully!", week)
}
