package controllers

import (
	"errors"
	"lms/database"
	"lms/middleware"
	courseModels "lms/models/course"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetWeekContent(c *fiber.Ctx) error {
	weekID := c.Locals("weekID").(uint)

	var week courseModels.CourseWeek
	if err := database.Database.Db.First(&week, weekID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Week not found!", nil)
	}

	var contents []courseModels.CourseContent
	if err := database.Database.Db.Where("week_id = ?", weekID).Order("order_index asc").Find(&contents).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch week content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Week content fetched successfully!", contents)
}

func CreateContent(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	weekID := c.Locals("weekID").(uint)

	var week courseModels.CourseWeek
	if err := database.Database.Db.First(&week, weekID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Week not found!", nil)
	}

	ownerID, err := courseOwner(week.CourseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create content!", nil)
	}
	if ownerID != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own the course this week belongs to!", nil)
	}

	reqData, ok := c.Locals("validatedContent").(*struct {
		Title       string `json:"title"`
		ContentType string `json:"content_type"`
		Content     string `json:"content"`
		Order       int    `json:"order"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	contentType := courseModels.ContentType(reqData.ContentType)

	// Video items carry a URL in the body; confirm it resolves.
	if contentType == courseModels.ContentVideo && reqData.Content != "" && !utils.URLReachable(reqData.Content) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Video URL is not reachable!", nil)
	}

	content := courseModels.CourseContent{
		WeekID:      weekID,
		Title:       reqData.Title,
		ContentType: contentType,
		Body:        reqData.Content,
		OrderIndex:  reqData.Order,
		IsQuiz:      contentType == courseModels.ContentQuiz,
	}
	if content.IsQuiz {
		// Quiz material lives in quiz questions, never in the body.
		content.Body = ""
	}

	if err := database.Database.Db.Create(&content).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Content created successfully!", content)
}

func UpdateContent(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	contentID := c.Locals("contentID").(uint)

	content, week, err := contentWithWeek(contentID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Content not found!", nil)
	}

	ownerID, err := courseOwner(week.CourseID)
	if err != nil || ownerID != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own the course this content belongs to!", nil)
	}

	reqData := new(struct {
		Title   *string `json:"title"`
		Content *string `json:"content"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if content.IsQuiz && reqData.Content != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Cannot add text content to a quiz item. Use quiz question routes.", nil)
	}

	if reqData.Title != nil && *reqData.Title != "" {
		content.Title = *reqData.Title
	}
	if reqData.Content != nil && !content.IsQuiz {
		content.Body = *reqData.Content
	}

	if err := database.Database.Db.Save(content).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Content updated successfully!", content)
}
