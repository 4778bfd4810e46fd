package controllers

import (
	"lms/database"
	"lms/middleware"
	courseModels "lms/models/course"

	"github.com/gofiber/fiber/v2"
)

func GetQuizQuestions(c *fiber.Ctx) error {
	contentID := c.Locals("contentID").(uint)

	var content courseModels.CourseContent
	if err := database.Database.Db.First(&content, contentID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Content item not found!", nil)
	}
	if !content.IsQuiz {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "This content item is not a quiz!", nil)
	}

	var questions []courseModels.QuizQuestion
	if err := database.Database.Db.Where("content_id = ?", contentID).Order("id asc").Find(&questions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch quiz questions!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz questions fetched successfully!", questions)
}

func CreateQuizQuestion(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	contentID := c.Locals("contentID").(uint)

	content, week, err := contentWithWeek(contentID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Content item not found!", nil)
	}
	if !content.IsQuiz {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Content item is not a quiz!", nil)
	}

	ownerID, err := courseOwner(week.CourseID)
	if err != nil || ownerID != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own the course this quiz belongs to!", nil)
	}

	reqData, ok := c.Locals("validatedQuestion").(*struct {
		QuestionText  string   `json:"question_text"`
		Options       []string `json:"options"`
		CorrectAnswer int      `json:"correct_answer"`
		Points        int      `json:"points"`
		Tags          []string `json:"tags"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	points := reqData.Points
	if points <= 0 {
		points = 10
	}

	question := courseModels.QuizQuestion{
		ContentID:     contentID,
		QuestionText:  reqData.QuestionText,
		Options:       reqData.Options,
		CorrectAnswer: reqData.CorrectAnswer,
		Points:        points,
		Tags:          reqData.Tags,
	}

	if err := database.Database.Db.Create(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create quiz question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Quiz question created successfully!", question)
}
