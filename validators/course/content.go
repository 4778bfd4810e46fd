package courseValidator

import (
	"lms/middleware"
	courseModels "lms/models/course"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func CreateContent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string `json:"title"`
			ContentType string `json:"content_type"`
			Content     string `json:"content"`
			Order       int    `json:"order"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if !courseModels.ContentType(reqData.ContentType).Valid() {
			errors["content_type"] = "Content type must be one of 'text', 'video' or 'quiz'!"
		}
		if reqData.Order < 0 {
			errors["order"] = "Order must not be negative!"
		}
		if reqData.ContentType == string(courseModels.ContentQuiz) && strings.TrimSpace(reqData.Content) != "" {
			errors["content"] = "Quiz content must not carry body text!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedContent", reqData)
		return c.Next()
	}
}
