package courseValidator

import (
	"lms/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func CreateQuestion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			QuestionText  string   `json:"question_text"`
			Options       []string `json:"options"`
			CorrectAnswer int      `json:"correct_answer"`
			Points        int      `json:"points"`
			Tags          []string `json:"tags"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.QuestionText) == "" {
			errors["question_text"] = "Question text is required!"
		}
		if len(reqData.Options) < 2 {
			errors["options"] = "At least 2 options are required!"
		} else {
			for _, opt := range reqData.Options {
				if strings.TrimSpace(opt) == "" {
					errors["options"] = "Options must not be empty!"
					break
				}
			}
		}
		if reqData.CorrectAnswer < 0 || reqData.CorrectAnswer >= len(reqData.Options) {
			errors["correct_answer"] = "Correct answer must be a valid option index!"
		}
		if reqData.Points < 0 {
			errors["points"] = "Points must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuestion", reqData)
		return c.Next()
	}
}
