package courseValidator

import (
	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

// MarkComplete validates a completion request. Score is optional and
// only meaningful for quiz content.
func MarkComplete() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			EnrollmentID uint     `json:"enrollment_id"`
			ContentID    uint     `json:"content_id"`
			Score        *float64 `json:"score"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.EnrollmentID == 0 {
			errors["enrollment_id"] = "Enrollment ID is required!"
		}
		if reqData.ContentID == 0 {
			errors["content_id"] = "Content ID is required!"
		}
		if reqData.Score != nil && (*reqData.Score < 0 || *reqData.Score > 100) {
			errors["score"] = "Score must be between 0 and 100!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCompletion", reqData)
		return c.Next()
	}
}
