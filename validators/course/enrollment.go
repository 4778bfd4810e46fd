package courseValidator

import (
	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

// Enroll validates the enrollment request body and stores the course ID
// in Locals.
func Enroll() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CourseID uint `json:"course_id"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.CourseID == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"course_id": "Course ID is required!",
			})
		}

		c.Locals("courseID", reqData.CourseID)
		return c.Next()
	}
}
