package courseValidator

import (
	"strings"
	"time"

	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

// CreateAssignment validates the assignment creation body.
func CreateAssignment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CourseID    uint      `json:"course_id"`
			Title       string    `json:"title"`
			Description string    `json:"description"`
			DueDate     time.Time `json:"due_date"`
			TotalPoints int       `json:"total_points"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CourseID == 0 {
			errors["course_id"] = "Course ID is required!"
		}
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if reqData.DueDate.IsZero() {
			errors["due_date"] = "Due date is required!"
		}
		if reqData.TotalPoints < 0 {
			errors["total_points"] = "Total points cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAssignment", reqData)
		return c.Next()
	}
}

// SubmitAssignment validates the submission body.
func SubmitAssignment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			AssignmentID uint `json:"assignment_id"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.AssignmentID == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"assignment_id": "Assignment ID is required!",
			})
		}

		c.Locals("validatedSubmission", reqData)
		return c.Next()
	}
}

// GradeSubmission validates the grading body.
func GradeSubmission() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Grade    float64 `json:"grade"`
			Feedback string  `json:"feedback"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Grade < 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"grade": "Grade cannot be negative!",
			})
		}

		c.Locals("validatedGrade", reqData)
		return c.Next()
	}
}
