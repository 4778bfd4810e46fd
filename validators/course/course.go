package courseValidator

import (
	"lms/middleware"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// idParam validates a positive integer route parameter and stores it in
// Locals under localsKey.
func idParam(param, localsKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Params(param))
		if raw == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Missing route parameter!", nil)
		}

		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid ID format!", nil)
		}

		c.Locals(localsKey, uint(id))
		return c.Next()
	}
}

func CourseID() fiber.Handler {
	return idParam("id", "courseID")
}

func CourseIDInPath() fiber.Handler {
	return idParam("courseId", "courseID")
}

func WeekID() fiber.Handler {
	return idParam("weekId", "weekID")
}

func ContentID() fiber.Handler {
	return idParam("contentId", "contentID")
}

func EnrollmentID() fiber.Handler {
	return idParam("enrollmentId", "enrollmentID")
}

func SubmissionID() fiber.Handler {
	return idParam("submissionId", "submissionID")
}

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			Thumbnail   string `json:"thumbnail"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if strings.TrimSpace(reqData.Description) == "" {
			errors["description"] = "Description is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

func CreateWeek() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			WeekNumber int    `json:"week_number"`
			Title      string `json:"title"`
			Order      int    `json:"order"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.WeekNumber <= 0 {
			errors["week_number"] = "Week number must be greater than 0!"
		}
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if reqData.Order < 0 {
			errors["order"] = "Order must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedWeek", reqData)
		return c.Next()
	}
}
