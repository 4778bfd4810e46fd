package analyticsRoutes

import (
	controllers "lms/controllers/course"
	"lms/middleware"
	"lms/models"
	"lms/progress"

	"github.com/gofiber/fiber/v2"
)

// SetupAnalyticsRoutes sets up the student analytics routes.
func SetupAnalyticsRoutes(app *fiber.App, svc *progress.Service) {
	analyticsGroup := app.Group("/analytics")

	analyticsGroup.Get("/student/summary", middleware.JWTMiddleware, middleware.RequireRole(models.RoleStudent), controllers.StudentSummary(svc))
}
