package courseRoutes

import (
	controllers "lms/controllers/course"
	"lms/middleware"
	"lms/models"
	validators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up course catalogue, week, content and quiz routes.
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/courses")

	// Catalogue
	courseGroup.Get("/", middleware.JWTMiddleware, controllers.GetAllCourses)
	courseGroup.Get("/instructor/my-courses", middleware.JWTMiddleware, middleware.RequireRole(models.RoleInstructor), controllers.GetMyCourses)
	courseGroup.Get("/:id", middleware.JWTMiddleware, validators.CourseID(), controllers.GetCourseDetails)

	// Course management (instructors only)
	courseGroup.Post("/", middleware.JWTMiddleware, middleware.RequireRole(models.RoleInstructor), validators.CreateCourse(), controllers.CreateCourse)
	courseGroup.Put("/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleInstructor), validators.CourseID(), controllers.UpdateCourse)

	// Weeks
	courseGroup.Get("/:courseId/weeks", middleware.JWTMiddleware, validators.CourseIDInPath(), controllers.GetCourseWeeks)
	courseGroup.Post("/:courseId/weeks", middleware.JWTMiddleware, middleware.RequireRole(models.RoleInstructor), validators.CourseIDInPath(), validators.CreateWeek(), controllers.CreateCourseWeek)

	// Content
	weekGroup := app.Group("/weeks")
	weekGroup.Get("/:weekId/content", middleware.JWTMiddleware, validators.WeekID(), controllers.GetWeekContent)
	weekGroup.Post("/:weekId/content", middleware.JWTMiddleware, middleware.RequireRole(models.RoleInstructor), validators.WeekID(), validators.CreateContent(), controllers.CreateContent)

	contentGroup := app.Group("/content")
	contentGroup.Put("/:contentId", middleware.JWTMiddleware, middleware.RequireRole(models.RoleInstructor), validators.ContentID(), controllers.UpdateContent)

	// Quiz questions
	contentGroup.Get("/:contentId/questions", middleware.JWTMiddleware, validators.ContentID(), controllers.GetQuizQuestions)
	contentGroup.Post("/:contentId/questions", middleware.JWTMiddleware, middleware.RequireRole(models.RoleInstructor), validators.ContentID(), validators.CreateQuestion(), controllers.CreateQuizQuestion)
}
