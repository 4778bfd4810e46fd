package enrollmentRoutes

import (
	controllers "lms/controllers/course"
	"lms/middleware"
	"lms/models"
	"lms/progress"
	validators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupEnrollmentRoutes sets up enrollment, progress, assignment,
// submission and certificate routes.
func SetupEnrollmentRoutes(app *fiber.App, svc *progress.Service) {
	enrollGroup := app.Group("/enrollments")

	enrollGroup.Post("/", middleware.JWTMiddleware, middleware.RequireRole(models.RoleStudent), validators.Enroll(), controllers.EnrollInCourse)
	enrollGroup.Get("/my-courses", middleware.JWTMiddleware, middleware.RequireRole(models.RoleStudent), controllers.GetMyEnrollments)
	enrollGroup.Get("/:enrollmentId/progress", middleware.JWTMiddleware, validators.EnrollmentID(), controllers.GetEnrollmentProgress)

	// Owning instructors can inspect their course rosters.
	app.Get("/courses/:courseId/enrollments", middleware.JWTMiddleware, middleware.RequireRole(models.RoleInstructor), validators.CourseIDInPath(), controllers.GetCourseEnrollments)

	// Completion recording
	app.Post("/progress", middleware.JWTMiddleware, middleware.RequireRole(models.RoleStudent), validators.MarkComplete(), controllers.MarkComplete(svc))

	// Assignments
	app.Get("/courses/:courseId/assignments", middleware.JWTMiddleware, validators.CourseIDInPath(), controllers.GetCourseAssignments)
	app.Post("/assignments", middleware.JWTMiddleware, middleware.RequireRole(models.RoleInstructor), validators.CreateAssignment(), controllers.CreateAssignment)

	// Submissions
	subGroup := app.Group("/submissions")
	subGroup.Get("/my-submissions", middleware.JWTMiddleware, middleware.RequireRole(models.RoleStudent), controllers.GetMySubmissions)
	subGroup.Post("/", middleware.JWTMiddleware, middleware.RequireRole(models.RoleStudent), validators.SubmitAssignment(), controllers.SubmitAssignment)
	subGroup.Put("/:submissionId/grade", middleware.JWTMiddleware, middleware.RequireRole(models.RoleInstructor), validators.SubmissionID(), validators.GradeSubmission(), controllers.GradeSubmission)

	// Certificates
	enrollGroup.Post("/:enrollmentId/certificate", middleware.JWTMiddleware, middleware.RequireRole(models.RoleStudent), validators.EnrollmentID(), controllers.RequestCertificate)
	app.Get("/certificates/my", middleware.JWTMiddleware, middleware.RequireRole(models.RoleStudent), controllers.GetMyCertificates)
}
