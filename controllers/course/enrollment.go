package controllers

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	"lms/utils"
	"time"

	"github.com/gofiber/fiber/v2"
)

// EnrollmentWithCourse enriches an enrollment with its course summary
type EnrollmentWithCourse struct {
	courseModels.Enrollment
	Course CourseWithInstructor `json:"course"`
}

func EnrollInCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)

	var crs courseModels.Course
	if err := database.Database.Db.First(&crs, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	// Check if user is already enrolled
	var existing courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You are already enrolled in this course!", nil)
	}

	enrollment := courseModels.Enrollment{
		UserID:     userID,
		CourseID:   courseID,
		EnrolledAt: time.Now(),
	}

	if err := database.Database.Db.Create(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}

	go func(courseTitle string) {
		var student models.User
		if err := database.Database.Db.First(&student, userID).Error; err != nil {
			return
		}
		utils.SendEnrollmentWelcome(student.Email, student.Name, courseTitle)
	}(crs.Title)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrolled in course successfully!", EnrollmentWithCourse{
		Enrollment: enrollment,
		Course:     attachInstructors([]courseModels.Course{crs})[0],
	})
}

func GetMyEnrollments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var enrollments []courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ?", userID).Order("enrolled_at desc").Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	courseIDs := make([]uint, len(enrollments))
	for i, enrollment := range enrollments {
		courseIDs[i] = enrollment.CourseID
	}

	var courses []courseModels.Course
	database.Database.Db.Where("id IN ?", courseIDs).Find(&courses)
	enriched := attachInstructors(courses)

	byID := make(map[uint]CourseWithInstructor, len(enriched))
	for _, crs := range enriched {
		byID[crs.ID] = crs
	}

	result := make([]EnrollmentWithCourse, len(enrollments))
	for i, enrollment := range enrollments {
		result[i] = EnrollmentWithCourse{
			Enrollment: enrollment,
			Course:     byID[enrollment.CourseID],
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", result)
}

// GetCourseEnrollments lets the owning instructor read (not mutate)
// enrollment data for a course.
func GetCourseEnrollments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)

	ownerID, err := courseOwner(courseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}
	if ownerID != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own this course!", nil)
	}

	var enrollments []courseModels.Enrollment
	if err := database.Database.Db.Where("course_id = ?", courseID).Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	userIDs := make([]uint, len(enrollments))
	for i, enrollment := range enrollments {
		userIDs[i] = enrollment.UserID
	}

	var students []models.User
	database.Database.Db.Where("id IN ?", userIDs).Find(&students)

	nameByID := make(map[uint]models.User, len(students))
	for _, student := range students {
		nameByID[student.ID] = student
	}

	type EnrollmentWithStudent struct {
		courseModels.Enrollment
		StudentName  string `json:"student_name"`
		StudentEmail string `json:"student_email"`
	}

	result := make([]EnrollmentWithStudent, len(enrollments))
	for i, enrollment := range enrollments {
		result[i] = EnrollmentWithStudent{Enrollment: enrollment}
		if student, ok := nameByID[enrollment.UserID]; ok {
			result[i].StudentName = student.Name
			result[i].StudentEmail = student.Email
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", result)
}
