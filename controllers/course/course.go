package controllers

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
)

// CourseWithInstructor enriches a course with its instructor's public details
type CourseWithInstructor struct {
	courseModels.Course
	InstructorName  string `json:"instructor_name"`
	InstructorEmail string `json:"instructor_email"`
}

func attachInstructors(courses []courseModels.Course) []CourseWithInstructor {
	ids := make([]uint, 0, len(courses))
	for _, crs := range courses {
		ids = append(ids, crs.InstructorID)
	}

	var instructors []models.User
	database.Database.Db.Where("id IN ?", ids).Find(&instructors)

	byID := make(map[uint]models.User, len(instructors))
	for _, instructor := range instructors {
		byID[instructor.ID] = instructor
	}

	result := make([]CourseWithInstructor, len(courses))
	for i, crs := range courses {
		result[i] = CourseWithInstructor{Course: crs}
		if instructor, ok := byID[crs.InstructorID]; ok {
			result[i].InstructorName = instructor.Name
			result[i].InstructorEmail = instructor.Email
		}
	}
	return result
}

func GetAllCourses(c *fiber.Ctx) error {
	var courses []courseModels.Course
	if err := database.Database.Db.Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", attachInstructors(courses))
}

func GetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	var crs courseModels.Course
	if err := database.Database.Db.First(&crs, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	enriched := attachInstructors([]courseModels.Course{crs})
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", enriched[0])
}

func CreateCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCourse").(*struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Thumbnail   string `json:"thumbnail"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	thumbnail := reqData.Thumbnail
	if thumbnail == "" {
		thumbnail = courseModels.DefaultThumbnail
	} else if !utils.URLReachable(thumbnail) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Thumbnail URL is not reachable!", nil)
	}

	crs := courseModels.Course{
		Title:        reqData.Title,
		Description:  reqData.Description,
		Thumbnail:    thumbnail,
		InstructorID: userID,
	}

	if err := database.Database.Db.Create(&crs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", crs)
}

func UpdateCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)

	var crs courseModels.Course
	if err := database.Database.Db.First(&crs, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if crs.InstructorID != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own this course!", nil)
	}

	reqData := new(struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Thumbnail   *string `json:"thumbnail"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.Title != nil && *reqData.Title != "" {
		crs.Title = *reqData.Title
	}
	if reqData.Description != nil && *reqData.Description != "" {
		crs.Description = *reqData.Description
	}
	if reqData.Thumbnail != nil && *reqData.Thumbnail != "" {
		if !utils.URLReachable(*reqData.Thumbnail) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Thumbnail URL is not reachable!", nil)
		}
		crs.Thumbnail = *reqData.Thumbnail
	}

	if err := database.Database.Db.Save(&crs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", crs)
}

func GetMyCourses(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var courses []courseModels.Course
	if err := database.Database.Db.Where("instructor_id = ?", userID).Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}
