package controllers

import (
	"lms/database"
	courseModels "lms/models/course"
)

// courseOwner returns the owning instructor of a course as a plain
// value, so ownership checks stay independent of ORM traversal.
func courseOwner(courseID uint) (uint, error) {
	var crs courseModels.Course
	if err := database.Database.Db.Select("instructor_id").First(&crs, courseID).Error; err != nil {
		return 0, err
	}
	return crs.InstructorID, nil
}

// contentWithWeek resolves a content item together with its week, which
// authorization checks need to walk up to the owning course.
func contentWithWeek(contentID uint) (*courseModels.CourseContent, *courseModels.CourseWeek, error) {
	var content courseModels.CourseContent
	if err := database.Database.Db.First(&content, contentID).Error; err != nil {
		return nil, nil, err
	}
	var week courseModels.CourseWeek
	if err := database.Database.Db.First(&week, content.WeekID).Error; err != nil {
		return nil, nil, err
	}
	return &content, &week, nil
}
