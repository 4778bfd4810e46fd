package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	courseValidator "lms/validators/course"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupApp points the global database handle at an in-memory store and
// wires the enrollment route with its real middleware chain.
func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	database.Database = database.DbInstance{Db: db}
	config.AppConfig = &config.Config{JWTKey: "test-secret", SaltRound: 10}

	app := fiber.New()
	app.Post("/enrollments", middleware.JWTMiddleware, middleware.RequireRole(models.RoleStudent), courseValidator.Enroll(), EnrollInCourse)
	return app
}

func createUser(t *testing.T, name, email string, role models.Role) models.User {
	t.Helper()

	user := models.User{Name: name, Email: email, Password: "x", Role: role}
	require.NoError(t, database.Database.Db.Create(&user).Error)
	return user
}

func enrollRequest(t *testing.T, app *fiber.App, token string, courseID uint) int {
	t.Helper()

	payload, err := json.Marshal(map[string]interface{}{"course_id": courseID})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/enrollments", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestEnrollInCourseRejectsDuplicates(t *testing.T) {
	app := setupApp(t)

	instructor := createUser(t, "Grace", "grace@example.com", models.RoleInstructor)
	student := createUser(t, "Ada", "ada@example.com", models.RoleStudent)

	crs := courseModels.Course{Title: "Go Basics", Description: "intro", InstructorID: instructor.ID}
	require.NoError(t, database.Database.Db.Create(&crs).Error)

	token, err := middleware.GenerateJWT(student.ID, student.Name, student.Role, student.Email)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusCreated, enrollRequest(t, app, token, crs.ID))
	assert.Equal(t, fiber.StatusConflict, enrollRequest(t, app, token, crs.ID))

	var count int64
	require.NoError(t, database.Database.Db.Model(&courseModels.Enrollment{}).
		Where("user_id = ? AND course_id = ?", student.ID, crs.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestEnrollInCourseUnknownCourse(t *testing.T) {
	app := setupApp(t)

	student := createUser(t, "Ada", "ada@example.com", models.RoleStudent)
	token, err := middleware.GenerateJWT(student.ID, student.Name, student.Role, student.Email)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusNotFound, enrollRequest(t, app, token, 4242))
}

func TestEnrollInCourseInstructorsBlocked(t *testing.T) {
	app := setupApp(t)

	instructor := createUser(t, "Grace", "grace@example.com", models.RoleInstructor)
	crs := courseModels.Course{Title: "Go Basics", Description: "intro", InstructorID: instructor.ID}
	require.NoError(t, database.Database.Db.Create(&crs).Error)

	token, err := middleware.GenerateJWT(instructor.ID, instructor.Name, instructor.Role, instructor.Email)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusForbidden, enrollRequest(t, app, token, crs.ID))
}
