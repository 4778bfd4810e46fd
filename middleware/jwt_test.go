package middleware

import (
	"net/http/httptest"
	"testing"

	"lms/config"
	"lms/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/student-only", JWTMiddleware, RequireRole(models.RoleStudent), func(c *fiber.Ctx) error {
		return JsonResponse(c, fiber.StatusOK, true, "ok", nil)
	})
	return app
}

func TestJWTMiddlewareRejectsBadTokens(t *testing.T) {
	config.AppConfig = &config.Config{JWTKey: "test-secret"}
	app := newProtectedApp()

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", fiber.StatusUnauthorized},
		{"no bearer prefix", "token-without-prefix", fiber.StatusUnauthorized},
		{"garbage token", "Bearer not.a.token", fiber.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/student-only", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tc.want, resp.StatusCode)
		})
	}
}

func TestJWTMiddlewareAcceptsValidToken(t *testing.T) {
	config.AppConfig = &config.Config{JWTKey: "test-secret"}
	app := newProtectedApp()

	token, err := GenerateJWT(7, "Ada", models.RoleStudent, "ada@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/student-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireRoleBlocksOtherRoles(t *testing.T) {
	config.AppConfig = &config.Config{JWTKey: "test-secret"}
	app := newProtectedApp()

	token, err := GenerateJWT(9, "Grace", models.RoleInstructor, "grace@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/student-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestJWTRejectsTokenSignedWithOtherKey(t *testing.T) {
	config.AppConfig = &config.Config{JWTKey: "other-secret"}
	token, err := GenerateJWT(3, "Eve", models.RoleStudent, "eve@example.com")
	require.NoError(t, err)

	config.AppConfig = &config.Config{JWTKey: "test-secret"}
	app := newProtectedApp()

	req := httptest.NewRequest("GET", "/student-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
