package middleware

import (
	"lms/config"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gateApp() *fiber.App {
	app := fiber.New()
	app.Use(AccessGate)

	ok := func(c *fiber.Ctx) error { return c.SendString("ok") }
	app.Get("/", ok)
	app.Get("/auth", ok)
	app.Get("/dashboard", ok)
	app.Get("/admin/users", ok)
	app.Get("/api/courses", ok)
	app.Get("/api/attempts", ok)
	app.Get("/api/admin/users", ok)
	app.Post("/api/quizzes/1/submit", ok)

	return app
}

func TestGatePublicPaths(t *testing.T) {
	config.LoadConfig()
	app := gateApp()

	for _, target := range []string{"/", "/auth", "/api/courses"} {
		req := httptest.NewRequest("GET", target, nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, target)
	}
}

func TestGateMissingTokenAPI(t *testing.T) {
	config.LoadConfig()
	app := gateApp()

	req := httptest.NewRequest("GET", "/api/attempts", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestGateMissingTokenPageRedirects(t *testing.T) {
	config.LoadConfig()
	app := gateApp()

	req := httptest.NewRequest("GET", "/dashboard", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/auth", resp.Header.Get("Location"))
}

func TestGateStudentOnAdminAPI(t *testing.T) {
	config.LoadConfig()
	app := gateApp()

	token, err := GenerateJWT(7, "STUDENT")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/admin/users", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestGateStudentOnAdminPageRedirects(t *testing.T) {
	config.LoadConfig()
	app := gateApp()

	token, err := GenerateJWT(7, "STUDENT")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/admin/users", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/unauthorized", resp.Header.Get("Location"))
}

func TestGateAdminOnAdminAPI(t *testing.T) {
	config.LoadConfig()
	app := gateApp()

	token, err := GenerateJWT(1, "ADMIN")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/admin/users", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestGateExpiredToken(t *testing.T) {
	config.LoadConfig()
	app := gateApp()

	expired := signToken(t, jwt.MapClaims{
		"userId": 7,
		"role":   "STUDENT",
		"iat":    time.Now().Add(-48 * time.Hour).Unix(),
		"exp":    time.Now().Add(-24 * time.Hour).Unix(),
	})

	req := httptest.NewRequest("GET", "/api/attempts", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: expired})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestGateLoggedInUserLeavesAuthPage(t *testing.T) {
	config.LoadConfig()
	app := gateApp()

	token, err := GenerateJWT(7, "STUDENT")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/auth", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
}

func TestGateBearerFallback(t *testing.T) {
	config.LoadConfig()
	app := gateApp()

	token, err := GenerateJWT(7, "STUDENT")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/attempts", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
