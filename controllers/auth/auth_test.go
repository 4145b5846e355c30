package authController

import (
	"bytes"
	"encoding/json"
	"io"
	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	authValidators "lms/validators/auth"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func setupAuthTest(t *testing.T) *fiber.App {
	t.Helper()
	config.LoadConfig()
	database.ConnectTestDb()

	app := fiber.New()
	app.Post("/api/auth/register", authValidators.Register(), Register)
	app.Post("/api/auth/login", authValidators.Login(), Login)
	app.Post("/api/auth/logout", Logout)
	app.Get("/api/auth/me", middleware.JWTMiddleware, Me)

	return app
}

func jsonRequest(method, target string, body interface{}) *http.Request {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(method, target, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func seedUser(t *testing.T, name, email, password, role string) models.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{Name: name, Email: email, Password: string(hashed), Role: role}
	require.NoError(t, database.Database.Db.Create(&user).Error)
	return user
}

func sessionCookie(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == middleware.SessionCookieName {
			return c
		}
	}
	return nil
}

func TestRegisterForcesStudentRole(t *testing.T) {
	app := setupAuthTest(t)

	req := jsonRequest("POST", "/api/auth/register", fiber.Map{
		"name":     "Eve Mallory",
		"email":    "eve@example.com",
		"password": "secret-pass-1",
		"role":     "ADMIN", // must be ignored
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var user models.User
	require.NoError(t, database.Database.Db.Where("email = ?", "eve@example.com").First(&user).Error)
	assert.Equal(t, models.RoleStudent, user.Role)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	app := setupAuthTest(t)
	seedUser(t, "Alice", "alice@example.com", "password123", models.RoleStudent)

	req := jsonRequest("POST", "/api/auth/register", fiber.Map{
		"name":     "Alice Again",
		"email":    "alice@example.com",
		"password": "password123",
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestRegisterValidation(t *testing.T) {
	app := setupAuthTest(t)

	req := jsonRequest("POST", "/api/auth/register", fiber.Map{
		"name":     "Al",
		"email":    "not-an-email",
		"password": "short",
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestLoginSetsSessionCookie(t *testing.T) {
	app := setupAuthTest(t)
	user := seedUser(t, "Bob", "bob@example.com", "password123", models.RoleStudent)

	req := jsonRequest("POST", "/api/auth/login", fiber.Map{
		"email":    "bob@example.com",
		"password": "password123",
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	cookie := sessionCookie(resp)
	require.NotNil(t, cookie)
	assert.Equal(t, 86400, cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/", cookie.Path)

	claims, err := middleware.VerifyJWT(cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, float64(user.ID), claims["userId"])
	assert.Equal(t, models.RoleStudent, claims["role"])
}

func TestLoginBadCredentialsIndistinguishable(t *testing.T) {
	app := setupAuthTest(t)
	seedUser(t, "Carol", "carol@example.com", "password123", models.RoleStudent)

	wrongPass := jsonRequest("POST", "/api/auth/login", fiber.Map{
		"email":    "carol@example.com",
		"password": "wrong-password",
	})
	respA, err := app.Test(wrongPass)
	require.NoError(t, err)

	noSuchUser := jsonRequest("POST", "/api/auth/login", fiber.Map{
		"email":    "nobody@example.com",
		"password": "password123",
	})
	respB, err := app.Test(noSuchUser)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, respA.StatusCode)
	assert.Equal(t, fiber.StatusUnauthorized, respB.StatusCode)

	bodyA, _ := io.ReadAll(respA.Body)
	bodyB, _ := io.ReadAll(respB.Body)
	assert.Equal(t, string(bodyA), string(bodyB))
}

func TestLoginSoftDeletedUser(t *testing.T) {
	app := setupAuthTest(t)
	user := seedUser(t, "Dan", "dan@example.com", "password123", models.RoleStudent)
	require.NoError(t, database.Database.Db.Model(&user).Update("is_deleted", true).Error)

	req := jsonRequest("POST", "/api/auth/login", fiber.Map{
		"email":    "dan@example.com",
		"password": "password123",
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestLogoutClearsCookieButTokenSurvives(t *testing.T) {
	app := setupAuthTest(t)
	user := seedUser(t, "Frank", "frank@example.com", "password123", models.RoleStudent)

	token, err := middleware.GenerateJWT(user.ID, user.Role)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/api/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: token})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Fiber drops non-positive Max-Age attributes, so clearing rides on the
	// empty value and the already-past Expires
	cleared := sessionCookie(resp)
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
	assert.True(t, cleared.Expires.Before(time.Now()))

	// No revocation list: the old token still verifies until it expires
	_, err = middleware.VerifyJWT(token)
	assert.NoError(t, err)

	// A client without the cookie is back to unauthenticated
	me := httptest.NewRequest("GET", "/api/auth/me", nil)
	meResp, err := app.Test(me)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, meResp.StatusCode)
}

func TestMeReturnsCurrentUser(t *testing.T) {
	app := setupAuthTest(t)
	user := seedUser(t, "Grace", "grace@example.com", "password123", models.RoleAdmin)

	token, err := middleware.GenerateJWT(user.ID, user.Role)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: token})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Status  bool        `json:"status"`
		Message string      `json:"message"`
		Data    models.User `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Status)
	assert.Equal(t, "grace@example.com", body.Data.Email)
}
