package userControllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	userValidators "lms/validators/user"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupUserTest(t *testing.T) *fiber.App {
	t.Helper()
	config.LoadConfig()
	config.AppConfig.UploadDir = t.TempDir()
	database.ConnectTestDb()

	app := fiber.New()
	app.Put("/api/users/profile", middleware.JWTMiddleware, userValidators.UpdateProfile(), UpdateProfile)
	app.Get("/api/admin/users", middleware.JWTMiddleware, userValidators.UserList(), AdminListUsers)
	app.Get("/api/admin/users/:id", middleware.JWTMiddleware, AdminGetUser)
	app.Put("/api/admin/users/:id", middleware.JWTMiddleware, userValidators.UpdateUser(), AdminUpdateUser)
	app.Delete("/api/admin/users/:id/hard", middleware.JWTMiddleware, AdminHardDeleteUser)
	app.Delete("/api/admin/users/:id", middleware.JWTMiddleware, AdminSoftDeleteUser)
	app.Post("/api/admin/users/:id/restore", middleware.JWTMiddleware, AdminRestoreUser)

	return app
}

func makeUser(t *testing.T, name, email, role string) (models.User, string) {
	t.Helper()
	user := models.User{Name: name, Email: email, Password: "x", Role: role}
	require.NoError(t, database.Database.Db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Role)
	require.NoError(t, err)
	return user, token
}

func authed(method, target, token string, body interface{}) *http.Request {
	var req *http.Request
	if body != nil {
		payload, _ := json.Marshal(body)
		req = httptest.NewRequest(method, target, bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: token})
	return req
}

func TestAdminEndpointsRejectStudents(t *testing.T) {
	app := setupUserTest(t)
	_, studentToken := makeUser(t, "Student", "student@example.com", models.RoleStudent)

	resp, err := app.Test(authed("GET", "/api/admin/users", studentToken, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestAdminSoftDeleteAndRestore(t *testing.T) {
	app := setupUserTest(t)
	_, adminToken := makeUser(t, "Admin", "admin@example.com", models.RoleAdmin)
	target, _ := makeUser(t, "Target", "target@example.com", models.RoleStudent)

	resp, err := app.Test(authed("DELETE", fmt.Sprintf("/api/admin/users/%d", target.ID), adminToken, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var deleted models.User
	require.NoError(t, database.Database.Db.First(&deleted, target.ID).Error)
	assert.True(t, deleted.IsDeleted)
	require.NotNil(t, deleted.DeletedAt)

	// Deleting again 404s: the user is already gone from the live set
	resp, err = app.Test(authed("DELETE", fmt.Sprintf("/api/admin/users/%d", target.ID), adminToken, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, err = app.Test(authed("POST", fmt.Sprintf("/api/admin/users/%d/restore", target.ID), adminToken, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var restored models.User
	require.NoError(t, database.Database.Db.First(&restored, target.ID).Error)
	assert.False(t, restored.IsDeleted)
	assert.Nil(t, restored.DeletedAt)
}

func TestAdminListExcludesSoftDeleted(t *testing.T) {
	app := setupUserTest(t)
	_, adminToken := makeUser(t, "Admin", "admin@example.com", models.RoleAdmin)
	target, _ := makeUser(t, "Target", "target@example.com", models.RoleStudent)

	resp, err := app.Test(authed("DELETE", fmt.Sprintf("/api/admin/users/%d", target.ID), adminToken, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data struct {
			Users []models.User `json:"users"`
		} `json:"data"`
	}

	resp, err = app.Test(authed("GET", "/api/admin/users", adminToken, nil))
	require.NoError(t, err)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Data.Users, 1)
	assert.Equal(t, "admin@example.com", body.Data.Users[0].Email)

	// ?deleted=true flips the listing to the soft-deleted set
	resp, err = app.Test(authed("GET", "/api/admin/users?deleted=true", adminToken, nil))
	require.NoError(t, err)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Data.Users, 1)
	assert.Equal(t, "target@example.com", body.Data.Users[0].Email)
}

func TestAdminHardDelete(t *testing.T) {
	app := setupUserTest(t)
	_, adminToken := makeUser(t, "Admin", "admin@example.com", models.RoleAdmin)
	target, _ := makeUser(t, "Target", "target@example.com", models.RoleStudent)

	resp, err := app.Test(authed("DELETE", fmt.Sprintf("/api/admin/users/%d/hard", target.ID), adminToken, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	err = database.Database.Db.First(&models.User{}, target.ID).Error
	assert.Error(t, err)
}

func TestAdminUpdateUserRole(t *testing.T) {
	app := setupUserTest(t)
	_, adminToken := makeUser(t, "Admin", "admin@example.com", models.RoleAdmin)
	target, _ := makeUser(t, "Target", "target@example.com", models.RoleStudent)

	resp, err := app.Test(authed("PUT", fmt.Sprintf("/api/admin/users/%d", target.ID), adminToken, fiber.Map{
		"name": "Promoted Target",
		"role": "ADMIN",
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated models.User
	require.NoError(t, database.Database.Db.First(&updated, target.ID).Error)
	assert.Equal(t, "Promoted Target", updated.Name)
	assert.Equal(t, models.RoleAdmin, updated.Role)
}

func TestUpdateOwnProfile(t *testing.T) {
	app := setupUserTest(t)
	user, token := makeUser(t, "Student", "student@example.com", models.RoleStudent)

	resp, err := app.Test(authed("PUT", "/api/users/profile", token, fiber.Map{
		"name":   "Renamed Student",
		"mobile": "9876543210",
		"stream": "Computer Science",
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated models.User
	require.NoError(t, database.Database.Db.First(&updated, user.ID).Error)
	assert.Equal(t, "Renamed Student", updated.Name)
	assert.Equal(t, "9876543210", updated.Mobile)
	assert.Equal(t, "Computer Science", updated.Stream)
}

func TestUpdateProfileRejectsBadMobile(t *testing.T) {
	app := setupUserTest(t)
	_, token := makeUser(t, "Student", "student@example.com", models.RoleStudent)

	resp, err := app.Test(authed("PUT", "/api/users/profile", token, fiber.Map{
		"mobile": "12345",
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
