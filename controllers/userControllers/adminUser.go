package userControllers

import (
	"fmt"
	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/utils"
	"log"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
)

// requireAdmin loads the caller and confirms the admin role. The access gate
// already checked the path shape; this is the per-handler contract.
func requireAdmin(c *fiber.Ctx) (*models.User, error) {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return nil, middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return nil, middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if user.Role != models.RoleAdmin {
		return nil, middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	return &user, nil
}

// AdminListUsers lists users. Soft-deleted users are excluded unless
// ?deleted=true is passed.
func AdminListUsers(c *fiber.Ctx) error {
	if _, err := requireAdmin(c); err != nil {
		return err
	}

	reqData, ok := c.Locals("validatedList").(*struct {
		Page  *int `json:"page" query:"page"`
		Limit *int `json:"limit" query:"limit"`
	})

	page := 1
	limit := 10
	if ok && reqData.Page != nil && *reqData.Page > 0 {
		page = *reqData.Page
	}
	if ok && reqData.Limit != nil && *reqData.Limit > 0 {
		limit = *reqData.Limit
	}
	offset := (page - 1) * limit

	showDeleted := c.Query("deleted") == "true"

	var users []models.User
	var total int64

	db := database.Database.Db.Model(&models.User{}).Where("is_deleted = ?", showDeleted)
	db.Count(&total)

	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully.", fiber.Map{
		"users": users,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// AdminGetUser fetches a single user by id
func AdminGetUser(c *fiber.Ctx) error {
	if _, err := requireAdmin(c); err != nil {
		return err
	}

	userID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user id!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ?", userID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User fetched successfully.", user)
}

// AdminUpdateUser updates a user's profile fields and role
func AdminUpdateUser(c *fiber.Ctx) error {
	if _, err := requireAdmin(c); err != nil {
		return err
	}

	userID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user id!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedUserUpdate").(*struct {
		Name     string `json:"name"`
		Mobile   string `json:"mobile"`
		Stream   string `json:"stream"`
		Year     string `json:"year"`
		Division string `json:"division"`
		Gender   string `json:"gender"`
		Role     string `json:"role"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Update only provided fields
	if reqData.Name != "" {
		user.Name = reqData.Name
	}
	if reqData.Mobile != "" {
		user.Mobile = reqData.Mobile
	}
	if reqData.Stream != "" {
		user.Stream = reqData.Stream
	}
	if reqData.Year != "" {
		user.Year = reqData.Year
	}
	if reqData.Division != "" {
		user.Division = reqData.Division
	}
	if reqData.Gender != "" {
		user.Gender = reqData.Gender
	}
	if reqData.Role == models.RoleStudent || reqData.Role == models.RoleAdmin {
		user.Role = reqData.Role
	}

	if err := database.Database.Db.Save(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User updated successfully.", user)
}

// AdminSoftDeleteUser flags a user as deleted. The record stays restorable.
func AdminSoftDeleteUser(c *fiber.Ctx) error {
	if _, err := requireAdmin(c); err != nil {
		return err
	}

	userID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user id!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	now := time.Now()
	user.IsDeleted = true
	user.DeletedAt = &now

	if err := database.Database.Db.Save(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User deleted successfully.", nil)
}

// AdminRestoreUser clears the soft-delete flag and timestamp
func AdminRestoreUser(c *fiber.Ctx) error {
	if _, err := requireAdmin(c); err != nil {
		return err
	}

	userID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user id!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, true).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Deleted user not found!", nil)
	}

	user.IsDeleted = false
	user.DeletedAt = nil

	if err := database.Database.Db.Save(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to restore user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User restored successfully.", user)
}

// AdminHardDeleteUser removes the record and the user's upload folder
func AdminHardDeleteUser(c *fiber.Ctx) error {
	if _, err := requireAdmin(c); err != nil {
		return err
	}

	userID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user id!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ?", userID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	if err := database.Database.Db.Delete(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete user!", nil)
	}

	userDir := filepath.Join(config.AppConfig.UploadDir, "users", fmt.Sprintf("%d", user.ID))
	if err := utils.RemoveUserUploads(userDir); err != nil {
		log.Printf("Error removing uploads for user %d: %v", user.ID, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User permanently deleted.", nil)
}
