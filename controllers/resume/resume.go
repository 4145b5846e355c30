package resumeController

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/utils"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// GetResume returns the caller's resume
func GetResume(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var resume models.Resume
	if err := database.Database.Db.Where("user_id = ?", userID).First(&resume).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Resume not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Resume fetched successfully!", resume)
}

// SaveResume creates or replaces the caller's resume
func SaveResume(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedResume").(*struct {
		Title   string         `json:"title"`
		Content datatypes.JSON `json:"content"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var resume models.Resume
	err := database.Database.Db.Where("user_id = ?", userID).First(&resume).Error
	if err != nil {
		resume = models.Resume{
			UserID:  userID,
			Title:   reqData.Title,
			Content: reqData.Content,
		}
		if err := database.Database.Db.Create(&resume).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save resume!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusCreated, true, "Resume created successfully!", resume)
	}

	resume.Title = reqData.Title
	resume.Content = reqData.Content
	if err := database.Database.Db.Save(&resume).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save resume!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Resume updated successfully!", resume)
}

// EnhanceResume asks the AI service for a polished summary of the resume text
func EnhanceResume(c *fiber.Ctx) error {
	_, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedEnhance").(*struct {
		Text string `json:"text"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	summary, err := utils.GenerateResumeSummary(reqData.Text)
	if err != nil {
		log.Printf("Error enhancing resume: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate summary!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Summary generated successfully!", fiber.Map{
		"summary": summary,
	})
}
