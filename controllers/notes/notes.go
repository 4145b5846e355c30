package noteController

import (
	"lms/database"
	"lms/middleware"
	"lms/models"

	"github.com/gofiber/fiber/v2"
)

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

// GetNotes lists notes, filterable by course and chapter. Public read; the
// denormalized titles make this a single-table query.
func GetNotes(c *fiber.Ctx) error {
	db := database.Database.Db.Model(&models.Note{}).Where("is_deleted = ?", false)

	if courseID := c.QueryInt("course_id"); courseID > 0 {
		db = db.Where("course_id = ?", courseID)
	}
	if chapterID := c.QueryInt("chapter_id"); chapterID > 0 {
		db = db.Where("chapter_id = ?", chapterID)
	}

	var notes []models.Note
	if err := db.Order("created_at desc").Find(&notes).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch notes!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notes fetched successfully!", notes)
}

// AdminCreateNote creates a note, denormalizing course and chapter titles
func AdminCreateNote(c *fiber.Ctx) error {
	if _, err := requireAdmin(c); err != nil {
		return err
	}

	reqData, ok := c.Locals("validatedNote").(*struct {
		Title     string `json:"title"`
		Link      string `json:"link"`
		CourseID  uint   `json:"course_id"`
		ChapterID uint   `json:"chapter_id"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	note := models.Note{
		Title:     reqData.Title,
		Link:      reqData.Link,
		CourseID:  reqData.CourseID,
		ChapterID: reqData.ChapterID,
	}

	if reqData.CourseID > 0 {
		var course models.Course
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", reqData.CourseID, false).First(&course).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		note.CourseTitle = course.Title
	}

	if reqData.ChapterID > 0 {
		var chapter models.Chapter
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", reqData.ChapterID, false).First(&chapter).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Chapter not found!", nil)
		}
		note.ChapterTitle = chapter.Title
	}

	if err := database.Database.Db.Create(&note).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create note!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Note created successfully!", note)
}

// AdminUpdateNote updates a note, refreshing denormalized titles when the
// course or chapter link changes
func AdminUpdateNote(c *fiber.Ctx) error {
	if _, err := requireAdmin(c); err != nil {
		return err
	}

	noteID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid note id!", nil)
	}

	var note models.Note
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", noteID, false).First(&note).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Note not found!", nil)
	}

	reqData, ok := c.Locals("validatedNote").(*struct {
		Title     string `json:"title"`
		Link      string `json:"link"`
		CourseID  uint   `json:"course_id"`
		ChapterID uint   `json:"chapter_id"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Title != "" {
		note.Title = reqData.Title
	}
	if reqData.Link != "" {
		note.Link = reqData.Link
	}
	if reqData.CourseID > 0 && reqData.CourseID != note.CourseID {
		var course models.Course
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", reqData.CourseID, false).First(&course).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		note.CourseID = course.ID
		note.CourseTitle = course.Title
	}
	if reqData.ChapterID > 0 && reqData.ChapterID != note.ChapterID {
		var chapter models.Chapter
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", reqData.ChapterID, false).First(&chapter).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Chapter not found!", nil)
		}
		note.ChapterID = chapter.ID
		note.ChapterTitle = chapter.Title
	}

	if err := database.Database.Db.Save(&note).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update note!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Note updated successfully!", note)
}

// AdminDeleteNote soft deletes a note
func AdminDeleteNote(c *fiber.Ctx) error {
	if _, err := requireAdmin(c); err != nil {
		return err
	}

	noteID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid note id!", nil)
	}

	var note models.Note
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", noteID, false).First(&note).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Note not found!", nil)
	}

	note.IsDeleted = true
	if err := database.Database.Db.Save(&note).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete note!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Note deleted successfully!", nil)
}
