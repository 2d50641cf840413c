package contentController

import (
	"log"

	"rbtech/database"
	"rbtech/middleware"
	"rbtech/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetAllVideos(c *fiber.Ctx) error {
	var videos []models.Video
	if err := database.Database.Db.
		Where("is_published = ? AND is_deleted = ?", true, false).
		Order("created_at desc").
		Find(&videos).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch videos!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Videos fetched successfully!", fiber.Map{
		"videos": videos,
	})
}

func GetVideoDetails(c *fiber.Ctx) error {
	videoID := c.Locals("videoID").(int)

	var video models.Video
	if err := database.Database.Db.
		Where("id = ? AND is_published = ? AND is_deleted = ?", videoID, true, false).
		First(&video).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Video not found!", nil)
	}

	// Best-effort view counter
	if err := database.Database.Db.Model(&video).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error; err != nil {
		log.Printf("Error incrementing views for video %d: %v", video.ID, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Video fetched successfully!", fiber.Map{
		"video": video,
	})
}
