package contentController

import (
	"rbtech/database"
	"rbtech/middleware"
	"rbtech/models"
	"rbtech/utils"

	"github.com/gofiber/fiber/v2"
)

func GetAllBlogs(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedList").(*struct {
		Page  *int `json:"page"`
		Limit *int `json:"limit"`
	})
	if !ok {
		var posts []models.BlogPost
		if err := database.Database.Db.
			Where("is_published = ? AND is_deleted = ?", true, false).
			Order("published_at desc").
			Find(&posts).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch blog posts!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Blog posts fetched successfully!", fiber.Map{
			"posts": posts,
		})
	}

	page := *reqData.Page
	limit := *reqData.Limit
	offset := (page - 1) * limit

	var posts []models.BlogPost
	db := database.Database.Db.Model(&models.BlogPost{}).Where("is_published = ? AND is_deleted = ?", true, false)

	var total int64
	db.Count(&total)

	if err := db.Offset(offset).Limit(limit).Order("published_at desc").Find(&posts).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch blog posts!", nil)
	}

	response := map[string]interface{}{
		"posts": posts,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Blog posts fetched successfully!", response)
}

func GetBlogDetails(c *fiber.Ctx) error {
	blogID := c.Locals("blogID").(int)

	var post models.BlogPost
	if err := database.Database.Db.
		Where("id = ? AND is_published = ? AND is_deleted = ?", blogID, true, false).
		First(&post).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Blog post not found!", nil)
	}

	// Structured blocks for specially formatted paragraphs, alongside the raw
	// markdown the client may still render itself
	blocks := utils.ClassifyContent(post.Content)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Blog post fetched successfully!", fiber.Map{
		"post":   post,
		"blocks": blocks,
	})
}
