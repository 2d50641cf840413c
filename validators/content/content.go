package contentValidator

import (
	"strconv"

	"rbtech/middleware"

	"github.com/gofiber/fiber/v2"
)

// BlogList validator middleware; pagination is optional
func BlogList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page  *int `json:"page"`
			Limit *int `json:"limit"`
		})
		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request query!", nil)
		}

		// Without both params the controller returns the full list
		if reqData.Page == nil || reqData.Limit == nil {
			return c.Next()
		}

		errors := make(map[string]string)

		if *reqData.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}
		if *reqData.Limit < 1 {
			errors["limit"] = "Limit must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedList", reqData)
		return c.Next()
	}
}

// GetBlogDetail validator middleware
func GetBlogDetail() fiber.Handler {
	return func(c *fiber.Ctx) error {
		blogID, err := strconv.Atoi(c.Params("id"))
		if err != nil || blogID < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid blog ID!", nil)
		}

		c.Locals("blogID", blogID)
		return c.Next()
	}
}

// GetVideoDetail validator middleware
func GetVideoDetail() fiber.Handler {
	return func(c *fiber.Ctx) error {
		videoID, err := strconv.Atoi(c.Params("id"))
		if err != nil || videoID < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid video ID!", nil)
		}

		c.Locals("videoID", videoID)
		return c.Next()
	}
}
