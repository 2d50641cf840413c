package contentRoutes

import (
	contentControllers "rbtech/controllers/content"
	contentValidators "rbtech/validators/content"

	"github.com/gofiber/fiber/v2"
)

// SetupContentRoutes sets up the public blog and video routes
func SetupContentRoutes(app *fiber.App) {
	blogGroup := app.Group("/blog")
	blogGroup.Get("/list", contentValidators.BlogList(), contentControllers.GetAllBlogs)
	blogGroup.Get("/:id", contentValidators.GetBlogDetail(), contentControllers.GetBlogDetails)

	videoGroup := app.Group("/video")
	videoGroup.Get("/list", contentControllers.GetAllVideos)
	videoGroup.Get("/:id", contentValidators.GetVideoDetail(), contentControllers.GetVideoDetails)
}
