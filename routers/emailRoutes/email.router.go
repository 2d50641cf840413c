package emailRoutes

import (
	emailControllers "rbtech/controllers/email"
	emailValidators "rbtech/validators/email"

	"github.com/gofiber/fiber/v2"
)

// SetupEmailRoutes sets up the transactional and bulk email function endpoints
func SetupEmailRoutes(app *fiber.App) {
	app.Post("/send-email", emailValidators.SendEmail(), emailControllers.SendEmail)
	app.Post("/send-newsletter", emailControllers.SendNewsletter)
}
