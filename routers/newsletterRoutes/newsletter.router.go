package newsletterRoutes

import (
	newsletterControllers "rbtech/controllers/newsletter"
	newsletterValidators "rbtech/validators/newsletter"

	"github.com/gofiber/fiber/v2"
)

// SetupNewsletterRoutes sets up newsletter signup, token links and the waitlist
func SetupNewsletterRoutes(app *fiber.App) {
	app.Post("/newsletter/subscribe", newsletterValidators.Subscribe(), newsletterControllers.Subscribe)

	// Token links from emails; plain HTML/text responses
	app.Get("/confirm-subscription", newsletterControllers.ConfirmSubscription)
	app.Get("/unsubscribe", newsletterControllers.Unsubscribe)

	waitlistGroup := app.Group("/waitlist")
	waitlistGroup.Post("/join", newsletterValidators.JoinWaitlist(), newsletterControllers.JoinWaitlist)
	waitlistGroup.Get("/count", newsletterControllers.WaitlistCount)
}
