package paymentRoutes

import (
	paymentControllers "rbtech/controllers/payment"
	paymentValidators "rbtech/validators/payment"

	"github.com/gofiber/fiber/v2"
)

// SetupPaymentRoutes sets up the checkout and webhook function endpoints
func SetupPaymentRoutes(app *fiber.App) {
	app.Post("/create-checkout-session", paymentValidators.CreateCheckoutSession(), paymentControllers.CreateCheckoutSession)
	app.Post("/stripe-webhook", paymentControllers.StripeWebhook)
}
