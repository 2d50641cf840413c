package emailValidator

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// SendEmail validator middleware. Responses use the bare function contract
// ({error} with 400), matching the endpoint itself.
func SendEmail() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			To      string `json:"to"`
			Subject string `json:"subject"`
			HTML    string `json:"html"`
			Text    string `json:"text"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}

		if reqData.To == "" || reqData.Subject == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing 'to' or 'subject' fields"})
		}

		if err := validate.Var(reqData.To, "required,email"); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid 'to' address"})
		}

		c.Locals("validatedEmail", reqData)
		return c.Next()
	}
}
