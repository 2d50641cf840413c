package emailController

import (
	"log"
	"strings"

	"rbtech/utils"

	"github.com/gofiber/fiber/v2"
)

// SendEmail handles POST /send-email: a single best-effort relay to the email
// provider. Provider errors are relayed verbatim.
func SendEmail(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedEmail").(*struct {
		To      string `json:"to"`
		Subject string `json:"subject"`
		HTML    string `json:"html"`
		Text    string `json:"text"`
	})
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing 'to' or 'subject' fields"})
	}

	id, err := utils.SendEmail(reqData.To, reqData.Subject, reqData.HTML, reqData.Text)
	if err != nil {
		log.Printf("Error relaying email to %s: %v", reqData.To, err)
		status := fiber.StatusBadGateway
		if strings.Contains(err.Error(), "not configured") {
			status = fiber.StatusInternalServerError
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"success": true, "id": id})
}

// SendNewsletter handles POST /send-newsletter: renders the provided templates
// per confirmed subscriber and sends in bounded concurrent batches
func SendNewsletter(c *fiber.Ctx) error {
	reqData := new(struct {
		Subject string `json:"subject"`
		HTML    string `json:"html"`
		Text    string `json:"text"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	subject := reqData.Subject
	if subject == "" {
		subject = "RBTechTalks Newsletter"
	}
	htmlTemplate := reqData.HTML
	if htmlTemplate == "" {
		htmlTemplate = "<h1>Hi {{name}}</h1><p>No content</p>"
	}
	textTemplate := reqData.Text
	if textTemplate == "" {
		textTemplate = "Hi {{name}}"
	}

	report, err := utils.SendNewsletterToConfirmed(subject, htmlTemplate, textTemplate)
	if err != nil {
		log.Printf("Newsletter send error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if report.Total == 0 {
		return c.JSON(fiber.Map{"message": "No confirmed subscribers"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"total":   report.Total,
		"sent":    report.Sent,
		"failed":  report.Failed,
		"errors":  report.Errors,
	})
}
