package paymentController

import (
	"encoding/json"
	"log"

	"rbtech/config"
	"rbtech/database"
	"rbtech/models"
	"rbtech/models/course"
	"rbtech/utils"

	"github.com/gofiber/fiber/v2"
)

// StripeWebhook handles POST /stripe-webhook. The signature check is the only
// integrity control: nothing is processed on a mismatch. A completed checkout
// flips the matching enrollment from pending to paid; a repeat delivery updates
// the row to the same value and is a no-op.
func StripeWebhook(c *fiber.Ctx) error {
	payload := c.Body()
	signature := c.Get("Stripe-Signature")

	event, err := utils.ConstructStripeEvent(payload, signature, config.AppConfig.StripeWebhookSecret)
	if err != nil {
		log.Printf("Webhook signature verification failed: %v", err)
		return c.Status(fiber.StatusBadRequest).SendString("Webhook signature verification failed.")
	}

	if event.Type != utils.CheckoutSessionCompleted {
		// No other event types are handled
		return c.SendString("ok")
	}

	var session utils.StripeSessionObject
	if err := json.Unmarshal(event.Data.Object, &session); err != nil {
		log.Printf("Error parsing session object from event %s: %v", event.ID, err)
		return c.Status(fiber.StatusBadRequest).SendString("Invalid event payload.")
	}

	// Only pending rows transition; a repeat delivery matches nothing and
	// never re-sends the confirmation email
	result := database.Database.Db.
		Model(&course.Enrollment{}).
		Where("stripe_session_id = ? AND status = ? AND is_deleted = ?", session.ID, course.EnrollmentPending, false).
		Update("status", course.EnrollmentPaid)
	if result.Error != nil {
		log.Printf("Error updating enrollment for session %s: %v", session.ID, result.Error)
		// Acknowledge anyway; Stripe retries on non-2xx and the update is
		// idempotent on the next delivery
	}

	if result.RowsAffected > 0 {
		notifyEnrollmentPaid(session.ID)
	}

	return c.SendString("ok")
}

// notifyEnrollmentPaid sends the confirmation email for a freshly paid
// enrollment. Notify failures never affect the persisted state.
func notifyEnrollmentPaid(sessionID string) {
	var enrollment course.Enrollment
	if err := database.Database.Db.
		Preload("Course").
		Where("stripe_session_id = ?", sessionID).
		First(&enrollment).Error; err != nil {
		log.Printf("Error loading enrollment for session %s: %v", sessionID, err)
		return
	}

	var user models.User
	if err := database.Database.Db.
		Where("id = ? AND is_deleted = ?", enrollment.UserID, false).
		First(&user).Error; err != nil {
		log.Printf("Error loading user %d for paid enrollment: %v", enrollment.UserID, err)
		return
	}

	utils.SendEnrollmentPaidEmail(user.Email, enrollment.Course.Title)
}
