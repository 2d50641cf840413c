package newsletterController

import (
	"fmt"
	"log"

	"rbtech/database"
	"rbtech/middleware"
	"rbtech/models"
	"rbtech/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm/clause"
)

// Subscribe handles the footer newsletter form. Upsert on email keeps one row
// per address and preserves the original unsubscribe token; the confirmation
// email goes out after the row is persisted.
func Subscribe(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSubscriber").(*struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	subscriber := models.NewsletterSubscriber{
		Email:            reqData.Email,
		Name:             reqData.Name,
		UnsubscribeToken: uuid.NewString(),
	}

	if err := database.Database.Db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoNothing: true,
		}).
		Create(&subscriber).Error; err != nil {
		log.Printf("Error upserting subscriber %s: %v", reqData.Email, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to subscribe!", nil)
	}

	// Re-read so an existing row keeps its original token
	var row models.NewsletterSubscriber
	if err := database.Database.Db.Where("email = ?", reqData.Email).First(&row).Error; err != nil {
		log.Printf("Error fetching subscriber %s: %v", reqData.Email, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to subscribe!", nil)
	}

	utils.SendConfirmSubscriptionEmail(row.Email, row.UnsubscribeToken)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Check your inbox to confirm your subscription!", fiber.Map{
		"email": row.Email,
	})
}

// ConfirmSubscription handles GET /confirm-subscription?token=. Unknown tokens
// return 404 and mutate nothing.
func ConfirmSubscription(c *fiber.Ctx) error {
	token := c.Query("token")
	if token == "" {
		return c.Status(fiber.StatusBadRequest).SendString("Missing token")
	}

	var subscriber models.NewsletterSubscriber
	if err := database.Database.Db.
		Where("unsubscribe_token = ? AND is_deleted = ?", token, false).
		First(&subscriber).Error; err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Invalid token or subscriber not found")
	}

	if err := database.Database.Db.Model(&subscriber).Update("confirmed", true).Error; err != nil {
		log.Printf("Error confirming subscriber %s: %v", subscriber.Email, err)
		return c.Status(fiber.StatusInternalServerError).SendString("Error confirming subscription")
	}

	html := fmt.Sprintf("<html><body><h1>Subscription Confirmed</h1><p>Thanks, %s is now confirmed for RBTechTalks.</p></body></html>", subscriber.Email)
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(html)
}

// Unsubscribe handles GET /unsubscribe?token=
func Unsubscribe(c *fiber.Ctx) error {
	token := c.Query("token")
	if token == "" {
		return c.Status(fiber.StatusBadRequest).SendString("Missing token")
	}

	var subscriber models.NewsletterSubscriber
	if err := database.Database.Db.
		Where("unsubscribe_token = ? AND is_deleted = ?", token, false).
		First(&subscriber).Error; err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Invalid token or subscriber not found")
	}

	if err := database.Database.Db.Model(&subscriber).Update("confirmed", false).Error; err != nil {
		log.Printf("Error unsubscribing %s: %v", subscriber.Email, err)
		return c.Status(fiber.StatusInternalServerError).SendString("Error")
	}

	return c.SendString("You have been unsubscribed. Thank you.")
}

// JoinWaitlist handles the waitlist form. Check-then-insert; the unique index
// on email backstops a duplicate race.
func JoinWaitlist(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedWaitlist").(*struct {
		Email string `json:"email"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := database.Database.Db.
		Where("email = ? AND is_deleted = ?", reqData.Email, false).
		First(&models.WaitlistEntry{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You're already on the waitlist!", nil)
	}

	entry := models.WaitlistEntry{Email: reqData.Email}
	if err := database.Database.Db.Create(&entry).Error; err != nil {
		log.Printf("Error adding waitlist entry %s: %v", reqData.Email, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to join the waitlist!", nil)
	}

	utils.SendWaitlistWelcomeEmail(entry.Email)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Welcome to the waitlist!", fiber.Map{
		"email": entry.Email,
	})
}

// WaitlistCount reports the total number of waitlist entries
func WaitlistCount(c *fiber.Ctx) error {
	var count int64
	if err := database.Database.Db.
		Model(&models.WaitlistEntry{}).
		Where("is_deleted = ?", false).
		Count(&count).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch waitlist count!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Waitlist count fetched successfully!", fiber.Map{
		"count": count,
	})
}
