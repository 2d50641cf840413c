package paymentController

import (
	"fmt"
	"log"

	"rbtech/database"
	"rbtech/models/course"
	"rbtech/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateCheckoutForCourse resolves the course's Stripe price, creates a
// checkout session and writes the pending enrollment row. It returns the
// session redirect URL. A session created before a failed insert is not
// invalidated.
func CreateCheckoutForCourse(courseID, userID uint) (string, error) {
	var crs course.Course
	if err := database.Database.Db.
		Where("id = ? AND is_deleted = ?", courseID, false).
		First(&crs).Error; err != nil {
		return "", fmt.Errorf("Course not found")
	}

	if crs.StripePriceID == "" {
		return "", fmt.Errorf("Missing Stripe price ID for this course")
	}

	price, err := utils.RetrieveStripePrice(crs.StripePriceID)
	if err != nil {
		return "", err
	}

	mode := course.ModePayment
	if price.Recurring != nil {
		mode = course.ModeSubscription
	}

	session, err := utils.CreateStripeCheckoutSession(price.ID, mode, courseID, userID)
	if err != nil {
		return "", err
	}

	enrollment := course.Enrollment{
		UserID:          userID,
		CourseID:        courseID,
		Status:          course.EnrollmentPending,
		StripeSessionID: session.ID,
		CheckoutMode:    mode,
		ViaRedirect:     true,
	}
	if err := database.Database.Db.Create(&enrollment).Error; err != nil {
		log.Printf("Error creating pending enrollment for session %s: %v", session.ID, err)
		return "", fmt.Errorf("Failed to create enrollment: %v", err)
	}

	return session.URL, nil
}

// CreateCheckoutSession handles POST /create-checkout-session. The response
// shape is the bare function contract: {url} on success, {error} with 400
// otherwise.
func CreateCheckoutSession(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCheckout").(*struct {
		CourseID uint `json:"courseId"`
		UserID   uint `json:"userId"`
	})
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	url, err := CreateCheckoutForCourse(reqData.CourseID, reqData.UserID)
	if err != nil {
		log.Printf("Checkout session error for course %d: %v", reqData.CourseID, err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"url": url})
}
