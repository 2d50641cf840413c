package paymentValidator

import (
	"github.com/gofiber/fiber/v2"
)

// CreateCheckoutSession validator middleware. This endpoint keeps the bare
// function contract, so failures respond {error} with 400 rather than the
// envelope format.
func CreateCheckoutSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CourseID uint `json:"courseId"`
			UserID   uint `json:"userId"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}

		if reqData.CourseID == 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "courseId is required"})
		}

		if reqData.UserID == 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "You must be logged in to enroll in a course"})
		}

		c.Locals("validatedCheckout", reqData)
		return c.Next()
	}
}
