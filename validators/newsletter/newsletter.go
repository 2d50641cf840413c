package newsletterValidator

import (
	"strings"

	"rbtech/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// Subscribe validator middleware. A syntactically invalid email never reaches
// the store layer.
func Subscribe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Email string `json:"email"`
			Name  string `json:"name"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Email = strings.ToLower(strings.TrimSpace(reqData.Email))

		if err := validate.Var(reqData.Email, "required,email"); err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"email": "Invalid email!",
			})
		}

		c.Locals("validatedSubscriber", reqData)
		return c.Next()
	}
}

// JoinWaitlist validator middleware
func JoinWaitlist() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Email string `json:"email"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Email = strings.ToLower(strings.TrimSpace(reqData.Email))

		if err := validate.Var(reqData.Email, "required,email"); err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"email": "Invalid email!",
			})
		}

		c.Locals("validatedWaitlist", reqData)
		return c.Next()
	}
}
