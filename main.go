package main

import (
	"log"

	"rbtech/config"
	"rbtech/database"
	authRoutes "rbtech/routers/authRoutes"
	contentRoutes "rbtech/routers/contentRoutes"
	courseRoutes "rbtech/routers/courseRoutes"
	emailRoutes "rbtech/routers/emailRoutes"
	newsletterRoutes "rbtech/routers/newsletterRoutes"
	paymentRoutes "rbtech/routers/paymentRoutes"
	"rbtech/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization,Stripe-Signature",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files from the public folder
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app)
	contentRoutes.SetupContentRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	paymentRoutes.SetupPaymentRoutes(app)
	emailRoutes.SetupEmailRoutes(app)
	newsletterRoutes.SetupNewsletterRoutes(app)

	utils.InitializeSchedulers()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
