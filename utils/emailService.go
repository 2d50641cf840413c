package utils

import (
	"fmt"
	"log"

	"rbtech/config"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail sends a single email through SendGrid and returns the provider
// message id. One best-effort call, no retry.
func SendEmail(to, subject, htmlBody, textBody string) (string, error) {
	if config.AppConfig.SendGridApiKey == "" {
		return "", fmt.Errorf("SENDGRID_API_KEY not configured")
	}

	if htmlBody == "" {
		htmlBody = "<p></p>"
	}
	if textBody == "" {
		textBody = " "
	}

	from := mail.NewEmail(config.AppConfig.EmailFromName, config.AppConfig.EmailSender)
	message := mail.NewSingleEmail(from, subject, mail.NewEmail("", to), textBody, htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendGridApiKey)
	resp, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending email to %s: %v", to, err)
		return "", err
	}

	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("sendgrid error (%d): %s", resp.StatusCode, resp.Body)
	}

	var messageID string
	if ids := resp.Headers["X-Message-Id"]; len(ids) > 0 {
		messageID = ids[0]
	}

	return messageID, nil
}

// HTML wrapper for site emails
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #020617; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #0F172A; border-radius: 8px; overflow: hidden; }
			.header { background-color: #1E293B; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #E2E8F0; line-height: 1.6; }
			.content h2 { color: #FFFFFF; margin-top: 0; }
			.footer { background-color: #1E293B; padding: 20px; text-align: center; font-size: 12px; color: #94A3B8; }
			.btn { display: inline-block; padding: 12px 24px; background-color: #6366F1; color: #FFFFFF; text-decoration: none; border-radius: 4px; font-weight: bold; margin-top: 20px; }
			.info-box { background: #1E293B; padding: 15px; border-radius: 4px; border-left: 4px solid #6366F1; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>RBTECHTALKS</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 RBTechTalks. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// --- Triggers ---

// 1. Welcome / Signup
func SendWelcomeEmail(email, name string) {
	subject := "Welcome to RBTechTalks"
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Welcome to <strong>RBTechTalks</strong>! Your account has been created.</p>
		<p>You can now enroll in courses, watch videos and follow the blog.</p>
	`, name)

	go sendTriggered(email, subject, getEmailTemplate("Welcome Onboard!", body))
}

// 2. Newsletter confirmation with confirm + unsubscribe links
func SendConfirmSubscriptionEmail(email, token string) {
	confirmURL := fmt.Sprintf("%s/confirm-subscription?token=%s", config.AppConfig.APIBaseURL, token)
	unsubscribeURL := fmt.Sprintf("%s/unsubscribe?token=%s", config.AppConfig.APIBaseURL, token)

	subject := "Confirm your RBTechTalks subscription"
	body := fmt.Sprintf(`
		<p>Thanks for subscribing to the RBTechTalks newsletter.</p>
		<p>Please confirm your subscription to start receiving updates.</p>
		<a href="%s" class="btn">Confirm Subscription</a>
		<p style="margin-top: 30px; font-size: 12px; color: #94A3B8;">
			Didn't sign up? <a href="%s" style="color: #94A3B8;">Unsubscribe</a>.
		</p>
	`, confirmURL, unsubscribeURL)

	go sendTriggered(email, subject, getEmailTemplate("One More Step", body))
}

// 3. Waitlist welcome
func SendWaitlistWelcomeEmail(email string) {
	subject := "You're on the RBTechTalks waitlist"
	body := `
		<p>Welcome aboard!</p>
		<p>You're on the waitlist. We'll email you as soon as new courses open up.</p>
		<div class="info-box">Keep an eye on your inbox for early access.</div>
	`

	go sendTriggered(email, subject, getEmailTemplate("Welcome to the Waitlist", body))
}

// 4. Payment confirmed
func SendEnrollmentPaidEmail(email, courseTitle string) {
	subject := "Enrollment confirmed: " + courseTitle
	body := fmt.Sprintf(`
		<p>Your payment went through and you are now enrolled in <strong>%s</strong>.</p>
		<a href="%s/courses" class="btn">Start Learning</a>
	`, courseTitle, config.AppConfig.FrontendURL)

	go sendTriggered(email, subject, getEmailTemplate("You're In!", body))
}

func sendTriggered(email, subject, html string) {
	if _, err := SendEmail(email, subject, html, ""); err != nil {
		log.Printf("Error sending %q email to %s: %v", subject, email, err)
	}
}
