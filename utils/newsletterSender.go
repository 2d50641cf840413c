package utils

import (
	"fmt"
	"log"
	"sync"

	"rbtech/config"
	"rbtech/database"
	"rbtech/models"
)

// newsletterBatchSize bounds how many sends run concurrently per batch
const newsletterBatchSize = 20

// NewsletterSendError records a single failed recipient
type NewsletterSendError struct {
	Email string `json:"email"`
	Error string `json:"error"`
}

// NewsletterSendReport aggregates a bulk send
type NewsletterSendReport struct {
	Total  int                   `json:"total"`
	Sent   int                   `json:"sent"`
	Failed int                   `json:"failed"`
	Errors []NewsletterSendError `json:"errors"`
}

// SendNewsletterToConfirmed renders the templates per recipient and sends to
// every confirmed subscriber in concurrent batches. Per-recipient failures are
// tallied, never retried.
func SendNewsletterToConfirmed(subject, htmlTemplate, textTemplate string) (*NewsletterSendReport, error) {
	var subscribers []models.NewsletterSubscriber
	if err := database.Database.Db.
		Where("confirmed = ? AND is_deleted = ?", true, false).
		Find(&subscribers).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch subscribers: %v", err)
	}

	report := &NewsletterSendReport{Total: len(subscribers)}
	if len(subscribers) == 0 {
		return report, nil
	}

	var mu sync.Mutex

	for start := 0; start < len(subscribers); start += newsletterBatchSize {
		end := start + newsletterBatchSize
		if end > len(subscribers) {
			end = len(subscribers)
		}

		var wg sync.WaitGroup
		for _, sub := range subscribers[start:end] {
			wg.Add(1)
			go func(sub models.NewsletterSubscriber) {
				defer wg.Done()

				name := sub.Name
				if name == "" {
					name = "Developer"
				}
				data := map[string]string{
					"name":              name,
					"unsubscribe_token": sub.UnsubscribeToken,
					"unsubscribe_url":   fmt.Sprintf("%s/unsubscribe?token=%s", config.AppConfig.APIBaseURL, sub.UnsubscribeToken),
				}

				html := RenderTemplate(htmlTemplate, data)
				text := RenderTemplate(textTemplate, data)

				_, err := SendEmail(sub.Email, subject, html, text)

				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					report.Failed++
					report.Errors = append(report.Errors, NewsletterSendError{Email: sub.Email, Error: err.Error()})
				} else {
					report.Sent++
				}
			}(sub)
		}
		wg.Wait()
	}

	log.Printf("Newsletter send complete: %d sent, %d failed of %d", report.Sent, report.Failed, report.Total)
	return report, nil
}
