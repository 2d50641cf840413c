package emailController_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"rbtech/config"
	"rbtech/database"
	"rbtech/models"
	"rbtech/routers/emailRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// The provider key stays empty, so each send fails with a configuration error.
// That keeps the relay and batch paths deterministic without network calls.
func setupTest(t *testing.T) *fiber.App {
	config.AppConfig = &config.Config{
		JWTKey:      "test-secret",
		SaltRound:   4,
		APIBaseURL:  "http://localhost:3000",
		FrontendURL: "http://localhost:8080",
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	emailRoutes.SetupEmailRoutes(app)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestSendEmailValidation(t *testing.T) {
	app := setupTest(t)

	resp := postJSON(t, app, "/send-email", `{"subject": "No recipient"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = postJSON(t, app, "/send-email", `{"to": "not-an-email", "subject": "Hello"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSendEmailUnconfiguredProvider(t *testing.T) {
	app := setupTest(t)

	resp := postJSON(t, app, "/send-email", `{"to": "dev@example.com", "subject": "Hello", "html": "<p>Hi</p>"}`)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestSendNewsletterNoConfirmedSubscribers(t *testing.T) {
	app := setupTest(t)
	db := database.Database.Db

	// Unconfirmed subscribers are not recipients
	require.NoError(t, db.Create(&models.NewsletterSubscriber{
		Email:            "pending@example.com",
		UnsubscribeToken: "tok-1",
	}).Error)

	resp := postJSON(t, app, "/send-newsletter", `{"subject": "Hello"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "No confirmed subscribers", body["message"])
}

func TestSendNewsletterReportsPerRecipientFailures(t *testing.T) {
	app := setupTest(t)
	db := database.Database.Db

	for _, email := range []string{"a@example.com", "b@example.com"} {
		require.NoError(t, db.Create(&models.NewsletterSubscriber{
			Email:            email,
			UnsubscribeToken: "tok-" + email,
			Confirmed:        true,
		}).Error)
	}

	resp := postJSON(t, app, "/send-newsletter", `{"subject": "Hello", "html": "<h1>Hi {{name}}</h1>"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Success bool `json:"success"`
		Total   int  `json:"total"`
		Sent    int  `json:"sent"`
		Failed  int  `json:"failed"`
		Errors  []struct {
			Email string `json:"email"`
		} `json:"errors"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.Equal(t, 2, body.Total)
	assert.Equal(t, 0, body.Sent)
	assert.Equal(t, 2, body.Failed)
	assert.Len(t, body.Errors, 2)
}
