package newsletterController_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"rbtech/config"
	"rbtech/database"
	"rbtech/models"
	"rbtech/routers/newsletterRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTest(t *testing.T) *fiber.App {
	config.AppConfig = &config.Config{
		JWTKey:      "test-secret",
		SaltRound:   4,
		FrontendURL: "http://localhost:8080",
		APIBaseURL:  "http://localhost:3000",
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	newsletterRoutes.SetupNewsletterRoutes(app)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestSubscribeCreatesRowWithToken(t *testing.T) {
	app := setupTest(t)

	resp := postJSON(t, app, "/newsletter/subscribe", `{"email": "Dev@Example.com", "name": "Dev"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var subscriber models.NewsletterSubscriber
	require.NoError(t, database.Database.Db.
		Where("email = ?", "dev@example.com").
		First(&subscriber).Error)
	assert.NotEmpty(t, subscriber.UnsubscribeToken)
	assert.False(t, subscriber.Confirmed)
}

func TestSubscribeAgainKeepsOriginalToken(t *testing.T) {
	app := setupTest(t)

	resp := postJSON(t, app, "/newsletter/subscribe", `{"email": "dev@example.com", "name": "Dev"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var first models.NewsletterSubscriber
	require.NoError(t, database.Database.Db.
		Where("email = ?", "dev@example.com").
		First(&first).Error)

	resp = postJSON(t, app, "/newsletter/subscribe", `{"email": "dev@example.com", "name": "Dev Again"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var second models.NewsletterSubscriber
	require.NoError(t, database.Database.Db.
		Where("email = ?", "dev@example.com").
		First(&second).Error)
	assert.Equal(t, first.UnsubscribeToken, second.UnsubscribeToken)

	var count int64
	require.NoError(t, database.Database.Db.
		Model(&models.NewsletterSubscriber{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSubscribeRejectsInvalidEmail(t *testing.T) {
	app := setupTest(t)

	resp := postJSON(t, app, "/newsletter/subscribe", `{"email": "not-an-email"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var count int64
	require.NoError(t, database.Database.Db.
		Model(&models.NewsletterSubscriber{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestConfirmSubscription(t *testing.T) {
	app := setupTest(t)

	subscriber := models.NewsletterSubscriber{
		Email:            "dev@example.com",
		Name:             "Dev",
		UnsubscribeToken: "tok-123",
	}
	require.NoError(t, database.Database.Db.Create(&subscriber).Error)

	req := httptest.NewRequest(http.MethodGet, "/confirm-subscription?token=tok-123", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	var got models.NewsletterSubscriber
	require.NoError(t, database.Database.Db.First(&got, subscriber.ID).Error)
	assert.True(t, got.Confirmed)
}

func TestConfirmSubscriptionUnknownToken(t *testing.T) {
	app := setupTest(t)

	subscriber := models.NewsletterSubscriber{
		Email:            "dev@example.com",
		UnsubscribeToken: "tok-123",
	}
	require.NoError(t, database.Database.Db.Create(&subscriber).Error)

	req := httptest.NewRequest(http.MethodGet, "/confirm-subscription?token=tok-wrong", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Missing token is a 400, not a lookup
	req = httptest.NewRequest(http.MethodGet, "/confirm-subscription", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var got models.NewsletterSubscriber
	require.NoError(t, database.Database.Db.First(&got, subscriber.ID).Error)
	assert.False(t, got.Confirmed)
}

func TestUnsubscribe(t *testing.T) {
	app := setupTest(t)

	subscriber := models.NewsletterSubscriber{
		Email:            "dev@example.com",
		UnsubscribeToken: "tok-123",
		Confirmed:        true,
	}
	require.NoError(t, database.Database.Db.Create(&subscriber).Error)

	req := httptest.NewRequest(http.MethodGet, "/unsubscribe?token=tok-123", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var got models.NewsletterSubscriber
	require.NoError(t, database.Database.Db.First(&got, subscriber.ID).Error)
	assert.False(t, got.Confirmed)
}

func TestJoinWaitlistRejectsInvalidEmail(t *testing.T) {
	app := setupTest(t)

	resp := postJSON(t, app, "/waitlist/join", `{"email": "not-an-email"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var count int64
	require.NoError(t, database.Database.Db.
		Model(&models.WaitlistEntry{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestJoinWaitlist(t *testing.T) {
	app := setupTest(t)

	resp := postJSON(t, app, "/waitlist/join", `{"email": "dev@example.com"}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	// Duplicate join conflicts
	resp = postJSON(t, app, "/waitlist/join", `{"email": "dev@example.com"}`)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	req := httptest.NewRequest(http.MethodGet, "/waitlist/count", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Data struct {
			Count int64 `json:"count"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(1), body.Data.Count)
}
