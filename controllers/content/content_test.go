package contentController_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rbtech/config"
	"rbtech/database"
	"rbtech/models"
	"rbtech/routers/contentRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTest(t *testing.T) *fiber.App {
	config.AppConfig = &config.Config{
		JWTKey:    "test-secret",
		SaltRound: 4,
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	contentRoutes.SetupContentRoutes(app)
	return app
}

func get(t *testing.T, app *fiber.App, path string) *http.Response {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestBlogListReturnsPublishedOnly(t *testing.T) {
	app := setupTest(t)
	db := database.Database.Db

	require.NoError(t, db.Create(&models.BlogPost{
		Title: "Published", Content: "body", IsPublished: true, PublishedAt: time.Now(),
	}).Error)
	require.NoError(t, db.Create(&models.BlogPost{
		Title: "Draft", Content: "body", IsPublished: false, PublishedAt: time.Now(),
	}).Error)

	resp := get(t, app, "/blog/list")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Data struct {
			Posts []models.BlogPost `json:"posts"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Data.Posts, 1)
	assert.Equal(t, "Published", body.Data.Posts[0].Title)
}

func TestBlogListPagination(t *testing.T) {
	app := setupTest(t)
	db := database.Database.Db

	for i := 0; i < 5; i++ {
		require.NoError(t, db.Create(&models.BlogPost{
			Title: "Post", Content: "body", IsPublished: true,
			PublishedAt: time.Now().Add(-time.Duration(i) * time.Hour),
		}).Error)
	}

	resp := get(t, app, "/blog/list?page=2&limit=2")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Data struct {
			Posts      []models.BlogPost `json:"posts"`
			Pagination struct {
				Total int64 `json:"total"`
				Page  int   `json:"page"`
			} `json:"pagination"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Data.Posts, 2)
	assert.Equal(t, int64(5), body.Data.Pagination.Total)
	assert.Equal(t, 2, body.Data.Pagination.Page)
}

func TestBlogDetailsIncludesContentBlocks(t *testing.T) {
	app := setupTest(t)
	db := database.Database.Db

	content := "Lesson 1: Getting started\n\nPlain paragraph.\n\nPro tip: read the docs."
	require.NoError(t, db.Create(&models.BlogPost{
		Title: "Guide", Content: content, IsPublished: true, PublishedAt: time.Now(),
	}).Error)

	resp := get(t, app, "/blog/1")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Data struct {
			Blocks []struct {
				Kind string `json:"kind"`
			} `json:"blocks"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Data.Blocks, 3)
	assert.Equal(t, "lesson_heading", body.Data.Blocks[0].Kind)
	assert.Equal(t, "paragraph", body.Data.Blocks[1].Kind)
	assert.Equal(t, "pro_tip", body.Data.Blocks[2].Kind)
}

func TestBlogDetailsNotFound(t *testing.T) {
	app := setupTest(t)

	resp := get(t, app, "/blog/42")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Non-numeric id rejected by the validator
	resp = get(t, app, "/blog/abc")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestVideoDetailsIncrementsViews(t *testing.T) {
	app := setupTest(t)
	db := database.Database.Db

	require.NoError(t, db.Create(&models.Video{
		Title: "Intro", YoutubeID: "abc123", IsPublished: true,
	}).Error)

	resp := get(t, app, "/video/1")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = get(t, app, "/video/1")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var video models.Video
	require.NoError(t, db.First(&video, 1).Error)
	assert.Equal(t, uint(2), video.Views)
}

func TestVideoListSkipsUnpublished(t *testing.T) {
	app := setupTest(t)
	db := database.Database.Db

	require.NoError(t, db.Create(&models.Video{Title: "Live", YoutubeID: "a", IsPublished: true}).Error)
	require.NoError(t, db.Create(&models.Video{Title: "Hidden", YoutubeID: "b", IsPublished: false}).Error)

	resp := get(t, app, "/video/list")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Data struct {
			Videos []models.Video `json:"videos"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Data.Videos, 1)
	assert.Equal(t, "Live", body.Data.Videos[0].Title)
}
