package main

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"rbtech/config"
	"rbtech/database"
	"rbtech/models"
	"rbtech/models/course"
)

// seedFile describes the content.json layout consumed by this seeder.
// Courses are authored out-of-band; this is the back-office path into the
// store.
type seedFile struct {
	Courses []struct {
		Title         string   `json:"title"`
		Description   string   `json:"description"`
		Author        string   `json:"author"`
		Duration      string   `json:"duration"`
		Price         float64  `json:"price"`
		StripePriceID string   `json:"stripe_price_id"`
		Rating        float64  `json:"rating"`
		Features      []string `json:"features"`
		ThumbnailURL  string   `json:"thumbnail_url"`
		Lessons       []struct {
			Title    string `json:"title"`
			Content  string `json:"content"`
			Duration string `json:"duration"`
		} `json:"lessons"`
	} `json:"courses"`
	Posts []struct {
		Title       string `json:"title"`
		Author      string `json:"author"`
		Excerpt     string `json:"excerpt"`
		Content     string `json:"content"`
		Tags        string `json:"tags"`
		ReadTime    string `json:"read_time"`
		PublishedAt string `json:"published_at"`
	} `json:"posts"`
	Videos []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		YoutubeID   string `json:"youtube_id"`
		Duration    string `json:"duration"`
	} `json:"videos"`
}

func main() {
	config.LoadConfig()
	database.ConnectDb()

	raw, err := os.ReadFile("content.json")
	if err != nil {
		log.Fatalf("Failed to open content.json: %v", err)
	}

	var seed seedFile
	if err := json.Unmarshal(raw, &seed); err != nil {
		log.Fatalf("Failed to parse content.json: %v", err)
	}

	db := database.Database.Db

	for _, c := range seed.Courses {
		features, err := json.Marshal(c.Features)
		if err != nil {
			log.Fatalf("Failed to encode features for %q: %v", c.Title, err)
		}

		crs := course.Course{
			Title:         c.Title,
			Description:   c.Description,
			Author:        c.Author,
			Duration:      c.Duration,
			Price:         c.Price,
			StripePriceID: c.StripePriceID,
			Rating:        c.Rating,
			Features:      features,
			ThumbnailURL:  c.ThumbnailURL,
			IsPublished:   true,
		}
		if err := db.Where("title = ?", c.Title).FirstOrCreate(&crs).Error; err != nil {
			log.Fatalf("Failed to seed course %q: %v", c.Title, err)
		}

		for i, l := range c.Lessons {
			lesson := course.Lesson{
				CourseID: crs.ID,
				Title:    l.Title,
				Content:  l.Content,
				Duration: l.Duration,
				OrderNum: i + 1,
			}
			if err := db.Where("course_id = ? AND title = ?", crs.ID, l.Title).FirstOrCreate(&lesson).Error; err != nil {
				log.Fatalf("Failed to seed lesson %q: %v", l.Title, err)
			}
		}

		log.Printf("Seeded course %q with %d lessons", c.Title, len(c.Lessons))
	}

	for _, p := range seed.Posts {
		publishedAt := time.Now()
		if p.PublishedAt != "" {
			parsed, err := time.Parse("2006-01-02", p.PublishedAt)
			if err != nil {
				log.Fatalf("Invalid published_at for %q: %v", p.Title, err)
			}
			publishedAt = parsed
		}

		post := models.BlogPost{
			Title:       p.Title,
			Author:      p.Author,
			Excerpt:     p.Excerpt,
			Content:     p.Content,
			Tags:        p.Tags,
			ReadTime:    p.ReadTime,
			PublishedAt: publishedAt,
			IsPublished: true,
		}
		if err := db.Where("title = ?", p.Title).FirstOrCreate(&post).Error; err != nil {
			log.Fatalf("Failed to seed post %q: %v", p.Title, err)
		}
	}
	log.Printf("Seeded %d blog posts", len(seed.Posts))

	for _, v := range seed.Videos {
		video := models.Video{
			Title:       v.Title,
			Description: v.Description,
			YoutubeID:   v.YoutubeID,
			Duration:    v.Duration,
			IsPublished: true,
		}
		if err := db.Where("youtube_id = ?", v.YoutubeID).FirstOrCreate(&video).Error; err != nil {
			log.Fatalf("Failed to seed video %q: %v", v.Title, err)
		}
	}
	log.Printf("Seeded %d videos", len(seed.Videos))
}
