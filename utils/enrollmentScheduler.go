package utils

import (
	"fmt"
	"log"
	"time"

	"rbtech/config"
	"rbtech/database"
	"rbtech/models"
	coursemodels "rbtech/models/course"

	"github.com/jinzhu/now"
	"github.com/robfig/cron/v3"
)

// stalePendingAge is how long a pending enrollment may wait for its webhook
// before it is treated as an abandoned checkout
const stalePendingAge = 48 * time.Hour

// InitializeSchedulers sets up the background jobs: the daily pending-enrollment
// reaper and the weekly newsletter digest.
func InitializeSchedulers() {
	log.Println("[SCHEDULER] Initializing schedulers...")

	c := cron.New()

	// Daily at 3 AM: clean up abandoned checkouts
	c.AddFunc("0 3 * * *", func() {
		log.Println("[SCHEDULER] Running pending-enrollment cleanup...")
		ReapStalePendingEnrollments()
	})

	// Monday 9 AM: weekly blog digest to confirmed subscribers
	c.AddFunc("0 9 * * 1", func() {
		log.Println("[SCHEDULER] Running weekly digest send...")
		SendWeeklyDigest()
	})

	c.Start()
	log.Println("[SCHEDULER] Schedulers started")
}

// ReapStalePendingEnrollments soft-deletes pending enrollments whose checkout
// was never completed. A webhook arriving later matches nothing and is a no-op.
func ReapStalePendingEnrollments() {
	cutoff := time.Now().Add(-stalePendingAge)

	result := database.Database.Db.
		Model(&coursemodels.Enrollment{}).
		Where("status = ? AND is_deleted = ? AND created_at < ?", coursemodels.EnrollmentPending, false, cutoff).
		Update("is_deleted", true)
	if result.Error != nil {
		log.Printf("[SCHEDULER] Error reaping stale enrollments: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("[SCHEDULER] Reaped %d stale pending enrollments", result.RowsAffected)
	}
}

// SendWeeklyDigest mails confirmed subscribers the posts published during the
// previous week
func SendWeeklyDigest() {
	weekStart := now.BeginningOfWeek()
	since := weekStart.AddDate(0, 0, -7)

	var posts []models.BlogPost
	if err := database.Database.Db.
		Where("is_published = ? AND is_deleted = ? AND published_at >= ? AND published_at < ?", true, false, since, weekStart).
		Order("published_at desc").
		Find(&posts).Error; err != nil {
		log.Printf("[SCHEDULER] Error fetching posts for digest: %v", err)
		return
	}

	if len(posts) == 0 {
		log.Println("[SCHEDULER] No new posts this week, skipping digest")
		return
	}

	items := ""
	for _, post := range posts {
		items += fmt.Sprintf(`
			<div class="info-box">
				<strong>%s</strong>
				<p>%s</p>
				<a href="%s/blog/%d">Read more</a>
			</div>
		`, post.Title, post.Excerpt, config.AppConfig.FrontendURL, post.ID)
	}

	html := getEmailTemplate("This Week on RBTechTalks",
		fmt.Sprintf(`
			<p>Hi {{name}},</p>
			<p>Here is what we published this week:</p>
			%s
			<p style="font-size: 12px; color: #94A3B8;"><a href="{{unsubscribe_url}}" style="color: #94A3B8;">Unsubscribe</a></p>
		`, items))

	report, err := SendNewsletterToConfirmed("This Week on RBTechTalks", html, "Hi {{name}}, new posts are up on RBTechTalks.")
	if err != nil {
		log.Printf("[SCHEDULER] Digest send failed: %v", err)
		return
	}

	log.Printf("[SCHEDULER] Weekly digest: %d sent, %d failed", report.Sent, report.Failed)
}
