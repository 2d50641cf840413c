package utils

import (
	"testing"
	"time"

	"rbtech/database"
	"rbtech/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupSchedulerDb(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}
	return db
}

func seedEnrollment(t *testing.T, db *gorm.DB, status string, age time.Duration) course.Enrollment {
	enrollment := course.Enrollment{
		Model:    gorm.Model{CreatedAt: time.Now().Add(-age)},
		UserID:   1,
		CourseID: 1,
		Status:   status,
	}
	require.NoError(t, db.Create(&enrollment).Error)
	return enrollment
}

func TestReapStalePendingEnrollments(t *testing.T) {
	db := setupSchedulerDb(t)

	stale := seedEnrollment(t, db, course.EnrollmentPending, 72*time.Hour)
	fresh := seedEnrollment(t, db, course.EnrollmentPending, time.Hour)
	paid := seedEnrollment(t, db, course.EnrollmentPaid, 72*time.Hour)

	ReapStalePendingEnrollments()

	var got course.Enrollment
	require.NoError(t, db.First(&got, stale.ID).Error)
	assert.True(t, got.IsDeleted)

	// A pending row still inside the webhook window is untouched
	got = course.Enrollment{}
	require.NoError(t, db.First(&got, fresh.ID).Error)
	assert.False(t, got.IsDeleted)
	assert.Equal(t, course.EnrollmentPending, got.Status)

	// Paid rows are never reaped regardless of age
	got = course.Enrollment{}
	require.NoError(t, db.First(&got, paid.ID).Error)
	assert.False(t, got.IsDeleted)
	assert.Equal(t, course.EnrollmentPaid, got.Status)
}

func TestReapStalePendingEnrollmentsIsRepeatable(t *testing.T) {
	db := setupSchedulerDb(t)

	stale := seedEnrollment(t, db, course.EnrollmentPending, 72*time.Hour)

	ReapStalePendingEnrollments()
	ReapStalePendingEnrollments()

	var got course.Enrollment
	require.NoError(t, db.First(&got, stale.ID).Error)
	assert.True(t, got.IsDeleted)
	assert.Equal(t, course.EnrollmentPending, got.Status)
}
