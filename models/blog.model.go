package models

import (
	"time"

	"gorm.io/gorm"
)

// BlogPost represents a published article on the site
type BlogPost struct {
	gorm.Model
	Title       string    `json:"title"`
	Author      string    `json:"author" gorm:"default:''"`
	Excerpt     string    `json:"excerpt"`
	Content     string    `json:"content" gorm:"type:text"` // markdown body
	Tags        string    `json:"tags" gorm:"default:''"`   // comma separated
	ReadTime    string    `json:"read_time" gorm:"default:''"`
	CoverURL    string    `json:"cover_url" gorm:"default:''"`
	PublishedAt time.Time `json:"published_at"`
	IsPublished bool      `json:"is_published" gorm:"default:false"`
	IsDeleted   bool      `gorm:"default:false"`
}
