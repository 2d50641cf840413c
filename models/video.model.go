package models

import "gorm.io/gorm"

// Video represents a YouTube video listed on the site
type Video struct {
	gorm.Model
	Title       string `json:"title"`
	Description string `json:"description" gorm:"type:text"`
	YoutubeID   string `json:"youtube_id"`
	Duration    string `json:"duration" gorm:"default:''"`
	Views       uint   `json:"views" gorm:"default:0"`
	IsPublished bool   `json:"is_published" gorm:"default:false"`
	IsDeleted   bool   `gorm:"default:false"`
}
