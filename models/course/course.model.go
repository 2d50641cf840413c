package course

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Course represents a learning course. Price 0 means free; paid courses carry
// the Stripe price reference used at checkout.
type Course struct {
	gorm.Model
	Title         string         `json:"title"`
	Description   string         `json:"description" gorm:"type:text"`
	Author        string         `json:"author" gorm:"default:''"`
	Duration      string         `json:"duration" gorm:"default:''"`
	Price         float64        `json:"price" gorm:"default:0"`
	StripePriceID string         `json:"stripe_price_id" gorm:"default:''"`
	Students      uint           `json:"students" gorm:"default:0"`
	Rating        float64        `json:"rating" gorm:"default:0"`
	Features      datatypes.JSON `json:"features"`
	ThumbnailURL  string         `json:"thumbnail_url" gorm:"default:''"`
	IsPublished   bool           `json:"is_published" gorm:"default:false"`
	IsDeleted     bool           `gorm:"default:false"`
}
