package models

import "gorm.io/gorm"

// WaitlistEntry is a single email on the product waitlist
type WaitlistEntry struct {
	gorm.Model
	Email     string `json:"email" gorm:"uniqueIndex;not null"`
	IsDeleted bool   `gorm:"default:false"`
}

func (WaitlistEntry) TableName() string {
	return "waitlist_entries"
}
