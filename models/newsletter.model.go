package models

import "gorm.io/gorm"

// NewsletterSubscriber is an email-capture row for the footer signup form.
// UnsubscribeToken authorizes both the confirm and unsubscribe links without
// requiring a login.
type NewsletterSubscriber struct {
	gorm.Model
	Email            string `json:"email" gorm:"uniqueIndex;not null"`
	Name             string `json:"name" gorm:"default:''"`
	Confirmed        bool   `json:"confirmed" gorm:"default:false"`
	UnsubscribeToken string `json:"unsubscribe_token" gorm:"uniqueIndex;not null"`
	IsDeleted        bool   `gorm:"default:false"`
}

func (NewsletterSubscriber) TableName() string {
	return "newsletter_subscribers"
}
