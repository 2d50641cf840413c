package course

import "gorm.io/gorm"

// Enrollment status values. Paid checkouts start as PENDING and are flipped to
// PAID by the Stripe webhook; free enrollments are written as PAID directly.
const (
	EnrollmentPending = "pending"
	EnrollmentPaid    = "paid"
)

// Checkout mode values, mirrored into Stripe session metadata
const (
	ModePayment      = "payment"
	ModeSubscription = "subscription"
)

// Enrollment links a user to a course with a payment/access status. At most
// one live row exists per (user, course); the free path enforces this with an
// existence check before insert.
type Enrollment struct {
	gorm.Model
	UserID          uint   `json:"user_id" gorm:"index;not null"`
	CourseID        uint   `json:"course_id" gorm:"index;not null"`
	Status          string `json:"status" gorm:"type:varchar(20);default:'pending'"`
	StripeSessionID string `json:"stripe_session_id" gorm:"index;default:''"`
	CheckoutMode    string `json:"checkout_mode" gorm:"type:varchar(20);default:''"`
	ViaRedirect     bool   `json:"via_redirect" gorm:"default:false"`
	IsDeleted       bool   `gorm:"default:false"`

	Course Course `json:"course,omitempty" gorm:"foreignKey:CourseID"`
}
