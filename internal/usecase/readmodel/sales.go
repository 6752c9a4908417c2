package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type PaymentLinkRM struct {
	ID                uuid.UUID `json:"id"`
	CourseID          uuid.UUID `json:"course_id"`
	MentorID          uuid.UUID `json:"mentor_id"`
	SellerTag         *string   `json:"seller_tag,omitempty"`
	WhatsappGroupLink *string   `json:"whatsapp_group_link,omitempty"`
	PriceOverride     *int64    `json:"price_override_cents,omitempty"`
	Active            bool      `json:"active"`
	Views             int64     `json:"views"`
	SalesCount        int64     `json:"sales_count"`
	CreatedAt         time.Time `json:"created_at"`
}

type EnrollmentRM struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	CourseID      uuid.UUID `json:"course_id"`
	PaymentLinkID *uuid.UUID `json:"payment_link_id,omitempty"`
	AmountPaid    int64     `json:"amount_paid_cents"`
	PaymentStatus string    `json:"payment_status"`
	EnrolledAt    time.Time `json:"enrolled_at"`
}

// EnrollmentResult is what the enroll endpoint hands back: where to send
// the student next, and whether this call created the enrollment or
// found an existing one.
type EnrollmentResult struct {
	CourseID        uuid.UUID `json:"course_id"`
	WhatsappLink    *string   `json:"whatsapp_link,omitempty"`
	AlreadyEnrolled bool      `json:"already_enrolled"`
}
