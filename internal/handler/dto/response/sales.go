package response

import (
	"time"

	"basecampus-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type PaymentLinkResponse struct {
	ID                uuid.UUID `json:"id"`
	CourseID          uuid.UUID `json:"courseId"`
	SellerTag         *string   `json:"sellerTag,omitempty"`
	WhatsappGroupLink *string   `json:"whatsappGroupLink,omitempty"`
	PriceOverride     *int64    `json:"priceOverrideCents,omitempty"`
	Active            bool      `json:"active"`
	Views             int64     `json:"views"`
	SalesCount        int64     `json:"salesCount"`
	CreatedAt         time.Time `json:"createdAt"`
}

func FromPaymentLinkRM(rm *readmodel.PaymentLinkRM) *PaymentLinkResponse {
	var resp PaymentLinkResponse
	mapRM(&resp, rm)
	return &resp
}

type EnrollmentResponse struct {
	ID            uuid.UUID `json:"id"`
	CourseID      uuid.UUID `json:"courseId"`
	AmountPaid    int64     `json:"amountPaidCents"`
	PaymentStatus string    `json:"paymentStatus"`
	EnrolledAt    time.Time `json:"enrolledAt"`
}

func FromEnrollmentRM(rm *readmodel.EnrollmentRM) *EnrollmentResponse {
	var resp EnrollmentResponse
	mapRM(&resp, rm)
	return &resp
}

type EnrollmentResultResponse struct {
	CourseID        uuid.UUID `json:"courseId"`
	WhatsappLink    *string   `json:"whatsappLink,omitempty"`
	AlreadyEnrolled bool      `json:"alreadyEnrolled"`
}

func FromEnrollmentResult(r *readmodel.EnrollmentResult) *EnrollmentResultResponse {
	return &EnrollmentResultResponse{
		CourseID:        r.CourseID,
		WhatsappLink:    r.WhatsappLink,
		AlreadyEnrolled: r.AlreadyEnrolled,
	}
}
