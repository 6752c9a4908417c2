package request

import "github.com/google/uuid"

type CreatePaymentLinkRequest struct {
	CourseID          uuid.UUID `json:"course_id" binding:"required"`
	SellerTag         *string   `json:"seller_tag,omitempty"`
	WhatsappGroupLink *string   `json:"whatsapp_group_link,omitempty"`
	PriceOverride     *int64    `json:"price_override_cents,omitempty"`
}

type SetPaymentLinkActiveRequest struct {
	Active bool `json:"active"`
}
