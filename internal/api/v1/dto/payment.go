package dto

import "time"

// PaymentVerifyDTO is the body of POST /payments/verify, sent after the
// payment provider confirms the intent on the client.
type PaymentVerifyDTO struct {
	PaymentIntentID string `json:"paymentIntentId" validate:"required"`
}

type PaymentDTO struct {
	ID        string    `json:"id" validate:"required"`
	Amount    Number    `json:"amount"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	Course    struct {
		ID           string `json:"id"`
		Title        string `json:"title"`
		ThumbnailURL string `json:"thumbnailUrl"`
	} `json:"course"`
}
