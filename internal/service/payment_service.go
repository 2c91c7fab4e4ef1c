package service

import (
	"context"
	"net/http"

	"vulearn/internal/api/v1/dto"
	"vulearn/internal/apiclient"
	"vulearn/internal/model"

	"github.com/rs/zerolog"
)

// PaymentService confirms completed checkouts and lists past purchases. The
// card flow itself runs in the payment provider's client SDK.
type PaymentService interface {
	Verify(ctx context.Context, paymentIntentID string) error
	History(ctx context.Context) ([]model.Payment, error)
}

type paymentService struct {
	backend
}

func NewPaymentService(client *apiclient.Client, logger zerolog.Logger) PaymentService {
	return &paymentService{backend: newBackend(client, logger, "PaymentService")}
}

func (s *paymentService) Verify(ctx context.Context, paymentIntentID string) error {
	payload := dto.PaymentVerifyDTO{PaymentIntentID: paymentIntentID}
	if err := s.checkPayload(payload); err != nil {
		return err
	}
	if err := s.call(ctx, "/payments/verify", send(http.MethodPost, payload), authOnly); err != nil {
		return err
	}
	if sess := s.client.Session(); sess != nil {
		sess.NotifyEnrollmentChanged()
	}
	s.logger.Info().Str("payment_intent_id", paymentIntentID).Msg("Payment verified")
	return nil
}

func (s *paymentService) History(ctx context.Context) ([]model.Payment, error) {
	items, err := fetchList[dto.PaymentDTO](ctx, &s.backend, "/payments/history", nil, authOnly)
	if err != nil {
		return nil, err
	}
	out := make([]model.Payment, 0, len(items))
	for _, p := range items {
		out = append(out, transformPayment(p))
	}
	return out, nil
}
