package service

import (
	"context"
	"net/http"

	"vulearn/internal/api/v1/dto"
	"vulearn/internal/apiclient"
	"vulearn/internal/model"

	"github.com/rs/zerolog"
)

type ReviewService interface {
	ForCourse(ctx context.Context, courseID string) ([]model.Review, error)
	Create(ctx context.Context, payload dto.ReviewCreateDTO) (*model.Review, error)
	// Mine returns the signed-in user's review of a course, or nil.
	Mine(ctx context.Context, courseID string) (*model.Review, error)
}

type reviewService struct {
	backend
}

func NewReviewService(client *apiclient.Client, logger zerolog.Logger) ReviewService {
	return &reviewService{backend: newBackend(client, logger, "ReviewService")}
}

func toReviews(items []dto.ReviewDTO) []model.Review {
	out := make([]model.Review, 0, len(items))
	for _, r := range items {
		out = append(out, transformReview(r))
	}
	return out
}

func (s *reviewService) ForCourse(ctx context.Context, courseID string) ([]model.Review, error) {
	items, err := fetchList[dto.ReviewDTO](ctx, &s.backend, "/reviews/course/"+seg(courseID), noStore(), noFallback)
	if err != nil {
		return nil, err
	}
	return toReviews(items), nil
}

func (s *reviewService) Create(ctx context.Context, payload dto.ReviewCreateDTO) (*model.Review, error) {
	if err := s.checkPayload(payload); err != nil {
		return nil, err
	}
	r, err := fetchOne[dto.ReviewDTO](ctx, &s.backend, "/reviews", send(http.MethodPost, payload), authOnly)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, emptyResponse("Failed to create review")
	}
	review := transformReview(*r)
	return &review, nil
}

func (s *reviewService) Mine(ctx context.Context, courseID string) (*model.Review, error) {
	r, err := fetchOne[dto.ReviewDTO](ctx, &s.backend, "/reviews/me/"+seg(courseID), noStore(), authOnly)
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil || r == nil {
		return nil, err
	}
	review := transformReview(*r)
	return &review, nil
}
