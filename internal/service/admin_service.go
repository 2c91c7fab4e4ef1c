package service

import (
	"context"
	"net/http"

	"vulearn/internal/api/v1/dto"
	"vulearn/internal/apiclient"
	"vulearn/internal/model"

	"github.com/rs/zerolog"
)

// AdminService moderates courses and reviews.
type AdminService interface {
	Courses(ctx context.Context, q PageQuery) (*model.Page[model.AdminCourse], error)
	SetCourseStatus(ctx context.Context, courseID string, published bool) error
	SetCourseFeatured(ctx context.Context, courseID string, featured bool) error
	Reviews(ctx context.Context, q PageQuery) (*model.Page[model.Review], error)
	DeleteReview(ctx context.Context, reviewID string) error
}

type adminService struct {
	backend
}

func NewAdminService(client *apiclient.Client, logger zerolog.Logger) AdminService {
	return &adminService{backend: newBackend(client, logger, "AdminService")}
}

func (s *adminService) Courses(ctx context.Context, q PageQuery) (*model.Page[model.AdminCourse], error) {
	return fetchPage(ctx, &s.backend, "/courses/admin", q, transformAdminCourse)
}

func (s *adminService) SetCourseStatus(ctx context.Context, courseID string, published bool) error {
	return s.call(ctx, "/courses/"+seg(courseID)+"/status", send(http.MethodPatch, dto.CourseStatusDTO{IsPublished: published}), authOrMock)
}

func (s *adminService) SetCourseFeatured(ctx context.Context, courseID string, featured bool) error {
	return s.call(ctx, "/courses/"+seg(courseID)+"/feature", send(http.MethodPatch, dto.CourseFeatureDTO{IsFeatured: featured}), authOrMock)
}

func (s *adminService) Reviews(ctx context.Context, q PageQuery) (*model.Page[model.Review], error) {
	return fetchPage(ctx, &s.backend, "/reviews/admin", q, transformReview)
}

func (s *adminService) DeleteReview(ctx context.Context, reviewID string) error {
	if err := s.call(ctx, "/reviews/"+seg(reviewID), send(http.MethodDelete, nil), authOrMock); err != nil {
		return err
	}
	s.logger.Info().Str("review_id", reviewID).Msg("Review deleted")
	return nil
}
