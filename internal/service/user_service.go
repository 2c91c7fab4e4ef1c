package service

import (
	"context"
	"net/http"

	"vulearn/internal/api/v1/dto"
	"vulearn/internal/apiclient"
	"vulearn/internal/model"

	"github.com/rs/zerolog"
)

// UserService is the admin view of accounts.
type UserService interface {
	List(ctx context.Context, q PageQuery) (*model.Page[model.User], error)
	SetStatus(ctx context.Context, userID string, active bool) error
	SetRole(ctx context.Context, userID string, role model.UserRole) error
}

type userService struct {
	backend
}

func NewUserService(client *apiclient.Client, logger zerolog.Logger) UserService {
	return &userService{backend: newBackend(client, logger, "UserService")}
}

func (s *userService) List(ctx context.Context, q PageQuery) (*model.Page[model.User], error) {
	return fetchPage(ctx, &s.backend, "/users", q, transformAdminUser)
}

func (s *userService) SetStatus(ctx context.Context, userID string, active bool) error {
	body := dto.UserStatusDTO{IsActive: active}
	if err := s.call(ctx, "/users/"+seg(userID)+"/status", send(http.MethodPatch, body), authOrMock); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", userID).Bool("active", active).Msg("User status updated")
	return nil
}

func (s *userService) SetRole(ctx context.Context, userID string, role model.UserRole) error {
	body := dto.UserRoleDTO{Role: string(role)}
	if err := s.checkPayload(body); err != nil {
		return err
	}
	if err := s.call(ctx, "/users/"+seg(userID)+"/role", send(http.MethodPatch, body), authOrMock); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", userID).Str("role", string(role)).Msg("User role updated")
	return nil
}
