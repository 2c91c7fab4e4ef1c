package service

import (
	"context"
	"fmt"
	"net/http"

	"vulearn/internal/api/v1/dto"
	"vulearn/internal/apiclient"
	"vulearn/internal/model"

	"github.com/rs/zerolog"
)

// AuthService signs users in and out and registers new accounts.
type AuthService interface {
	Login(ctx context.Context, payload dto.LoginDTO) (*dto.LoginResponseDTO, error)
	Register(ctx context.Context, payload dto.RegisterDTO) (*model.User, error)
	Logout(ctx context.Context) error
	// CurrentUser returns the signed-in user, or ErrNotLoggedIn.
	CurrentUser(ctx context.Context) (*model.User, error)
}

type authService struct {
	backend
}

func NewAuthService(client *apiclient.Client, logger zerolog.Logger) AuthService {
	return &authService{backend: newBackend(client, logger, "AuthService")}
}

func (s *authService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.LoginResponseDTO, error) {
	if err := s.checkPayload(payload); err != nil {
		return nil, err
	}
	sess := s.client.Session()
	if sess == nil {
		return nil, apiclient.ErrNoSession
	}

	resp, err := fetchOne[dto.LoginResponseDTO](ctx, &s.backend, "/auth/login", send(http.MethodPost, payload), noFallback)
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, ErrAuthNoResponse
	}
	if err := sess.Persist(ctx, *resp); err != nil {
		return nil, fmt.Errorf("persisting session: %w", err)
	}
	s.logger.Info().Str("user_id", resp.User.ID).Str("role", resp.User.Role).Msg("User logged in")
	return resp, nil
}

func (s *authService) Register(ctx context.Context, payload dto.RegisterDTO) (*model.User, error) {
	if err := s.checkPayload(payload); err != nil {
		return nil, err
	}
	resp, err := fetchOne[dto.RegisterResponseDTO](ctx, &s.backend, "/users", send(http.MethodPost, payload), noFallback)
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, ErrRegisterEmpty
	}

	name := deref(resp.FullName, "")
	if name == "" {
		name = deref(resp.Name, payload.FullName)
	}
	role := resp.Role
	if role == "" {
		role = payload.Role
	}
	return &model.User{
		UserID:    resp.ID,
		Name:      name,
		Email:     resp.Email,
		Role:      model.UserRole(role),
		AvatarURL: deref(resp.AvatarURL, ""),
		Bio:       deref(resp.Bio, ""),
		IsActive:  true,
	}, nil
}

func (s *authService) Logout(ctx context.Context) error {
	sess := s.client.Session()
	if sess == nil {
		return nil
	}
	if err := sess.Clear(ctx); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	s.logger.Info().Msg("User logged out")
	return nil
}

func (s *authService) CurrentUser(ctx context.Context) (*model.User, error) {
	sess := s.client.Session()
	if sess == nil {
		return nil, ErrNotLoggedIn
	}
	u, err := sess.User(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading session user: %w", err)
	}
	if u == nil {
		return nil, ErrNotLoggedIn
	}
	user := transformSessionUser(*u)
	return &user, nil
}
