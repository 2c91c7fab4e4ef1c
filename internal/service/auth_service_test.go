package service

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"vulearn/internal/api/v1/dto"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		var body dto.LoginDTO
		_ = json.NewDecoder(r.Body).Decode(&body)
		switch body.Password {
		case "correct-horse":
			writeJSON(w, http.StatusOK, dto.LoginResponseDTO{
				User:         dto.SessionUserDTO{ID: "user-7", Email: body.Email, Name: ptr("Ada"), Role: "INSTRUCTOR"},
				AccessToken:  "access-7",
				RefreshToken: "refresh-7",
				ExpiresIn:    900,
			})
		case "silent":
			w.WriteHeader(http.StatusNoContent)
		default:
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Invalid credentials"})
		}
	})
	api := newTestAPI(t, mux)
	require.NoError(t, api.session.Clear(context.Background()))
	svc := NewAuthService(api.client, zerolog.Nop())
	ctx := context.Background()

	_, err := svc.Login(ctx, dto.LoginDTO{Email: "not-an-email", Password: "x"})
	require.Error(t, err)

	_, err = svc.Login(ctx, dto.LoginDTO{Email: "ada@example.com", Password: "wrong"})
	require.Error(t, err)
	assert.Equal(t, "Invalid credentials", err.Error())

	_, err = svc.Login(ctx, dto.LoginDTO{Email: "ada@example.com", Password: "silent"})
	require.ErrorIs(t, err, ErrAuthNoResponse)

	resp, err := svc.Login(ctx, dto.LoginDTO{Email: "ada@example.com", Password: "correct-horse"})
	require.NoError(t, err)
	assert.Equal(t, "access-7", resp.AccessToken)

	token, err := api.session.AccessToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "access-7", token)
	expired, err := api.session.IsExpired(ctx, 30*time.Second)
	require.NoError(t, err)
	assert.False(t, expired)

	user, err := svc.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ada", user.Name)
	assert.Equal(t, "INSTRUCTOR", string(user.Role))

	require.NoError(t, svc.Logout(ctx))
	_, err = svc.CurrentUser(ctx)
	require.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestRegister(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /users", func(w http.ResponseWriter, r *http.Request) {
		var body dto.RegisterDTO
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body.Email == "empty@example.com" {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		writeJSON(w, http.StatusCreated, dto.RegisterResponseDTO{ID: "user-8", Email: body.Email, FullName: ptr(body.FullName), Role: body.Role})
	})
	api := newTestAPI(t, mux)
	svc := NewAuthService(api.client, zerolog.Nop())
	ctx := context.Background()

	_, err := svc.Register(ctx, dto.RegisterDTO{Email: "grace@example.com", Password: "short", FullName: "Grace", Role: "STUDENT"})
	require.Error(t, err, "password under 8 characters")

	u, err := svc.Register(ctx, dto.RegisterDTO{Email: "grace@example.com", Password: "longenough", FullName: "Grace Hopper", Role: "STUDENT"})
	require.NoError(t, err)
	assert.Equal(t, "user-8", u.UserID)
	assert.Equal(t, "Grace Hopper", u.Name)

	_, err = svc.Register(ctx, dto.RegisterDTO{Email: "empty@example.com", Password: "longenough", FullName: "E", Role: "STUDENT"})
	require.ErrorIs(t, err, ErrRegisterEmpty)
}
