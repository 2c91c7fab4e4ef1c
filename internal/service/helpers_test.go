package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vulearn/internal/api/v1/dto"
	"vulearn/internal/apiclient"
	"vulearn/internal/session"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

type testAPI struct {
	client  *apiclient.Client
	session *session.Manager
}

// newTestAPI serves handler as the backend and signs a student in.
func newTestAPI(t *testing.T, handler http.Handler) testAPI {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	mgr := session.NewManager(session.NewMemoryStore(), zerolog.Nop())
	require.NoError(t, mgr.Persist(context.Background(), dto.LoginResponseDTO{
		User:         dto.SessionUserDTO{ID: "user-1", Email: "ada@example.com", Role: "STUDENT"},
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
		ExpiresIn:    3600,
	}))
	client := apiclient.New(apiclient.Settings{
		BaseURL:       srv.URL,
		RefreshBuffer: 30 * time.Second,
		HTTPClient:    srv.Client(),
	}, mgr, zerolog.Nop())
	return testAPI{client: client, session: mgr}
}

// unreachableClient points at a closed server.
func unreachableClient(t *testing.T) *apiclient.Client {
	t.Helper()
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	return apiclient.New(apiclient.Settings{BaseURL: url, Timeout: time.Second}, nil, zerolog.Nop())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func requireBearer(t *testing.T, r *http.Request) {
	t.Helper()
	if r.Header.Get("Authorization") != "Bearer access-1" {
		t.Errorf("%s %s: missing bearer token", r.Method, r.URL.Path)
	}
}

func ptr[T any](v T) *T { return &v }
