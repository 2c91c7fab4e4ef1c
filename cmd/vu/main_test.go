package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"vulearn/internal/api/v1/dto"
	"vulearn/internal/mockdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func newBackend(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var in dto.LoginDTO
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		if in.Password != "secret" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message":"Invalid credentials"}`))
			return
		}
		name := "Ada"
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(dto.LoginResponseDTO{
			User:         dto.SessionUserDTO{ID: "u1", Email: in.Email, Name: &name, Role: "STUDENT"},
			AccessToken:  "access-1",
			RefreshToken: "refresh-1",
			ExpiresIn:    3600,
		})
	})
	mux.HandleFunc("GET /courses", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func vu(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := run(context.Background(), args, &out, &out)
	return out.String(), err
}

func setupEnv(t *testing.T) {
	t.Helper()
	srv := newBackend(t)
	t.Setenv("API_BASE_URL", srv.URL)
	t.Setenv("SESSION_FILE", filepath.Join(t.TempDir(), "session.json"))
	t.Setenv("SESSION_DB_DRIVER", "")
	t.Setenv("USE_MOCK_DATA", "false")
	t.Setenv("LOG_LEVEL", "disabled")
}

func TestLoginWhoamiLogout(t *testing.T) {
	setupEnv(t)

	out, err := vu(t, "login", "--email", "ada@example.com", "--password", "secret")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged in as ada@example.com (STUDENT)")

	out, err = vu(t, "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "Ada <ada@example.com> STUDENT")

	out, err = vu(t, "logout")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged out")

	_, err = vu(t, "whoami")
	assert.Error(t, err)
}

func TestLoginRejected(t *testing.T) {
	setupEnv(t)

	_, err := vu(t, "login", "--email", "ada@example.com", "--password", "wrong")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid credentials")
}

func TestLoginRequiresFlags(t *testing.T) {
	setupEnv(t)

	_, err := vu(t, "login", "--email", "ada@example.com")
	assert.Error(t, err)
}

func TestCoursesListFallsBackToSamples(t *testing.T) {
	setupEnv(t)

	out, err := vu(t, "courses", "list")
	require.NoError(t, err)
	for _, c := range mockdata.Courses() {
		assert.Contains(t, out, c.Slug)
	}
}

func TestCoursesListJSON(t *testing.T) {
	setupEnv(t)

	out, err := vu(t, "--json", "courses", "list")
	require.NoError(t, err)

	var got []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Len(t, got, len(mockdata.Courses()))
}

func TestEnrollRequiresLogin(t *testing.T) {
	setupEnv(t)

	_, err := vu(t, "enroll", "course-1")
	assert.Error(t, err)
}

func TestSessionInSQLiteStore(t *testing.T) {
	setupEnv(t)
	t.Setenv("SESSION_DB_DRIVER", "sqlite")
	t.Setenv("SESSION_DB_DSN", filepath.Join(t.TempDir(), "session.db"))

	_, err := vu(t, "login", "--email", "ada@example.com", "--password", "secret")
	require.NoError(t, err)

	out, err := vu(t, "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "ada@example.com")
}
