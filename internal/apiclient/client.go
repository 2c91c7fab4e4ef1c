package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"vulearn/internal/config"
	"vulearn/internal/session"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// previewLimit caps how much of an unparsable body is logged.
const previewLimit = 1000

// Settings configures a Client.
type Settings struct {
	BaseURL       string
	UseMockData   bool
	RefreshBuffer time.Duration
	Timeout       time.Duration
	// HTTPClient overrides the default client built from Timeout.
	HTTPClient *http.Client
}

func SettingsFromConfig(cfg *config.Config) Settings {
	return Settings{
		BaseURL:       cfg.APIBaseURL,
		UseMockData:   cfg.UseMockData,
		RefreshBuffer: cfg.TokenRefreshBuffer,
		Timeout:       cfg.RequestTimeout,
	}
}

// Client sends requests to the backend REST API, attaching and refreshing
// the session's bearer token as needed.
type Client struct {
	baseURL       string
	useMockData   bool
	refreshBuffer time.Duration
	httpClient    *http.Client
	session       *session.Manager
	validate      *validator.Validate
	logger        zerolog.Logger

	refreshGroup singleflight.Group
}

// New builds a Client. sess may be nil for a client that only makes
// unauthenticated calls.
func New(s Settings, sess *session.Manager, logger zerolog.Logger) *Client {
	httpClient := s.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: s.Timeout}
	}
	return &Client{
		baseURL:       strings.TrimRight(s.BaseURL, "/"),
		useMockData:   s.UseMockData,
		refreshBuffer: s.RefreshBuffer,
		httpClient:    httpClient,
		session:       sess,
		validate:      validator.New(),
		logger:        logger.With().Str("service", "APIClient").Logger(),
	}
}

// Session returns the session manager the client authenticates with.
func (c *Client) Session() *session.Manager {
	return c.session
}

// Do performs one logical call. A nil *Response with a nil error means the
// call produced no data: a 204, mock mode, or a failure absorbed by
// FallbackToMock.
func (c *Client) Do(ctx context.Context, path string, req *Request, opts Options) (*Response, error) {
	if opts.FallbackToMock && c.useMockData && !opts.Auth {
		c.logger.Debug().Str("path", path).Msg("Mock mode, skipping request")
		return nil, nil
	}

	enc, err := req.encodeRequest()
	if err != nil {
		return nil, err
	}

	resp, err := c.send(ctx, path, enc, opts, false)
	if err != nil {
		if opts.FallbackToMock && !opts.Auth {
			c.logger.Warn().Err(err).Str("path", path).Msg("Request failed, falling back to mock data")
			return nil, nil
		}
		return nil, err
	}
	return resp, nil
}

func (c *Client) send(ctx context.Context, path string, enc *encodedRequest, opts Options, retried bool) (*Response, error) {
	header := enc.headers()

	var token string
	if opts.Auth {
		t, err := c.ensureAccessToken(ctx)
		if err != nil {
			if opts.FallbackToMock {
				c.logger.Warn().Err(err).Str("path", path).Msg("No usable session, falling back")
				return nil, nil
			}
			return nil, err
		}
		token = t
		header.Set("Authorization", "Bearer "+token)
	}
	if header.Get("X-Request-ID") == "" {
		header.Set("X-Request-ID", uuid.NewString())
	}

	httpReq, err := http.NewRequestWithContext(ctx, enc.method, c.baseURL+path, enc.bodyReader())
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", path, err)
	}
	httpReq.Header = header

	c.logger.Debug().
		Str("method", enc.method).
		Str("path", path).
		Str("request_id", header.Get("X-Request-ID")).
		Bool("auth", opts.Auth).
		Bool("retry", retried).
		Msg("Sending request")

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("requesting %s: %w", path, err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode == http.StatusUnauthorized && opts.Auth && !retried {
		_, _ = io.Copy(io.Discard, httpResp.Body)
		if err := c.refreshAfterUnauthorized(ctx, token); err != nil {
			if opts.FallbackToMock {
				c.logger.Warn().Err(err).Str("path", path).Msg("Token refresh failed, falling back")
				return nil, nil
			}
			return nil, err
		}
		return c.send(ctx, path, enc, opts, true)
	}

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response from %s: %w", path, err)
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		apiErr := newAPIError(httpResp.StatusCode, httpResp.Header, body)
		c.logger.Debug().Int("status", apiErr.StatusCode).Str("path", path).Msg(apiErr.Message)
		return nil, apiErr
	}

	if httpResp.StatusCode == http.StatusNoContent {
		return nil, nil
	}

	resp := &Response{StatusCode: httpResp.StatusCode, Header: httpResp.Header, Body: body}
	if resp.IsJSON() && !json.Valid(body) {
		c.logger.Error().
			Str("path", path).
			Str("body_preview", preview(body)).
			Msg("API returned invalid JSON")
		return nil, ErrInvalidJSON
	}
	return resp, nil
}

func preview(body []byte) string {
	s := string(body)
	if len(s) > previewLimit {
		return s[:previewLimit]
	}
	return s
}
