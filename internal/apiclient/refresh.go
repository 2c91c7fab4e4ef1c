package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"vulearn/internal/api/v1/dto"
)

const refreshPath = "/auth/refresh"

// ensureAccessToken returns a token that is not within the refresh buffer
// of expiry, refreshing first when needed.
func (c *Client) ensureAccessToken(ctx context.Context) (string, error) {
	if c.session == nil {
		return "", ErrNoSession
	}
	token, err := c.session.AccessToken(ctx)
	if err != nil {
		return "", fmt.Errorf("reading access token: %w", err)
	}
	expired, err := c.session.IsExpired(ctx, c.refreshBuffer)
	if err != nil {
		return "", fmt.Errorf("reading token expiry: %w", err)
	}
	if token != "" && !expired {
		return token, nil
	}

	err = c.refresh(ctx, func(ctx context.Context) bool {
		current, err := c.session.AccessToken(ctx)
		if err != nil || current == "" {
			return true
		}
		expired, err := c.session.IsExpired(ctx, c.refreshBuffer)
		return err != nil || expired
	})
	if err != nil {
		return "", err
	}
	token, err = c.session.AccessToken(ctx)
	if err != nil {
		return "", fmt.Errorf("reading access token: %w", err)
	}
	if token == "" {
		return "", ErrSessionExpired
	}
	return token, nil
}

// refreshAfterUnauthorized refreshes unless another caller already replaced
// the token that was rejected.
func (c *Client) refreshAfterUnauthorized(ctx context.Context, rejected string) error {
	return c.refresh(ctx, func(ctx context.Context) bool {
		current, err := c.session.AccessToken(ctx)
		return err != nil || current == "" || current == rejected
	})
}

// refresh exchanges the refresh token for a new pair when stale still holds.
// Concurrent callers share one in-flight exchange, and stale is checked
// inside it so a caller arriving just after a refresh does not repeat it.
func (c *Client) refresh(ctx context.Context, stale func(context.Context) bool) error {
	_, err, shared := c.refreshGroup.Do("refresh", func() (any, error) {
		ctx := context.WithoutCancel(ctx)
		if !stale(ctx) {
			return nil, nil
		}
		return nil, c.exchangeRefreshToken(ctx)
	})
	if shared {
		c.logger.Debug().Err(err).Msg("Joined in-flight token refresh")
	}
	return err
}

func (c *Client) exchangeRefreshToken(ctx context.Context) error {
	refreshToken, err := c.session.RefreshToken(ctx)
	if err != nil {
		return fmt.Errorf("reading refresh token: %w", err)
	}
	if refreshToken == "" {
		c.clearSession(ctx)
		return ErrSessionExpired
	}

	payload, err := json.Marshal(dto.RefreshDTO{RefreshToken: refreshToken})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+refreshPath, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("building refresh request: %w", err)
	}
	req.Header.Set("Content-Type", jsonContentType)
	req.Header.Set("Cache-Control", "no-store")

	c.logger.Debug().Msg("Refreshing access token")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.clearSession(ctx)
		return fmt.Errorf("refreshing session: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.clearSession(ctx)
		return fmt.Errorf("reading refresh response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.clearSession(ctx)
		apiErr := newAPIError(resp.StatusCode, resp.Header, body)
		apiErr.Err = ErrSessionExpired
		c.logger.Warn().Int("status", resp.StatusCode).Msg("Token refresh rejected, session cleared")
		return apiErr
	}

	var pair dto.LoginResponseDTO
	if err := json.Unmarshal(body, &pair); err != nil {
		return fmt.Errorf("decoding refresh response: %w", ErrInvalidJSON)
	}
	if err := c.validate.Struct(pair); err != nil {
		return fmt.Errorf("validating refresh response: %w", err)
	}
	if err := c.session.Persist(ctx, pair); err != nil {
		return fmt.Errorf("persisting refreshed session: %w", err)
	}
	c.logger.Info().Str("user_id", pair.User.ID).Msg("Access token refreshed")
	return nil
}

func (c *Client) clearSession(ctx context.Context) {
	if err := c.session.Clear(ctx); err != nil {
		c.logger.Error().Err(err).Msg("Failed to clear session")
	}
}
