package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
)

// Fetch performs Do and decodes the result into T. A JSON null, a 204 or an
// absorbed failure yields (nil, nil). When T is string a non-JSON body is
// returned as text.
func Fetch[T any](ctx context.Context, c *Client, path string, req *Request, opts Options) (*T, error) {
	resp, err := c.Do(ctx, path, req, opts)
	if err != nil || resp == nil {
		return nil, err
	}

	var out T
	if !resp.IsJSON() {
		if s, ok := any(&out).(*string); ok {
			*s = resp.Text()
			return &out, nil
		}
		return nil, c.absorb(opts, path, fmt.Errorf("%w: %s returned %q", ErrUnexpectedContent, path, resp.Header.Get("Content-Type")))
	}
	if bytes.Equal(bytes.TrimSpace(resp.Body), []byte("null")) {
		return nil, nil
	}
	if err := json.Unmarshal(resp.Body, &out); err != nil {
		return nil, c.absorb(opts, path, fmt.Errorf("decoding %s: %w", path, err))
	}
	return &out, nil
}

// absorb applies the fallback rule to errors raised after the response was
// received.
func (c *Client) absorb(opts Options, path string, err error) error {
	if opts.FallbackToMock && !opts.Auth {
		c.logger.Warn().Err(err).Str("path", path).Msg("Unusable response, falling back to mock data")
		return nil
	}
	return err
}
