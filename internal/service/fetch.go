package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"vulearn/internal/apiclient"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// backend bundles what every resource service needs to talk to the API.
type backend struct {
	client   *apiclient.Client
	validate *validator.Validate
	logger   zerolog.Logger
	now      func() time.Time
}

func newBackend(client *apiclient.Client, logger zerolog.Logger, name string) backend {
	return backend{
		client:   client,
		validate: validator.New(),
		logger:   logger.With().Str("service", name).Logger(),
		now:      time.Now,
	}
}

var (
	authOnly   = apiclient.Options{Auth: true}
	authOrMock = apiclient.Options{Auth: true, FallbackToMock: true}
	noFallback = apiclient.Options{}
)

func noStore() *apiclient.Request {
	return &apiclient.Request{NoStore: true}
}

func send(method string, body any) *apiclient.Request {
	req := &apiclient.Request{Method: method, NoStore: true}
	if body != nil {
		req.Body = apiclient.JSONBody(body)
	}
	return req
}

// seg escapes one path segment.
func seg(s string) string {
	return url.PathEscape(s)
}

// checkPayload validates an outgoing body before it is sent.
func (b *backend) checkPayload(v any) error {
	if err := b.validate.Struct(v); err != nil {
		return fmt.Errorf("invalid payload: %w", err)
	}
	return nil
}

// fetchOne decodes and validates a single entity. A nil result means the
// call yielded nothing.
func fetchOne[T any](ctx context.Context, b *backend, path string, req *apiclient.Request, opts apiclient.Options) (*T, error) {
	out, err := apiclient.Fetch[T](ctx, b.client, path, req, opts)
	if err != nil || out == nil {
		return nil, err
	}
	if err := b.validate.Struct(out); err != nil {
		return nil, fmt.Errorf("validating response from %s: %w", path, err)
	}
	return out, nil
}

// fetchList decodes a JSON array element by element, dropping entries that
// fail to decode or validate. A nil slice means the call yielded nothing.
func fetchList[T any](ctx context.Context, b *backend, path string, req *apiclient.Request, opts apiclient.Options) ([]T, error) {
	out, err := apiclient.Fetch[[]json.RawMessage](ctx, b.client, path, req, opts)
	if err != nil || out == nil {
		return nil, err
	}
	items := make([]T, 0, len(*out))
	for i, raw := range *out {
		var item T
		if err := json.Unmarshal(raw, &item); err != nil {
			b.logger.Warn().Err(err).Str("path", path).Int("index", i).Msg("Skipping undecodable item")
			continue
		}
		if err := b.validate.Struct(&item); err != nil {
			b.logger.Warn().Err(err).Str("path", path).Int("index", i).Msg("Skipping invalid item")
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// call performs a request whose response body is ignored.
func (b *backend) call(ctx context.Context, path string, req *apiclient.Request, opts apiclient.Options) error {
	_, err := b.client.Do(ctx, path, req, opts)
	return err
}
