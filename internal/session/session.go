package session

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"sync"
	"time"

	"vulearn/internal/api/v1/dto"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
)

// Storage keys, all under a common prefix.
const (
	KeyPrefix       = "vu:"
	UserKey         = KeyPrefix + "user"
	AccessTokenKey  = KeyPrefix + "accessToken"
	RefreshTokenKey = KeyPrefix + "refreshToken"
	TokenExpiryKey  = KeyPrefix + "tokenExpiry"
)

// Event is published to subscribers whenever session state changes.
type Event string

const (
	EventAuthChanged       Event = "vu-auth-change"
	EventEnrollmentChanged Event = "vu-enrollment-change"
)

// subscriberBuffer bounds how many events a slow subscriber may lag behind
// before further events are dropped for it.
const subscriberBuffer = 8

// Manager is the session context passed to API callers. It owns the token
// pair and the cached user, and fans change events out to subscribers.
type Manager struct {
	store  Store
	logger zerolog.Logger
	now    func() time.Time

	mu     sync.Mutex
	subs   map[int]chan Event
	nextID int
}

func NewManager(store Store, logger zerolog.Logger) *Manager {
	return &Manager{
		store:  store,
		logger: logger.With().Str("service", "Session").Logger(),
		now:    time.Now,
		subs:   make(map[int]chan Event),
	}
}

// Persist stores a fresh token pair and user. The expiry is now+expiresIn;
// when the backend omits expiresIn the access token's exp claim is used.
func (m *Manager) Persist(ctx context.Context, resp dto.LoginResponseDTO) error {
	user, err := json.Marshal(resp.User)
	if err != nil {
		return err
	}

	var expiresAt time.Time
	if resp.ExpiresIn > 0 {
		expiresAt = m.now().Add(time.Duration(resp.ExpiresIn) * time.Second)
	} else if exp, ok := TokenExpiry(resp.AccessToken); ok {
		expiresAt = exp
	} else {
		expiresAt = m.now()
	}

	writes := []struct{ key, value string }{
		{UserKey, string(user)},
		{AccessTokenKey, resp.AccessToken},
		{RefreshTokenKey, resp.RefreshToken},
		{TokenExpiryKey, strconv.FormatInt(expiresAt.UnixMilli(), 10)},
	}
	for _, w := range writes {
		if err := m.store.Set(ctx, w.key, w.value); err != nil {
			return err
		}
	}
	m.publish(EventAuthChanged)
	return nil
}

// User returns the cached user, or nil when absent or unreadable.
func (m *Manager) User(ctx context.Context) (*dto.SessionUserDTO, error) {
	raw, ok, err := m.store.Get(ctx, UserKey)
	if err != nil || !ok || raw == "" {
		return nil, err
	}
	var u dto.SessionUserDTO
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		m.logger.Warn().Err(err).Msg("Discarding unreadable stored user")
		return nil, nil
	}
	return &u, nil
}

func (m *Manager) AccessToken(ctx context.Context) (string, error) {
	v, _, err := m.store.Get(ctx, AccessTokenKey)
	return v, err
}

func (m *Manager) RefreshToken(ctx context.Context) (string, error) {
	v, _, err := m.store.Get(ctx, RefreshTokenKey)
	return v, err
}

// TokenExpiry returns the stored expiry. ok is false when it is missing or
// not a number.
func (m *Manager) TokenExpiry(ctx context.Context) (t time.Time, ok bool, err error) {
	raw, found, err := m.store.Get(ctx, TokenExpiryKey)
	if err != nil || !found || raw == "" {
		return time.Time{}, false, err
	}
	ms, perr := strconv.ParseInt(raw, 10, 64)
	if perr != nil {
		f, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil {
			return time.Time{}, false, nil
		}
		ms = int64(f)
	}
	return time.UnixMilli(ms), true, nil
}

// IsExpired reports whether the token pair expires within buffer. A session
// without an expiry is expired.
func (m *Manager) IsExpired(ctx context.Context, buffer time.Duration) (bool, error) {
	exp, ok, err := m.TokenExpiry(ctx)
	if err != nil {
		return true, err
	}
	if !ok || exp.IsZero() {
		return true, nil
	}
	return !m.now().Add(buffer).Before(exp), nil
}

// Clear removes every session key. All deletes are attempted even if one
// fails.
func (m *Manager) Clear(ctx context.Context) error {
	var errs []error
	for _, key := range []string{UserKey, AccessTokenKey, RefreshTokenKey, TokenExpiryKey} {
		if err := m.store.Delete(ctx, key); err != nil {
			errs = append(errs, err)
		}
	}
	m.publish(EventAuthChanged)
	return errors.Join(errs...)
}

// NotifyEnrollmentChanged tells subscribers the user's enrollments changed.
func (m *Manager) NotifyEnrollmentChanged() {
	m.publish(EventEnrollmentChanged)
}

// Subscribe returns a channel of session events and a function that
// unsubscribes and closes it.
func (m *Manager) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, subscriberBuffer)

	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.subs[id] = ch
	m.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			m.mu.Lock()
			delete(m.subs, id)
			m.mu.Unlock()
			close(ch)
		})
	}
}

func (m *Manager) publish(ev Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, ch := range m.subs {
		select {
		case ch <- ev:
		default:
			m.logger.Debug().Int("subscriber", id).Str("event", string(ev)).Msg("Dropping event for slow subscriber")
		}
	}
}

// Watch forwards external changes of the backing store as auth events. It
// returns immediately when the store cannot be changed externally.
func (m *Manager) Watch(ctx context.Context) error {
	w, ok := m.store.(Watcher)
	if !ok {
		return nil
	}
	return w.Watch(ctx, func() {
		m.logger.Debug().Msg("Session changed outside this process")
		m.publish(EventAuthChanged)
	})
}

// TokenExpiry reads the exp claim of a JWT without verifying its signature.
func TokenExpiry(token string) (time.Time, bool) {
	if token == "" {
		return time.Time{}, false
	}
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}
