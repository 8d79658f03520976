// Package session holds the single process-wide session: the current
// token/identity pair, its durable persistence and the auth flow that
// mutates it. Only this package and the gateway's 401 hook ever change
// session state.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/meetspace/roomclient/internal/booking"
	"github.com/meetspace/roomclient/internal/models"
)

// AuthAPI is the slice of the auth client the manager needs.
type AuthAPI interface {
	Login(ctx context.Context, creds booking.Credentials) (booking.AuthResponse, error)
	Register(ctx context.Context, data booking.RegisterData) (booking.AuthResponse, error)
	Me(ctx context.Context) (models.Identity, error)
}

// Manager owns the in-memory session and keeps it in sync with Storage.
// All methods are safe for concurrent use. The session is adopted and
// dropped atomically: token and identity are never present alone.
type Manager struct {
	storage Storage
	auth    AuthAPI
	logger  *zap.Logger

	mu    sync.RWMutex
	sess  models.Session
	ready bool

	now func() time.Time
}

// NewManager creates a session manager. SetAuthClient must be called before
// Initialize; the auth client is wired late because it talks through the
// gateway, which in turn reads tokens from this manager.
func NewManager(storage Storage, logger *zap.Logger) *Manager {
	return &Manager{
		storage: storage,
		logger:  logger,
		now:     time.Now,
	}
}

// SetAuthClient wires the auth client used by Initialize, Login and Register.
func (m *Manager) SetAuthClient(auth AuthAPI) {
	m.auth = auth
}

// Token returns the current bearer token, empty when unauthenticated.
// Implements gateway.TokenSource.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sess.Token
}

// Current returns the authenticated identity, if any.
func (m *Manager) Current() (models.Identity, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.sess.User == nil {
		return models.Identity{}, false
	}
	return *m.sess.User, true
}

// IsAuthenticated reports whether an identity is present.
func (m *Manager) IsAuthenticated() bool {
	_, ok := m.Current()
	return ok
}

// Ready reports whether Initialize has completed. The route guard renders
// a waiting state until then.
func (m *Manager) Ready() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.ready
}

// Initialize rehydrates the session from storage. A partial or corrupt
// persisted pair is cleared. A well-formed pair is revalidated against
// GET /auth/me before adoption; the server's identity wins over the stored
// one. Any failure leaves the client unauthenticated.
func (m *Manager) Initialize(ctx context.Context) {
	defer func() {
		m.mu.Lock()
		m.ready = true
		m.mu.Unlock()
	}()

	stored, err := m.storage.Load(ctx)
	if err != nil {
		m.logger.Warn("session rehydration failed, clearing", zap.Error(err))
		m.drop(ctx)
		return
	}
	if stored.Empty() {
		return
	}
	if !stored.Valid() {
		m.logger.Warn("partial session found, clearing")
		m.drop(ctx)
		return
	}
	if expired(stored.Token, m.now()) {
		m.logger.Info("stored token expired, clearing")
		m.drop(ctx)
		return
	}

	// Adopt tentatively so the revalidation call carries the token.
	m.mu.Lock()
	m.sess = stored
	m.mu.Unlock()

	identity, err := m.auth.Me(ctx)
	if err != nil {
		m.logger.Warn("token revalidation failed, clearing", zap.Error(err))
		m.drop(ctx)
		return
	}

	refreshed := models.Session{Token: stored.Token, User: &identity}
	m.mu.Lock()
	m.sess = refreshed
	m.mu.Unlock()
	if err := m.storage.Save(ctx, refreshed); err != nil {
		m.logger.Warn("failed to persist refreshed identity", zap.Error(err))
	}
	m.logger.Info("session rehydrated",
		zap.String("user", identity.Username),
		zap.String("role", string(identity.Role)),
	)
}

// Login exchanges credentials for a session. On success the pair is
// persisted and adopted together; on any failure the prior session is left
// untouched and the classified error is returned for the form to display.
func (m *Manager) Login(ctx context.Context, creds booking.Credentials) error {
	if err := booking.ValidateCredentials(creds); err != nil {
		return err
	}
	resp, err := m.auth.Login(ctx, creds)
	if err != nil {
		return err
	}
	return m.adopt(ctx, resp)
}

// Register creates an account and adopts the returned session. Same
// failure contract as Login.
func (m *Manager) Register(ctx context.Context, data booking.RegisterData) error {
	if err := booking.ValidateRegistration(data); err != nil {
		return err
	}
	resp, err := m.auth.Register(ctx, data)
	if err != nil {
		return err
	}
	return m.adopt(ctx, resp)
}

// Logout clears the persisted and in-memory session. It never fails: a
// storage error is logged and the in-memory session is dropped regardless.
func (m *Manager) Logout(ctx context.Context) {
	m.drop(ctx)
	m.logger.Info("logged out")
}

// Invalidate tears the session down after the backend rejected the token.
// Wired as the gateway's 401 hook.
func (m *Manager) Invalidate() {
	if !m.IsAuthenticated() {
		return
	}
	m.logger.Warn("session rejected by server, clearing")
	m.drop(context.Background())
}

func (m *Manager) adopt(ctx context.Context, resp booking.AuthResponse) error {
	user := resp.User
	next := models.Session{Token: resp.Token, User: &user}
	if err := m.storage.Save(ctx, next); err != nil {
		// Do not adopt what could not be persisted; the session stays as it was.
		m.logger.Error("failed to persist session", zap.Error(err))
		return err
	}
	m.mu.Lock()
	m.sess = next
	m.mu.Unlock()
	m.logger.Info("session established",
		zap.String("user", user.Username),
		zap.String("role", string(user.Role)),
	)
	return nil
}

func (m *Manager) drop(ctx context.Context) {
	m.mu.Lock()
	m.sess = models.Session{}
	m.mu.Unlock()
	if err := m.storage.Clear(ctx); err != nil {
		m.logger.Warn("failed to clear persisted session", zap.Error(err))
	}
}

// expired reports whether the token is a JWT whose exp claim lies in the
// past. Opaque or claimless tokens pass; the server has the final word.
func expired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}
