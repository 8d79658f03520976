package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/meetspace/roomclient/internal/apperr"
	"github.com/meetspace/roomclient/internal/booking"
	"github.com/meetspace/roomclient/internal/models"
)

type memStorage struct {
	sess    models.Session
	saveErr error
	loadErr error
}

func (m *memStorage) Load(context.Context) (models.Session, error) {
	return m.sess, m.loadErr
}

func (m *memStorage) Save(_ context.Context, sess models.Session) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.sess = sess
	return nil
}

func (m *memStorage) Clear(context.Context) error {
	m.sess = models.Session{}
	return nil
}

type fakeAuth struct {
	loginResp booking.AuthResponse
	loginErr  error
	meResp    models.Identity
	meErr     error
	meCalls   int
}

func (f *fakeAuth) Login(context.Context, booking.Credentials) (booking.AuthResponse, error) {
	return f.loginResp, f.loginErr
}

func (f *fakeAuth) Register(context.Context, booking.RegisterData) (booking.AuthResponse, error) {
	return f.loginResp, f.loginErr
}

func (f *fakeAuth) Me(context.Context) (models.Identity, error) {
	f.meCalls++
	return f.meResp, f.meErr
}

func newTestManager(storage Storage, auth AuthAPI) *Manager {
	m := NewManager(storage, zap.NewNop())
	m.SetAuthClient(auth)
	return m
}

func alice() models.Identity {
	return models.Identity{ID: "u1", Username: "alice", FullName: "Alice", Role: models.RoleUser}
}

// checkAtomic fails the test if exactly one of token/identity is present.
func checkAtomic(t *testing.T, m *Manager) {
	t.Helper()
	_, hasUser := m.Current()
	hasToken := m.Token() != ""
	if hasUser != hasToken {
		t.Errorf("session not atomic: token present=%v, user present=%v", hasToken, hasUser)
	}
}

func TestLoginAdoptsAndPersists(t *testing.T) {
	storage := &memStorage{}
	user := alice()
	auth := &fakeAuth{loginResp: booking.AuthResponse{Token: "t1", User: user}}
	m := newTestManager(storage, auth)

	err := m.Login(context.Background(), booking.Credentials{Username: "alice", Password: "pw"})
	if err != nil {
		t.Fatalf("Login() error: %v", err)
	}
	if !m.IsAuthenticated() {
		t.Error("IsAuthenticated() = false after successful login")
	}
	if m.Token() != "t1" {
		t.Errorf("Token() = %q, want t1", m.Token())
	}
	if storage.sess.Token != "t1" || storage.sess.User == nil || storage.sess.User.ID != "u1" {
		t.Errorf("persisted session = %+v, want token t1 and user u1", storage.sess)
	}
	checkAtomic(t, m)
}

func TestLoginFailureLeavesSessionUntouched(t *testing.T) {
	storage := &memStorage{}
	auth := &fakeAuth{loginErr: apperr.New(apperr.KindAuthentication, 401, "bad credentials")}
	m := newTestManager(storage, auth)

	err := m.Login(context.Background(), booking.Credentials{Username: "alice", Password: "wrong"})
	if err == nil {
		t.Fatal("Login() returned nil error")
	}
	if m.IsAuthenticated() {
		t.Error("IsAuthenticated() = true after failed login")
	}
	if !storage.sess.Empty() {
		t.Errorf("storage mutated by failed login: %+v", storage.sess)
	}
	checkAtomic(t, m)
}

func TestLoginValidatesBeforeCalling(t *testing.T) {
	auth := &fakeAuth{loginResp: booking.AuthResponse{Token: "t1", User: alice()}}
	m := newTestManager(&memStorage{}, auth)

	err := m.Login(context.Background(), booking.Credentials{Username: "", Password: "pw"})
	if !apperr.IsValidation(err) {
		t.Errorf("Login() error = %v, want validation error", err)
	}
	if m.IsAuthenticated() {
		t.Error("session adopted despite validation failure")
	}
}

func TestLoginPersistFailureDoesNotAdopt(t *testing.T) {
	storage := &memStorage{saveErr: errors.New("disk full")}
	auth := &fakeAuth{loginResp: booking.AuthResponse{Token: "t1", User: alice()}}
	m := newTestManager(storage, auth)

	if err := m.Login(context.Background(), booking.Credentials{Username: "alice", Password: "pw"}); err == nil {
		t.Fatal("Login() returned nil error despite persist failure")
	}
	if m.IsAuthenticated() {
		t.Error("session adopted despite persist failure")
	}
	checkAtomic(t, m)
}

func TestInitializeRevalidatesStoredSession(t *testing.T) {
	user := alice()
	storage := &memStorage{sess: models.Session{Token: "t1", User: &user}}
	refreshed := alice()
	refreshed.FullName = "Alice A."
	auth := &fakeAuth{meResp: refreshed}
	m := newTestManager(storage, auth)

	m.Initialize(context.Background())

	if !m.Ready() {
		t.Error("Ready() = false after Initialize")
	}
	if auth.meCalls != 1 {
		t.Errorf("Me called %d times, want 1", auth.meCalls)
	}
	current, ok := m.Current()
	if !ok || current.FullName != "Alice A." {
		t.Errorf("Current() = %+v, want server-refreshed identity", current)
	}
	checkAtomic(t, m)
}

func TestInitializeClearsOnRevalidationFailure(t *testing.T) {
	user := alice()
	storage := &memStorage{sess: models.Session{Token: "t1", User: &user}}
	auth := &fakeAuth{meErr: apperr.New(apperr.KindAuthentication, 401, "expired")}
	m := newTestManager(storage, auth)

	m.Initialize(context.Background())

	if m.IsAuthenticated() {
		t.Error("IsAuthenticated() = true after failed revalidation")
	}
	if !storage.sess.Empty() {
		t.Errorf("storage not cleared: %+v", storage.sess)
	}
	checkAtomic(t, m)
}

func TestInitializeClearsPartialSession(t *testing.T) {
	tests := []struct {
		name string
		sess models.Session
	}{
		{"token without user", models.Session{Token: "t1"}},
		{"user without token", models.Session{User: &models.Identity{ID: "u1"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage := &memStorage{sess: tt.sess}
			auth := &fakeAuth{}
			m := newTestManager(storage, auth)

			m.Initialize(context.Background())

			if m.IsAuthenticated() {
				t.Error("partial session was adopted")
			}
			if !storage.sess.Empty() {
				t.Errorf("partial session not cleared: %+v", storage.sess)
			}
			if auth.meCalls != 0 {
				t.Error("revalidation attempted for a partial session")
			}
			checkAtomic(t, m)
		})
	}
}

func TestInitializeClearsOnLoadError(t *testing.T) {
	storage := &memStorage{loadErr: errors.New("corrupt"), sess: models.Session{Token: "junk"}}
	m := newTestManager(storage, &fakeAuth{})

	m.Initialize(context.Background())

	if m.IsAuthenticated() {
		t.Error("session adopted from unreadable storage")
	}
	if !m.Ready() {
		t.Error("Ready() = false after Initialize")
	}
}

func TestLogoutThenInitializeIsUnauthenticated(t *testing.T) {
	storage := &memStorage{}
	auth := &fakeAuth{loginResp: booking.AuthResponse{Token: "t1", User: alice()}}
	m := newTestManager(storage, auth)

	if err := m.Login(context.Background(), booking.Credentials{Username: "alice", Password: "pw"}); err != nil {
		t.Fatalf("Login() error: %v", err)
	}
	m.Logout(context.Background())

	// Simulate a reload: fresh manager over the same storage.
	m2 := newTestManager(storage, auth)
	m2.Initialize(context.Background())
	if m2.IsAuthenticated() {
		t.Error("IsAuthenticated() = true after logout and reload")
	}
	if auth.meCalls != 0 {
		t.Error("revalidation attempted with no stored session")
	}
}

func TestInvalidateClearsEverything(t *testing.T) {
	storage := &memStorage{}
	auth := &fakeAuth{loginResp: booking.AuthResponse{Token: "t1", User: alice()}}
	m := newTestManager(storage, auth)

	if err := m.Login(context.Background(), booking.Credentials{Username: "alice", Password: "pw"}); err != nil {
		t.Fatalf("Login() error: %v", err)
	}
	m.Invalidate()

	if m.IsAuthenticated() {
		t.Error("IsAuthenticated() = true after Invalidate")
	}
	if !storage.sess.Empty() {
		t.Errorf("storage not cleared: %+v", storage.sess)
	}
}

func TestInitializeDropsExpiredTokenWithoutNetworkCall(t *testing.T) {
	claims := jwt.MapClaims{"sub": "u1", "exp": time.Now().Add(-time.Hour).Unix()}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatal(err)
	}

	user := alice()
	storage := &memStorage{sess: models.Session{Token: signed, User: &user}}
	auth := &fakeAuth{}
	m := newTestManager(storage, auth)

	m.Initialize(context.Background())

	if m.IsAuthenticated() {
		t.Error("expired token was adopted")
	}
	if auth.meCalls != 0 {
		t.Error("revalidation attempted for a locally expired token")
	}
	if !storage.sess.Empty() {
		t.Errorf("expired session not cleared: %+v", storage.sess)
	}
}
