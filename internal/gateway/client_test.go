package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/meetspace/roomclient/internal/apperr"
)

type staticTokens string

func (s staticTokens) Token() string { return string(s) }

func newTestClient(t *testing.T, handler http.HandlerFunc, token string) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 2*time.Second, staticTokens(token), zap.NewNop())
}

func TestBearerTokenAttached(t *testing.T) {
	var gotAuth, gotRequestID string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`{}`))
	}, "t1")

	var out map[string]any
	if err := client.Get(context.Background(), "/api/rooms", nil, &out); err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if gotAuth != "Bearer t1" {
		t.Errorf("Authorization = %q, want Bearer t1", gotAuth)
	}
	if gotRequestID == "" {
		t.Error("X-Request-ID header missing")
	}
}

func TestNoTokenMeansNoHeader(t *testing.T) {
	var gotAuth string
	sawHeader := false
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, sawHeader = r.Header["Authorization"]
		w.Write([]byte(`{}`))
	}, "")

	if err := client.Get(context.Background(), "/api/rooms", nil, nil); err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if sawHeader {
		t.Errorf("Authorization header sent unauthenticated: %q", gotAuth)
	}
}

func TestStatusClassification(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		want    apperr.Kind
		message string
	}{
		{"401 is authentication", http.StatusUnauthorized, `{}`, apperr.KindAuthentication, ""},
		{"403 is authorization", http.StatusForbidden, `{}`, apperr.KindAuthorization, ""},
		{"404 is not found", http.StatusNotFound, `{}`, apperr.KindNotFound, ""},
		{"500 is server", http.StatusInternalServerError, `{}`, apperr.KindServer, ""},
		{"503 is server", http.StatusServiceUnavailable, `{}`, apperr.KindServer, ""},
		{"409 uses server message", http.StatusConflict, `{"message":"slot already booked"}`, apperr.KindUnexpected, "slot already booked"},
		{"409 falls back to error field", http.StatusConflict, `{"error":"conflict"}`, apperr.KindUnexpected, "conflict"},
		{"400 without body gets generic message", http.StatusBadRequest, ``, apperr.KindUnexpected, "An unexpected error occurred (status 400)."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}, "t1")

			err := client.Get(context.Background(), "/x", nil, nil)
			if err == nil {
				t.Fatal("Get() returned nil error")
			}
			if got := apperr.KindOf(err); got != tt.want {
				t.Errorf("KindOf() = %v, want %v", got, tt.want)
			}
			if tt.message != "" && apperr.MessageOf(err) != tt.message {
				t.Errorf("MessageOf() = %q, want %q", apperr.MessageOf(err), tt.message)
			}
		})
	}
}

func TestUnauthorizedHookFires(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}, "t1")

	fired := 0
	client.SetUnauthorizedHook(func() { fired++ })

	_ = client.Get(context.Background(), "/x", nil, nil)
	if fired != 1 {
		t.Errorf("hook fired %d times, want 1", fired)
	}
}

func TestUnauthorizedHookNotFiredForOtherStatuses(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}, "t1")

	fired := 0
	client.SetUnauthorizedHook(func() { fired++ })

	_ = client.Get(context.Background(), "/x", nil, nil)
	if fired != 0 {
		t.Errorf("hook fired %d times for a 403", fired)
	}
}

func TestCredentialExchange401LeavesHookAlone(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"invalid credentials"}`))
	}, "t1")

	fired := 0
	client.SetUnauthorizedHook(func() { fired++ })

	err := client.PostCredentials(context.Background(), "/auth/login", map[string]string{}, nil)
	if fired != 0 {
		t.Errorf("hook fired %d times for a rejected credential exchange", fired)
	}
	if !apperr.IsAuthentication(err) {
		t.Errorf("error = %v, want authentication classification", err)
	}
	if got := apperr.MessageOf(err); got != "invalid credentials" {
		t.Errorf("message = %q, want the server's verdict", got)
	}
}

func TestCredentialExchange401FallbackMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}, "")

	err := client.PostCredentials(context.Background(), "/auth/login", map[string]string{}, nil)
	if got := apperr.MessageOf(err); got != "Invalid username or password." {
		t.Errorf("message = %q", got)
	}
}

func TestConnectivityFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing is listening any more

	client := NewClient(srv.URL, time.Second, staticTokens(""), zap.NewNop())
	err := client.Get(context.Background(), "/x", nil, nil)
	if !apperr.IsConnectivity(err) {
		t.Errorf("error = %v, want connectivity classification", err)
	}
}

func TestQueryParametersEncoded(t *testing.T) {
	var gotQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`[]`))
	}, "")

	q := map[string][]string{"date": {"2026-09-01"}}
	var out []any
	if err := client.Get(context.Background(), "/api/rooms", q, &out); err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if gotQuery != "date=2026-09-01" {
		t.Errorf("query = %q", gotQuery)
	}
}
