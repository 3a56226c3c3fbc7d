package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"reminder-ai/internal/middleware"
)

type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func newEngine(mw middleware.Middleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw.Cors(), mw.APICompat())
	r.GET("/api/reminders", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.POST("/api/chat", mw.RateLimit(), func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	return r
}

func TestAPICompat(t *testing.T) {
	mw := middleware.New(mockLogger{}, 100, 100)
	r := newEngine(mw)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantLoc    string
	}{
		{"legacy reminders list", http.MethodGet, "/reminders", http.StatusFound, "/api/reminders"},
		{"legacy upcoming", http.MethodGet, "/reminders/upcoming", http.StatusFound, "/api/reminders/upcoming"},
		{"legacy chat preserves method", http.MethodPost, "/chat", http.StatusTemporaryRedirect, "/api/chat"},
		{"legacy delete preserves method", http.MethodDelete, "/reminder/3", http.StatusTemporaryRedirect, "/api/reminder/3"},
		{"legacy conversation", http.MethodGet, "/conversations/abc", http.StatusFound, "/api/conversations/abc"},
		{"new path untouched", http.MethodGet, "/api/reminders", http.StatusOK, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(tc.method, tc.path, nil)
			r.ServeHTTP(w, req)

			if w.Code != tc.wantStatus {
				t.Fatalf("expected status %d, got %d", tc.wantStatus, w.Code)
			}
			if tc.wantLoc != "" && w.Header().Get("Location") != tc.wantLoc {
				t.Errorf("expected redirect to %s, got %s", tc.wantLoc, w.Header().Get("Location"))
			}
		})
	}
}

func TestCorsPreflight(t *testing.T) {
	mw := middleware.New(mockLogger{}, 100, 100)
	r := newEngine(mw)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/reminders", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 for preflight, got %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Errorf("missing allow-origin header")
	}
}

func TestRateLimit(t *testing.T) {
	// Burst of 1 and a tiny refill rate: the second request must be rejected.
	mw := middleware.New(mockLogger{}, 0.001, 1)
	r := newEngine(mw)

	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest(http.MethodPost, "/api/chat", nil))
	if first.Code != http.StatusOK {
		t.Fatalf("first request should pass, got %d", first.Code)
	}

	second := httptest.NewRecorder()
	r.ServeHTTP(second, httptest.NewRequest(http.MethodPost, "/api/chat", nil))
	if second.Code != http.StatusTooManyRequests {
		t.Fatalf("second request should be limited, got %d", second.Code)
	}
}
