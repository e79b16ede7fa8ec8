package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"confluence-assistant/internal/model"
	"confluence-assistant/internal/user"
)

type noopLogger struct{}

func (noopLogger) Debug(ctx context.Context, arg ...any)                    {}
func (noopLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (noopLogger) Info(ctx context.Context, arg ...any)                     {}
func (noopLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (noopLogger) Warn(ctx context.Context, arg ...any)                     {}
func (noopLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (noopLogger) Error(ctx context.Context, arg ...any)                    {}
func (noopLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (noopLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (noopLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (noopLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (noopLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (noopLogger) Panic(ctx context.Context, arg ...any)                    {}
func (noopLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockUserUC only implements ValidateSession; the rest panic if reached.
type mockUserUC struct {
	scope model.Scope
	err   error
	calls int
}

func (m *mockUserUC) Register(ctx context.Context, input user.RegisterInput) (user.RegisterOutput, error) {
	panic("not implemented")
}

func (m *mockUserUC) Login(ctx context.Context, input user.LoginInput) (user.LoginOutput, error) {
	panic("not implemented")
}

func (m *mockUserUC) Logout(ctx context.Context, token string) error { panic("not implemented") }

func (m *mockUserUC) ValidateSession(ctx context.Context, token string) (model.Scope, error) {
	m.calls++
	if m.err != nil {
		return model.Scope{}, m.err
	}
	return m.scope, nil
}

func (m *mockUserUC) Me(ctx context.Context, sc model.Scope) (model.User, error) {
	panic("not implemented")
}

func (m *mockUserUC) GetSettings(ctx context.Context, sc model.Scope) (user.SettingsOutput, error) {
	panic("not implemented")
}

func (m *mockUserUC) UpdateSettings(ctx context.Context, sc model.Scope, input user.UpdateSettingsInput) (user.SettingsOutput, error) {
	panic("not implemented")
}

func newAuthRouter(uc user.UseCase) (*gin.Engine, Middleware) {
	gin.SetMode(gin.TestMode)
	mw := New(noopLogger{}, uc)
	r := gin.New()
	r.GET("/protected", mw.Auth(), func(c *gin.Context) {
		sc, _ := GetScope(c)
		c.String(http.StatusOK, sc.Username)
	})
	return r, mw
}

func TestAuth(t *testing.T) {
	t.Run("missing header is rejected", func(t *testing.T) {
		r, _ := newAuthRouter(&mockUserUC{})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("got %d, want 401", w.Code)
		}
	})

	t.Run("invalid session is rejected", func(t *testing.T) {
		r, _ := newAuthRouter(&mockUserUC{err: user.ErrSessionNotFound})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer bad-token")
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("got %d, want 401", w.Code)
		}
	})

	t.Run("valid session sets scope", func(t *testing.T) {
		r, _ := newAuthRouter(&mockUserUC{scope: model.Scope{UserID: "u1", Username: "alice"}})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("got %d, want 200", w.Code)
		}
		if w.Body.String() != "alice" {
			t.Fatalf("scope not propagated: %q", w.Body.String())
		}
	})

	t.Run("validated tokens are cached", func(t *testing.T) {
		uc := &mockUserUC{scope: model.Scope{UserID: "u1", Username: "alice"}}
		r, _ := newAuthRouter(uc)
		for i := 0; i < 3; i++ {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", "Bearer good-token")
			r.ServeHTTP(w, req)
		}
		if uc.calls != 1 {
			t.Fatalf("ValidateSession called %d times, want 1", uc.calls)
		}
	})

	t.Run("Forget evicts the cached token", func(t *testing.T) {
		uc := &mockUserUC{scope: model.Scope{UserID: "u1", Username: "alice"}}
		r, mw := newAuthRouter(uc)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		r.ServeHTTP(httptest.NewRecorder(), req)

		mw.Forget("good-token")
		uc.err = user.ErrSessionNotFound

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("got %d, want 401 after Forget", w.Code)
		}
	})
}

func TestBearerToken(t *testing.T) {
	cases := []struct {
		header string
		want   string
	}{
		{"Bearer abc", "abc"},
		{"bearer abc", "abc"},
		{"Bearer  abc ", "abc"},
		{"Basic abc", ""},
		{"Bearer", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := bearerToken(tc.header); got != tc.want {
			t.Errorf("bearerToken(%q) = %q, want %q", tc.header, got, tc.want)
		}
	}
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw := New(noopLogger{}, &mockUserUC{})
	r := gin.New()
	r.GET("/", mw.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })

	var limited bool
	for i := 0; i < limiterBurst+5; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		if w.Code == http.StatusTooManyRequests {
			limited = true
		}
	}
	if !limited {
		t.Fatal("burst overflow never rate-limited")
	}

	// A different client gets its own bucket.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("fresh client got %d, want 200", w.Code)
	}
}
