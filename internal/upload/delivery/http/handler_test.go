package http

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"confluence-assistant/internal/middleware"
	"confluence-assistant/internal/model"
	uploadUC "confluence-assistant/internal/upload/usecase"
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

type sessionStub struct{}

func (sessionStub) Register(ctx context.Context, input user.RegisterInput) (user.RegisterOutput, error) {
	panic("not implemented")
}

func (sessionStub) Login(ctx context.Context, input user.LoginInput) (user.LoginOutput, error) {
	panic("not implemented")
}

func (sessionStub) Logout(ctx context.Context, token string) error { panic("not implemented") }

func (sessionStub) ValidateSession(ctx context.Context, token string) (model.Scope, error) {
	if token != "tok-1" {
		return model.Scope{}, user.ErrSessionNotFound
	}
	return model.Scope{UserID: "u1", Username: "alice"}, nil
}

func (sessionStub) Me(ctx context.Context, sc model.Scope) (model.User, error) {
	panic("not implemented")
}

func (sessionStub) GetSettings(ctx context.Context, sc model.Scope) (user.SettingsOutput, error) {
	panic("not implemented")
}

func (sessionStub) UpdateSettings(ctx context.Context, sc model.Scope, input user.UpdateSettingsInput) (user.SettingsOutput, error) {
	panic("not implemented")
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	mw := middleware.New(noopLogger{}, sessionStub{})
	h := New(noopLogger{}, uploadUC.New(noopLogger{}))
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), h, mw)
	return r
}

func multipartBody(t *testing.T, fileName, content string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return body, writer.FormDataContentType()
}

func doUpload(t *testing.T, r *gin.Engine, token, fileName, content string) *httptest.ResponseRecorder {
	t.Helper()
	body, contentType := multipartBody(t, fileName, content)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/uploads", body)
	req.Header.Set("Content-Type", contentType)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUploadHandler(t *testing.T) {
	r := newRouter()

	t.Run("requires auth", func(t *testing.T) {
		w := doUpload(t, r, "", "notes.txt", "hello")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("got %d, want 401", w.Code)
		}
	})

	t.Run("extracts a text file", func(t *testing.T) {
		w := doUpload(t, r, "tok-1", "notes.txt", "hello world")
		if w.Code != http.StatusOK {
			t.Fatalf("got %d: %s", w.Code, w.Body.String())
		}
		body := w.Body.String()
		if !strings.Contains(body, `"file_name":"notes.txt"`) || !strings.Contains(body, `"content":"hello world"`) {
			t.Fatalf("body: %s", body)
		}
	})

	t.Run("rejects unsupported types with 415", func(t *testing.T) {
		w := doUpload(t, r, "tok-1", "photo.png", "binary")
		if w.Code != http.StatusUnsupportedMediaType {
			t.Fatalf("got %d, want 415", w.Code)
		}
	})

	t.Run("rejects oversized files with 413", func(t *testing.T) {
		w := doUpload(t, r, "tok-1", "big.txt", strings.Repeat("a", uploadUC.MaxFileSize+1))
		if w.Code != http.StatusRequestEntityTooLarge {
			t.Fatalf("got %d, want 413", w.Code)
		}
	})

	t.Run("missing file is a 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/uploads", nil)
		req.Header.Set("Authorization", "Bearer tok-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("got %d, want 400", w.Code)
		}
	})
}
