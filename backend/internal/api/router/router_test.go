package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Shadomax/Elearning/backend/config"
	"github.com/Shadomax/Elearning/backend/internal/api/handler"
	"github.com/Shadomax/Elearning/backend/internal/model"
	"github.com/Shadomax/Elearning/backend/internal/repository"
	"github.com/Shadomax/Elearning/backend/internal/service"
	"github.com/Shadomax/Elearning/backend/pkg/jwt"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *jwt.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Server: config.ServerConfig{Port: 8080, MaxBodyBytes: 1 << 20},
		Auth:   config.AuthConfig{JWTSecret: "router-test-secret-key", AccessTokenTTL: time.Minute},
	}
	cfg.Server.CORS.AllowOrigins = []string{"http://localhost:5173"}

	logger := zap.NewNop()
	jwtMgr := jwt.NewManager(&cfg.Auth)
	// 以下用例均在到达仓储层之前返回
	svc := service.NewService(repository.NewRepository(nil), jwtMgr, nil, logger)
	return Setup(cfg, handler.NewHandler(svc), jwtMgr, nil, logger), jwtMgr
}

func TestRouter_Health(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID header")
	}
}

func TestRouter_CoursesRequireAuth(t *testing.T) {
	r, _ := setupTestRouter(t)

	for _, path := range []string{"/api/v1/courses", "/api/v1/courses/1", "/api/v1/courses/new", "/api/v1/courses/1/calendar.ics"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", path, nil))
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s: expected 401, got %d", path, w.Code)
		}
	}
}

func TestRouter_CourseManagementRequiresAdmin(t *testing.T) {
	r, jwtMgr := setupTestRouter(t)
	token, _ := jwtMgr.GenerateAccessToken(1, int(model.RoleEditor))

	tests := []struct {
		method string
		path   string
	}{
		{"GET", "/api/v1/courses/new"},
		{"POST", "/api/v1/courses"},
		{"GET", "/api/v1/courses/1/edit"},
		{"PUT", "/api/v1/courses/1"},
		{"POST", "/api/v1/courses/1"},
		{"GET", "/api/v1/users/1/login-history"},
	}
	for _, tt := range tests {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(tt.method, tt.path, nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)
		if w.Code != http.StatusForbidden {
			t.Errorf("%s %s: expected 403, got %d", tt.method, tt.path, w.Code)
		}
	}
}

func TestRouter_NewFormForAdmin(t *testing.T) {
	r, jwtMgr := setupTestRouter(t)
	token, _ := jwtMgr.GenerateAccessToken(1, int(model.RoleAdmin))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/courses/new", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("OPTIONS", "/api/v1/courses", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "GET")
	r.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("unexpected Allow-Origin %q", got)
	}
}
