package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/bharatha-dev/brainly-server/internal/api"
	"github.com/bharatha-dev/brainly-server/internal/api/handlers"
	"github.com/bharatha-dev/brainly-server/internal/api/services"
	"github.com/bharatha-dev/brainly-server/internal/config"
	"github.com/bharatha-dev/brainly-server/internal/repositories"
)

const testSecret = "test-secret-12345678901234567890"

func setupTestRouter(t *testing.T) (http.Handler, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, repositories.Migrate(db))

	logger := zerolog.Nop()
	cfg := &config.Config{
		Port:       "8080",
		JWTSecret:  testSecret,
		JWTExpiry:  time.Hour,
		CorsConfig: config.CorsConfig(),
	}

	h := handlers.NewHandler(
		logger,
		services.NewAuthService(db, logger, []byte(cfg.JWTSecret), cfg.JWTExpiry),
		services.NewContentService(db, logger),
		services.NewShareService(db, logger),
	)

	return api.SetupRouter(cfg, logger, h), db
}

type payload struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data"`
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any, token string) (*httptest.ResponseRecorder, payload) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var p payload
	_ = json.Unmarshal(w.Body.Bytes(), &p)
	return w, p
}

func signup(t *testing.T, router http.Handler, username, password string) {
	t.Helper()
	w, _ := doJSON(t, router, http.MethodPost, "/api/v1/signup",
		map[string]string{"username": username, "password": password}, "")
	require.Equal(t, http.StatusCreated, w.Code)
}

func signin(t *testing.T, router http.Handler, username, password string) string {
	t.Helper()
	w, p := doJSON(t, router, http.MethodPost, "/api/v1/signin",
		map[string]string{"username": username, "password": password}, "")
	require.Equal(t, http.StatusOK, w.Code)
	token, ok := p.Data["token"].(string)
	require.True(t, ok, "signin response must carry a token")
	return token
}
