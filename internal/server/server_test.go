package server_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/campusdesk/registry-api/internal/config"
	"github.com/campusdesk/registry-api/internal/server"
	"github.com/campusdesk/registry-api/internal/store"
)

func newTestServer(t *testing.T) (http.Handler, string) {
	t.Helper()
	pub := t.TempDir()
	cfg := &config.Config{BindAddr: ":0", PublicDir: pub}

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "registry.db")), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	s, err := store.NewWithDB(db, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return server.NewServer(cfg, s).Handler(), pub
}

func TestCORSPreflight(t *testing.T) {
	h, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/students", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
}

func TestCORSOnSimpleRequest(t *testing.T) {
	h, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/courses", nil)
	req.Header.Set("Origin", "https://example.com")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestStaticFilesBypassAPIRouting(t *testing.T) {
	h, pub := newTestServer(t)
	require.NoError(t, os.WriteFile(filepath.Join(pub, "hello.txt"), []byte("hello from disk"), 0o644))

	req := httptest.NewRequest(http.MethodGet, "/hello.txt", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "hello from disk", w.Body.String())

	// API routes still take precedence over the file server
	req = httptest.NewRequest(http.MethodGet, "/api/students", nil)
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHealthThroughPipeline(t *testing.T) {
	cfg := &config.Config{PublicDir: t.TempDir()}
	h := server.NewServer(cfg, store.NewDetached(cfg)).Handler()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"UP"`)
}

func TestNewHTTPServerTimeouts(t *testing.T) {
	cfg := &config.Config{BindAddr: ":9999", PublicDir: t.TempDir()}
	srv := server.NewServer(cfg, store.NewDetached(cfg)).NewHTTPServer()

	assert.Equal(t, ":9999", srv.Addr)
	assert.NotZero(t, srv.ReadTimeout)
	assert.NotZero(t, srv.WriteTimeout)
}
