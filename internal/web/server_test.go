package web

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/DaanHessen/gembooth-dash/internal/content"
	"github.com/DaanHessen/gembooth-dash/internal/mask"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

const testEnv = `# local secrets
VITE_GEMINI_API_KEY=AIzaSyD-abcdefghijklmnopqrstuvwxyz012345
VITE_SUPABASE_URL=https://abcdxyz.supabase.co
STRIPE_SECRET_KEY=sk_test_51Habcdefghijklmnopqrstuvwxyz
`

func newTestServer(t *testing.T, envBody string) (*Server, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env.local")
	if envBody != "" {
		require.NoError(t, os.WriteFile(path, []byte(envBody), 0o600))
	}
	cfg := DefaultConfig()
	cfg.EnvFile = path
	cfg.Version = "test"
	s := NewServer(cfg, zap.NewNop())
	s.now = func() time.Time { return time.Date(2025, 1, 17, 9, 30, 0, 0, time.UTC) }
	return s, path
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestHealth(t *testing.T) {
	s, path := newTestServer(t, testEnv)
	rec := get(t, s, "/api/health")
	require.Equal(t, http.StatusOK, rec.Code)
	h := decode[healthResponse](t, rec)
	assert.Equal(t, "ok", h.Status)
	assert.Equal(t, "test", h.Version)
	assert.Equal(t, path, h.EnvFile)
	assert.True(t, h.EnvFound)
	assert.NotEmpty(t, rec.Header().Get(requestIDHeader))
}

func TestRequestIDPropagates(t *testing.T) {
	s, _ := newTestServer(t, "")
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(requestIDHeader))
}

func TestEveryPageEndpoint(t *testing.T) {
	s, _ := newTestServer(t, testEnv)
	for _, p := range content.Pages() {
		rec := get(t, s, "/api/"+string(p.ID))
		assert.Equal(t, http.StatusOK, rec.Code, p.ID)
		assert.Contains(t, rec.Header().Get("Content-Type"), "application/json", p.ID)

		byID := get(t, s, "/api/pages/"+string(p.ID))
		assert.Equal(t, rec.Body.String(), byID.Body.String(), p.ID)
	}
}

func TestAPIKeysAreMasked(t *testing.T) {
	s, _ := newTestServer(t, testEnv)
	rec := get(t, s, "/api/api-keys")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "sk_test_51Habcdefghijklmnopqrstuvwxyz")

	keys := decode[content.APIKeys](t, rec)
	assert.Equal(t, "sk_test_51...", keys.Stripe.SecretKey)
	assert.Equal(t, mask.NotSet, keys.Stripe.WebhookSecret)
	assert.Equal(t, "https://abcdxyz.supabase.co", keys.Supabase.URL)
}

func TestEnvIsReadPerRequest(t *testing.T) {
	s, path := newTestServer(t, "")
	first := decode[content.Overview](t, get(t, s, "/api/overview"))
	assert.Equal(t, "❌ Missing", first.Status.Environment)

	require.NoError(t, os.WriteFile(path, []byte(testEnv), 0o600))
	second := decode[content.Overview](t, get(t, s, "/api/overview"))
	assert.Equal(t, "✅ Configured", second.Status.Environment)
	assert.Equal(t, "✅ Set", second.Status.Gemini)
}

func TestUnreadableEnvStillServes(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	cfg := DefaultConfig()
	cfg.EnvFile = t.TempDir()
	s := NewServer(cfg, zap.New(core))

	rec := get(t, s, "/api/api-keys")
	require.Equal(t, http.StatusOK, rec.Code)
	keys := decode[content.APIKeys](t, rec)
	assert.Equal(t, mask.NotSet, keys.Gemini.APIKey)
	assert.Equal(t, 1, logs.FilterMessage("env file unreadable, continuing without configuration").Len())
}

func TestSupabaseProjectRef(t *testing.T) {
	s, _ := newTestServer(t, testEnv)
	sb := decode[content.Supabase](t, get(t, s, "/api/supabase"))
	assert.Equal(t, "abcdxyz", sb.ProjectRef)
	assert.Equal(t, "https://supabase.com/dashboard/project/abcdxyz", sb.DashboardURL)
}

func TestPageByKeyAndUnknown(t *testing.T) {
	s, _ := newTestServer(t, "")
	rec := get(t, s, "/api/pages/8")
	require.Equal(t, http.StatusOK, rec.Code)
	modes := decode[content.AIModes](t, rec)
	assert.Len(t, modes.Modes, 22)

	rec = get(t, s, "/api/pages/pricing")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "unknown page: pricing", decode[errorResponse](t, rec).Error)

	rec = get(t, s, "/api/nothing-here")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMarkdownEndpoint(t *testing.T) {
	s, _ := newTestServer(t, testEnv)
	rec := get(t, s, "/api/pages/stripe/markdown")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/markdown; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "# 💳 Stripe Integration")

	assert.Equal(t, http.StatusNotFound, get(t, s, "/api/pages/nope/markdown").Code)
}

func TestPagesIndex(t *testing.T) {
	s, _ := newTestServer(t, "")
	body := decode[struct {
		Pages []content.Page `json:"pages"`
	}](t, get(t, s, "/api/pages"))
	assert.Equal(t, content.Pages(), body.Pages)

	idx := decode[indexResponse](t, get(t, s, "/"))
	assert.Len(t, idx.Endpoints, len(content.Pages())+2)
}

func TestCORS(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EnableCORS = true
	cfg.EnvFile = filepath.Join(t.TempDir(), ".env.local")
	s := NewServer(cfg, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestServeShutsDownOnCancel(t *testing.T) {
	s, _ := newTestServer(t, testEnv)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/api/stripe")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "4242 4242 4242 4242")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestStartReportsListenError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	cfg := DefaultConfig()
	cfg.Addr = ln.Addr().String()
	err = NewServer(cfg, nil).Start(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listen on")
}
