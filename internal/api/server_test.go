package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/minio/madmin-go/v3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/edvin/minio-lite-admin/internal/config"
	"github.com/edvin/minio-lite-admin/internal/core"
)

type serverMockAdmin struct {
	mock.Mock
	core.AdminAPI
}

func (m *serverMockAdmin) ServerInfo(ctx context.Context) (madmin.InfoMessage, error) {
	args := m.Called(ctx)
	return args.Get(0).(madmin.InfoMessage), args.Error(1)
}

type serverMockS3 struct {
	mock.Mock
}

func (m *serverMockS3) ListBuckets(ctx context.Context, params *s3.ListBucketsInput, optFns ...func(*s3.Options)) (*s3.ListBucketsOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.ListBucketsOutput), args.Error(1)
}

func newTestServer(t *testing.T, staticDir string) (*Server, *serverMockAdmin, *serverMockS3) {
	t.Helper()
	admin := &serverMockAdmin{}
	s3c := &serverMockS3{}
	cfg := &config.Config{Server: config.Server{ServiceName: "minio-lite-admin", StaticDir: staticDir}}
	srv := NewServer(zerolog.Nop(), core.NewServices(admin, s3c), cfg)
	t.Cleanup(srv.Close)
	return srv, admin, s3c
}

func TestServer_Health(t *testing.T) {
	srv, _, _ := newTestServer(t, t.TempDir())

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","service":"minio-lite-admin"}`, rec.Body.String())
}

func TestServer_Healthz(t *testing.T) {
	srv, _, _ := newTestServer(t, t.TempDir())

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_Readyz(t *testing.T) {
	srv, admin, s3c := newTestServer(t, t.TempDir())
	admin.On("ServerInfo", mock.Anything).Return(madmin.InfoMessage{Mode: "online"}, nil)
	s3c.On("ListBuckets", mock.Anything, mock.Anything).Return(&s3.ListBucketsOutput{}, nil)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var checks map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &checks))
	assert.Equal(t, "ok", checks["minio_admin"])
	assert.Equal(t, "ok", checks["minio_s3"])
}

func TestServer_Readyz_Unhealthy(t *testing.T) {
	srv, admin, s3c := newTestServer(t, t.TempDir())
	admin.On("ServerInfo", mock.Anything).Return(madmin.InfoMessage{}, errors.New("connection refused"))
	s3c.On("ListBuckets", mock.Anything, mock.Anything).Return(&s3.ListBucketsOutput{}, nil)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var checks map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &checks))
	assert.Contains(t, checks["minio_admin"], "connection refused")
}

func TestServer_Metrics(t *testing.T) {
	srv, _, _ := newTestServer(t, t.TempDir())

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_AdoptsRequestID(t *testing.T) {
	var buf bytes.Buffer
	admin := &serverMockAdmin{}
	admin.On("ServerInfo", mock.Anything).Return(madmin.InfoMessage{}, nil)
	cfg := &config.Config{Server: config.Server{ServiceName: "minio-lite-admin"}}
	srv := NewServer(zerolog.New(&buf), core.NewServices(admin, &serverMockS3{}), cfg)
	t.Cleanup(srv.Close)

	r := httptest.NewRequest(http.MethodGet, "/api/server-info", nil)
	r.Header.Set("X-Request-Id", "req-123")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, r)

	assert.Equal(t, http.StatusOK, rec.Code)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &entry))
	assert.Equal(t, "request", entry["message"])
	assert.Equal(t, "req-123", entry["request_id"])
}

func TestServer_InvalidAccessKeyType(t *testing.T) {
	srv, _, _ := newTestServer(t, t.TempDir())

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/access-keys?type=bogus", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_SPAFallback(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<div id=app></div>"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "assets"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "assets", "app.js"), []byte("console.log(1)"), 0o644))

	srv, _, _ := newTestServer(t, dir)

	t.Run("client route serves index", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/access-keys", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "id=app")
	})

	t.Run("asset is served with cache headers", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/assets/app.js", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "console.log(1)", rec.Body.String())
		assert.Contains(t, rec.Header().Get("Cache-Control"), "immutable")
	})

	t.Run("traversal stays inside static dir", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/../../etc/passwd", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "id=app")
	})

	t.Run("traversal to a sibling file serves index", func(t *testing.T) {
		outside := filepath.Join(filepath.Dir(dir), "secret.txt")
		require.NoError(t, os.WriteFile(outside, []byte("top secret"), 0o644))

		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/../secret.txt", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "top secret")
		assert.Contains(t, rec.Body.String(), "id=app")
		assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))
	})

	t.Run("index is served at its own path", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/index.html", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "id=app")
	})
}

func TestServer_SPAMissingBundle(t *testing.T) {
	srv, _, _ := newTestServer(t, t.TempDir())

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
