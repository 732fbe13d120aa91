package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edvin/minio-lite-admin/internal/model"
)

// fakeAPI answers "METHOD /request-uri" with canned JSON and records the
// requests and bodies it received.
type fakeAPI struct {
	mu       sync.Mutex
	routes   map[string]fakeRoute
	requests []string
	bodies   map[string]string
}

type fakeRoute struct {
	status int
	body   string
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	key := r.Method + " " + r.URL.RequestURI()
	body, _ := io.ReadAll(r.Body)

	f.mu.Lock()
	f.requests = append(f.requests, key)
	f.bodies[key] = string(body)
	route, ok := f.routes[key]
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"not found"}`))
		return
	}
	if route.status == 0 {
		route.status = http.StatusOK
	}
	w.WriteHeader(route.status)
	w.Write([]byte(route.body))
}

func (f *fakeAPI) body(key string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.bodies[key]
}

func (f *fakeAPI) Requests() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.requests...)
}

var apiRoutes = map[string]fakeRoute{
	"GET /api/health":      {body: `{"status":"ok","service":"minio-lite-admin"}`},
	"GET /api/server-info": {body: `{"mode":"online","region":"us-east-1","deploymentId":"dep-1"}`},
	"GET /api/data-usage": {body: `{"totalCapacity":1073741824,"totalFreeCapacity":805306368,"totalUsedCapacity":268435456,
		"usagePercentage":25,"onlineDisks":4,"offlineDisks":0,"healingDisks":0,"poolsCount":1,"objectsCount":12345,"bucketsCount":3,
		"diskDetails":[{"endpoint":"http://node1:9000","path":"/data1","state":"ok","totalSpace":1073741824,"usedSpace":268435456,"utilization":25}]}`},
	"GET /api/access-keys": {body: `{"accessKeys":[
		{"accessKey":"AKIA1","parentUser":"root","accountStatus":"enabled","type":"user","impliedPolicy":false},
		{"accessKey":"SVC1","parentUser":"AKIA1","accountStatus":"disabled","type":"serviceAccount","name":"ci","impliedPolicy":true}],"total":2}`},
	"GET /api/access-keys?type=serviceAccounts&user=AKIA1": {body: `{"accessKeys":[
		{"accessKey":"SVC1","parentUser":"AKIA1","accountStatus":"disabled","type":"serviceAccount","name":"ci","impliedPolicy":true}],"total":1}`},
	"POST /api/access-keys": {status: http.StatusCreated, body: `{"accessKey":"SVC2","secretKey":"s3cr3t","name":"ci"}`},
	"PUT /api/access-keys/SVC1": {body: `{"accessKey":"SVC1","message":"Service account updated successfully"}`},
	"DELETE /api/access-keys/SVC1": {body: `{"accessKey":"SVC1","message":"Service account deleted successfully"}`},
	"GET /api/site-replication": {body: `{"enabled":false,"sites":[]}`},
}

type harness struct {
	api    *fakeAPI
	app    *app
	stdout bytes.Buffer
	stderr bytes.Buffer
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	api := &fakeAPI{routes: apiRoutes, bodies: map[string]string{}}
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	a := newApp()
	a.interactive = func() bool { return false }
	a.promptCreate = func(*model.CreateServiceAccountRequest) error {
		t.Fatal("unexpected prompt")
		return nil
	}
	a.confirm = func(string) (bool, error) {
		t.Fatal("unexpected confirm")
		return false, nil
	}

	h := &harness{api: api, app: a}
	h.app.v.Set("client.api_url", srv.URL)
	return h
}

func (h *harness) run(args ...string) error {
	root := newRootCmd(h.app)
	root.SetArgs(args)
	root.SetOut(&h.stdout)
	root.SetErr(&h.stderr)
	return root.Execute()
}

func TestInfo(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.run("info"))
	out := h.stdout.String()
	assert.Contains(t, out, "Status:")
	assert.Contains(t, out, "ok")
	assert.Contains(t, out, "dep-1")
	assert.Contains(t, out, "us-east-1")
}

func TestInfo_JSON(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.run("info", "--json"))

	var env struct {
		Success bool       `json:"success"`
		Data    infoOutput `json:"data"`
	}
	require.NoError(t, json.Unmarshal(h.stdout.Bytes(), &env))
	assert.True(t, env.Success)
	assert.Equal(t, "dep-1", env.Data.ServerInfo.DeploymentID)
	assert.Equal(t, "minio-lite-admin", env.Data.Health.Service)
}

func TestUsage_WithDisks(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.run("usage", "--disks"))
	out := h.stdout.String()
	assert.Contains(t, out, "1.0 GiB")
	assert.Contains(t, out, "256 MiB (25.0%)")
	assert.Contains(t, out, "12,345")
	assert.Contains(t, out, "http://node1:9000")
	assert.Contains(t, out, "ENDPOINT")
}

func TestKeysList(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.run("keys", "list"))
	out := h.stdout.String()
	assert.Contains(t, out, "AKIA1")
	assert.Contains(t, out, "Service Account")
	assert.Contains(t, out, "2 access keys")
}

func TestKeysList_Filters(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.run("keys", "list", "--type", "serviceAccounts", "--user", "AKIA1", "--json"))
	assert.Contains(t, h.api.Requests(), "GET /api/access-keys?type=serviceAccounts&user=AKIA1")

	var env struct {
		Data model.AccessKeysResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(h.stdout.Bytes(), &env))
	assert.Equal(t, 1, env.Data.Total)
}

func TestKeysList_InvalidType(t *testing.T) {
	h := newHarness(t)

	err := h.run("keys", "list", "--type", "groups")
	require.Error(t, err)
	assert.Equal(t, ErrCodeInvalidInput, ErrorToJSON(err).Code)
	assert.Empty(t, h.api.Requests())
}

func TestKeysCreate_FromFlags(t *testing.T) {
	h := newHarness(t)
	policy := filepath.Join(t.TempDir(), "policy.json")
	require.NoError(t, os.WriteFile(policy, []byte(`{"Version":"2012-10-17"}`), 0o600))

	require.NoError(t, h.run("keys", "create", "--name", "ci", "--policy-file", policy, "--expiry", "2027-01-01T00:00:00Z"))

	out := h.stdout.String()
	assert.Contains(t, out, "SVC2")
	assert.Contains(t, out, "s3cr3t")
	assert.Contains(t, out, "cannot be retrieved later")

	var sent model.CreateServiceAccountRequest
	require.NoError(t, json.Unmarshal([]byte(h.api.body("POST /api/access-keys")), &sent))
	assert.Equal(t, "ci", sent.Name)
	assert.Equal(t, `{"Version":"2012-10-17"}`, sent.Policy)
	require.NotNil(t, sent.Expiration)
	assert.Equal(t, "2027-01-01T00:00:00Z", *sent.Expiration)
}

func TestKeysCreate_NameRequiredWhenNotInteractive(t *testing.T) {
	h := newHarness(t)

	err := h.run("keys", "create")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--name is required")
}

func TestKeysCreate_PromptsOnTerminal(t *testing.T) {
	h := newHarness(t)
	h.app.interactive = func() bool { return true }
	h.app.promptCreate = func(req *model.CreateServiceAccountRequest) error {
		req.Name = "from-form"
		req.TargetUser = "AKIA1"
		return nil
	}

	require.NoError(t, h.run("keys", "create"))

	var sent model.CreateServiceAccountRequest
	require.NoError(t, json.Unmarshal([]byte(h.api.body("POST /api/access-keys")), &sent))
	assert.Equal(t, "from-form", sent.Name)
	assert.Equal(t, "AKIA1", sent.TargetUser)
}

func TestKeysCreate_InvalidExpiry(t *testing.T) {
	h := newHarness(t)

	err := h.run("keys", "create", "--name", "ci", "--expiry", "tomorrow")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RFC 3339")
	assert.Empty(t, h.api.Requests())
}

func TestKeysUpdate(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.run("keys", "update", "SVC1", "--status", "enabled", "--expiry", "2027-01-01T00:00:00Z"))
	assert.Contains(t, h.stdout.String(), "Service account updated successfully")

	var sent model.UpdateServiceAccountRequest
	require.NoError(t, json.Unmarshal([]byte(h.api.body("PUT /api/access-keys/SVC1")), &sent))
	assert.Equal(t, "enabled", sent.NewStatus)
	require.NotNil(t, sent.NewExpiration)
	assert.Equal(t, int64(1798761600), *sent.NewExpiration)
}

func TestKeysUpdate_Validation(t *testing.T) {
	h := newHarness(t)

	err := h.run("keys", "update", "SVC1", "--status", "paused")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be enabled or disabled")

	err = h.run("keys", "update", "SVC1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to update")
	assert.Empty(t, h.api.Requests())
}

func TestKeysDelete(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.run("keys", "delete", "SVC1", "--yes"))
	assert.Contains(t, h.stdout.String(), "Service account deleted successfully")
	assert.Contains(t, h.api.Requests(), "DELETE /api/access-keys/SVC1")
}

func TestKeysDelete_RequiresConfirmation(t *testing.T) {
	h := newHarness(t)

	err := h.run("keys", "delete", "SVC1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--yes")
	assert.Empty(t, h.api.Requests())
}

func TestKeysDelete_ConfirmDeclined(t *testing.T) {
	h := newHarness(t)
	h.app.interactive = func() bool { return true }
	h.app.confirm = func(q string) (bool, error) {
		assert.Contains(t, q, "SVC1")
		return false, nil
	}

	require.NoError(t, h.run("keys", "delete", "SVC1"))
	assert.Contains(t, h.stdout.String(), "Cancelled.")
	assert.Empty(t, h.api.Requests())
}

func TestKeysDelete_APIErrorMapsToCode(t *testing.T) {
	h := newHarness(t)

	err := h.run("keys", "delete", "MISSING", "--yes")
	require.Error(t, err)
	jsonErr := ErrorToJSON(err)
	assert.Equal(t, ErrCodeNotFound, jsonErr.Code)
	assert.Equal(t, http.StatusNotFound, jsonErr.Status)
	assert.Contains(t, jsonErr.Message, "HTTP 404: Not Found: not found")
}

func TestDashboard_NonTerminalPrintsSummary(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.run("dashboard"))
	out := h.stdout.String()
	assert.Contains(t, out, "MinIO Lite Admin")
	assert.Contains(t, out, "Deployment:  dep-1")
	assert.Contains(t, out, "Replication: not configured")
}

func TestConfigShow_MasksSecrets(t *testing.T) {
	h := newHarness(t)
	h.app.v.Set("minio.password", "hunter2")

	require.NoError(t, h.run("config", "show"))
	out := h.stdout.String()
	assert.Contains(t, out, "api_url:")
	assert.Contains(t, out, "********")
	assert.NotContains(t, out, "hunter2")
}

func TestConfigFromUserConfigDir(t *testing.T) {
	h := newHarness(t)
	dir := filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "minio-lite-admin")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("client:\n  timeout: 7s\n"), 0o600))

	require.NoError(t, h.run("config", "show"))
	assert.Contains(t, h.stdout.String(), "timeout: 7s")
}

func TestExplicitConfigMissing(t *testing.T) {
	h := newHarness(t)

	err := h.run("info", "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Equal(t, ErrCodeConfigInvalid, ErrorToJSON(err).Code)
}

func TestVersion(t *testing.T) {
	h := newHarness(t)
	SetVersionInfo("1.2.3", "abc123", "2026-10-01")
	t.Cleanup(func() { SetVersionInfo("dev", "none", "unknown") })

	require.NoError(t, h.run("version"))
	assert.True(t, strings.HasPrefix(h.stdout.String(), "mlactl v1.2.3\n"))

	h.stdout.Reset()
	require.NoError(t, h.run("version", "--short"))
	assert.Equal(t, "1.2.3\n", h.stdout.String())
}

func TestFormatVersion(t *testing.T) {
	assert.Equal(t, "dev", formatVersion("dev"))
	assert.Equal(t, "v1.0.0", formatVersion("1.0.0"))
	assert.Equal(t, "v1.0.0", formatVersion("v1.0.0"))
	assert.Equal(t, "", formatVersion(""))
}

func TestWriteJSONFromError(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSONFromError(&buf, &usageError{msg: "bad flag"}))

	var env JSONEnvelope
	require.NoError(t, json.Unmarshal(buf.Bytes(), &env))
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, ErrCodeInvalidInput, env.Error.Code)
	assert.Equal(t, "bad flag", env.Error.Message)
}
