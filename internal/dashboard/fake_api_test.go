package dashboard

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/edvin/minio-lite-admin/internal/adminclient"
)

// fakeAPI serves canned JSON keyed by "METHOD /request-uri" and records
// every request it sees.
type fakeAPI struct {
	mu       sync.Mutex
	routes   map[string]string
	requests []string
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	key := r.Method + " " + r.URL.RequestURI()
	f.mu.Lock()
	f.requests = append(f.requests, key)
	body, ok := f.routes[key]
	f.mu.Unlock()

	if !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"no route"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(body))
}

func (f *fakeAPI) Requests() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.requests...)
}

var defaultRoutes = map[string]string{
	"GET /api/server-info": `{"mode":"online","region":"us-east-1","deploymentId":"dep-1"}`,
	"GET /api/data-usage": `{"totalCapacity":1073741824,"totalFreeCapacity":536870912,"totalUsedCapacity":536870912,
		"usagePercentage":50,"onlineDisks":3,"offlineDisks":1,"healingDisks":0,"poolsCount":1,"objectsCount":1200,"bucketsCount":4,
		"diskDetails":[{"endpoint":"http://node1:9000","path":"/data1","state":"ok","totalSpace":1073741824,"usedSpace":536870912,"utilization":50}]}`,
	"GET /api/access-keys": `{"accessKeys":[
		{"accessKey":"AKIA1","parentUser":"root","accountStatus":"enabled","type":"user","impliedPolicy":false},
		{"accessKey":"SVC1","parentUser":"AKIA1","accountStatus":"enabled","type":"serviceAccount","name":"ci","impliedPolicy":true}],"total":2}`,
	"GET /api/access-keys?type=users": `{"accessKeys":[
		{"accessKey":"AKIA1","parentUser":"root","accountStatus":"enabled","type":"user","impliedPolicy":false}],"total":1}`,
	"GET /api/buckets":          `{"buckets":[{"name":"logs","createdAt":"2026-01-02T03:04:05Z"},{"name":"media"}],"total":2}`,
	"GET /api/site-replication": `{"enabled":true,"name":"global","sites":[{"name":"east","endpoint":"https://east:9000","deploymentId":"dep-1"}]}`,
	"PUT /api/access-keys/SVC1":    `{"accessKey":"SVC1","message":"Service account updated successfully"}`,
	"DELETE /api/access-keys/SVC1": `{"accessKey":"SVC1","message":"Service account deleted successfully"}`,
}

func newFakeStores(t *testing.T, routes map[string]string) (*Stores, *fakeAPI) {
	t.Helper()
	api := &fakeAPI{routes: routes}
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)
	return NewStores(adminclient.NewClient(srv.URL, 5*time.Second)), api
}

// runCmd executes cmd, expanding batches, and returns the non-nil messages.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// recordingSender collects messages sent through a Bridge.
type recordingSender struct {
	mu   sync.Mutex
	msgs []tea.Msg
}

func (r *recordingSender) Send(msg tea.Msg) {
	r.mu.Lock()
	r.msgs = append(r.msgs, msg)
	r.mu.Unlock()
}

func (r *recordingSender) Messages() []tea.Msg {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]tea.Msg(nil), r.msgs...)
}
