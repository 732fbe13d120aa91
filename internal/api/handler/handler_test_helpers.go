package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

const testAccessKey = "AKIA1"

// newRequest builds a request whose body is v encoded as JSON. A nil v
// sends an empty body.
func newRequest(method, target string, v any) *http.Request {
	var body io.Reader = http.NoBody
	if v != nil {
		data, err := json.Marshal(v)
		if err != nil {
			panic(err)
		}
		body = strings.NewReader(string(data))
	}
	r := httptest.NewRequest(method, target, body)
	r.Header.Set("Content-Type", "application/json")
	return r
}

func newRequestRaw(method, target, body string) *http.Request {
	r := httptest.NewRequest(method, target, strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	return r
}

// withAccessKey sets the {accessKey} route parameter the way chi would.
func withAccessKey(r *http.Request, accessKey string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("accessKey", accessKey)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// accessKeyRequest targets /api/access-keys/{accessKey}.
func accessKeyRequest(method, accessKey string, v any) *http.Request {
	return withAccessKey(newRequest(method, "/api/access-keys/"+accessKey, v), accessKey)
}

// errorMessage returns the "error" field of a response.WriteError body.
func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body.Error
}
