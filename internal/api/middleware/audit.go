package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// AuditLogger records mutating API requests to a dedicated logger without
// blocking the request path.
type AuditLogger struct {
	logger zerolog.Logger
	ch     chan auditEntry
	done   chan struct{}
}

type auditEntry struct {
	RequestID    string
	Method       string
	Path         string
	ResourceType *string
	ResourceID   *string
	StatusCode   int
	RequestBody  json.RawMessage
}

func NewAuditLogger(logger zerolog.Logger) *AuditLogger {
	al := &AuditLogger{
		logger: logger.With().Str("component", "audit").Logger(),
		ch:     make(chan auditEntry, 1024),
		done:   make(chan struct{}),
	}
	go al.drain()
	return al
}

func (al *AuditLogger) drain() {
	defer close(al.done)
	for entry := range al.ch {
		ev := al.logger.Info().
			Str("request_id", entry.RequestID).
			Str("method", entry.Method).
			Str("path", entry.Path).
			Int("status", entry.StatusCode)
		if entry.ResourceType != nil {
			ev = ev.Str("resource_type", *entry.ResourceType)
		}
		if entry.ResourceID != nil {
			ev = ev.Str("resource_id", *entry.ResourceID)
		}
		if len(entry.RequestBody) > 0 {
			ev = ev.RawJSON("request_body", entry.RequestBody)
		}
		ev.Msg("audit")
	}
}

// Pending returns the number of entries waiting to be written.
func (al *AuditLogger) Pending() int {
	return len(al.ch)
}

// Close drains remaining entries and waits for them to be written.
func (al *AuditLogger) Close() {
	close(al.ch)
	<-al.done
}

// Middleware returns a chi middleware that logs mutating API requests.
func (al *AuditLogger) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost && r.Method != http.MethodPut && r.Method != http.MethodDelete {
			next.ServeHTTP(w, r)
			return
		}

		var bodyBytes []byte
		if r.Body != nil {
			bodyBytes, _ = io.ReadAll(r.Body)
			r.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
		}

		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)

		resourceType, resourceID := extractResource(r.URL.Path)

		var sanitizedBody json.RawMessage
		if len(bodyBytes) > 0 && json.Valid(bodyBytes) {
			sanitizedBody = sanitizeBody(bodyBytes)
		}

		select {
		case al.ch <- auditEntry{
			RequestID:    middleware.GetReqID(r.Context()),
			Method:       r.Method,
			Path:         r.URL.Path,
			ResourceType: resourceType,
			ResourceID:   resourceID,
			StatusCode:   sw.status,
			RequestBody:  sanitizedBody,
		}:
		default:
			al.logger.Warn().Msg("audit log buffer full, dropping entry")
		}
	})
}

// extractResource splits /api/<type>[/<id>] into its parts,
// e.g. /api/access-keys/AKIA1 -> type=access-keys, id=AKIA1.
func extractResource(path string) (*string, *string) {
	parts := strings.Split(strings.Trim(strings.TrimPrefix(path, "/api/"), "/"), "/")

	var resourceType, resourceID *string
	if len(parts) > 0 && parts[0] != "" {
		p := parts[0]
		resourceType = &p
	}
	if len(parts) > 1 && parts[1] != "" {
		p := parts[1]
		resourceID = &p
	}
	return resourceType, resourceID
}

var sensitiveFields = map[string]bool{
	"secretKey": true, "newSecretKey": true, "sessionToken": true,
	"policy": true, "newPolicy": true,
}

func sanitizeBody(body []byte) json.RawMessage {
	var data map[string]any
	if err := json.Unmarshal(body, &data); err != nil {
		return body
	}
	for k := range data {
		if sensitiveFields[k] {
			data[k] = "[REDACTED]"
		}
	}
	sanitized, _ := json.Marshal(data)
	return sanitized
}
