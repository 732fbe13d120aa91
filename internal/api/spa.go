package api

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/edvin/minio-lite-admin/internal/api/response"
)

// spaHandler serves the dashboard bundle, falling back to index.html so the
// client-side router can resolve /dashboard, /access-keys and friends.
// Requests are resolved against staticDir after cleaning, so ".." segments
// never leave it.
type spaHandler struct {
	staticDir string
}

func (h spaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	index := filepath.Join(h.staticDir, "index.html")
	if _, err := os.Stat(index); err != nil {
		response.WriteError(w, http.StatusNotFound, "dashboard bundle not found")
		return
	}

	file := filepath.Join(h.staticDir, filepath.FromSlash(path.Clean("/"+r.URL.Path)))

	fi, err := os.Stat(file)
	if err != nil || fi.IsDir() {
		w.Header().Set("Cache-Control", "no-cache")
		serveFile(w, r, index)
		return
	}

	// Cache static assets aggressively
	if strings.HasPrefix(path.Clean(r.URL.Path), "/assets/") {
		w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	}

	serveFile(w, r, file)
}

// serveFile writes name with http.ServeContent. Unlike http.ServeFile it
// does not inspect the request path, which may still hold ".." segments.
func serveFile(w http.ResponseWriter, r *http.Request, name string) {
	f, err := os.Open(name)
	if err != nil {
		response.WriteError(w, http.StatusNotFound, "not found")
		return
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		response.WriteError(w, http.StatusInternalServerError, "stat file")
		return
	}
	http.ServeContent(w, r, fi.Name(), fi.ModTime(), f)
}
