package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/edvin/minio-lite-admin/internal/core"
)

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, map[string]string{"error": message})
}

// WriteServiceError writes err with 400 for invalid caller input and 500
// for everything else.
func WriteServiceError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, core.ErrInvalidInput) {
		status = http.StatusBadRequest
	}
	WriteError(w, status, err.Error())
}
