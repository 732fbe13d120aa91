package handler

import (
	"net/http"

	"github.com/edvin/minio-lite-admin/internal/api/response"
	"github.com/edvin/minio-lite-admin/internal/model"
)

type Health struct {
	service string
}

func NewHealth(service string) *Health {
	return &Health{service: service}
}

func (h *Health) Get(w http.ResponseWriter, r *http.Request) {
	response.WriteJSON(w, http.StatusOK, model.HealthResponse{Status: "ok", Service: h.service})
}
