package handler

import (
	"net/http"

	"github.com/edvin/minio-lite-admin/internal/api/response"
	"github.com/edvin/minio-lite-admin/internal/core"
)

type ServerInfo struct {
	svc *core.ServerInfoService
}

func NewServerInfo(svc *core.ServerInfoService) *ServerInfo {
	return &ServerInfo{svc: svc}
}

func (h *ServerInfo) Get(w http.ResponseWriter, r *http.Request) {
	info, err := h.svc.Get(r.Context())
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, info)
}

func (h *ServerInfo) DataUsage(w http.ResponseWriter, r *http.Request) {
	usage, err := h.svc.DataUsage(r.Context())
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, usage)
}
