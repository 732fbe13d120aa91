package handler

import (
	"net/http"

	"github.com/edvin/minio-lite-admin/internal/api/response"
	"github.com/edvin/minio-lite-admin/internal/core"
)

type SiteReplication struct {
	svc *core.SiteReplicationService
}

func NewSiteReplication(svc *core.SiteReplicationService) *SiteReplication {
	return &SiteReplication{svc: svc}
}

func (h *SiteReplication) Get(w http.ResponseWriter, r *http.Request) {
	info, err := h.svc.Get(r.Context())
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, info)
}
