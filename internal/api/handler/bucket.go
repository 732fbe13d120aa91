package handler

import (
	"net/http"

	"github.com/edvin/minio-lite-admin/internal/api/response"
	"github.com/edvin/minio-lite-admin/internal/core"
)

type Bucket struct {
	svc *core.BucketService
}

func NewBucket(svc *core.BucketService) *Bucket {
	return &Bucket{svc: svc}
}

func (h *Bucket) List(w http.ResponseWriter, r *http.Request) {
	buckets, err := h.svc.List(r.Context())
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, buckets)
}
