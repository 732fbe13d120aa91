package handler

import (
	"net/http"

	"github.com/edvin/minio-lite-admin/internal/api/request"
	"github.com/edvin/minio-lite-admin/internal/api/response"
	"github.com/edvin/minio-lite-admin/internal/core"
	"github.com/edvin/minio-lite-admin/internal/model"
)

type AccessKey struct {
	svc *core.AccessKeyService
}

func NewAccessKey(svc *core.AccessKeyService) *AccessKey {
	return &AccessKey{svc: svc}
}

func (h *AccessKey) List(w http.ResponseWriter, r *http.Request) {
	opts, err := request.ParseAccessKeysOptions(r)
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	keys, err := h.svc.List(r.Context(), opts)
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, keys)
}

func (h *AccessKey) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateServiceAccountRequest
	if err := request.Decode(r, &req); err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.svc.Create(r.Context(), req)
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusCreated, created)
}

func (h *AccessKey) Update(w http.ResponseWriter, r *http.Request) {
	accessKey, err := request.AccessKeyParam(r)
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req model.UpdateServiceAccountRequest
	if err := request.Decode(r, &req); err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.svc.Update(r.Context(), accessKey, req)
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, resp)
}

func (h *AccessKey) Delete(w http.ResponseWriter, r *http.Request) {
	accessKey, err := request.AccessKeyParam(r)
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.svc.Delete(r.Context(), accessKey)
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, resp)
}
