package store

import (
	"context"

	"github.com/edvin/minio-lite-admin/internal/model"
)

type ServerInfoSource interface {
	ServerInfo(ctx context.Context) (*model.ServerInfo, error)
}

// ServerInfoStore holds the deployment identity shown on the dashboard.
// Data is nil until the first successful fetch.
type ServerInfoStore struct {
	*Resource[*model.ServerInfo]
	src ServerInfoSource
}

func NewServerInfoStore(src ServerInfoSource) *ServerInfoStore {
	return &ServerInfoStore{Resource: NewResource[*model.ServerInfo](nil), src: src}
}

func (s *ServerInfoStore) Fetch(ctx context.Context) (State[*model.ServerInfo], error) {
	return s.Run(ctx, s.src.ServerInfo)
}

// Activate is called when a view bound to this store becomes visible.
func (s *ServerInfoStore) Activate(ctx context.Context) (State[*model.ServerInfo], error) {
	return s.Fetch(ctx)
}
