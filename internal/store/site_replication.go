package store

import (
	"context"

	"github.com/edvin/minio-lite-admin/internal/model"
)

type SiteReplicationSource interface {
	SiteReplication(ctx context.Context) (*model.SiteReplicationInfo, error)
}

type SiteReplicationStore struct {
	*Resource[*model.SiteReplicationInfo]
	src SiteReplicationSource
}

func NewSiteReplicationStore(src SiteReplicationSource) *SiteReplicationStore {
	return &SiteReplicationStore{Resource: NewResource[*model.SiteReplicationInfo](nil), src: src}
}

func (s *SiteReplicationStore) Fetch(ctx context.Context) (State[*model.SiteReplicationInfo], error) {
	return s.Run(ctx, s.src.SiteReplication)
}

func (s *SiteReplicationStore) Activate(ctx context.Context) (State[*model.SiteReplicationInfo], error) {
	return s.Fetch(ctx)
}
