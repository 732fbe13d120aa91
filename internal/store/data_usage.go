package store

import (
	"context"

	"github.com/edvin/minio-lite-admin/internal/model"
)

type DataUsageSource interface {
	DataUsage(ctx context.Context) (*model.DataUsage, error)
}

type DataUsageStore struct {
	*Resource[*model.DataUsage]
	src DataUsageSource
}

func NewDataUsageStore(src DataUsageSource) *DataUsageStore {
	return &DataUsageStore{Resource: NewResource[*model.DataUsage](nil), src: src}
}

func (s *DataUsageStore) Fetch(ctx context.Context) (State[*model.DataUsage], error) {
	return s.Run(ctx, s.src.DataUsage)
}

func (s *DataUsageStore) Activate(ctx context.Context) (State[*model.DataUsage], error) {
	return s.Fetch(ctx)
}
