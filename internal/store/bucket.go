package store

import (
	"context"

	"github.com/edvin/minio-lite-admin/internal/model"
)

type BucketSource interface {
	Buckets(ctx context.Context) (*model.BucketsResponse, error)
}

type BucketStore struct {
	*Resource[*model.BucketsResponse]
	src BucketSource
}

func NewBucketStore(src BucketSource) *BucketStore {
	return &BucketStore{Resource: NewResource[*model.BucketsResponse](nil), src: src}
}

func (s *BucketStore) Fetch(ctx context.Context) (State[*model.BucketsResponse], error) {
	return s.Run(ctx, s.src.Buckets)
}

// Activate is called when a view bound to this store becomes visible.
func (s *BucketStore) Activate(ctx context.Context) (State[*model.BucketsResponse], error) {
	return s.Fetch(ctx)
}
