package core

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/edvin/minio-lite-admin/internal/model"
)

type BucketService struct {
	s3 S3API
}

func NewBucketService(s3c S3API) *BucketService {
	return &BucketService{s3: s3c}
}

func (s *BucketService) List(ctx context.Context) (*model.BucketsResponse, error) {
	out, err := s.s3.ListBuckets(ctx, &s3.ListBucketsInput{})
	observe("list_buckets", err)
	if err != nil {
		return nil, fmt.Errorf("list buckets: %w", err)
	}

	resp := &model.BucketsResponse{Buckets: make([]model.Bucket, 0, len(out.Buckets))}
	for _, b := range out.Buckets {
		resp.Buckets = append(resp.Buckets, model.Bucket{
			Name:      aws.ToString(b.Name),
			CreatedAt: b.CreationDate,
		})
	}
	resp.Total = len(resp.Buckets)
	return resp, nil
}

// Ping checks that the S3 API answers with the configured credentials.
func (s *BucketService) Ping(ctx context.Context) error {
	_, err := s.s3.ListBuckets(ctx, &s3.ListBucketsInput{MaxBuckets: aws.Int32(1)})
	if err != nil {
		return fmt.Errorf("ping s3: %w", err)
	}
	return nil
}
