package infra

import (
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/edvin/minio-lite-admin/internal/config"
)

// NewS3Client returns an S3 client for the MinIO endpoint using the root
// credentials. MinIO requires path-style addressing.
func NewS3Client(cfg *config.Config) (*s3.Client, error) {
	transport, err := newTransport(cfg)
	if err != nil {
		return nil, err
	}

	opts := s3.Options{
		BaseEndpoint: aws.String(cfg.MinIO.URL),
		Region:       cfg.MinIO.Region,
		Credentials:  credentials.NewStaticCredentialsProvider(cfg.MinIO.RootUser, cfg.MinIO.Password, ""),
		UsePathStyle: true,
	}
	if transport != nil {
		opts.HTTPClient = &http.Client{Transport: transport}
	}

	return s3.New(opts), nil
}
