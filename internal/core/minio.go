package core

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/minio/madmin-go/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ErrInvalidInput marks errors caused by a bad caller request rather than
// an upstream failure.
var ErrInvalidInput = errors.New("invalid input")

// AdminAPI is the subset of the MinIO admin API used by the services.
type AdminAPI interface {
	ServerInfo(ctx context.Context) (madmin.InfoMessage, error)
	ListUsers(ctx context.Context) (map[string]madmin.UserInfo, error)
	ListAccessKeysBulk(ctx context.Context, users []string, opts madmin.ListAccessKeysOpts) (map[string]madmin.ListAccessKeysResp, error)
	AddServiceAccount(ctx context.Context, req madmin.AddServiceAccountReq) (madmin.Credentials, error)
	UpdateServiceAccount(ctx context.Context, accessKey string, req madmin.UpdateServiceAccountReq) error
	DeleteServiceAccount(ctx context.Context, accessKey string) error
	SiteReplicationInfo(ctx context.Context) (madmin.SiteReplicationInfo, error)
}

// S3API is the subset of the S3 API used by the services.
type S3API interface {
	ListBuckets(ctx context.Context, params *s3.ListBucketsInput, optFns ...func(*s3.Options)) (*s3.ListBucketsOutput, error)
}

var upstreamRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "minio_lite_admin",
		Name:      "upstream_requests_total",
		Help:      "Calls made to the MinIO admin and S3 APIs",
	},
	[]string{"operation", "result"},
)

func observe(operation string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	upstreamRequestsTotal.WithLabelValues(operation, result).Inc()
}
