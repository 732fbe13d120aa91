package handler

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/minio/madmin-go/v3"
	"github.com/stretchr/testify/mock"
)

// handlerMockAdmin implements core.AdminAPI for handler tests.
type handlerMockAdmin struct {
	mock.Mock
}

func (m *handlerMockAdmin) ServerInfo(ctx context.Context) (madmin.InfoMessage, error) {
	args := m.Called(ctx)
	return args.Get(0).(madmin.InfoMessage), args.Error(1)
}

func (m *handlerMockAdmin) ListUsers(ctx context.Context) (map[string]madmin.UserInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]madmin.UserInfo), args.Error(1)
}

func (m *handlerMockAdmin) ListAccessKeysBulk(ctx context.Context, users []string, opts madmin.ListAccessKeysOpts) (map[string]madmin.ListAccessKeysResp, error) {
	args := m.Called(ctx, users, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]madmin.ListAccessKeysResp), args.Error(1)
}

func (m *handlerMockAdmin) AddServiceAccount(ctx context.Context, req madmin.AddServiceAccountReq) (madmin.Credentials, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(madmin.Credentials), args.Error(1)
}

func (m *handlerMockAdmin) UpdateServiceAccount(ctx context.Context, accessKey string, req madmin.UpdateServiceAccountReq) error {
	return m.Called(ctx, accessKey, req).Error(0)
}

func (m *handlerMockAdmin) DeleteServiceAccount(ctx context.Context, accessKey string) error {
	return m.Called(ctx, accessKey).Error(0)
}

func (m *handlerMockAdmin) SiteReplicationInfo(ctx context.Context) (madmin.SiteReplicationInfo, error) {
	args := m.Called(ctx)
	return args.Get(0).(madmin.SiteReplicationInfo), args.Error(1)
}

// handlerMockS3 implements core.S3API for handler tests.
type handlerMockS3 struct {
	mock.Mock
}

func (m *handlerMockS3) ListBuckets(ctx context.Context, params *s3.ListBucketsInput, optFns ...func(*s3.Options)) (*s3.ListBucketsOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.ListBucketsOutput), args.Error(1)
}
