package core

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/minio/madmin-go/v3"
	"github.com/stretchr/testify/mock"
)

// ---------- Mock AdminAPI ----------

type mockAdmin struct {
	mock.Mock
}

func (m *mockAdmin) ServerInfo(ctx context.Context) (madmin.InfoMessage, error) {
	args := m.Called(ctx)
	return args.Get(0).(madmin.InfoMessage), args.Error(1)
}

func (m *mockAdmin) ListUsers(ctx context.Context) (map[string]madmin.UserInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]madmin.UserInfo), args.Error(1)
}

func (m *mockAdmin) ListAccessKeysBulk(ctx context.Context, users []string, opts madmin.ListAccessKeysOpts) (map[string]madmin.ListAccessKeysResp, error) {
	args := m.Called(ctx, users, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]madmin.ListAccessKeysResp), args.Error(1)
}

func (m *mockAdmin) AddServiceAccount(ctx context.Context, req madmin.AddServiceAccountReq) (madmin.Credentials, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(madmin.Credentials), args.Error(1)
}

func (m *mockAdmin) UpdateServiceAccount(ctx context.Context, accessKey string, req madmin.UpdateServiceAccountReq) error {
	args := m.Called(ctx, accessKey, req)
	return args.Error(0)
}

func (m *mockAdmin) DeleteServiceAccount(ctx context.Context, accessKey string) error {
	args := m.Called(ctx, accessKey)
	return args.Error(0)
}

func (m *mockAdmin) SiteReplicationInfo(ctx context.Context) (madmin.SiteReplicationInfo, error) {
	args := m.Called(ctx)
	return args.Get(0).(madmin.SiteReplicationInfo), args.Error(1)
}

// ---------- Mock S3API ----------

type mockS3 struct {
	mock.Mock
}

func (m *mockS3) ListBuckets(ctx context.Context, params *s3.ListBucketsInput, optFns ...func(*s3.Options)) (*s3.ListBucketsOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.ListBucketsOutput), args.Error(1)
}
