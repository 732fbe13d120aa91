package store

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/edvin/minio-lite-admin/internal/model"
)

type mockSource struct {
	mock.Mock
}

func (m *mockSource) ServerInfo(ctx context.Context) (*model.ServerInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ServerInfo), args.Error(1)
}

func (m *mockSource) DataUsage(ctx context.Context) (*model.DataUsage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DataUsage), args.Error(1)
}

func (m *mockSource) SiteReplication(ctx context.Context) (*model.SiteReplicationInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SiteReplicationInfo), args.Error(1)
}

func (m *mockSource) Buckets(ctx context.Context) (*model.BucketsResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BucketsResponse), args.Error(1)
}

func (m *mockSource) AccessKeys(ctx context.Context, opts model.AccessKeysOptions) (*model.AccessKeysResponse, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AccessKeysResponse), args.Error(1)
}

func (m *mockSource) CreateServiceAccount(ctx context.Context, req model.CreateServiceAccountRequest) (*model.CreateServiceAccountResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CreateServiceAccountResponse), args.Error(1)
}

func (m *mockSource) UpdateServiceAccount(ctx context.Context, accessKey string, req model.UpdateServiceAccountRequest) (*model.MutationResponse, error) {
	args := m.Called(ctx, accessKey, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MutationResponse), args.Error(1)
}

func (m *mockSource) DeleteServiceAccount(ctx context.Context, accessKey string) (*model.MutationResponse, error) {
	args := m.Called(ctx, accessKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MutationResponse), args.Error(1)
}
