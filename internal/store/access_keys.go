package store

import (
	"context"
	"sync"

	"github.com/edvin/minio-lite-admin/internal/model"
)

type AccessKeySource interface {
	AccessKeys(ctx context.Context, opts model.AccessKeysOptions) (*model.AccessKeysResponse, error)
	CreateServiceAccount(ctx context.Context, req model.CreateServiceAccountRequest) (*model.CreateServiceAccountResponse, error)
	UpdateServiceAccount(ctx context.Context, accessKey string, req model.UpdateServiceAccountRequest) (*model.MutationResponse, error)
	DeleteServiceAccount(ctx context.Context, accessKey string) (*model.MutationResponse, error)
}

// AccessKeysStore holds the access key listing. It is only fetched on
// request; a new filter means a new Fetch.
type AccessKeysStore struct {
	*Resource[model.AccessKeysResponse]
	src AccessKeySource

	optsMu   sync.Mutex
	lastOpts model.AccessKeysOptions
}

func emptyAccessKeys() model.AccessKeysResponse {
	return model.AccessKeysResponse{AccessKeys: []model.AccessKeyInfo{}, Total: 0}
}

func NewAccessKeysStore(src AccessKeySource) *AccessKeysStore {
	return &AccessKeysStore{Resource: NewResource(emptyAccessKeys), src: src}
}

// Fetch lists access keys matching opts and remembers opts for Refetch and
// the mutations.
func (s *AccessKeysStore) Fetch(ctx context.Context, opts model.AccessKeysOptions) (State[model.AccessKeysResponse], error) {
	s.optsMu.Lock()
	s.lastOpts = opts
	s.optsMu.Unlock()

	return s.Run(ctx, func(ctx context.Context) (model.AccessKeysResponse, error) {
		resp, err := s.src.AccessKeys(ctx, opts)
		if err != nil {
			return model.AccessKeysResponse{}, err
		}
		out := *resp
		if out.AccessKeys == nil {
			out.AccessKeys = []model.AccessKeyInfo{}
		}
		return out, nil
	})
}

// Options returns the filter used by the most recent Fetch.
func (s *AccessKeysStore) Options() model.AccessKeysOptions {
	s.optsMu.Lock()
	defer s.optsMu.Unlock()
	return s.lastOpts
}

// Refetch repeats the most recent Fetch.
func (s *AccessKeysStore) Refetch(ctx context.Context) (State[model.AccessKeysResponse], error) {
	return s.Fetch(ctx, s.Options())
}

// CreateServiceAccount creates a key and refreshes the listing. Mutation
// errors are returned and leave the snapshot untouched; refresh errors only
// show up in the store's state.
func (s *AccessKeysStore) CreateServiceAccount(ctx context.Context, req model.CreateServiceAccountRequest) (*model.CreateServiceAccountResponse, error) {
	resp, err := s.src.CreateServiceAccount(ctx, req)
	if err != nil {
		return nil, err
	}
	s.Refetch(ctx)
	return resp, nil
}

func (s *AccessKeysStore) UpdateServiceAccount(ctx context.Context, accessKey string, req model.UpdateServiceAccountRequest) (*model.MutationResponse, error) {
	resp, err := s.src.UpdateServiceAccount(ctx, accessKey, req)
	if err != nil {
		return nil, err
	}
	s.Refetch(ctx)
	return resp, nil
}

func (s *AccessKeysStore) DeleteServiceAccount(ctx context.Context, accessKey string) (*model.MutationResponse, error) {
	resp, err := s.src.DeleteServiceAccount(ctx, accessKey)
	if err != nil {
		return nil, err
	}
	s.Refetch(ctx)
	return resp, nil
}
