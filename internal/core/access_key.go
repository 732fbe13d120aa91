package core

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/minio/madmin-go/v3"
	"github.com/rs/zerolog"

	"github.com/edvin/minio-lite-admin/internal/model"
)

type AccessKeyService struct {
	admin AdminAPI
}

func NewAccessKeyService(admin AdminAPI) *AccessKeyService {
	return &AccessKeyService{admin: admin}
}

// List returns users, service accounts and STS keys matching opts. An empty
// type lists everything.
func (s *AccessKeyService) List(ctx context.Context, opts model.AccessKeysOptions) (*model.AccessKeysResponse, error) {
	if opts.Type == "" {
		opts.Type = model.KeyFilterAll
	}
	if !model.ValidKeyFilter(opts.Type) {
		return nil, fmt.Errorf("%w: unknown access key type %q", ErrInvalidInput, opts.Type)
	}

	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("type", opts.Type).Str("user", opts.User).Msg("listing access keys")

	users, err := s.admin.ListUsers(ctx)
	observe("list_users", err)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	bulkOpts := madmin.ListAccessKeysOpts{}
	switch opts.Type {
	case model.KeyFilterUsers:
		bulkOpts.ListType = madmin.AccessKeyListUsersOnly
	case model.KeyFilterServiceAccounts:
		bulkOpts.ListType = madmin.AccessKeyListSvcaccOnly
	case model.KeyFilterSTS:
		bulkOpts.ListType = madmin.AccessKeyListSTSOnly
	default:
		bulkOpts.ListType = madmin.AccessKeyListAll
	}

	var targets []string
	if opts.User == "" {
		bulkOpts.All = true
	} else {
		targets = []string{opts.User}
	}

	bulk, err := s.admin.ListAccessKeysBulk(ctx, targets, bulkOpts)
	observe("list_access_keys", err)
	if err != nil {
		return nil, fmt.Errorf("list access keys: %w", err)
	}

	wantUsers := opts.Type == model.KeyFilterAll || opts.Type == model.KeyFilterUsers
	wantSvc := opts.Type == model.KeyFilterAll || opts.Type == model.KeyFilterServiceAccounts
	wantSTS := opts.Type == model.KeyFilterAll || opts.Type == model.KeyFilterSTS

	keys := []model.AccessKeyInfo{}
	for _, userName := range slices.Sorted(maps.Keys(bulk)) {
		resp := bulk[userName]

		if userInfo, ok := users[userName]; ok && wantUsers {
			keys = append(keys, model.AccessKeyInfo{
				AccessKey:     userName,
				ParentUser:    userName,
				AccountStatus: string(userInfo.Status),
				Type:          model.KeyTypeUser,
			})
		}
		if wantSvc {
			for _, sa := range resp.ServiceAccounts {
				keys = append(keys, accessKeyFromMinIO(sa, model.KeyTypeServiceAccount))
			}
		}
		if wantSTS {
			for _, sts := range resp.STSKeys {
				keys = append(keys, accessKeyFromMinIO(sts, model.KeyTypeSTS))
			}
		}
	}

	logger.Debug().Int("count", len(keys)).Msg("listed access keys")

	return &model.AccessKeysResponse{AccessKeys: keys, Total: len(keys)}, nil
}

func accessKeyFromMinIO(sa madmin.ServiceAccountInfo, keyType string) model.AccessKeyInfo {
	key := model.AccessKeyInfo{
		AccessKey:     sa.AccessKey,
		ParentUser:    sa.ParentUser,
		AccountStatus: sa.AccountStatus,
		Type:          keyType,
		Name:          sa.Name,
		Description:   sa.Description,
		ImpliedPolicy: sa.ImpliedPolicy,
	}
	if sa.Expiration != nil {
		exp := sa.Expiration.UTC().Format(time.RFC3339)
		key.Expiration = &exp
	}
	return key
}

// Create adds a service account. MinIO generates the credentials when the
// request leaves them empty.
func (s *AccessKeyService) Create(ctx context.Context, req model.CreateServiceAccountRequest) (*model.CreateServiceAccountResponse, error) {
	addReq := madmin.AddServiceAccountReq{
		Name:        req.Name,
		Description: req.Description,
		AccessKey:   req.AccessKey,
		SecretKey:   req.SecretKey,
		TargetUser:  req.TargetUser,
	}

	if req.Policy != "" {
		if !json.Valid([]byte(req.Policy)) {
			return nil, fmt.Errorf("%w: policy is not valid JSON", ErrInvalidInput)
		}
		addReq.Policy = json.RawMessage(req.Policy)
	}

	if req.Expiration != nil && *req.Expiration != "" {
		exp, err := time.Parse(time.RFC3339, *req.Expiration)
		if err != nil {
			return nil, fmt.Errorf("%w: expiration must be RFC 3339: %v", ErrInvalidInput, err)
		}
		addReq.Expiration = &exp
	}

	creds, err := s.admin.AddServiceAccount(ctx, addReq)
	observe("add_service_account", err)
	if err != nil {
		return nil, fmt.Errorf("create service account: %w", err)
	}

	zerolog.Ctx(ctx).Info().
		Str("access_key", creds.AccessKey).
		Str("name", req.Name).
		Msg("created service account")

	resp := &model.CreateServiceAccountResponse{
		AccessKey:    creds.AccessKey,
		SecretKey:    creds.SecretKey,
		SessionToken: creds.SessionToken,
		Name:         req.Name,
		Description:  req.Description,
	}
	if !creds.Expiration.IsZero() {
		exp := creds.Expiration.UTC().Format(time.RFC3339)
		resp.Expiration = &exp
	}
	return resp, nil
}

// Update changes the non-empty fields of req on the service account.
func (s *AccessKeyService) Update(ctx context.Context, accessKey string, req model.UpdateServiceAccountRequest) (*model.MutationResponse, error) {
	if accessKey == "" {
		return nil, fmt.Errorf("%w: access key is required", ErrInvalidInput)
	}

	updateReq := madmin.UpdateServiceAccountReq{
		NewSecretKey:   req.NewSecretKey,
		NewName:        req.NewName,
		NewDescription: req.NewDescription,
	}

	if req.NewPolicy != "" {
		if !json.Valid([]byte(req.NewPolicy)) {
			return nil, fmt.Errorf("%w: policy is not valid JSON", ErrInvalidInput)
		}
		updateReq.NewPolicy = json.RawMessage(req.NewPolicy)
	}

	if req.NewStatus != "" {
		if req.NewStatus != model.AccountEnabled && req.NewStatus != model.AccountDisabled {
			return nil, fmt.Errorf("%w: account status must be %q or %q, got %q",
				ErrInvalidInput, model.AccountEnabled, model.AccountDisabled, req.NewStatus)
		}
		updateReq.NewStatus = req.NewStatus
	}

	if req.NewExpiration != nil {
		exp := time.Unix(*req.NewExpiration, 0).UTC()
		updateReq.NewExpiration = &exp
	}

	err := s.admin.UpdateServiceAccount(ctx, accessKey, updateReq)
	observe("update_service_account", err)
	if err != nil {
		return nil, fmt.Errorf("update service account %s: %w", accessKey, err)
	}

	zerolog.Ctx(ctx).Info().Str("access_key", accessKey).Msg("updated service account")

	return &model.MutationResponse{
		AccessKey: accessKey,
		Message:   "Service account updated successfully",
	}, nil
}

func (s *AccessKeyService) Delete(ctx context.Context, accessKey string) (*model.MutationResponse, error) {
	if accessKey == "" {
		return nil, fmt.Errorf("%w: access key is required", ErrInvalidInput)
	}

	err := s.admin.DeleteServiceAccount(ctx, accessKey)
	observe("delete_service_account", err)
	if err != nil {
		return nil, fmt.Errorf("delete service account %s: %w", accessKey, err)
	}

	zerolog.Ctx(ctx).Info().Str("access_key", accessKey).Msg("deleted service account")

	return &model.MutationResponse{
		AccessKey: accessKey,
		Message:   "Service account deleted successfully",
	}, nil
}
