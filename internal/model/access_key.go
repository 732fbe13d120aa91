package model

// AccessKeyInfo is the unified view of a user, service account or STS key.
type AccessKeyInfo struct {
	AccessKey     string  `json:"accessKey"`
	ParentUser    string  `json:"parentUser"`
	AccountStatus string  `json:"accountStatus"`
	Type          string  `json:"type"`
	Name          string  `json:"name,omitempty"`
	Description   string  `json:"description,omitempty"`
	Expiration    *string `json:"expiration,omitempty"` // RFC 3339
	CreatedAt     *string `json:"createdAt,omitempty"`  // RFC 3339
	ImpliedPolicy bool    `json:"impliedPolicy"`
}

// AccessKeysResponse is the envelope returned by GET /api/access-keys.
type AccessKeysResponse struct {
	AccessKeys []AccessKeyInfo `json:"accessKeys"`
	Total      int             `json:"total"`
}

// AccessKeysOptions filters an access key listing.
type AccessKeysOptions struct {
	Type string `json:"type,omitempty"` // all, users, serviceAccounts, sts
	User string `json:"user,omitempty"`
}

// CreateServiceAccountRequest is the body of POST /api/access-keys.
type CreateServiceAccountRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description,omitempty"`
	AccessKey   string  `json:"accessKey,omitempty"`
	SecretKey   string  `json:"secretKey,omitempty"`
	Policy      string  `json:"policy,omitempty"`
	TargetUser  string  `json:"targetUser,omitempty"`
	Expiration  *string `json:"expiration,omitempty"` // RFC 3339
}

// CreateServiceAccountResponse carries the generated credentials. The secret
// key is only ever returned here.
type CreateServiceAccountResponse struct {
	AccessKey    string  `json:"accessKey"`
	SecretKey    string  `json:"secretKey"`
	SessionToken string  `json:"sessionToken,omitempty"`
	Expiration   *string `json:"expiration,omitempty"`
	Name         string  `json:"name,omitempty"`
	Description  string  `json:"description,omitempty"`
}

// UpdateServiceAccountRequest is the body of PUT /api/access-keys/{accessKey}.
// Empty fields are left unchanged.
type UpdateServiceAccountRequest struct {
	NewPolicy      string `json:"newPolicy,omitempty"`
	NewSecretKey   string `json:"newSecretKey,omitempty"`
	NewStatus      string `json:"newStatus,omitempty" validate:"omitempty,oneof=enabled disabled"`
	NewName        string `json:"newName,omitempty"`
	NewDescription string `json:"newDescription,omitempty"`
	NewExpiration  *int64 `json:"newExpiration,omitempty"` // unix seconds
}

// MutationResponse acknowledges an update or delete of an access key.
type MutationResponse struct {
	AccessKey string `json:"accessKey"`
	Message   string `json:"message"`
}
