package model

// Account status values reported by MinIO for users and access keys.
const (
	AccountEnabled  = "enabled"
	AccountDisabled = "disabled"
)

// Access key types.
const (
	KeyTypeUser           = "user"
	KeyTypeServiceAccount = "serviceAccount"
	KeyTypeSTS            = "sts"
)

// Access key list filters accepted by GET /api/access-keys.
const (
	KeyFilterAll             = "all"
	KeyFilterUsers           = "users"
	KeyFilterServiceAccounts = "serviceAccounts"
	KeyFilterSTS             = "sts"
)

// Disk states reported by MinIO.
const (
	DiskStateOK      = "ok"
	DiskStateOffline = "offline"
)

// ValidKeyFilter reports whether f is an accepted access key list filter.
func ValidKeyFilter(f string) bool {
	switch f {
	case KeyFilterAll, KeyFilterUsers, KeyFilterServiceAccounts, KeyFilterSTS:
		return true
	}
	return false
}
