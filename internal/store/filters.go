package store

import "github.com/edvin/minio-lite-admin/internal/model"

// The filters below return the matching keys in their original order.
// Keys of an unrecognised type appear in none of the type partitions.

func UserKeys(keys []model.AccessKeyInfo) []model.AccessKeyInfo {
	return filterKeys(keys, func(k model.AccessKeyInfo) bool { return k.Type == model.KeyTypeUser })
}

func ServiceAccountKeys(keys []model.AccessKeyInfo) []model.AccessKeyInfo {
	return filterKeys(keys, func(k model.AccessKeyInfo) bool { return k.Type == model.KeyTypeServiceAccount })
}

func STSKeys(keys []model.AccessKeyInfo) []model.AccessKeyInfo {
	return filterKeys(keys, func(k model.AccessKeyInfo) bool { return k.Type == model.KeyTypeSTS })
}

func EnabledKeys(keys []model.AccessKeyInfo) []model.AccessKeyInfo {
	return filterKeys(keys, func(k model.AccessKeyInfo) bool { return k.AccountStatus == model.AccountEnabled })
}

func DisabledKeys(keys []model.AccessKeyInfo) []model.AccessKeyInfo {
	return filterKeys(keys, func(k model.AccessKeyInfo) bool { return k.AccountStatus == model.AccountDisabled })
}

func filterKeys(keys []model.AccessKeyInfo, keep func(model.AccessKeyInfo) bool) []model.AccessKeyInfo {
	out := []model.AccessKeyInfo{}
	for _, k := range keys {
		if keep(k) {
			out = append(out, k)
		}
	}
	return out
}
