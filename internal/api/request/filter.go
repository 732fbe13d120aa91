package request

import (
	"fmt"
	"net/http"

	"github.com/edvin/minio-lite-admin/internal/model"
)

// ParseAccessKeysOptions reads the type and user filters from the query
// string. A missing type means all.
func ParseAccessKeysOptions(r *http.Request) (model.AccessKeysOptions, error) {
	q := r.URL.Query()
	opts := model.AccessKeysOptions{
		Type: stringOr(q.Get("type"), model.KeyFilterAll),
		User: q.Get("user"),
	}
	if !model.ValidKeyFilter(opts.Type) {
		return opts, fmt.Errorf("invalid type %q: must be one of all, users, serviceAccounts, sts", opts.Type)
	}
	return opts, nil
}

func stringOr(val, fallback string) string {
	if val != "" {
		return val
	}
	return fallback
}
