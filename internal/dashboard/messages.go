package dashboard

import (
	"github.com/edvin/minio-lite-admin/internal/model"
	"github.com/edvin/minio-lite-admin/internal/store"
)

// Store state changes, forwarded by the Bridge.
type (
	ServerInfoMsg      store.State[*model.ServerInfo]
	DataUsageMsg       store.State[*model.DataUsage]
	AccessKeysMsg      store.State[model.AccessKeysResponse]
	SiteReplicationMsg store.State[*model.SiteReplicationInfo]
	BucketsMsg         store.State[*model.BucketsResponse]
)

// NavigateMsg asks the model to switch to the route at Path.
type NavigateMsg struct {
	Path string
}

// mutationDoneMsg reports the outcome of an update or delete.
type mutationDoneMsg struct {
	action    string
	accessKey string
	err       error
}
