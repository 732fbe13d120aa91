package dashboard

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/edvin/minio-lite-admin/internal/adminclient"
	"github.com/edvin/minio-lite-admin/internal/model"
	"github.com/edvin/minio-lite-admin/internal/store"
)

// Stores groups the fetch stores the dashboard renders.
type Stores struct {
	ServerInfo      *store.ServerInfoStore
	DataUsage       *store.DataUsageStore
	AccessKeys      *store.AccessKeysStore
	SiteReplication *store.SiteReplicationStore
	Buckets         *store.BucketStore
}

// NewStores builds every store on top of one admin API client.
func NewStores(c *adminclient.Client) *Stores {
	return &Stores{
		ServerInfo:      store.NewServerInfoStore(c),
		DataUsage:       store.NewDataUsageStore(c),
		AccessKeys:      store.NewAccessKeysStore(c),
		SiteReplication: store.NewSiteReplicationStore(c),
		Buckets:         store.NewBucketStore(c),
	}
}

// Sender is satisfied by *tea.Program.
type Sender interface {
	Send(msg tea.Msg)
}

// Bridge subscribes to the stores and forwards every state change to the
// Bubble Tea program via Send. This is goroutine-safe.
type Bridge struct {
	program Sender
}

func NewBridge(program Sender) *Bridge {
	return &Bridge{program: program}
}

// Attach subscribes to every store and returns a function that removes the
// subscriptions.
func (b *Bridge) Attach(s *Stores) func() {
	unsubs := []func(){
		s.ServerInfo.Subscribe(func(st store.State[*model.ServerInfo]) {
			b.program.Send(ServerInfoMsg(st))
		}),
		s.DataUsage.Subscribe(func(st store.State[*model.DataUsage]) {
			b.program.Send(DataUsageMsg(st))
		}),
		s.AccessKeys.Subscribe(func(st store.State[model.AccessKeysResponse]) {
			b.program.Send(AccessKeysMsg(st))
		}),
		s.SiteReplication.Subscribe(func(st store.State[*model.SiteReplicationInfo]) {
			b.program.Send(SiteReplicationMsg(st))
		}),
		s.Buckets.Subscribe(func(st store.State[*model.BucketsResponse]) {
			b.program.Send(BucketsMsg(st))
		}),
	}
	return func() {
		for _, u := range unsubs {
			u()
		}
	}
}
