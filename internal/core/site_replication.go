package core

import (
	"context"
	"fmt"

	"github.com/edvin/minio-lite-admin/internal/model"
)

type SiteReplicationService struct {
	admin AdminAPI
}

func NewSiteReplicationService(admin AdminAPI) *SiteReplicationService {
	return &SiteReplicationService{admin: admin}
}

func (s *SiteReplicationService) Get(ctx context.Context) (*model.SiteReplicationInfo, error) {
	info, err := s.admin.SiteReplicationInfo(ctx)
	observe("site_replication_info", err)
	if err != nil {
		return nil, fmt.Errorf("get site replication info: %w", err)
	}

	out := &model.SiteReplicationInfo{
		Enabled: info.Enabled,
		Name:    info.Name,
		Sites:   make([]model.PeerSite, 0, len(info.Sites)),
	}
	for _, peer := range info.Sites {
		out.Sites = append(out.Sites, model.PeerSite{
			Name:         peer.Name,
			Endpoint:     peer.Endpoint,
			DeploymentID: peer.DeploymentID,
		})
	}
	return out, nil
}
