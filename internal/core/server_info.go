package core

import (
	"context"
	"fmt"
	"time"

	"github.com/minio/madmin-go/v3"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/edvin/minio-lite-admin/internal/model"
)

// serverInfoTimeout bounds a shared upstream call independently of the
// callers waiting on it.
const serverInfoTimeout = 30 * time.Second

// ServerInfoService reads the cluster's server info. Concurrent callers
// share a single upstream request; each stops waiting when its own context
// ends without cancelling the call for the others.
type ServerInfoService struct {
	admin AdminAPI
	group singleflight.Group
}

func NewServerInfoService(admin AdminAPI) *ServerInfoService {
	return &ServerInfoService{admin: admin}
}

func (s *ServerInfoService) fetch(ctx context.Context) (madmin.InfoMessage, error) {
	ch := s.group.DoChan("server-info", func() (any, error) {
		callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), serverInfoTimeout)
		defer cancel()
		info, err := s.admin.ServerInfo(callCtx)
		observe("server_info", err)
		return info, err
	})

	select {
	case <-ctx.Done():
		return madmin.InfoMessage{}, fmt.Errorf("get server info: %w", ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return madmin.InfoMessage{}, fmt.Errorf("get server info: %w", res.Err)
		}
		zerolog.Ctx(ctx).Debug().Bool("shared", res.Shared).Msg("fetched MinIO server info")
		return res.Val.(madmin.InfoMessage), nil
	}
}

func (s *ServerInfoService) Get(ctx context.Context) (*model.ServerInfo, error) {
	info, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}
	return &model.ServerInfo{
		Mode:         info.Mode,
		Region:       info.Region,
		DeploymentID: info.DeploymentID,
	}, nil
}

func (s *ServerInfoService) DataUsage(ctx context.Context) (*model.DataUsage, error) {
	info, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}
	return ExtractDataUsage(info), nil
}

// ExtractDataUsage sums disk capacity across every server and classifies
// each disk as online, offline or healing.
func ExtractDataUsage(info madmin.InfoMessage) *model.DataUsage {
	usage := &model.DataUsage{
		PoolsCount:   len(info.Backend.TotalSets),
		ObjectsCount: info.Objects.Count,
		BucketsCount: info.Buckets.Count,
		DiskDetails:  []model.DiskDetail{},
	}

	for _, server := range info.Servers {
		for _, disk := range server.Disks {
			usage.DiskDetails = append(usage.DiskDetails, model.DiskDetail{
				Endpoint:    disk.Endpoint,
				RootDisk:    disk.RootDisk,
				Path:        disk.DrivePath,
				State:       disk.State,
				UUID:        disk.UUID,
				Major:       disk.Major,
				Minor:       disk.Minor,
				TotalSpace:  disk.TotalSpace,
				UsedSpace:   disk.UsedSpace,
				AvailSpace:  disk.AvailableSpace,
				Pool:        disk.PoolIndex,
				Set:         disk.SetIndex,
				Utilization: disk.Utilization,
				Healing:     disk.Healing,
			})

			usage.TotalCapacity += disk.TotalSpace
			usage.TotalUsedCapacity += disk.UsedSpace
			usage.TotalFreeCapacity += disk.AvailableSpace

			switch disk.State {
			case model.DiskStateOK:
				usage.OnlineDisks++
			case model.DiskStateOffline:
				usage.OfflineDisks++
			default:
				if disk.Healing {
					usage.HealingDisks++
				} else {
					usage.OfflineDisks++
				}
			}
		}
	}

	if usage.TotalCapacity > 0 {
		usage.UsagePercentage = float64(usage.TotalUsedCapacity) / float64(usage.TotalCapacity) * 100
	}

	return usage
}
