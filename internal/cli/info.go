package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/edvin/minio-lite-admin/internal/dashboard"
	"github.com/edvin/minio-lite-admin/internal/model"
)

type infoOutput struct {
	Health     *model.HealthResponse `json:"health"`
	ServerInfo *model.ServerInfo     `json:"serverInfo"`
}

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show server identity",
		Long: `Show the admin API health and the MinIO deployment it manages.

Examples:
  mlactl info
  mlactl info --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.requestContext(cmd)
			defer cancel()

			health, err := a.client.Health(ctx)
			if err != nil {
				return fmt.Errorf("health check: %w", err)
			}
			info, err := a.client.ServerInfo(ctx)
			if err != nil {
				return fmt.Errorf("get server info: %w", err)
			}

			out := cmd.OutOrStdout()
			return a.emit(out, infoOutput{Health: health, ServerInfo: info}, func() error {
				return writeFields(out, [][2]string{
					{"API", a.client.BaseURL()},
					{"Status", health.Status},
					{"Mode", info.Mode},
					{"Region", orDash(info.Region)},
					{"Deployment", info.DeploymentID},
				})
			})
		},
	}
}

func newUsageCmd(a *app) *cobra.Command {
	var showDisks bool

	cmd := &cobra.Command{
		Use:   "usage",
		Short: "Show cluster capacity and disk health",
		Long: `Show aggregated capacity, usage, and disk state counts.

Examples:
  mlactl usage
  mlactl usage --disks`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.requestContext(cmd)
			defer cancel()

			usage, err := a.client.DataUsage(ctx)
			if err != nil {
				return fmt.Errorf("get data usage: %w", err)
			}

			out := cmd.OutOrStdout()
			return a.emit(out, usage, func() error {
				err := writeFields(out, [][2]string{
					{"Capacity", dashboard.FormatBytes(usage.TotalCapacity)},
					{"Used", fmt.Sprintf("%s (%.1f%%)", dashboard.FormatBytes(usage.TotalUsedCapacity), usage.UsagePercentage)},
					{"Free", dashboard.FormatBytes(usage.TotalFreeCapacity)},
					{"Disks", fmt.Sprintf("%d online, %d offline, %d healing", usage.OnlineDisks, usage.OfflineDisks, usage.HealingDisks)},
					{"Pools", fmt.Sprint(usage.PoolsCount)},
					{"Objects", humanize.Comma(int64(usage.ObjectsCount))},
					{"Buckets", humanize.Comma(int64(usage.BucketsCount))},
				})
				if err != nil || !showDisks {
					return err
				}

				rows := make([][]string, 0, len(usage.DiskDetails))
				for _, d := range usage.DiskDetails {
					rows = append(rows, []string{
						d.Endpoint,
						d.Path,
						d.State,
						fmt.Sprintf("%d/%d", d.Pool, d.Set),
						dashboard.FormatBytes(d.UsedSpace),
						dashboard.FormatBytes(d.TotalSpace),
						fmt.Sprintf("%.1f%%", d.Utilization),
					})
				}
				fmt.Fprintln(out)
				return writeTable(out, []string{"ENDPOINT", "PATH", "STATE", "POOL/SET", "USED", "TOTAL", "UTIL"}, rows)
			})
		},
	}

	cmd.Flags().BoolVar(&showDisks, "disks", false, "also list every disk")
	return cmd
}
