package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the effective configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the merged configuration with secrets masked",
		Long: `Print the configuration after merging defaults, the config file,
MINIO_ADMIN_* environment variables and flags.

Examples:
  mlactl config show
  mlactl config show --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			redacted := a.cfg.Redacted()
			out := cmd.OutOrStdout()
			return a.emit(out, redacted, func() error {
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(redacted); err != nil {
					return fmt.Errorf("encode config: %w", err)
				}
				return enc.Close()
			})
		},
	})
	return cmd
}
