// Package cli implements mlactl, the command-line client for a MinIO Lite
// Admin server.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/edvin/minio-lite-admin/internal/adminclient"
	"github.com/edvin/minio-lite-admin/internal/config"
	"github.com/edvin/minio-lite-admin/internal/logging"
	"github.com/edvin/minio-lite-admin/internal/model"
)

// app carries state shared by every command of one invocation.
type app struct {
	v        *viper.Viper
	cfgFile  string
	jsonOut  bool
	logLevel string

	cfg    *config.Config
	logger zerolog.Logger
	client *adminclient.Client

	// interactive reports whether prompts may be shown.
	interactive func() bool
	// promptCreate fills a create request from an interactive form.
	promptCreate func(req *model.CreateServiceAccountRequest) error
	// confirm asks a yes/no question.
	confirm func(question string) (bool, error)
}

func newApp() *app {
	return &app{
		v:            config.NewViper(),
		logger:       zerolog.Nop(),
		interactive:  stdinIsTerminal,
		promptCreate: huhCreateForm,
		confirm:      huhConfirm,
	}
}

func stdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// NewRootCmd builds the mlactl command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(newApp())
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "mlactl",
		Short: "Command-line client for MinIO Lite Admin",
		Long: `mlactl talks to a running MinIO Lite Admin server.

It shows server identity and capacity, manages access keys, opens an
interactive dashboard, and can serve the read-only API as MCP tools.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Annotations["skipConfig"] == "true" {
				return nil
			}
			return a.load(cmd.ErrOrStderr())
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default ~/.config/minio-lite-admin/config.yaml)")
	pf.String("api-url", "", "admin API base URL")
	pf.Duration("timeout", 0, "request timeout")
	pf.BoolVar(&a.jsonOut, "json", false, "machine-readable JSON output")
	pf.StringVar(&a.logLevel, "log-level", "warn", "log level for diagnostics on stderr")

	_ = a.v.BindPFlag("client.api_url", pf.Lookup("api-url"))
	_ = a.v.BindPFlag("client.timeout", pf.Lookup("timeout"))

	root.AddCommand(
		newInfoCmd(a),
		newUsageCmd(a),
		newKeysCmd(a),
		newDashboardCmd(a),
		newMCPCmd(a),
		newConfigCmd(a),
		newVersionCmd(a),
	)
	return root
}

// load reads configuration and builds the logger and API client.
func (a *app) load(stderr io.Writer) error {
	path, err := resolveConfigPath(a.cfgFile)
	if err != nil {
		return &configError{err: err}
	}

	cfg, err := config.LoadFrom(a.v, path)
	if err != nil {
		return &configError{err: err}
	}
	if err := cfg.Validate("client"); err != nil {
		return &configError{err: err}
	}

	a.cfg = cfg
	a.logger = logging.New(stderr, a.logLevel, false, "mlactl")
	a.client = adminclient.NewClient(cfg.Client.APIURL, cfg.Client.Timeout)

	a.logger.Debug().
		Str("api_url", cfg.Client.APIURL).
		Dur("timeout", cfg.Client.Timeout).
		Str("config", path).
		Msg("loaded client config")
	return nil
}

// emit writes data as a JSON envelope when --json is set, else calls human.
func (a *app) emit(w io.Writer, data any, human func() error) error {
	if a.jsonOut {
		return WriteJSONSuccess(w, data)
	}
	return human()
}

// Execute runs mlactl and exits non-zero on error.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := newApp()
	root := newRootCmd(a)
	if err := root.ExecuteContext(ctx); err != nil {
		if a.jsonOut {
			WriteJSONFromError(os.Stdout, err)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		stop()
		os.Exit(1)
	}
}

// requestContext bounds a single API call issued by a command.
func (a *app) requestContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	timeout := 30 * time.Second
	if a.cfg != nil && a.cfg.Client.Timeout > 0 {
		timeout = a.cfg.Client.Timeout
	}
	return context.WithTimeout(cmd.Context(), timeout)
}
