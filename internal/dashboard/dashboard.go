// Package dashboard provides the interactive Bubble Tea TUI for a MinIO Lite
// Admin server: a tab per route, live store state, and key bindings for
// managing service accounts.
package dashboard

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/edvin/minio-lite-admin/internal/store"
)

// RunOptions configures the dashboard execution.
type RunOptions struct {
	// StartPath is the route opened first. Defaults to "/".
	StartPath string
	// Out receives the plain summary when it is not a terminal.
	Out io.Writer
}

// Run starts the dashboard TUI and blocks until the user quits. When Out is
// not a terminal it prints a one-shot plain text summary instead.
func Run(ctx context.Context, stores *Stores, opts RunOptions) error {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if !isTerminal(opts.Out) {
		return WriteSummary(ctx, opts.Out, stores)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	program := tea.NewProgram(
		NewModel(ctx, stores, opts.StartPath),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	detach := NewBridge(program).Attach(stores)
	defer detach()

	_, err := program.Run()
	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// WriteSummary fetches every store once and writes a plain text report.
// Fetch errors are reported inline; only write errors are returned.
func WriteSummary(ctx context.Context, w io.Writer, s *Stores) error {
	store.FetchAll(ctx,
		func(ctx context.Context) error { _, err := s.ServerInfo.Fetch(ctx); return err },
		func(ctx context.Context) error { _, err := s.DataUsage.Fetch(ctx); return err },
		func(ctx context.Context) error { _, err := s.AccessKeys.Fetch(ctx, s.AccessKeys.Options()); return err },
		func(ctx context.Context) error { _, err := s.SiteReplication.Fetch(ctx); return err },
	)

	ew := &errWriter{w: w}
	ew.printf("%s\n\n", ProductName)

	si := s.ServerInfo.State()
	switch {
	case si.Error != "":
		ew.printf("Server:      error: %s\n", si.Error)
	case si.Data != nil:
		ew.printf("Mode:        %s\n", si.Data.Mode)
		if si.Data.Region != "" {
			ew.printf("Region:      %s\n", si.Data.Region)
		}
		ew.printf("Deployment:  %s\n", si.Data.DeploymentID)
	}

	du := s.DataUsage.State()
	switch {
	case du.Error != "":
		ew.printf("Storage:     error: %s\n", du.Error)
	case du.Data != nil:
		d := du.Data
		ew.printf("Used:        %s of %s (%s)\n", FormatBytes(d.TotalUsedCapacity), FormatBytes(d.TotalCapacity), formatPercent(d.UsagePercentage))
		ew.printf("Disks:       %d online, %d offline, %d healing\n", d.OnlineDisks, d.OfflineDisks, d.HealingDisks)
		ew.printf("Pools:       %d\n", d.PoolsCount)
		ew.printf("Objects:     %d\n", d.ObjectsCount)
		ew.printf("Buckets:     %d\n", d.BucketsCount)
	}

	ak := s.AccessKeys.State()
	if ak.Error != "" {
		ew.printf("Access keys: error: %s\n", ak.Error)
	} else {
		keys := ak.Data.AccessKeys
		ew.printf("Access keys: %d (%d users, %d service accounts, %d sts; %d disabled)\n",
			ak.Data.Total,
			len(store.UserKeys(keys)),
			len(store.ServiceAccountKeys(keys)),
			len(store.STSKeys(keys)),
			len(store.DisabledKeys(keys)),
		)
	}

	sr := s.SiteReplication.State()
	switch {
	case sr.Error != "":
		ew.printf("Replication: error: %s\n", sr.Error)
	case sr.Data != nil && sr.Data.Enabled:
		ew.printf("Replication: %s, %d sites\n", sr.Data.Name, len(sr.Data.Sites))
	case sr.Data != nil:
		ew.printf("Replication: not configured\n")
	}

	return ew.err
}

type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
