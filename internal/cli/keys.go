package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/edvin/minio-lite-admin/internal/dashboard"
	"github.com/edvin/minio-lite-admin/internal/model"
)

func newKeysCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "keys",
		Aliases: []string{"access-keys"},
		Short:   "Manage access keys",
	}
	cmd.AddCommand(
		newKeysListCmd(a),
		newKeysCreateCmd(a),
		newKeysUpdateCmd(a),
		newKeysDeleteCmd(a),
	)
	return cmd
}

func newKeysListCmd(a *app) *cobra.Command {
	var opts model.AccessKeysOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List users, service accounts and STS keys",
		Long: `List access keys, optionally filtered by type and parent user.

Examples:
  mlactl keys list
  mlactl keys list --type serviceAccounts --user ci-bot`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.Type != "" && !model.ValidKeyFilter(opts.Type) {
				return &usageError{msg: fmt.Sprintf("invalid --type %q: must be one of all, users, serviceAccounts, sts", opts.Type)}
			}

			ctx, cancel := a.requestContext(cmd)
			defer cancel()

			resp, err := a.client.AccessKeys(ctx, opts)
			if err != nil {
				return fmt.Errorf("list access keys: %w", err)
			}

			out := cmd.OutOrStdout()
			return a.emit(out, resp, func() error {
				if len(resp.AccessKeys) == 0 {
					_, err := fmt.Fprintln(out, "No access keys found.")
					return err
				}
				rows := make([][]string, 0, len(resp.AccessKeys))
				for _, k := range resp.AccessKeys {
					expires := "-"
					if k.Expiration != nil {
						expires = *k.Expiration
					}
					rows = append(rows, []string{
						k.AccessKey,
						dashboard.TypeDisplayName(k.Type),
						k.AccountStatus,
						orDash(k.ParentUser),
						orDash(k.Name),
						expires,
					})
				}
				if err := writeTable(out, []string{"ACCESS KEY", "TYPE", "STATUS", "PARENT", "NAME", "EXPIRES"}, rows); err != nil {
					return err
				}
				_, err := fmt.Fprintf(out, "%d access keys\n", resp.Total)
				return err
			})
		},
	}

	cmd.Flags().StringVar(&opts.Type, "type", "", "filter by type: all, users, serviceAccounts, sts")
	cmd.Flags().StringVar(&opts.User, "user", "", "only keys belonging to this user")
	return cmd
}

func newKeysCreateCmd(a *app) *cobra.Command {
	var (
		req        model.CreateServiceAccountRequest
		policyFile string
		expiry     string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a service account",
		Long: `Create a service account. Without --name on a terminal, an interactive
form asks for the details.

The secret key is only shown once.

Examples:
  mlactl keys create
  mlactl keys create --name ci --target-user ci-bot --expiry 2027-01-01T00:00:00Z
  mlactl keys create --name backup --policy-file backup-policy.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if req.Name == "" {
				if a.jsonOut || !a.interactive() {
					return &usageError{msg: "--name is required when not running interactively"}
				}
				if err := a.promptCreate(&req); err != nil {
					return fmt.Errorf("service account form: %w", err)
				}
			}

			if policyFile != "" {
				data, err := os.ReadFile(policyFile)
				if err != nil {
					return fmt.Errorf("read policy file: %w", err)
				}
				req.Policy = string(data)
			}
			if expiry != "" {
				if _, err := time.Parse(time.RFC3339, expiry); err != nil {
					return &usageError{msg: fmt.Sprintf("invalid --expiry %q: must be RFC 3339", expiry)}
				}
				req.Expiration = &expiry
			}

			ctx, cancel := a.requestContext(cmd)
			defer cancel()

			resp, err := a.client.CreateServiceAccount(ctx, req)
			if err != nil {
				return fmt.Errorf("create service account: %w", err)
			}
			a.logger.Info().Str("access_key", resp.AccessKey).Msg("service account created")

			out := cmd.OutOrStdout()
			return a.emit(out, resp, func() error {
				fields := [][2]string{
					{"Access key", resp.AccessKey},
					{"Secret key", resp.SecretKey},
				}
				if resp.Expiration != nil {
					fields = append(fields, [2]string{"Expires", *resp.Expiration})
				}
				if err := writeFields(out, fields); err != nil {
					return err
				}
				_, err := fmt.Fprintln(out, "\nStore the secret key now. It cannot be retrieved later.")
				return err
			})
		},
	}

	f := cmd.Flags()
	f.StringVar(&req.Name, "name", "", "service account name")
	f.StringVar(&req.Description, "description", "", "description")
	f.StringVar(&req.AccessKey, "access-key", "", "access key (generated when empty)")
	f.StringVar(&req.SecretKey, "secret-key", "", "secret key (generated when empty)")
	f.StringVar(&req.TargetUser, "target-user", "", "parent user (defaults to the admin credentials)")
	f.StringVar(&policyFile, "policy-file", "", "path to an IAM policy JSON document")
	f.StringVar(&expiry, "expiry", "", "expiration time, RFC 3339")
	return cmd
}

func newKeysUpdateCmd(a *app) *cobra.Command {
	var (
		req        model.UpdateServiceAccountRequest
		policyFile string
		expiry     string
	)

	cmd := &cobra.Command{
		Use:   "update <access-key>",
		Short: "Update a service account",
		Long: `Update a service account. Only the given fields change.

Examples:
  mlactl keys update AKIA... --status disabled
  mlactl keys update AKIA... --name ci --expiry 2027-06-01T00:00:00Z`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if req.NewStatus != "" && req.NewStatus != model.AccountEnabled && req.NewStatus != model.AccountDisabled {
				return &usageError{msg: fmt.Sprintf("invalid --status %q: must be enabled or disabled", req.NewStatus)}
			}
			if policyFile != "" {
				data, err := os.ReadFile(policyFile)
				if err != nil {
					return fmt.Errorf("read policy file: %w", err)
				}
				req.NewPolicy = string(data)
			}
			if expiry != "" {
				t, err := time.Parse(time.RFC3339, expiry)
				if err != nil {
					return &usageError{msg: fmt.Sprintf("invalid --expiry %q: must be RFC 3339", expiry)}
				}
				unix := t.Unix()
				req.NewExpiration = &unix
			}
			if req == (model.UpdateServiceAccountRequest{}) {
				return &usageError{msg: "nothing to update: pass at least one of --status, --name, --description, --secret-key, --policy-file, --expiry"}
			}

			ctx, cancel := a.requestContext(cmd)
			defer cancel()

			resp, err := a.client.UpdateServiceAccount(ctx, args[0], req)
			if err != nil {
				return fmt.Errorf("update service account %s: %w", args[0], err)
			}

			out := cmd.OutOrStdout()
			return a.emit(out, resp, func() error {
				_, err := fmt.Fprintf(out, "%s: %s\n", resp.AccessKey, resp.Message)
				return err
			})
		},
	}

	f := cmd.Flags()
	f.StringVar(&req.NewStatus, "status", "", "enabled or disabled")
	f.StringVar(&req.NewName, "name", "", "new name")
	f.StringVar(&req.NewDescription, "description", "", "new description")
	f.StringVar(&req.NewSecretKey, "secret-key", "", "new secret key")
	f.StringVar(&policyFile, "policy-file", "", "path to a replacement IAM policy JSON document")
	f.StringVar(&expiry, "expiry", "", "new expiration time, RFC 3339")
	return cmd
}

func newKeysDeleteCmd(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <access-key>",
		Short: "Delete a service account",
		Long: `Delete a service account. Asks for confirmation unless --yes is given.

Examples:
  mlactl keys delete AKIA...
  mlactl keys delete AKIA... --yes`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			accessKey := args[0]
			if !yes {
				if a.jsonOut || !a.interactive() {
					return &usageError{msg: "refusing to delete without --yes when not running interactively"}
				}
				ok, err := a.confirm(fmt.Sprintf("Delete service account %s?", accessKey))
				if err != nil {
					return fmt.Errorf("confirm: %w", err)
				}
				if !ok {
					_, err := fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return err
				}
			}

			ctx, cancel := a.requestContext(cmd)
			defer cancel()

			resp, err := a.client.DeleteServiceAccount(ctx, accessKey)
			if err != nil {
				return fmt.Errorf("delete service account %s: %w", accessKey, err)
			}
			a.logger.Info().Str("access_key", accessKey).Msg("service account deleted")

			out := cmd.OutOrStdout()
			return a.emit(out, resp, func() error {
				_, err := fmt.Fprintf(out, "%s: %s\n", resp.AccessKey, resp.Message)
				return err
			})
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

// huhCreateForm asks for the fields of a new service account.
func huhCreateForm(req *model.CreateServiceAccountRequest) error {
	var expiry string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Description("A short name for the service account").
				Placeholder("ci-pipeline").
				Value(&req.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Description").
				Value(&req.Description),
			huh.NewInput().
				Title("Parent user").
				Description("Leave empty to use the admin credentials").
				Value(&req.TargetUser),
			huh.NewInput().
				Title("Expiration").
				Description("RFC 3339 timestamp, empty for no expiry").
				Placeholder("2027-01-01T00:00:00Z").
				Value(&expiry).
				Validate(func(s string) error {
					if s == "" {
						return nil
					}
					_, err := time.Parse(time.RFC3339, s)
					return err
				}),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}
	if expiry != "" {
		req.Expiration = &expiry
	}
	return nil
}

func huhConfirm(question string) (bool, error) {
	var ok bool
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(question).
				Affirmative("Delete").
				Negative("Cancel").
				Value(&ok),
		),
	).Run()
	return ok, err
}
