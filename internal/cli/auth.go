package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/todolist/internal/auth"
	"github.com/idilsaglam/todolist/internal/config"
	"github.com/idilsaglam/todolist/internal/ui"
)

func newAuthCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the API token",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return &UsageError{Usage: "todo auth <login|logout|status|whoami>"}
		},
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "login [token]",
			Short: "Store a token in ~/.todo/credentials.json",
			Args:  maxArgs(1),
			RunE:  func(cmd *cobra.Command, args []string) error { return runLogin(cmd, args) },
		},
		&cobra.Command{
			Use:   "logout",
			Short: "Delete the stored token",
			Args:  exactArgs(0),
			RunE:  func(cmd *cobra.Command, args []string) error { return runLogout(cmd) },
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show which token is in use",
			Args:  exactArgs(0),
			RunE:  func(cmd *cobra.Command, args []string) error { return runStatus(a, cmd) },
		},
		&cobra.Command{
			Use:   "whoami",
			Short: "Decode the token's JWT payload, if it is one",
			Args:  exactArgs(0),
			RunE:  func(cmd *cobra.Command, args []string) error { return runWhoAmI(a, cmd) },
		},
	)
	return cmd
}

func runLogin(cmd *cobra.Command, args []string) error {
	var token string
	if len(args) == 1 {
		token = args[0]
	} else {
		fmt.Fprint(cmd.OutOrStdout(), "Paste your token: ")
		sc := bufio.NewScanner(cmd.InOrStdin())
		if sc.Scan() {
			token = sc.Text()
		}
		if err := sc.Err(); err != nil {
			return fmt.Errorf("read token: %w", err)
		}
	}
	ti, err := auth.Save(token)
	if err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	msg := "logged in"
	if ti.ExpiresAt != nil {
		msg += " (expires " + ti.ExpiresAt.UTC().Format(time.RFC3339) + ")"
	}
	ui.OK(cmd.OutOrStdout(), msg)
	return nil
}

func runLogout(cmd *cobra.Command) error {
	if strings.TrimSpace(os.Getenv(config.EnvToken)) != "" {
		ui.OK(cmd.OutOrStdout(), "token is provided by "+config.EnvToken+" (nothing to delete)")
		return nil
	}
	if err := auth.Delete(); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	ui.OK(cmd.OutOrStdout(), "logged out")
	return nil
}

func runStatus(a *app, cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	ti, err := a.resolveToken()
	if err != nil {
		return err
	}
	if ti == nil {
		fmt.Fprintln(out, ui.Current().Muted.Render("not logged in"))
		fmt.Fprintln(out, "Run: todo auth login")
		return nil
	}
	fmt.Fprintf(out, "api: %s\n", a.cfg.APIURL)
	fmt.Fprintf(out, "source: %s\n", ti.Source)
	if ti.ExpiresAt != nil {
		fmt.Fprintf(out, "expires: %s\n", ti.ExpiresAt.UTC().Format(time.RFC3339))
	} else {
		fmt.Fprintln(out, "expires: (unknown)")
	}
	fmt.Fprintf(out, "env override: %s\n", config.EnvToken)
	return nil
}

func runWhoAmI(a *app, cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	ti, err := a.resolveToken()
	if err != nil {
		return err
	}
	if ti == nil {
		return fmt.Errorf("not logged in. Run: todo auth login")
	}
	claims, err := auth.Claims(ti.Token)
	if err != nil {
		fmt.Fprintln(out, "Opaque token (cannot introspect locally).")
		fmt.Fprintln(out, "source:", ti.Source)
		return nil
	}
	b, err := json.MarshalIndent(claims, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "JWT payload:")
	fmt.Fprintln(out, string(b))
	return nil
}
