// Package cli is the todo command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/todolist/internal/api"
	"github.com/idilsaglam/todolist/internal/auth"
	"github.com/idilsaglam/todolist/internal/config"
	"github.com/idilsaglam/todolist/internal/logging"
	"github.com/idilsaglam/todolist/internal/ui"
)

// Version is set at build time via ldflags.
var Version = "dev"

// app carries global flags and the lazily built dependencies.
type app struct {
	configPath string
	apiURL     string
	token      string
	logFile    string
	theme      string
	debug      bool

	cfg       *config.Config
	log       *log.Logger
	logCloser io.Closer
}

// Execute runs the command line and returns the exit code
// (0 ok, 1 error, 2 usage).
func Execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{}
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	defer a.close()

	err := root.ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	ui.Fail(stderr, err.Error())
	var usage *UsageError
	if errors.As(err, &usage) {
		return 2
	}
	return 1
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "todo",
		Short: "todo - a terminal client for a remote todo list",
		Long: `todo lists, searches, adds, completes and deletes todos stored
behind a REST API.

Run "todo ls" for the interactive list. Search input is debounced: the
list refreshes once you stop typing.`,
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetVersionTemplate("todo version {{.Version}}\n")
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &UsageError{Usage: cmd.UseLine(), Msg: err.Error()}
	})

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	pf.StringVar(&a.apiURL, "api-url", "", "todo API base URL")
	pf.StringVar(&a.token, "token", "", "bearer token (overrides stored credentials)")
	pf.StringVar(&a.logFile, "log-file", "", "log file path")
	pf.StringVar(&a.theme, "theme", "", "color theme: classic, neon or mono")
	pf.BoolVar(&a.debug, "debug", false, "debug logging")

	root.AddCommand(
		newListCmd(a),
		newFindCmd(a),
		newAddCmd(a),
		newDoneCmd(a),
		newRmCmd(a),
		newAuthCmd(a),
	)
	return root
}

// setup loads config and opens the log file. Flags override config.
func (a *app) setup(stderr io.Writer) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.apiURL != "" {
		cfg.APIURL = a.apiURL
	}
	if a.logFile != "" {
		cfg.LogFile = a.logFile
	}
	if a.theme != "" {
		cfg.Theme = a.theme
	}
	a.cfg = cfg
	ui.SetTheme(cfg.Theme)

	logger, closer, err := logging.Open(cfg.LogFile, a.debug)
	if err != nil {
		fmt.Fprintf(stderr, "warning: %v; logging disabled\n", err)
		logger = logging.Discard()
	}
	a.log = logger
	a.logCloser = closer
	return nil
}

func (a *app) close() {
	if a.logCloser != nil {
		_ = a.logCloser.Close()
	}
}

// resolveToken applies flag, env, stored credentials, then config.
func (a *app) resolveToken() (*auth.TokenInfo, error) {
	override, source := a.token, auth.SourceFlag
	if override == "" {
		override, source = os.Getenv(config.EnvToken), auth.SourceEnv
	}
	return auth.Resolve(override, source, a.cfg.Token)
}

// client builds the API client for the resolved token.
func (a *app) client() (*api.Client, error) {
	ti, err := a.resolveToken()
	if err != nil {
		return nil, err
	}
	if ti == nil {
		return nil, fmt.Errorf("no token found. Set %s or run `todo auth login`", config.EnvToken)
	}
	a.log.Debug("api client", "url", a.cfg.APIURL, "token_source", ti.Source)
	return api.New(a.cfg.APIURL, ti.Token, api.WithTimeout(a.cfg.RequestTimeout))
}
