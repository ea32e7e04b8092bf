package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/stakeledger/stakeledger/internal/buildinfo"
	"github.com/stakeledger/stakeledger/internal/config"
	"github.com/stakeledger/stakeledger/internal/logging"
	"github.com/stakeledger/stakeledger/internal/seed"
	"github.com/stakeledger/stakeledger/internal/session"
	"github.com/stakeledger/stakeledger/internal/store"
)

// app carries state shared by every command of one invocation, or of every
// line of a shell.
type app struct {
	cfg     *config.Config
	cfgPath string
	seedDir string
	log     zerolog.Logger
	sess    *session.Session
	inShell bool

	// exported counts activity entries already appended per export dir.
	exported map[string]int
}

type rootFlags struct {
	configPath string
	seedDir    string
	logLevel   string
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&app{log: zerolog.Nop()})
}

func newRootCommand(a *app) *cobra.Command {
	var f rootFlags
	rootCmd := &cobra.Command{
		Use:     "stakeledger",
		Short:   "Track stakeholders, projects and project finances",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd, f)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&f.configPath, "config", "", "path to stakeledger.yaml (default $"+config.EnvConfig+" or ./"+config.DefaultPath+")")
	flags.StringVar(&f.seedDir, "seed-dir", "", "directory of seed CSV files")
	flags.StringVar(&f.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		newInitCommand(),
		newListCommand(a, session.ViewStakeholders, "List stakeholders grouped by role"),
		newListCommand(a, session.ViewProjects, "List projects grouped by completion level"),
		newListCommand(a, session.ViewReports, "List reports counted by status"),
		newTransactionsCommand(a),
		newFinanceCommand(a),
		newOverviewCommand(a),
		newStakeholderCommand(a),
		newProjectCommand(a),
		newTxnCommand(a),
		newDeleteCommand(a),
		newActivityCommand(a),
		newExportCommand(a),
		newShellCommand(a),
	)

	return rootCmd
}

// setup loads config and builds the logger. Shell lines reuse what the
// shell itself set up.
func (a *app) setup(cmd *cobra.Command, f rootFlags) error {
	if a.cfg != nil {
		return nil
	}

	path := config.LoadEnv(f.configPath)
	cfg, err := config.Load(path)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist) && f.configPath == "":
		cfg = config.Default("")
	default:
		return err
	}
	cfg.ApplyEnv()
	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.cfgPath = path
	a.seedDir = f.seedDir
	a.log = log
	return nil
}

// resolvedSeedDir is --seed-dir as given, otherwise the configured seed dir
// relative to the config file.
func (a *app) resolvedSeedDir() string {
	if a.seedDir != "" {
		return a.seedDir
	}
	dir := a.cfg.Workspace.SeedDir
	if dir == "" || filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(filepath.Dir(a.cfgPath), dir)
}

// session returns the in-memory session, seeding it on first use from the
// seed directory or, when there is none, from the built-in sample data.
func (a *app) session() (*session.Session, error) {
	if a.sess != nil {
		return a.sess, nil
	}

	data := seed.Defaults()
	dir := a.resolvedSeedDir()
	if info, err := os.Stat(dir); dir != "" && err == nil && info.IsDir() {
		if data, err = seed.Load(dir); err != nil {
			return nil, fmt.Errorf("loading seed data: %w", err)
		}
		a.log.Debug().Str("dir", dir).Msg("seeded from directory")
	} else {
		a.log.Debug().Str("dir", dir).Msg("no seed directory, using sample data")
	}

	st, err := store.Load(data, store.WithLogger(a.log))
	if err != nil {
		return nil, err
	}
	a.sess = session.New(st, a.cfg, a.log)
	return a.sess, nil
}
