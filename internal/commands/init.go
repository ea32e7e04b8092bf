package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/stakeledger/stakeledger/internal/config"
	"github.com/stakeledger/stakeledger/internal/gitops"
	"github.com/stakeledger/stakeledger/internal/seed"
)

func newInitCommand() *cobra.Command {
	var name string
	var withGit bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Create a workspace with a config file and sample seed data",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			cfg := config.Default(name)
			if err := runInit(absDir, cfg); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !withGit {
				fmt.Fprintf(out, "Initialized stakeledger workspace at %s\n", absDir)
				return nil
			}

			repo := gitops.Open(absDir)
			if err := repo.Init(cmd.Context()); err != nil {
				return err
			}
			hash, err := repo.CommitAll(cmd.Context(), "init: Initialize "+name, gitAuthor(cfg))
			if err != nil {
				return fmt.Errorf("initial commit: %w", err)
			}
			fmt.Fprintf(out, "Initialized stakeledger workspace at %s (%s)\n", absDir, hash)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "workspace name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().BoolVar(&withGit, "git", false, "initialize a git repository and commit the workspace")

	return cmd
}

func runInit(dir string, cfg *config.Config) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	cfgPath := filepath.Join(dir, config.DefaultPath)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists", cfgPath)
	}
	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	if err := seed.Save(filepath.Join(dir, cfg.Workspace.SeedDir), seed.Defaults()); err != nil {
		return fmt.Errorf("writing seed data: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(".env\n"), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}
	return nil
}

func gitAuthor(cfg *config.Config) gitops.Author {
	return gitops.Author{Name: cfg.Git.AuthorName, Email: cfg.Git.AuthorEmail}
}
