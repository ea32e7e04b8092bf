package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/stakeledger/stakeledger/internal/activity"
	"github.com/stakeledger/stakeledger/internal/gitops"
	"github.com/stakeledger/stakeledger/internal/seed"
)

// ActivityFile is the name of the exported activity log.
const ActivityFile = "activity.csv"

func newExportCommand(a *app) *cobra.Command {
	var commit bool

	cmd := &cobra.Command{
		Use:   "export [directory]",
		Short: "Write the current records as seed CSV files",
		Long: "Write the current records as seed CSV files and append this session's " +
			"activity not yet exported to that directory to activity.csv. The directory defaults to the configured seed directory.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := a.session()
			if err != nil {
				return err
			}
			dir := a.resolvedSeedDir()
			if len(args) > 0 {
				dir = args[0]
			}
			if dir == "" {
				return fmt.Errorf("no export directory given and no seed_dir configured")
			}

			st := sess.Store()
			data := st.Snapshot()
			if err := seed.Save(dir, data); err != nil {
				return fmt.Errorf("exporting: %w", err)
			}
			key, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			entries := st.Activity().Since(a.exported[key])
			if err := activity.Append(filepath.Join(dir, ActivityFile), entries); err != nil {
				return fmt.Errorf("exporting activity: %w", err)
			}
			if a.exported == nil {
				a.exported = make(map[string]int)
			}
			a.exported[key] += len(entries)
			a.log.Info().Str("dir", dir).Int("activity", len(entries)).Msg("exported")

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Exported %d stakeholders, %d projects, %d reports, %d transactions to %s\n",
				len(data.Stakeholders), len(data.Projects), len(data.Reports), len(data.Transactions), dir)

			if !commit {
				return nil
			}
			hash, err := gitops.Open(dir).CommitAll(cmd.Context(), fmt.Sprintf("export: %d activity entries", len(entries)), gitAuthor(a.cfg))
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Committed %s\n", hash)
			return nil
		},
	}

	cmd.Flags().BoolVar(&commit, "commit", false, "commit the export to the enclosing git repository")

	return cmd
}
