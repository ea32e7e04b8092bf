package commands

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/stakeledger/stakeledger/internal/importer"
)

func newTxnImportCommand(a *app) *cobra.Command {
	var format string
	m := importer.Mapping{IncomeCategory: "Other", ExpenseCategory: "Other"}

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Record every line of a bank statement CSV",
		Long: "Record every line of a bank statement CSV. Credits become income and " +
			"debits become expenses; zero lines are skipped.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser, err := importer.DefaultRegistry().Get(format)
			if err != nil {
				return err
			}
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening statement: %w", err)
			}
			defer f.Close()

			rows, err := parser.Parse(f)
			if err != nil {
				return fmt.Errorf("parsing %s: %w", args[0], err)
			}
			txs, skipped := m.Transactions(rows)

			// The ledger is append-only, so nothing is recorded unless every
			// entry is valid.
			var invalid *multierror.Error
			for i, tx := range txs {
				if err := tx.Validate(); err != nil {
					invalid = multierror.Append(invalid, fmt.Errorf("entry %d (%s): %w", i+1, tx.Description, err))
				}
			}
			if err := invalid.ErrorOrNil(); err != nil {
				return fmt.Errorf("importing %s: %w", args[0], err)
			}

			sess, err := a.session()
			if err != nil {
				return err
			}
			for i, tx := range txs {
				if _, _, err := sess.OnAddTransaction(tx); err != nil {
					return fmt.Errorf("entry %d: %w", i+1, err)
				}
			}
			a.log.Info().Str("file", args[0]).Str("format", parser.Format()).
				Int("recorded", len(txs)).Int("skipped", skipped).Msg("statement imported")

			totals := sess.Store().Ledger().Totals()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Imported %d transactions (%d skipped) from %s\n", len(txs), skipped, args[0])
			fmt.Fprintf(out, "Income %s  Expenses %s  Balance %s\n", money(totals.Income), money(totals.Expense), money(totals.Balance))
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "simple", "statement layout (chase, simple)")
	cmd.Flags().StringVar(&m.Project, "project", "", "project to file every entry under")
	cmd.Flags().StringVar(&m.IncomeCategory, "income-category", m.IncomeCategory, "category for credits")
	cmd.Flags().StringVar(&m.ExpenseCategory, "expense-category", m.ExpenseCategory, "category for debits")

	return cmd
}
