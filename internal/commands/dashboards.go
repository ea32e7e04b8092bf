package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/stakeledger/stakeledger/internal/activity"
	"github.com/stakeledger/stakeledger/internal/model"
	"github.com/stakeledger/stakeledger/internal/store"
)

func newFinanceCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "finance",
		Short: "Show income, expenses and balance with category and project breakdowns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := a.session()
			if err != nil {
				return err
			}
			return renderFinance(cmd.OutOrStdout(), sess.Finance())
		},
	}
}

func renderFinance(w io.Writer, f store.Finance) error {
	fmt.Fprintf(w, "Total income:   %s\n", money(f.Totals.Income))
	fmt.Fprintf(w, "Total expenses: %s\n", money(f.Totals.Expense))
	fmt.Fprintf(w, "Balance:        %s\n\n", money(f.Totals.Balance))

	if err := renderSeries(w, "Income by category", f.IncomeByCategory); err != nil {
		return err
	}
	if err := renderSeries(w, "Expenses by category", f.ExpenseByCategory); err != nil {
		return err
	}
	if err := renderComparison(w, f.Projects); err != nil {
		return err
	}

	for _, recent := range []struct {
		title string
		txs   []model.Transaction
	}{
		{"Recent income", f.RecentIncome},
		{"Recent expenses", f.RecentExpense},
	} {
		fmt.Fprintf(w, "\n%s:\n", recent.title)
		if len(recent.txs) == 0 {
			fmt.Fprintln(w, "  (none)")
			continue
		}
		tw := newTable(w)
		writeTransactions(tw, recent.txs)
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}

func newOverviewCommand(a *app) *cobra.Command {
	var recent int

	cmd := &cobra.Command{
		Use:   "overview",
		Short: "Summarise every collection and the latest activity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := a.session()
			if err != nil {
				return err
			}
			o := sess.Store().Overview(recent)

			w := cmd.OutOrStdout()
			tw := newTable(w)
			fmt.Fprintf(tw, "Stakeholders\t%d\t(%s total share)\n", o.Stakeholders, percent(o.TotalShare))
			fmt.Fprintf(tw, "Projects\t%d\t(%s portfolio value)\n", o.Projects, money(o.PortfolioValue))
			fmt.Fprintf(tw, "Reports\t%d\t\n", o.Reports)
			fmt.Fprintf(tw, "Transactions\t%d\t\n", o.Transactions)
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintln(w)
			if err := renderGroups(w, "Reports by status", o.ReportStatus, store.FormatCount); err != nil {
				return err
			}
			fmt.Fprintln(w)
			return renderActivity(w, o.Recent)
		},
	}

	cmd.Flags().IntVarP(&recent, "recent", "n", 5, "number of activity entries to show")

	return cmd
}

func newActivityCommand(a *app) *cobra.Command {
	var limit int
	var from string

	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Show recent changes, newest first",
		Long: "Show recent changes made in this session, newest first. " +
			"With --from, show entries from an exported activity.csv instead.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var entries []activity.Entry
			if from != "" {
				all, err := activity.Read(from)
				if err != nil {
					return err
				}
				entries = activity.Newest(all, limit)
			} else {
				sess, err := a.session()
				if err != nil {
					return err
				}
				entries = sess.Store().Activity().Recent(limit)
			}
			return renderActivity(cmd.OutOrStdout(), entries)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum number of entries")
	cmd.Flags().StringVar(&from, "from", "", "read an exported activity.csv")

	return cmd
}

func renderActivity(w io.Writer, entries []activity.Entry) error {
	fmt.Fprintln(w, "Recent activity:")
	if len(entries) == 0 {
		fmt.Fprintln(w, "  (none)")
		return nil
	}
	tw := newTable(w)
	for _, e := range entries {
		fmt.Fprintf(tw, "  %s\t%s\n", e.Timestamp.Local().Format("2006-01-02 15:04"), e)
	}
	return tw.Flush()
}
