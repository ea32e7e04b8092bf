package commands

import (
	"github.com/spf13/cobra"

	"github.com/stakeledger/stakeledger/internal/session"
)

func newListCommand(a *app, view session.View, short string) *cobra.Command {
	var search string
	var page int

	cmd := &cobra.Command{
		Use:   string(view),
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runList(cmd, view, search, page)
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "case-insensitive search text")
	cmd.Flags().IntVarP(&page, "page", "p", 1, "page to show (clamped to the available pages)")

	return cmd
}

func newTransactionsCommand(a *app) *cobra.Command {
	var search string
	var page int
	var typ string

	cmd := &cobra.Command{
		Use:     "transactions",
		Aliases: []string{"txns"},
		Short:   "List income or expense entries grouped by category",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := session.ParseView(typ)
			if err != nil || (view != session.ViewIncome && view != session.ViewExpense) {
				return errInvalidTypeFlag(typ)
			}
			return a.runList(cmd, view, search, page)
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "case-insensitive search text")
	cmd.Flags().IntVarP(&page, "page", "p", 1, "page to show (clamped to the available pages)")
	cmd.Flags().StringVarP(&typ, "type", "t", "income", "income or expense")

	return cmd
}

// runList replays the UI events behind a list. --search is a new search,
// which resets to the first page; --page is a page change. Views keep their
// query and page between shell lines, so a bare list shows the current state.
func (a *app) runList(cmd *cobra.Command, view session.View, search string, page int) error {
	sess, err := a.session()
	if err != nil {
		return err
	}
	flags := cmd.Flags()

	var p session.Page
	if flags.Changed("search") {
		p, err = sess.OnSearch(view, search)
	} else {
		p, err = sess.View(view)
	}
	if err != nil {
		return err
	}
	if flags.Changed("page") {
		if p, err = sess.OnPageChange(view, page); err != nil {
			return err
		}
	}
	return renderPage(cmd.OutOrStdout(), p)
}
