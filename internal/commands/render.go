package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/stakeledger/stakeledger/internal/aggregate"
	"github.com/stakeledger/stakeledger/internal/chart"
	"github.com/stakeledger/stakeledger/internal/model"
	"github.com/stakeledger/stakeledger/internal/session"
	"github.com/stakeledger/stakeledger/internal/store"
)

const dateLayout = "2006-01-02"

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

func percent(d decimal.Decimal) string {
	return d.String() + "%"
}

// renderPage prints one list view: its rows, the group sums and the page
// navigation line.
func renderPage(w io.Writer, p session.Page) error {
	if p.Matches == 0 {
		if p.Query != "" {
			fmt.Fprintf(w, "No %s match %q.\n", p.View, p.Query)
		} else {
			fmt.Fprintf(w, "No %s.\n", p.View)
		}
		return nil
	}

	tw := newTable(w)
	switch items := p.Items.(type) {
	case []model.Stakeholder:
		fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tROLE\tSHARE\tLEVEL\tRESPONSIBILITIES")
		for _, s := range items {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n", s.ID, s.Name, s.Email, s.Role, percent(s.Share), s.ShareLevel(), s.Responsibilities)
		}
	case []model.Project:
		fmt.Fprintln(tw, "ID\tNAME\tVALUE\tCOMPLETION\tLEVEL\tDESCRIPTION")
		for _, pr := range items {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%d%%\t%s\t%s\n", pr.ID, pr.Name, money(pr.Value), pr.Completion, pr.CompletionLevel(), pr.Description)
		}
	case []model.Report:
		fmt.Fprintln(tw, "ID\tTITLE\tCATEGORY\tSTATUS\tDATE")
		for _, r := range items {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.ID, r.Title, r.Category, r.Status, r.Date.Format(dateLayout))
		}
	case []model.Transaction:
		writeTransactions(tw, items)
	default:
		return fmt.Errorf("cannot render %T", p.Items)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	if err := renderGroups(w, groupTitle(p.View), p.Grouped, groupFormat(p.View)); err != nil {
		return err
	}
	fmt.Fprintln(w, navigation(p))
	return nil
}

func writeTransactions(tw io.Writer, txs []model.Transaction) {
	fmt.Fprintln(tw, "DATE\tTYPE\tCATEGORY\tPROJECT\tAMOUNT\tDESCRIPTION")
	for _, tx := range txs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", tx.Date.Format(dateLayout), tx.Type, tx.Category, tx.Project, money(tx.Amount), tx.Description)
	}
}

func groupTitle(v session.View) string {
	switch v {
	case session.ViewStakeholders:
		return "Share by role"
	case session.ViewProjects:
		return "Value by completion"
	case session.ViewReports:
		return "Reports by status"
	default:
		return "Amount by category"
	}
}

func groupFormat(v session.View) func(decimal.Decimal) string {
	switch v {
	case session.ViewStakeholders:
		return percent
	case session.ViewReports:
		return store.FormatCount
	default:
		return money
	}
}

func renderGroups(w io.Writer, title string, g aggregate.Groups, format func(decimal.Decimal) string) error {
	fmt.Fprintf(w, "%s:\n", title)
	tw := newTable(w)
	for _, item := range g.Items() {
		fmt.Fprintf(tw, "  %s\t%s\n", item.Key, format(item.Sum))
	}
	return tw.Flush()
}

// navigation renders e.g. "Page 2 of 3 (12 matches): 1 [2] 3".
func navigation(p session.Page) string {
	buttons := make([]string, len(p.Window))
	for i, n := range p.Window {
		if n == p.PageIndex {
			buttons[i] = "[" + strconv.Itoa(n) + "]"
		} else {
			buttons[i] = strconv.Itoa(n)
		}
	}
	return fmt.Sprintf("Page %d of %d (%d matches): %s", p.PageIndex, p.TotalPages, p.Matches, strings.Join(buttons, " "))
}

func renderSeries(w io.Writer, title string, s chart.Series) error {
	fmt.Fprintf(w, "%s:\n", title)
	if len(s) == 0 {
		fmt.Fprintln(w, "  (none)")
		return nil
	}
	shares := s.Shares()
	tw := newTable(w)
	for i, sl := range s {
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n", sl.Label, money(sl.Value), percent(shares[i]), sl.Color)
	}
	return tw.Flush()
}

func renderComparison(w io.Writer, c chart.Comparison) error {
	fmt.Fprintln(w, "Project comparison:")
	tw := newTable(w)
	fmt.Fprintln(tw, "  PROJECT\tINCOME\tEXPENSE")
	for _, b := range c {
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", b.Label, money(b.Income), money(b.Expense))
	}
	return tw.Flush()
}
