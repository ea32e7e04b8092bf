package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/stakeledger/stakeledger/internal/model"
	"github.com/stakeledger/stakeledger/internal/store"
)

func errInvalidTypeFlag(typ string) error {
	return fmt.Errorf("--type %q: %w", typ, model.ErrInvalidType)
}

func parseDecimal(field, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, &model.FieldError{Field: field, Err: fmt.Errorf("%q: %w", s, model.ErrNotNumeric)}
	}
	return d, nil
}

type stakeholderFlags struct {
	name, email, role, share, responsibilities string
}

func (f *stakeholderFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.name, "name", "", "full name")
	fs.StringVar(&f.email, "email", "", "email address")
	fs.StringVar(&f.role, "role", "", "role, used to group shares")
	fs.StringVar(&f.share, "share", "0", "ownership share in percent")
	fs.StringVar(&f.responsibilities, "responsibilities", "", "responsibilities")
}

// apply copies every flag the user set onto sh.
func (f *stakeholderFlags) apply(fs *pflag.FlagSet, sh *model.Stakeholder) error {
	if fs.Changed("name") {
		sh.Name = f.name
	}
	if fs.Changed("email") {
		sh.Email = f.email
	}
	if fs.Changed("role") {
		sh.Role = f.role
	}
	if fs.Changed("responsibilities") {
		sh.Responsibilities = f.responsibilities
	}
	if fs.Changed("share") {
		share, err := parseDecimal("share", f.share)
		if err != nil {
			return err
		}
		sh.Share = share
	}
	return nil
}

func newStakeholderCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stakeholder",
		Short: "Add or edit stakeholders",
	}

	var addFlags stakeholderFlags
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a stakeholder",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var sh model.Stakeholder
			if err := addFlags.apply(cmd.Flags(), &sh); err != nil {
				return err
			}
			return a.saveStakeholder(cmd, sh, "Added")
		},
	}
	addFlags.register(add.Flags())
	_ = add.MarkFlagRequired("name")

	var editFlags stakeholderFlags
	edit := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change fields of an existing stakeholder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := a.session()
			if err != nil {
				return err
			}
			sh, ok := sess.Store().Stakeholder(args[0])
			if !ok {
				return fmt.Errorf("stakeholder %s: %w", args[0], store.ErrNotFound)
			}
			if err := editFlags.apply(cmd.Flags(), &sh); err != nil {
				return err
			}
			return a.saveStakeholder(cmd, sh, "Updated")
		},
	}
	editFlags.register(edit.Flags())

	cmd.AddCommand(add, edit)
	return cmd
}

func (a *app) saveStakeholder(cmd *cobra.Command, sh model.Stakeholder, verb string) error {
	sess, err := a.session()
	if err != nil {
		return err
	}
	saved, err := sess.OnAddStakeholder(sh)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s stakeholder %s (%s, %s)\n", verb, saved.ID, saved.Name, percent(saved.Share))
	return nil
}

type projectFlags struct {
	name, description, value string
	completion               int
}

func (f *projectFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.name, "name", "", "project name")
	fs.StringVar(&f.description, "description", "", "short description")
	fs.StringVar(&f.value, "value", "0", "project value")
	fs.IntVar(&f.completion, "completion", 0, "completion in percent")
}

func (f *projectFlags) apply(fs *pflag.FlagSet, p *model.Project) error {
	if fs.Changed("name") {
		p.Name = f.name
	}
	if fs.Changed("description") {
		p.Description = f.description
	}
	if fs.Changed("completion") {
		p.Completion = f.completion
	}
	if fs.Changed("value") {
		value, err := parseDecimal("value", f.value)
		if err != nil {
			return err
		}
		p.Value = value
	}
	return nil
}

func newProjectCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Add or edit projects",
	}

	var addFlags projectFlags
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var p model.Project
			if err := addFlags.apply(cmd.Flags(), &p); err != nil {
				return err
			}
			return a.saveProject(cmd, p, "Added")
		},
	}
	addFlags.register(add.Flags())
	_ = add.MarkFlagRequired("name")

	var editFlags projectFlags
	edit := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change fields of an existing project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := a.session()
			if err != nil {
				return err
			}
			p, ok := sess.Store().Project(args[0])
			if !ok {
				return fmt.Errorf("project %s: %w", args[0], store.ErrNotFound)
			}
			if err := editFlags.apply(cmd.Flags(), &p); err != nil {
				return err
			}
			return a.saveProject(cmd, p, "Updated")
		},
	}
	editFlags.register(edit.Flags())

	cmd.AddCommand(add, edit)
	return cmd
}

func (a *app) saveProject(cmd *cobra.Command, p model.Project, verb string) error {
	sess, err := a.session()
	if err != nil {
		return err
	}
	saved, err := sess.OnAddProject(p)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s project %s (%s, %s, %d%%)\n", verb, saved.ID, saved.Name, money(saved.Value), saved.Completion)
	return nil
}

func newTxnCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "txn",
		Short: "Record income and expense entries",
	}

	var typ, amount, date, category, project, description string
	add := &cobra.Command{
		Use:   "add",
		Short: "Record an income or expense entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := model.ParseTransactionType(typ)
			if err != nil {
				return errInvalidTypeFlag(typ)
			}
			amt, err := model.ParseAmount(amount)
			if err != nil {
				return err
			}
			day := time.Now().UTC().Truncate(24 * time.Hour)
			if date != "" {
				if day, err = time.Parse(dateLayout, date); err != nil {
					return fmt.Errorf("parsing --date: %w", err)
				}
			}
			if !a.knownCategory(t, category) {
				a.log.Warn().Str("category", category).Str("type", string(t)).Msg("category not in config")
			}

			sess, err := a.session()
			if err != nil {
				return err
			}
			tx, totals, err := sess.OnAddTransaction(model.Transaction{
				Amount:      amt,
				Date:        day,
				Category:    category,
				Project:     project,
				Description: description,
				Type:        t,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Recorded %s %s (%s) as %s\n", tx.Type, money(tx.Amount), tx.Category, tx.ID)
			fmt.Fprintf(out, "Income %s  Expenses %s  Balance %s\n", money(totals.Income), money(totals.Expense), money(totals.Balance))
			return nil
		},
	}
	add.Flags().StringVarP(&typ, "type", "t", "", "income or expense")
	add.Flags().StringVarP(&amount, "amount", "a", "", "amount, e.g. 125.50")
	add.Flags().StringVar(&date, "date", "", "date as YYYY-MM-DD (default today)")
	add.Flags().StringVarP(&category, "category", "c", "", "category")
	add.Flags().StringVar(&project, "project", "", "project name")
	add.Flags().StringVarP(&description, "description", "d", "", "description")
	_ = add.MarkFlagRequired("type")
	_ = add.MarkFlagRequired("amount")
	_ = add.MarkFlagRequired("category")

	cmd.AddCommand(add, newTxnImportCommand(a))
	return cmd
}

func (a *app) knownCategory(t model.TransactionType, category string) bool {
	known := a.cfg.Categories.Income
	if t == model.TypeExpense {
		known = a.cfg.Categories.Expense
	}
	for _, c := range known {
		if strings.EqualFold(c, category) {
			return true
		}
	}
	return false
}

func newDeleteCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a stakeholder or project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := a.session()
			if err != nil {
				return err
			}
			kind, err := sess.OnDelete(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s %s\n", kind, args[0])
			return nil
		},
	}
}
