package store

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/stakeledger/stakeledger/internal/activity"
	"github.com/stakeledger/stakeledger/internal/aggregate"
	"github.com/stakeledger/stakeledger/internal/chart"
	"github.com/stakeledger/stakeledger/internal/ledger"
	"github.com/stakeledger/stakeledger/internal/model"
)

// Search and grouping rules for each list view.
var (
	StakeholderSpec = aggregate.Spec[model.Stakeholder]{
		Fields: func(s model.Stakeholder) []string { return []string{s.Name, s.Email, s.Role} },
		Key:    func(s model.Stakeholder) string { return s.Role },
		Amount: func(s model.Stakeholder) decimal.Decimal { return s.Share },
	}

	ProjectSpec = aggregate.Spec[model.Project]{
		Fields: func(p model.Project) []string { return []string{p.Name, p.Description} },
		Key:    func(p model.Project) string { return string(p.CompletionLevel()) },
		Amount: func(p model.Project) decimal.Decimal { return p.Value },
	}

	// Reports are counted per status.
	ReportSpec = aggregate.Spec[model.Report]{
		Fields: func(r model.Report) []string { return []string{r.Title, r.Category} },
		Key:    func(r model.Report) string { return string(r.Status) },
		Amount: func(model.Report) decimal.Decimal { return decimal.NewFromInt(1) },
	}

	TransactionSpec = aggregate.Spec[model.Transaction]{
		Fields: ledger.SearchFields,
		Key:    ledger.Category,
		Amount: ledger.Amount,
	}
)

// Stakeholders runs the list pipeline over stakeholders, grouped by role
// with shares summed.
func (s *Store) Stakeholders(q aggregate.Query) (aggregate.Result[model.Stakeholder], error) {
	return aggregate.Run(s.stakeholders, q, StakeholderSpec)
}

// Projects runs the list pipeline over projects, grouped by completion level
// with values summed.
func (s *Store) Projects(q aggregate.Query) (aggregate.Result[model.Project], error) {
	return aggregate.Run(s.projects, q, ProjectSpec)
}

// Reports runs the list pipeline over reports, counting per status.
func (s *Store) Reports(q aggregate.Query) (aggregate.Result[model.Report], error) {
	return aggregate.Run(s.reports, q, ReportSpec)
}

// Transactions runs the list pipeline over one side of the ledger, grouped
// by category.
func (s *Store) Transactions(typ model.TransactionType, q aggregate.Query) (aggregate.Result[model.Transaction], error) {
	return aggregate.Run(s.ledger.Entries(typ), q, TransactionSpec)
}

// PreviewSize is how many entries of each side the finance dashboard lists.
const PreviewSize = 5

// Finance is the finance dashboard.
type Finance struct {
	Totals            ledger.Totals
	IncomeByCategory  chart.Series
	ExpenseByCategory chart.Series
	IncomeByProject   aggregate.Groups
	ExpenseByProject  aggregate.Groups
	Projects          chart.Comparison
	RecentIncome      []model.Transaction
	RecentExpense     []model.Transaction
}

// Finance builds the finance dashboard. projectLabels fixes the bars of the
// project comparison chart.
func (s *Store) Finance(projectLabels []string) Finance {
	incomeByProject := s.ledger.ByProject(model.TypeIncome)
	expenseByProject := s.ledger.ByProject(model.TypeExpense)
	return Finance{
		Totals:            s.ledger.Totals(),
		IncomeByCategory:  chart.Pie(s.ledger.ByCategory(model.TypeIncome), chart.IncomePalette),
		ExpenseByCategory: chart.Pie(s.ledger.ByCategory(model.TypeExpense), chart.ExpensePalette),
		IncomeByProject:   incomeByProject,
		ExpenseByProject:  expenseByProject,
		Projects:          chart.Compare(projectLabels, incomeByProject, expenseByProject),
		RecentIncome:      s.ledger.Preview(model.TypeIncome, PreviewSize),
		RecentExpense:     s.ledger.Preview(model.TypeExpense, PreviewSize),
	}
}

// Overview is the landing dashboard: collection sizes and recent activity.
type Overview struct {
	Stakeholders   int
	Projects       int
	Reports        int
	Transactions   int
	TotalShare     decimal.Decimal
	PortfolioValue decimal.Decimal
	ReportStatus   aggregate.Groups
	Recent         []activity.Entry
}

// Overview summarises the store with at most recent activity entries.
func (s *Store) Overview(recent int) Overview {
	return Overview{
		Stakeholders:   len(s.stakeholders),
		Projects:       len(s.projects),
		Reports:        len(s.reports),
		Transactions:   s.ledger.Len(),
		TotalShare:     aggregate.GroupSum(s.stakeholders, constKey[model.Stakeholder], StakeholderSpec.Amount).Total(),
		PortfolioValue: aggregate.GroupSum(s.projects, constKey[model.Project], ProjectSpec.Amount).Total(),
		ReportStatus:   aggregate.GroupSum(s.reports, ReportSpec.Key, ReportSpec.Amount),
		Recent:         s.feed.Recent(recent),
	}
}

func constKey[T any](T) string { return "" }

// FormatCount renders a count group sum without decimals.
func FormatCount(d decimal.Decimal) string {
	return strconv.FormatInt(d.IntPart(), 10)
}
