// Package session exposes the event surface a view layer drives: search,
// page changes, adds and deletes. Each list view keeps its own query and
// page between events.
package session

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/stakeledger/stakeledger/internal/aggregate"
	"github.com/stakeledger/stakeledger/internal/config"
	"github.com/stakeledger/stakeledger/internal/ledger"
	"github.com/stakeledger/stakeledger/internal/model"
	"github.com/stakeledger/stakeledger/internal/store"
)

// View names a paginated list.
type View string

const (
	ViewStakeholders View = "stakeholders"
	ViewProjects     View = "projects"
	ViewReports      View = "reports"
	ViewIncome       View = "income"
	ViewExpense      View = "expense"
)

// Views lists every view in display order.
var Views = []View{ViewStakeholders, ViewProjects, ViewReports, ViewIncome, ViewExpense}

// ParseView validates a view name.
func ParseView(s string) (View, error) {
	for _, v := range Views {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown view %q", s)
}

type listState struct {
	query    string
	page     int
	pageSize int
}

// Session binds a Store to per-view list state.
type Session struct {
	store      *store.Store
	views      map[View]*listState
	maxButtons int
	projects   []string
	log        zerolog.Logger
}

// New creates a Session over st using page sizes from cfg.
func New(st *store.Store, cfg *config.Config, log zerolog.Logger) *Session {
	p := cfg.Pagination
	return &Session{
		store: st,
		views: map[View]*listState{
			ViewStakeholders: {page: 1, pageSize: p.Stakeholders},
			ViewProjects:     {page: 1, pageSize: p.Projects},
			ViewReports:      {page: 1, pageSize: p.Reports},
			ViewIncome:       {page: 1, pageSize: p.Transactions},
			ViewExpense:      {page: 1, pageSize: p.Transactions},
		},
		maxButtons: p.MaxButtons,
		projects:   cfg.Projects,
		log:        log,
	}
}

// Store returns the underlying store.
func (s *Session) Store() *store.Store {
	return s.store
}

// Page is the rendered state of one list view. Items holds the records of
// the current page as one of the model types.
type Page struct {
	View       View
	Query      string
	PageIndex  int
	TotalPages int
	Matches    int
	Window     []int
	Grouped    aggregate.Groups
	Items      any
}

// OnSearch sets the view's query and returns to the first page.
func (s *Session) OnSearch(v View, query string) (Page, error) {
	st, err := s.state(v)
	if err != nil {
		return Page{}, err
	}
	st.query = query
	st.page = 1
	s.log.Debug().Str("view", string(v)).Str("query", query).Msg("search")
	return s.View(v)
}

// OnPageChange moves the view to page, clamped to the available pages.
func (s *Session) OnPageChange(v View, page int) (Page, error) {
	st, err := s.state(v)
	if err != nil {
		return Page{}, err
	}
	st.page = page
	p, err := s.View(v)
	if err != nil {
		return Page{}, err
	}
	if p.PageIndex != page {
		s.log.Debug().Str("view", string(v)).Int("requested", page).Int("page", p.PageIndex).Msg("page clamped")
	}
	return p, nil
}

// View re-runs the pipeline for v with its current query and page.
func (s *Session) View(v View) (Page, error) {
	st, err := s.state(v)
	if err != nil {
		return Page{}, err
	}
	q := aggregate.Query{Text: st.query, Page: st.page, PageSize: st.pageSize, MaxButtons: s.maxButtons}

	var p Page
	switch v {
	case ViewStakeholders:
		res, err := s.store.Stakeholders(q)
		if err != nil {
			return Page{}, err
		}
		p = page(v, res)
	case ViewProjects:
		res, err := s.store.Projects(q)
		if err != nil {
			return Page{}, err
		}
		p = page(v, res)
	case ViewReports:
		res, err := s.store.Reports(q)
		if err != nil {
			return Page{}, err
		}
		p = page(v, res)
	case ViewIncome, ViewExpense:
		res, err := s.store.Transactions(transactionType(v), q)
		if err != nil {
			return Page{}, err
		}
		p = page(v, res)
	}
	st.page = p.PageIndex
	p.Query = st.query
	return p, nil
}

func page[T any](v View, res aggregate.Result[T]) Page {
	items := res.Page
	if items == nil {
		items = []T{}
	}
	return Page{
		View:       v,
		PageIndex:  res.PageIndex,
		TotalPages: res.TotalPages,
		Matches:    len(res.Filtered),
		Window:     res.Window,
		Grouped:    res.Grouped,
		Items:      items,
	}
}

func transactionType(v View) model.TransactionType {
	if v == ViewExpense {
		return model.TypeExpense
	}
	return model.TypeIncome
}

func (s *Session) state(v View) (*listState, error) {
	st, ok := s.views[v]
	if !ok {
		return nil, fmt.Errorf("unknown view %q", v)
	}
	return st, nil
}

// OnAddStakeholder adds or updates a stakeholder.
func (s *Session) OnAddStakeholder(sh model.Stakeholder) (model.Stakeholder, error) {
	return s.store.SaveStakeholder(sh)
}

// OnAddProject adds or updates a project.
func (s *Session) OnAddProject(p model.Project) (model.Project, error) {
	return s.store.SaveProject(p)
}

// OnAddTransaction records an income or expense entry.
func (s *Session) OnAddTransaction(tx model.Transaction) (model.Transaction, ledger.Totals, error) {
	return s.store.RecordTransaction(tx)
}

// OnDelete removes a record by ID; the caller decides how to confirm.
func (s *Session) OnDelete(recordID string) (store.Kind, error) {
	return s.store.Delete(recordID)
}

// Finance returns the finance dashboard using the configured project labels.
func (s *Session) Finance() store.Finance {
	return s.store.Finance(s.projects)
}
