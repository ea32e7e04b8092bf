// Package store owns every in-memory collection of a workspace and the
// operations the view layer drives.
package store

import (
	"errors"
	"fmt"
	"slices"

	"github.com/rs/zerolog"

	"github.com/stakeledger/stakeledger/internal/activity"
	"github.com/stakeledger/stakeledger/internal/id"
	"github.com/stakeledger/stakeledger/internal/ledger"
	"github.com/stakeledger/stakeledger/internal/model"
	"github.com/stakeledger/stakeledger/internal/seed"
)

var (
	ErrNotFound   = errors.New("record not found")
	ErrReadOnly   = errors.New("reports are read-only")
	ErrAppendOnly = errors.New("transactions are append-only")
)

// Kind names a collection.
type Kind string

const (
	KindStakeholder Kind = "stakeholder"
	KindProject     Kind = "project"
	KindReport      Kind = "report"
	KindTransaction Kind = "transaction"
)

// Store holds stakeholders, projects, reports, the ledger and the activity
// feed. It is not safe for concurrent use.
type Store struct {
	stakeholders []model.Stakeholder
	projects     []model.Project
	reports      []model.Report
	ledger       *ledger.Ledger
	feed         *activity.Feed
	log          zerolog.Logger
}

// Option customises a Store.
type Option func(*Store)

// WithLogger sets the logger mutations are reported to.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Store) { s.log = log }
}

// WithFeed replaces the activity feed, mainly to control timestamps.
func WithFeed(f *activity.Feed) Option {
	return func(s *Store) { s.feed = f }
}

// New creates an empty Store.
func New(opts ...Option) *Store {
	s := &Store{
		ledger: ledger.New(),
		feed:   activity.NewFeed(),
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load creates a Store from seed data. Every record is validated; seeding
// does not produce activity entries.
func Load(data seed.Data, opts ...Option) (*Store, error) {
	s := New(opts...)
	for _, sh := range data.Stakeholders {
		if err := sh.Validate(); err != nil {
			return nil, fmt.Errorf("seeding stakeholder %s: %w", sh.ID, err)
		}
	}
	for _, p := range data.Projects {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("seeding project %s: %w", p.ID, err)
		}
	}
	for _, r := range data.Reports {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("seeding report %s: %w", r.ID, err)
		}
	}
	s.stakeholders = slices.Clone(data.Stakeholders)
	s.projects = slices.Clone(data.Projects)
	s.reports = slices.Clone(data.Reports)

	for _, tx := range data.Transactions {
		if tx.ID == "" {
			tx.ID = id.NewTransactionID()
		}
		if _, err := s.ledger.Record(tx); err != nil {
			return nil, fmt.Errorf("seeding transaction %s: %w", tx.ID, err)
		}
	}

	s.log.Debug().
		Int("stakeholders", len(s.stakeholders)).
		Int("projects", len(s.projects)).
		Int("reports", len(s.reports)).
		Int("transactions", s.ledger.Len()).
		Msg("store seeded")
	return s, nil
}

// Snapshot returns a copy of every collection, suitable for seed.Save.
func (s *Store) Snapshot() seed.Data {
	return seed.Data{
		Stakeholders: slices.Clone(s.stakeholders),
		Projects:     slices.Clone(s.projects),
		Reports:      slices.Clone(s.reports),
		Transactions: append(s.ledger.Income(), s.ledger.Expenses()...),
	}
}

// Activity returns the store's activity feed.
func (s *Store) Activity() *activity.Feed {
	return s.feed
}

// Ledger returns the transaction ledger.
func (s *Store) Ledger() *ledger.Ledger {
	return s.ledger
}

// SaveStakeholder adds sh when it has no ID, otherwise replaces the
// stakeholder with the same ID.
func (s *Store) SaveStakeholder(sh model.Stakeholder) (model.Stakeholder, error) {
	if err := sh.Validate(); err != nil {
		return model.Stakeholder{}, fmt.Errorf("saving stakeholder: %w", err)
	}
	if sh.ID == "" {
		sh.ID = id.Next(id.StakeholderPrefix, 4, 1001, stakeholderIDs(s.stakeholders))
		s.stakeholders = append(s.stakeholders, sh)
		s.record(activity.ActionAdded, KindStakeholder, sh.ID, sh.Name)
		return sh, nil
	}

	i := slices.IndexFunc(s.stakeholders, func(x model.Stakeholder) bool { return x.ID == sh.ID })
	if i < 0 {
		return model.Stakeholder{}, fmt.Errorf("saving stakeholder %s: %w", sh.ID, ErrNotFound)
	}
	s.stakeholders[i] = sh
	s.record(activity.ActionUpdated, KindStakeholder, sh.ID, sh.Name)
	return sh, nil
}

// SaveProject adds p when it has no ID, otherwise replaces the project with
// the same ID.
func (s *Store) SaveProject(p model.Project) (model.Project, error) {
	if err := p.Validate(); err != nil {
		return model.Project{}, fmt.Errorf("saving project: %w", err)
	}
	if p.ID == "" {
		p.ID = id.Next(id.ProjectPrefix, 4, 1, projectIDs(s.projects))
		s.projects = append(s.projects, p)
		s.record(activity.ActionAdded, KindProject, p.ID, p.Name)
		return p, nil
	}

	i := slices.IndexFunc(s.projects, func(x model.Project) bool { return x.ID == p.ID })
	if i < 0 {
		return model.Project{}, fmt.Errorf("saving project %s: %w", p.ID, ErrNotFound)
	}
	s.projects[i] = p
	s.record(activity.ActionUpdated, KindProject, p.ID, p.Name)
	return p, nil
}

// RecordTransaction assigns an ID when tx has none and appends it to the
// ledger, returning the stored entry and the new totals.
func (s *Store) RecordTransaction(tx model.Transaction) (model.Transaction, ledger.Totals, error) {
	if tx.ID == "" {
		tx.ID = id.NewTransactionID()
	}
	totals, err := s.ledger.Record(tx)
	if err != nil {
		return model.Transaction{}, ledger.Totals{}, err
	}
	s.record(activity.ActionRecorded, KindTransaction, tx.ID,
		fmt.Sprintf("%s %s (%s)", tx.Type, tx.Amount.StringFixed(2), tx.Category))
	return tx, totals, nil
}

// Delete removes the stakeholder or project with the given ID and reports
// which kind it was. Reports and transactions cannot be deleted.
func (s *Store) Delete(recordID string) (Kind, error) {
	if i := slices.IndexFunc(s.stakeholders, func(x model.Stakeholder) bool { return x.ID == recordID }); i >= 0 {
		name := s.stakeholders[i].Name
		s.stakeholders = slices.Delete(s.stakeholders, i, i+1)
		s.record(activity.ActionDeleted, KindStakeholder, recordID, name)
		return KindStakeholder, nil
	}
	if i := slices.IndexFunc(s.projects, func(x model.Project) bool { return x.ID == recordID }); i >= 0 {
		name := s.projects[i].Name
		s.projects = slices.Delete(s.projects, i, i+1)
		s.record(activity.ActionDeleted, KindProject, recordID, name)
		return KindProject, nil
	}
	if slices.ContainsFunc(s.reports, func(x model.Report) bool { return x.ID == recordID }) {
		return KindReport, fmt.Errorf("deleting %s: %w", recordID, ErrReadOnly)
	}
	if _, ok := s.ledger.Find(recordID); ok {
		return KindTransaction, fmt.Errorf("deleting %s: %w", recordID, ErrAppendOnly)
	}
	return "", fmt.Errorf("deleting %s: %w", recordID, ErrNotFound)
}

// Stakeholder returns the stakeholder with the given ID.
func (s *Store) Stakeholder(recordID string) (model.Stakeholder, bool) {
	i := slices.IndexFunc(s.stakeholders, func(x model.Stakeholder) bool { return x.ID == recordID })
	if i < 0 {
		return model.Stakeholder{}, false
	}
	return s.stakeholders[i], true
}

// Project returns the project with the given ID.
func (s *Store) Project(recordID string) (model.Project, bool) {
	i := slices.IndexFunc(s.projects, func(x model.Project) bool { return x.ID == recordID })
	if i < 0 {
		return model.Project{}, false
	}
	return s.projects[i], true
}

func (s *Store) record(action activity.Action, kind Kind, recordID, details string) {
	e := s.feed.Add(action, string(kind), recordID, details)
	s.log.Debug().
		Str("action", string(e.Action)).
		Str("kind", e.Kind).
		Str("id", e.RecordID).
		Msg(e.String())
}

func stakeholderIDs(xs []model.Stakeholder) []string {
	ids := make([]string, len(xs))
	for i, x := range xs {
		ids[i] = x.ID
	}
	return ids
}

func projectIDs(xs []model.Project) []string {
	ids := make([]string, len(xs))
	for i, x := range xs {
		ids[i] = x.ID
	}
	return ids
}
