// Package memory is an in-process implementation of the credit store used by
// tests and local development. Units of work are serialised by one mutex and
// commit by swapping in a modified copy of the state.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/domain/model"
	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/domain/port"
	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/internal/domain/valueobject"
	"github.com/jenish-ad/Credit-Score-Analysis-and-Risk-Assessment/pkg/events"
)

// Compile-time interface checks.
var (
	_ port.UnitOfWork         = (*Store)(nil)
	_ port.Store              = (*tx)(nil)
	_ events.OutboxRepository = (*Store)(nil)
)

type state struct {
	users     map[int64]model.User
	accounts  map[int64]model.Account
	payments  map[int64]model.PaymentObligation
	snapshots []model.ScoreSnapshot
	outbox    []events.OutboxEntry

	nextSnapshotID int64
}

func (s *state) clone() *state {
	c := &state{
		users:          make(map[int64]model.User, len(s.users)),
		accounts:       make(map[int64]model.Account, len(s.accounts)),
		payments:       make(map[int64]model.PaymentObligation, len(s.payments)),
		snapshots:      append([]model.ScoreSnapshot(nil), s.snapshots...),
		outbox:         append([]events.OutboxEntry(nil), s.outbox...),
		nextSnapshotID: s.nextSnapshotID,
	}
	for k, v := range s.users {
		c.users[k] = v
	}
	for k, v := range s.accounts {
		c.accounts[k] = v
	}
	for k, v := range s.payments {
		c.payments[k] = v
	}
	return c
}

// Store holds the committed state.
type Store struct {
	mu    sync.Mutex
	state *state
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{state: &state{
		users:    make(map[int64]model.User),
		accounts: make(map[int64]model.Account),
		payments: make(map[int64]model.PaymentObligation),
	}}
}

// Do runs fn against a private copy of the state and commits it when fn
// returns nil.
func (s *Store) Do(ctx context.Context, fn func(ctx context.Context, store port.Store) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := &tx{state: s.state.clone()}
	if err := fn(ctx, t); err != nil {
		return err
	}
	s.state = t.state
	return nil
}

// ---------------------------------------------------------------------------
// Seeding and inspection
// ---------------------------------------------------------------------------

// PutUser inserts or replaces a user.
func (s *Store) PutUser(u model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.users[u.ID] = u
}

// PutAccount inserts or replaces an account under its own id.
func (s *Store) PutAccount(a model.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.accounts[a.ID()] = a
}

// PutObligation inserts or replaces an obligation under its own id.
func (s *Store) PutObligation(p model.PaymentObligation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.payments[p.ID()] = p
}

// PutSnapshot appends a snapshot as stored, assigning an id when it has none.
func (s *Store) PutSnapshot(snap model.ScoreSnapshot) model.ScoreSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	if snap.ID == 0 {
		s.state.nextSnapshotID++
		snap.ID = s.state.nextSnapshotID
	} else if snap.ID > s.state.nextSnapshotID {
		s.state.nextSnapshotID = snap.ID
	}
	s.state.snapshots = append(s.state.snapshots, snap)
	return snap
}

// User returns a committed user.
func (s *Store) User(id int64) (model.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.state.users[id]
	return u, ok
}

// Account returns a committed account.
func (s *Store) Account(id int64) (model.Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.state.accounts[id]
	return a, ok
}

// Obligation returns a committed obligation.
func (s *Store) Obligation(id int64) (model.PaymentObligation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.state.payments[id]
	return p, ok
}

// Obligations returns the committed obligations of an account ordered by id.
func (s *Store) Obligations(accountID int64) []model.PaymentObligation {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.PaymentObligation
	for _, p := range s.state.payments {
		if p.AccountID() == accountID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

// Snapshots returns the committed snapshots of a user in insertion order.
func (s *Store) Snapshots(userID int64) []model.ScoreSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.ScoreSnapshot
	for _, snap := range s.state.snapshots {
		if snap.UserID == userID {
			out = append(out, snap)
		}
	}
	return out
}

// ---------------------------------------------------------------------------
// events.OutboxRepository
// ---------------------------------------------------------------------------

// Store appends outbox entries outside any unit of work.
func (s *Store) Store(_ context.Context, entries []events.OutboxEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.outbox = append(s.state.outbox, entries...)
	return nil
}

// FetchUnpublished returns up to batchSize unpublished entries, oldest first.
func (s *Store) FetchUnpublished(_ context.Context, batchSize int) ([]events.OutboxEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []events.OutboxEntry
	for _, e := range s.state.outbox {
		if e.PublishedAt != nil {
			continue
		}
		out = append(out, e)
		if len(out) == batchSize {
			break
		}
	}
	return out, nil
}

// MarkPublished stamps the given entries as published.
func (s *Store) MarkPublished(_ context.Context, ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	marked := make(map[string]bool, len(ids))
	for _, id := range ids {
		marked[id] = true
	}
	now := time.Now().UTC()
	for i := range s.state.outbox {
		if marked[s.state.outbox[i].ID] && s.state.outbox[i].PublishedAt == nil {
			s.state.outbox[i].PublishedAt = &now
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// tx implements port.Store over a private copy of the state.
// ---------------------------------------------------------------------------

type tx struct {
	state *state
}

func notFound(kind string, id any) error {
	return fmt.Errorf("%s %v: %w", kind, id, model.ErrNotFound)
}

// users

func (t *tx) FindUser(_ context.Context, lookup model.ApplicantLookup) (model.User, error) {
	if lookup.UserID > 0 {
		u, ok := t.state.users[lookup.UserID]
		if !ok {
			return model.User{}, notFound("user", lookup.UserID)
		}
		return u, nil
	}
	for _, u := range t.state.users {
		if strings.EqualFold(u.Username, lookup.Username) {
			return u, nil
		}
	}
	return model.User{}, notFound("user", lookup.Username)
}

func (t *tx) UpdateEmployment(_ context.Context, userID int64, employmentType string, monthlyIncome decimal.Decimal) error {
	u, ok := t.state.users[userID]
	if !ok {
		return notFound("user", userID)
	}
	u.EmploymentType = employmentType
	u.MonthlyIncome = &monthlyIncome
	t.state.users[userID] = u
	return nil
}

// accounts

// nextAccountID returns MAX(id)+1, matching the sequence resync done in PostgreSQL.
func nextAccountID(accounts map[int64]model.Account) int64 {
	var maxID int64
	for id := range accounts {
		maxID = max(maxID, id)
	}
	return maxID + 1
}

func (t *tx) InsertAccount(_ context.Context, account model.Account) (model.Account, error) {
	account = account.WithID(nextAccountID(t.state.accounts))
	t.state.accounts[account.ID()] = account
	return account, nil
}

func (t *tx) FindAccountForUpdate(_ context.Context, userID, accountID int64) (model.Account, error) {
	a, ok := t.state.accounts[accountID]
	if !ok || !a.IsOwnedBy(userID) {
		return model.Account{}, notFound("account", accountID)
	}
	return a, nil
}

func (t *tx) UpdateAccount(_ context.Context, account model.Account) error {
	if _, ok := t.state.accounts[account.ID()]; !ok {
		return notFound("account", account.ID())
	}
	t.state.accounts[account.ID()] = account
	return nil
}

func (t *tx) userAccounts(userID int64) []model.Account {
	var out []model.Account
	for _, a := range t.state.accounts {
		if a.IsOwnedBy(userID) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() > out[j].ID() })
	return out
}

func (t *tx) ListAccounts(_ context.Context, userID int64, status valueobject.AccountStatus) ([]model.Account, error) {
	var out []model.Account
	for _, a := range t.userAccounts(userID) {
		if a.Status().Equal(status) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (t *tx) ListActiveLoans(_ context.Context, userID int64) ([]model.LoanSummary, error) {
	var out []model.LoanSummary
	for _, a := range t.userAccounts(userID) {
		if !a.Status().Equal(valueobject.AccountStatusActive) {
			continue
		}
		unpaid := decimal.Zero
		for _, p := range t.state.payments {
			if p.AccountID() == a.ID() && countsTowardOutstanding(p.Status()) {
				unpaid = unpaid.Add(p.Outstanding())
			}
		}
		out = append(out, model.LoanSummary{Account: a, Outstanding: decimal.Max(unpaid, a.Balance())})
	}
	return out, nil
}

func countsTowardOutstanding(s valueobject.PaymentStatus) bool {
	return s.Equal(valueobject.PaymentStatusDue) ||
		s.Equal(valueobject.PaymentStatusPaid) ||
		s.Equal(valueobject.PaymentStatusLate)
}

// payments

func nextPaymentID(payments map[int64]model.PaymentObligation) int64 {
	var maxID int64
	for id := range payments {
		maxID = max(maxID, id)
	}
	return maxID + 1
}

func (t *tx) InsertObligation(_ context.Context, obligation model.PaymentObligation) (model.PaymentObligation, error) {
	if _, ok := t.state.accounts[obligation.AccountID()]; !ok {
		return model.PaymentObligation{}, notFound("account", obligation.AccountID())
	}
	obligation = obligation.WithID(nextPaymentID(t.state.payments))
	t.state.payments[obligation.ID()] = obligation
	return obligation, nil
}

func (t *tx) FindObligationForUpdate(_ context.Context, userID, paymentID int64) (model.PaymentObligation, error) {
	p, ok := t.state.payments[paymentID]
	if !ok {
		return model.PaymentObligation{}, notFound("payment", paymentID)
	}
	if a, ok := t.state.accounts[p.AccountID()]; !ok || !a.IsOwnedBy(userID) {
		return model.PaymentObligation{}, notFound("payment", paymentID)
	}
	return p, nil
}

func (t *tx) EarliestDueForUpdate(_ context.Context, accountID int64) (model.PaymentObligation, bool, error) {
	var (
		best  model.PaymentObligation
		found bool
	)
	for _, p := range t.state.payments {
		if p.AccountID() != accountID || !p.Status().Equal(valueobject.PaymentStatusDue) {
			continue
		}
		if !found || p.DueDate().Before(best.DueDate()) ||
			(p.DueDate().Equal(best.DueDate()) && p.ID() < best.ID()) {
			best, found = p, true
		}
	}
	return best, found, nil
}

func (t *tx) UpdateObligation(_ context.Context, obligation model.PaymentObligation) error {
	if _, ok := t.state.payments[obligation.ID()]; !ok {
		return notFound("payment", obligation.ID())
	}
	t.state.payments[obligation.ID()] = obligation
	return nil
}

func (t *tx) userPayments(userID int64) []model.PaymentRecord {
	var out []model.PaymentRecord
	for _, p := range t.state.payments {
		a, ok := t.state.accounts[p.AccountID()]
		if !ok || !a.IsOwnedBy(userID) {
			continue
		}
		out = append(out, model.PaymentRecord{Obligation: p, AccountType: a.Type()})
	}
	return out
}

func (t *tx) ListPendingSettlements(_ context.Context, userID int64) ([]model.PaymentRecord, error) {
	var out []model.PaymentRecord
	for _, r := range t.userPayments(userID) {
		if r.Obligation.Status().Equal(valueobject.PaymentStatusPendingApproval) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].Obligation, out[j].Obligation
		if !a.DueDate().Equal(b.DueDate()) {
			return a.DueDate().After(b.DueDate())
		}
		return a.ID() > b.ID()
	})
	return out, nil
}

func (t *tx) PaymentHistory(_ context.Context, userID int64, limit int) ([]model.PaymentRecord, error) {
	out := t.userPayments(userID)
	activity := func(p model.PaymentObligation) time.Time {
		if p.PaidDate() != nil {
			return *p.PaidDate()
		}
		return p.DueDate()
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].Obligation, out[j].Obligation
		if da, db := activity(a), activity(b); !da.Equal(db) {
			return da.After(db)
		}
		return a.ID() > b.ID()
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// snapshots

func (t *tx) LatestSnapshot(_ context.Context, userID int64) (model.ScoreSnapshot, bool, error) {
	var (
		latest model.ScoreSnapshot
		found  bool
	)
	for _, s := range t.state.snapshots {
		if s.UserID != userID {
			continue
		}
		if !found || s.CalculatedAt.After(latest.CalculatedAt) ||
			(s.CalculatedAt.Equal(latest.CalculatedAt) && s.ID > latest.ID) {
			latest, found = s, true
		}
	}
	return latest, found, nil
}

func (t *tx) AppendSnapshot(_ context.Context, snapshot model.ScoreSnapshot) (model.ScoreSnapshot, error) {
	t.state.nextSnapshotID++
	snapshot.ID = t.state.nextSnapshotID
	t.state.snapshots = append(t.state.snapshots, snapshot)
	return snapshot, nil
}

func (t *tx) RecentSnapshots(_ context.Context, userID int64, limit int) ([]model.ScoreSnapshot, error) {
	var out []model.ScoreSnapshot
	for _, s := range t.state.snapshots {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CalculatedAt.Equal(out[j].CalculatedAt) {
			return out[i].CalculatedAt.Before(out[j].CalculatedAt)
		}
		return out[i].ID < out[j].ID
	})
	if limit > 0 && len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}

// ledger facts

func (t *tx) LoadFacts(_ context.Context, userID int64) (model.LedgerFacts, error) {
	u, ok := t.state.users[userID]
	if !ok {
		return model.LedgerFacts{}, notFound("user", userID)
	}
	facts := model.LedgerFacts{
		UserID:            userID,
		MonthlyIncome:     decimal.Zero,
		ActiveCreditLimit: decimal.Zero,
		ActiveBalance:     decimal.Zero,
	}
	if u.MonthlyIncome != nil {
		facts.MonthlyIncome = *u.MonthlyIncome
	}

	for _, a := range t.userAccounts(userID) {
		switch {
		case a.Status().Equal(valueobject.AccountStatusActive):
			facts.ActiveCreditLimit = facts.ActiveCreditLimit.Add(a.CreditLimit())
			facts.ActiveBalance = facts.ActiveBalance.Add(a.Balance())
			facts.ActiveAccounts++
		case a.Status().Equal(valueobject.AccountStatusClosed):
		default:
			continue
		}
		facts.Accounts = append(facts.Accounts, model.AccountFact{Type: a.Type(), OpenedAt: a.OpenedAt()})
	}

	for _, r := range t.userPayments(userID) {
		p := r.Obligation
		facts.Payments = append(facts.Payments, model.PaymentFact{
			DueDate:    p.DueDate(),
			PaidDate:   p.PaidDate(),
			AmountDue:  p.AmountDue(),
			AmountPaid: p.AmountPaid(),
			Status:     p.Status(),
		})
	}
	return facts, nil
}

// locking and outbox

// LockScoring is a no-op: Do already serialises every unit of work.
func (t *tx) LockScoring(context.Context, int64) error { return nil }

func (t *tx) Store(_ context.Context, entries []events.OutboxEntry) error {
	t.state.outbox = append(t.state.outbox, entries...)
	return nil
}
