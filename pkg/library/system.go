package library

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// System is the orchestrator. It owns the in-memory registries of items,
// users, and loans, enforces the invariants spanning them, and mediates every
// cross-entity effect: items and users never mutate loan state directly.
//
// A single mutex serializes all public operations; checkout, check-in, and
// renew are read-then-write sequences over shared registries and must not
// interleave. Time is always caller-supplied, never read from a clock.
type System struct {
	mu    sync.Mutex
	cfg   Config
	store Store

	items map[string]*Item
	users map[string]*User
	loans map[string]*Loan

	// newID mints loan identifiers; replaceable in tests.
	newID func() string
}

// NewSystem creates a System with the given configuration. When store is
// non-nil the registries are loaded from it; hydrated records are validated
// before acceptance. A nil store yields a purely in-memory system.
func NewSystem(cfg Config, store Store) (*System, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.LibraryName == "" {
		cfg.LibraryName = DefaultConfig().LibraryName
	}
	s := &System{
		cfg:   cfg,
		store: store,
		items: make(map[string]*Item),
		users: make(map[string]*User),
		loans: make(map[string]*Loan),
		newID: generateLoanID,
	}
	if store != nil {
		if err := s.load(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// load populates the registries from the store.
func (s *System) load() error {
	users, err := s.store.LoadUsers()
	if err != nil {
		return fmt.Errorf("load users: %w", err)
	}
	for _, u := range users {
		if err := u.Validate(); err != nil {
			return fmt.Errorf("load user %s: %w", u.UserID, err)
		}
		s.users[u.UserID] = u
	}

	items, err := s.store.LoadItems()
	if err != nil {
		return fmt.Errorf("load items: %w", err)
	}
	for _, it := range items {
		if err := it.Validate(); err != nil {
			return fmt.Errorf("load item %s: %w", it.ItemID, err)
		}
		s.items[it.ItemID] = it
	}

	loans, err := s.store.LoadLoans()
	if err != nil {
		return fmt.Errorf("load loans: %w", err)
	}
	for _, l := range loans {
		s.loans[l.LoanID] = l
	}
	return nil
}

// Config returns the circulation parameters the system runs with.
func (s *System) Config() Config {
	return s.cfg
}

// generateLoanID mints a UUID v7 loan identifier, falling back to v4 when v7
// generation fails.
func generateLoanID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// --- Registration ---

// RegisterUser adds a user to the registry.
// Returns ErrDuplicateID when the identifier is already registered.
func (s *System) RegisterUser(u *User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[u.UserID]; exists {
		return fmt.Errorf("%w: user %s", ErrDuplicateID, u.UserID)
	}
	s.users[u.UserID] = u
	return s.saveUser(u)
}

// AddItem adds an item to the catalog.
// Returns ErrDuplicateID when the identifier is already registered.
func (s *System) AddItem(it *Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[it.ItemID]; exists {
		return fmt.Errorf("%w: item %s", ErrDuplicateID, it.ItemID)
	}
	s.items[it.ItemID] = it
	return s.saveItem(it)
}

// --- Circulation ---

// CheckOut lends an item to a user at the given time. Every check runs
// before any mutation: missing records, availability, then the user's
// borrowing eligibility. On success the returned loan is open with a due
// date of now plus the item's loan period, and the item is unavailable.
func (s *System) CheckOut(userID, itemID string, now time.Time) (*Loan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, userID)
	}
	item, ok := s.items[itemID]
	if !ok {
		return nil, fmt.Errorf("%w: item %s", ErrNotFound, itemID)
	}
	if !item.Available {
		return nil, ErrItemUnavailable
	}
	if err := user.BorrowCheck(s.openLoanCount(userID), s.cfg.FineThreshold, now); err != nil {
		return nil, err
	}

	loan := newLoan(s.newID(), user, item, now)
	s.loans[loan.LoanID] = loan
	item.Available = false

	if err := s.saveLoan(loan); err != nil {
		return nil, err
	}
	if err := s.saveItem(item); err != nil {
		return nil, err
	}
	return loan, nil
}

// CheckIn closes a loan at the given time, restores the item's availability,
// and adds any fine to the borrowing member's balance. Returns the fine owed.
func (s *System) CheckIn(loanID string, now time.Time) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	loan, ok := s.loans[loanID]
	if !ok {
		return 0, fmt.Errorf("%w: loan %s", ErrNotFound, loanID)
	}

	fine, err := loan.Return(now, s.cfg.DailyFineRate)
	if err != nil {
		return 0, err
	}

	if item, ok := s.items[loan.ItemID]; ok {
		item.Available = true
		if err := s.saveItem(item); err != nil {
			return fine, err
		}
	}
	if user, ok := s.users[loan.UserID]; ok && fine > 0 {
		user.AddFine(fine)
		if err := s.saveUser(user); err != nil {
			return fine, err
		}
	}
	if err := s.saveLoan(loan); err != nil {
		return fine, err
	}
	return fine, nil
}

// Renew extends a loan's due date by the item's loan period. Delegates the
// rule checks to the loan: renewal limit, already returned, overdue.
func (s *System) Renew(loanID string, now time.Time) (*Loan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	loan, ok := s.loans[loanID]
	if !ok {
		return nil, fmt.Errorf("%w: loan %s", ErrNotFound, loanID)
	}
	if err := loan.Renew(now); err != nil {
		return nil, err
	}
	if err := s.saveLoan(loan); err != nil {
		return nil, err
	}
	return loan, nil
}

// PayFine reduces a member's fines balance by the given amount.
func (s *System) PayFine(userID string, amount float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return fmt.Errorf("%w: user %s", ErrNotFound, userID)
	}
	if err := user.PayFine(amount); err != nil {
		return err
	}
	return s.saveUser(user)
}

// --- Removal ---

// RemoveItem deletes an item from the catalog. Rejected with
// ErrHasActiveLoans while an open loan references the item.
func (s *System) RemoveItem(itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[itemID]; !ok {
		return fmt.Errorf("%w: item %s", ErrNotFound, itemID)
	}
	for _, l := range s.loans {
		if l.ItemID == itemID && l.Open() {
			return ErrHasActiveLoans
		}
	}
	delete(s.items, itemID)
	if s.store != nil {
		if err := s.store.DeleteItem(itemID); err != nil {
			return fmt.Errorf("delete item: %w", err)
		}
	}
	return nil
}

// RemoveUser deletes a user. Rejected with ErrHasActiveLoans while the user
// holds open loans.
func (s *System) RemoveUser(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[userID]; !ok {
		return fmt.Errorf("%w: user %s", ErrNotFound, userID)
	}
	for _, l := range s.loans {
		if l.UserID == userID && l.Open() {
			return ErrHasActiveLoans
		}
	}
	delete(s.users, userID)
	if s.store != nil {
		if err := s.store.DeleteUser(userID); err != nil {
			return fmt.Errorf("delete user: %w", err)
		}
	}
	return nil
}

// --- Queries ---

// GetItem returns the item with the given identifier.
func (s *System) GetItem(itemID string) (*Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	it, ok := s.items[itemID]
	if !ok {
		return nil, fmt.Errorf("%w: item %s", ErrNotFound, itemID)
	}
	return it, nil
}

// GetUser returns the user with the given identifier.
func (s *System) GetUser(userID string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, userID)
	}
	return u, nil
}

// GetLoan returns the loan with the given identifier.
func (s *System) GetLoan(loanID string) (*Loan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.loans[loanID]
	if !ok {
		return nil, fmt.Errorf("%w: loan %s", ErrNotFound, loanID)
	}
	return l, nil
}

// Items returns all catalog items ordered by identifier.
func (s *System) Items() []*Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*Item, 0, len(s.items))
	for _, it := range s.items {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ItemID < out[j].ItemID })
	return out
}

// Users returns all registered users ordered by identifier.
func (s *System) Users() []*User {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out
}

// AvailableItems returns the catalog items currently available for checkout.
func (s *System) AvailableItems() []*Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*Item
	for _, it := range s.items {
		if it.Available {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ItemID < out[j].ItemID })
	return out
}

// ItemsByKind returns the catalog items of the given kind.
func (s *System) ItemsByKind(kind string) []*Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*Item
	for _, it := range s.items {
		if it.Kind == kind {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ItemID < out[j].ItemID })
	return out
}

// UsersByRole returns the users with the given role.
func (s *System) UsersByRole(role string) []*User {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*User
	for _, u := range s.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out
}

// SearchItems returns the items whose title contains the query,
// case-insensitively.
func (s *System) SearchItems(query string) []*Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := strings.ToLower(query)
	var out []*Item
	for _, it := range s.items {
		if strings.Contains(strings.ToLower(it.Title), q) {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ItemID < out[j].ItemID })
	return out
}

// ActiveLoansForUser returns the user's open loans, newest first.
func (s *System) ActiveLoansForUser(userID string) []*Loan {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loansForUser(userID, true)
}

// LoansForUser returns all of the user's loans, open and closed, newest first.
func (s *System) LoansForUser(userID string) []*Loan {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loansForUser(userID, false)
}

func (s *System) loansForUser(userID string, openOnly bool) []*Loan {
	var out []*Loan
	for _, l := range s.loans {
		if l.UserID != userID {
			continue
		}
		if openOnly && !l.Open() {
			continue
		}
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CheckedOutAt.After(out[j].CheckedOutAt) })
	return out
}

// OverdueLoans returns every open loan past its due date at the given time.
func (s *System) OverdueLoans(now time.Time) []*Loan {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*Loan
	for _, l := range s.loans {
		if l.IsOverdue(now) {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DueAt.Before(out[j].DueAt) })
	return out
}

// openLoanCount counts the user's open loans. Caller must hold s.mu.
func (s *System) openLoanCount(userID string) int {
	n := 0
	for _, l := range s.loans {
		if l.UserID == userID && l.Open() {
			n++
		}
	}
	return n
}

// --- Reporting ---

// Stats is a snapshot of simple system aggregates.
type Stats struct {
	LibraryName    string  `json:"library_name"`
	TotalItems     int     `json:"total_items"`
	AvailableItems int     `json:"available_items"`
	Books          int     `json:"books"`
	Magazines      int     `json:"magazines"`
	DVDs           int     `json:"dvds"`
	TotalUsers     int     `json:"total_users"`
	Members        int     `json:"members"`
	Staff          int     `json:"staff"`
	TotalLoans     int     `json:"total_loans"`
	ActiveLoans    int     `json:"active_loans"`
	OverdueLoans   int     `json:"overdue_loans"`
	AccruingFines  float64 `json:"accruing_fines"`
}

// Stats aggregates counts over the registries at the given time.
func (s *System) Stats(now time.Time) Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := Stats{LibraryName: s.cfg.LibraryName}
	for _, it := range s.items {
		st.TotalItems++
		if it.Available {
			st.AvailableItems++
		}
		switch it.Kind {
		case KindBook:
			st.Books++
		case KindMagazine:
			st.Magazines++
		case KindDVD:
			st.DVDs++
		}
	}
	for _, u := range s.users {
		st.TotalUsers++
		switch u.Role {
		case RoleMember:
			st.Members++
		case RoleStaff:
			st.Staff++
		}
	}
	for _, l := range s.loans {
		st.TotalLoans++
		if l.Open() {
			st.ActiveLoans++
		}
		if l.IsOverdue(now) {
			st.OverdueLoans++
			st.AccruingFines += l.Fine(now, s.cfg.DailyFineRate)
		}
	}
	return st
}

// CheckIntegrity verifies the cross-entity invariants: every loan references
// registered records, no item has more than one open loan, and an item's
// availability flag agrees with its open-loan count. Returns a human-readable
// finding per violation; an empty slice means the registries are consistent.
func (s *System) CheckIntegrity() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var findings []string
	openByItem := make(map[string]int)
	for _, l := range s.loans {
		if _, ok := s.users[l.UserID]; !ok {
			findings = append(findings, fmt.Sprintf("loan %s references unknown user %s", l.LoanID, l.UserID))
		}
		if _, ok := s.items[l.ItemID]; !ok {
			findings = append(findings, fmt.Sprintf("loan %s references unknown item %s", l.LoanID, l.ItemID))
		}
		if l.Open() {
			openByItem[l.ItemID]++
		}
	}
	for id, it := range s.items {
		open := openByItem[id]
		switch {
		case open > 1:
			findings = append(findings, fmt.Sprintf("item %s has %d open loans", id, open))
		case open == 1 && it.Available:
			findings = append(findings, fmt.Sprintf("item %s is marked available but has an open loan", id))
		case open == 0 && !it.Available:
			findings = append(findings, fmt.Sprintf("item %s is marked unavailable but has no open loan", id))
		}
	}
	sort.Strings(findings)
	return findings
}

// --- Persistence helpers ---

func (s *System) saveUser(u *User) error {
	if s.store == nil {
		return nil
	}
	if err := s.store.SaveUser(u); err != nil {
		return fmt.Errorf("save user %s: %w", u.UserID, err)
	}
	return nil
}

func (s *System) saveItem(it *Item) error {
	if s.store == nil {
		return nil
	}
	if err := s.store.SaveItem(it); err != nil {
		return fmt.Errorf("save item %s: %w", it.ItemID, err)
	}
	return nil
}

func (s *System) saveLoan(l *Loan) error {
	if s.store == nil {
		return nil
	}
	if err := s.store.SaveLoan(l); err != nil {
		return fmt.Errorf("save loan %s: %w", l.LoanID, err)
	}
	return nil
}
