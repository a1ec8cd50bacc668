package library

import "time"

// Loan statuses. Returned is stored; Active and Overdue are derived on read
// from the due date and the supplied current time.
const (
	StatusActive   = "active"
	StatusOverdue  = "overdue"
	StatusReturned = "returned"
)

// DefaultDailyFineRate is the fine accrued per whole day overdue.
const DefaultDailyFineRate = 0.50

// Loan binds one item to one user over a time interval. It references both
// by identifier only; lookups go through the System registries. PeriodDays
// and MaxRenewals are captured from the item at checkout so the loan carries
// its own lending rules.
type Loan struct {
	LoanID       string     `json:"loan_id"`
	UserID       string     `json:"user_id"`
	ItemID       string     `json:"item_id"`
	CheckedOutAt time.Time  `json:"checked_out_at"`
	DueAt        time.Time  `json:"due_at"`
	ReturnedAt   *time.Time `json:"returned_at,omitempty"`
	RenewalCount int        `json:"renewal_count"`
	PeriodDays   int        `json:"period_days"`
	MaxRenewals  int        `json:"max_renewals"`
}

// newLoan creates an open loan for the item starting at now. The due date is
// now plus the item's loan period.
func newLoan(loanID string, user *User, item *Item, now time.Time) *Loan {
	period := item.LoanPeriodDays()
	return &Loan{
		LoanID:       loanID,
		UserID:       user.UserID,
		ItemID:       item.ItemID,
		CheckedOutAt: now,
		DueAt:        now.AddDate(0, 0, period),
		PeriodDays:   period,
		MaxRenewals:  item.MaxRenewals(),
	}
}

// Status returns the loan status at the given time.
func (l *Loan) Status(now time.Time) string {
	switch {
	case l.ReturnedAt != nil:
		return StatusReturned
	case now.After(l.DueAt):
		return StatusOverdue
	default:
		return StatusActive
	}
}

// Open reports whether the item is still out, i.e. the loan is active or
// overdue.
func (l *Loan) Open() bool {
	return l.ReturnedAt == nil
}

// IsOverdue reports whether the loan is open and past its due date.
func (l *Loan) IsOverdue(now time.Time) bool {
	return l.ReturnedAt == nil && now.After(l.DueAt)
}

// DaysOverdue returns the number of whole days past the due date, evaluated
// against the return date when the loan is closed. Zero when not overdue.
func (l *Loan) DaysOverdue(now time.Time) int {
	at := now
	if l.ReturnedAt != nil {
		at = *l.ReturnedAt
	}
	if !at.After(l.DueAt) {
		return 0
	}
	return int(at.Sub(l.DueAt).Hours() / 24)
}

// Fine returns the fine owed at the given daily rate. Zero while the loan is
// not overdue; non-decreasing in elapsed days past the due date.
func (l *Loan) Fine(now time.Time, dailyRate float64) float64 {
	return float64(l.DaysOverdue(now)) * dailyRate
}

// Renew extends the due date by the loan's period and increments the renewal
// count. Returns ErrAlreadyReturned for closed loans, ErrRenewalLimit once
// MaxRenewals is reached, and ErrOverdueRenewal for overdue loans, which must
// be settled rather than renewed.
func (l *Loan) Renew(now time.Time) error {
	if l.ReturnedAt != nil {
		return ErrAlreadyReturned
	}
	if l.RenewalCount >= l.MaxRenewals {
		return ErrRenewalLimit
	}
	if l.IsOverdue(now) {
		return ErrOverdueRenewal
	}
	l.DueAt = l.DueAt.AddDate(0, 0, l.PeriodDays)
	l.RenewalCount++
	return nil
}

// Return closes the loan at the given time and returns the final fine owed
// at the given daily rate. Returns ErrAlreadyReturned if called twice.
func (l *Loan) Return(now time.Time, dailyRate float64) (float64, error) {
	if l.ReturnedAt != nil {
		return 0, ErrAlreadyReturned
	}
	returned := now
	l.ReturnedAt = &returned
	return l.Fine(now, dailyRate), nil
}
