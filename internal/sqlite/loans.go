package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/carrelworks/circ/pkg/library"
)

const loanColumns = `loan_id, user_id, item_id, checked_out_at, due_at,
    returned_at, renewal_count, period_days, max_renewals`

// LoadLoans returns every loan row, open and closed, ordered by checkout time.
func (s *Store) LoadLoans() ([]*library.Loan, error) {
	rows, err := s.db.Query("SELECT " + loanColumns + " FROM loans ORDER BY checked_out_at, loan_id")
	if err != nil {
		return nil, fmt.Errorf("querying loans: %w", err)
	}
	defer rows.Close()

	var loans []*library.Loan
	for rows.Next() {
		l, err := hydrateLoan(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating loan: %w", err)
		}
		loans = append(loans, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating loans: %w", err)
	}
	return loans, nil
}

// SaveLoan inserts the loan or replaces the existing row with the same ID.
// Closed loans keep their row; returned_at marks them settled.
func (s *Store) SaveLoan(l *library.Loan) error {
	var returnedAt sql.NullString
	if l.ReturnedAt != nil {
		returnedAt = sql.NullString{String: formatTime(*l.ReturnedAt), Valid: true}
	}

	_, err := s.db.Exec(`INSERT INTO loans (`+loanColumns+`)
    VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
    ON CONFLICT(loan_id) DO UPDATE SET
        user_id = excluded.user_id,
        item_id = excluded.item_id,
        checked_out_at = excluded.checked_out_at,
        due_at = excluded.due_at,
        returned_at = excluded.returned_at,
        renewal_count = excluded.renewal_count,
        period_days = excluded.period_days,
        max_renewals = excluded.max_renewals`,
		l.LoanID, l.UserID, l.ItemID, formatTime(l.CheckedOutAt),
		formatTime(l.DueAt), returnedAt, l.RenewalCount, l.PeriodDays,
		l.MaxRenewals,
	)
	if err != nil {
		return fmt.Errorf("saving loan %s: %w", l.LoanID, err)
	}
	return nil
}

// hydrateLoan converts the current row of a loans query into a *library.Loan.
func hydrateLoan(rows *sql.Rows) (*library.Loan, error) {
	var l library.Loan
	var checkedOutAt, dueAt string
	var returnedAt sql.NullString

	if err := rows.Scan(
		&l.LoanID, &l.UserID, &l.ItemID, &checkedOutAt, &dueAt, &returnedAt,
		&l.RenewalCount, &l.PeriodDays, &l.MaxRenewals,
	); err != nil {
		return nil, err
	}

	var err error
	l.CheckedOutAt, err = parseTime(checkedOutAt)
	if err != nil {
		return nil, fmt.Errorf("checked_out_at: %w", err)
	}
	l.DueAt, err = parseTime(dueAt)
	if err != nil {
		return nil, fmt.Errorf("due_at: %w", err)
	}
	if returnedAt.Valid {
		t, err := parseTime(returnedAt.String)
		if err != nil {
			return nil, fmt.Errorf("returned_at: %w", err)
		}
		l.ReturnedAt = &t
	}
	return &l, nil
}
