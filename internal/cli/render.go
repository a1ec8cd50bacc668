// Package cli holds the text and JSON rendering helpers shared by the circ
// commands. Rendering is presentation only; all business outcomes arrive as
// values or sentinel errors from the library package.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/carrelworks/circ/pkg/library"
)

// dateFormat is the display format for calendar dates.
const dateFormat = "2006-01-02"

// Date renders a timestamp as a calendar date.
func Date(t time.Time) string {
	return t.Format(dateFormat)
}

// Money renders a fine amount.
func Money(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

// ItemLine renders a one-line item summary with its identifier.
func ItemLine(it *library.Item) string {
	return fmt.Sprintf("%-12s %s", it.ItemID, it.Describe())
}

// UserLine renders a one-line user summary with role-specific detail.
func UserLine(u *library.User) string {
	switch u.Role {
	case library.RoleStaff:
		status := "active"
		if u.Suspended {
			status = "suspended"
		}
		return fmt.Sprintf("%-12s %s <%s> - %s (%s)", u.UserID, u.Name, u.Email, u.Position, status)
	default:
		return fmt.Sprintf("%-12s %s <%s> - member, fines %s, membership expires %s",
			u.UserID, u.Name, u.Email, Money(u.FinesOwed), Date(u.MembershipExpiry))
	}
}

// LoanLine renders a one-line loan summary with its status at the given time.
func LoanLine(l *library.Loan, now time.Time) string {
	status := l.Status(now)
	if status == library.StatusOverdue {
		status = fmt.Sprintf("overdue %d days", l.DaysOverdue(now))
	}
	return fmt.Sprintf("%s  item=%s user=%s due=%s renewals=%d/%d [%s]",
		l.LoanID, l.ItemID, l.UserID, Date(l.DueAt), l.RenewalCount, l.MaxRenewals, status)
}

// JSON writes v as indented JSON followed by a newline.
func JSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
