package library

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// day returns testDay0 plus n days.
func day(n int) time.Time {
	return testDay0.AddDate(0, 0, n)
}

func testLoan(t *testing.T, kind string) *Loan {
	t.Helper()
	var it *Item
	var err error
	switch kind {
	case KindBook:
		it, err = NewBook("B001", "Dune", "Herbert", "978-0441172719", 412, testDay0)
	case KindMagazine:
		it, err = NewMagazine("M001", "Wired", "300", "Conde Nast", testDay0)
	case KindDVD:
		it, err = NewDVD("D001", "Alien", 117, "Horror", "Scott", "R", testDay0)
	}
	require.NoError(t, err)
	u, err := NewMember("U001", "Ada", "ada@example.org", "", testDay0)
	require.NoError(t, err)
	return newLoan("loan-1", u, it, testDay0)
}

func TestLoanDueDate(t *testing.T) {
	tests := []struct {
		kind     string
		wantDays int
	}{
		{kind: KindBook, wantDays: 21},
		{kind: KindMagazine, wantDays: 7},
		{kind: KindDVD, wantDays: 14},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			l := testLoan(t, tt.kind)
			assert.Equal(t, day(tt.wantDays), l.DueAt)
			assert.Equal(t, tt.wantDays, l.PeriodDays)
		})
	}
}

func TestLoanStatusDerivation(t *testing.T) {
	l := testLoan(t, KindBook) // due day 21

	assert.Equal(t, StatusActive, l.Status(day(0)))
	assert.Equal(t, StatusActive, l.Status(day(21)), "due date itself is not overdue")
	assert.Equal(t, StatusOverdue, l.Status(day(22)))
	assert.True(t, l.Open())

	_, err := l.Return(day(22), DefaultDailyFineRate)
	require.NoError(t, err)
	assert.Equal(t, StatusReturned, l.Status(day(22)))
	assert.Equal(t, StatusReturned, l.Status(day(100)), "returned is terminal")
	assert.False(t, l.Open())
}

func TestLoanFine(t *testing.T) {
	l := testLoan(t, KindBook) // due day 21

	assert.Zero(t, l.Fine(day(0), DefaultDailyFineRate))
	assert.Zero(t, l.Fine(day(21), DefaultDailyFineRate), "no fine on the due date")

	// Non-decreasing in elapsed days.
	prev := 0.0
	for d := 22; d <= 30; d++ {
		fine := l.Fine(day(d), DefaultDailyFineRate)
		assert.GreaterOrEqual(t, fine, prev, "fine must not decrease")
		prev = fine
	}
	assert.InDelta(t, 4*0.50, l.Fine(day(25), DefaultDailyFineRate), 1e-9)
}

func TestLoanFineFrozenAfterReturn(t *testing.T) {
	l := testLoan(t, KindBook)
	fine, err := l.Return(day(25), DefaultDailyFineRate)
	require.NoError(t, err)
	assert.InDelta(t, 2.00, fine, 1e-9)

	// Once returned, the fine is evaluated against the return date.
	assert.InDelta(t, 2.00, l.Fine(day(100), DefaultDailyFineRate), 1e-9)
}

func TestLoanRenew(t *testing.T) {
	l := testLoan(t, KindBook) // due day 21, max 2 renewals

	require.NoError(t, l.Renew(day(1)))
	assert.Equal(t, day(42), l.DueAt)
	assert.Equal(t, 1, l.RenewalCount)

	require.NoError(t, l.Renew(day(2)))
	assert.Equal(t, day(63), l.DueAt)
	assert.Equal(t, 2, l.RenewalCount)

	// Renewal limit holds regardless of date.
	assert.ErrorIs(t, l.Renew(day(3)), ErrRenewalLimit)
	assert.ErrorIs(t, l.Renew(day(500)), ErrRenewalLimit)
	assert.Equal(t, day(63), l.DueAt, "failed renewals leave the due date alone")
}

func TestLoanRenewOverdueDenied(t *testing.T) {
	l := testLoan(t, KindMagazine) // due day 7
	assert.ErrorIs(t, l.Renew(day(8)), ErrOverdueRenewal)
	assert.Zero(t, l.RenewalCount)
}

func TestLoanRenewAfterReturnDenied(t *testing.T) {
	l := testLoan(t, KindBook)
	_, err := l.Return(day(1), DefaultDailyFineRate)
	require.NoError(t, err)
	assert.ErrorIs(t, l.Renew(day(2)), ErrAlreadyReturned)
}

func TestLoanReturnTwice(t *testing.T) {
	l := testLoan(t, KindBook)
	fine, err := l.Return(day(0), DefaultDailyFineRate)
	require.NoError(t, err)
	assert.Zero(t, fine, "same-day return owes nothing")

	_, err = l.Return(day(1), DefaultDailyFineRate)
	assert.ErrorIs(t, err, ErrAlreadyReturned)
}
