package cli

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carrelworks/circ/pkg/library"
)

var renderDay0 = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func TestMoney(t *testing.T) {
	assert.Equal(t, "$0.00", Money(0))
	assert.Equal(t, "$2.50", Money(2.5))
	assert.Equal(t, "$10.00", Money(10))
}

func TestDate(t *testing.T) {
	assert.Equal(t, "2024-03-01", Date(renderDay0))
}

func TestItemLine(t *testing.T) {
	book, err := library.NewBook("item-1", "Dune", "Frank Herbert", "9780441172719", 412, renderDay0)
	require.NoError(t, err)

	line := ItemLine(book)
	assert.Contains(t, line, "item-1")
	assert.Contains(t, line, "Dune")
	assert.Contains(t, line, "Available")
}

func TestUserLine(t *testing.T) {
	member, err := library.NewMember("user-1", "Alice Reader", "alice@example.com", "", renderDay0)
	require.NoError(t, err)
	member.FinesOwed = 2.50

	line := UserLine(member)
	assert.Contains(t, line, "Alice Reader")
	assert.Contains(t, line, "$2.50")
	assert.Contains(t, line, "2025-03-01")

	staff, err := library.NewStaff("user-2", "Bob Keeper", "bob@example.com", library.PositionManager, renderDay0)
	require.NoError(t, err)
	staff.Suspended = true

	line = UserLine(staff)
	assert.Contains(t, line, "manager")
	assert.Contains(t, line, "suspended")
}

func TestLoanLine(t *testing.T) {
	sys, err := library.NewSystem(library.DefaultConfig(), nil)
	require.NoError(t, err)

	member, err := library.NewMember("user-1", "Alice Reader", "alice@example.com", "", renderDay0)
	require.NoError(t, err)
	book, err := library.NewBook("item-1", "Dune", "Frank Herbert", "9780441172719", 412, renderDay0)
	require.NoError(t, err)
	require.NoError(t, sys.RegisterUser(member))
	require.NoError(t, sys.AddItem(book))

	loan, err := sys.CheckOut("user-1", "item-1", renderDay0)
	require.NoError(t, err)

	line := LoanLine(loan, renderDay0)
	assert.Contains(t, line, "due=2024-03-22")
	assert.Contains(t, line, "[active]")

	line = LoanLine(loan, renderDay0.AddDate(0, 0, 25))
	assert.Contains(t, line, "overdue 4 days")
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, map[string]int{"total": 3}))

	var decoded map[string]int
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 3, decoded["total"])
}
