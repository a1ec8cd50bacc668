// End-to-end tests driving the circ binary through full circulation
// lifecycles: catalog and user management, checkout, renewal, overdue
// returns, fines, and persistence across invocations.
package integration

import (
	"strings"
	"testing"

	"github.com/carrelworks/circ/pkg/library"
)

// checkinResult mirrors the checkin command's JSON output.
type checkinResult struct {
	LoanID string  `json:"loan_id"`
	Fine   float64 `json:"fine"`
}

func TestInitAndVersion(t *testing.T) {
	env := NewTestEnv(t)

	result := env.MustRunCirc("init")
	if !strings.Contains(result.Stdout, "initialized successfully") {
		t.Errorf("init output = %q, want initialization message", result.Stdout)
	}

	result = env.MustRunCirc("version")
	if !strings.Contains(result.Stdout, "circ") {
		t.Errorf("version output = %q, want version string", result.Stdout)
	}
}

func TestCatalogManagement(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunCirc("init")

	result := env.MustRunCirc("item", "add", "book", "Dune",
		"--id", "item-1", "--author", "Frank Herbert", "--isbn", "9780441172719", "--pages", "412", "--json")
	book := ParseJSON[library.Item](t, result.Stdout)
	if book.Kind != library.KindBook || book.Author != "Frank Herbert" || !book.Available {
		t.Errorf("unexpected book: %+v", book)
	}

	env.MustRunCirc("item", "add", "magazine", "National Geographic",
		"--id", "item-2", "--issue", "2024-03", "--publisher", "NatGeo Society")
	env.MustRunCirc("item", "add", "dvd", "Blade Runner",
		"--id", "item-3", "--duration", "117", "--genre", "Sci-Fi", "--director", "Ridley Scott", "--rating", "R")

	// Duplicate IDs are rejected with a user error.
	result = env.RunCirc("item", "add", "book", "Dune Again", "--id", "item-1")
	if result.ExitCode != 1 {
		t.Errorf("duplicate item add exit = %d, want 1", result.ExitCode)
	}

	// Invalid variant fields are rejected.
	result = env.RunCirc("item", "add", "dvd", "Broken", "--id", "item-4", "--duration", "0")
	if result.ExitCode == 0 {
		t.Error("dvd with zero duration should fail")
	}

	result = env.MustRunCirc("item", "list", "--json")
	items := ParseJSON[[]library.Item](t, result.Stdout)
	if len(items) != 3 {
		t.Fatalf("item count = %d, want 3", len(items))
	}

	result = env.MustRunCirc("item", "list", "--kind", "dvd", "--json")
	dvds := ParseJSON[[]library.Item](t, result.Stdout)
	if len(dvds) != 1 || dvds[0].ItemID != "item-3" {
		t.Errorf("dvd filter returned %+v", dvds)
	}

	result = env.MustRunCirc("search", "geographic", "--json")
	found := ParseJSON[[]library.Item](t, result.Stdout)
	if len(found) != 1 || found[0].ItemID != "item-2" {
		t.Errorf("search returned %+v", found)
	}

	result = env.MustRunCirc("item", "get", "item-3")
	if !strings.Contains(result.Stdout, "1h 57m") {
		t.Errorf("dvd get output = %q, want formatted duration", result.Stdout)
	}

	env.MustRunCirc("item", "remove", "item-2")
	result = env.RunCirc("item", "get", "item-2")
	if result.ExitCode != 1 {
		t.Errorf("get after remove exit = %d, want 1", result.ExitCode)
	}
}

func TestUserManagement(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunCirc("init")

	result := env.MustRunCirc("user", "register", "member", "Alice Reader",
		"--id", "user-1", "--email", "alice@example.com", "--phone", "555-0100",
		"--date", "2024-03-01", "--json")
	member := ParseJSON[library.User](t, result.Stdout)
	if member.Role != library.RoleMember {
		t.Errorf("member role = %q", member.Role)
	}
	if got := member.MembershipExpiry.Format("2006-01-02"); got != "2025-03-01" {
		t.Errorf("membership expiry = %s, want 2025-03-01", got)
	}

	result = env.MustRunCirc("user", "register", "staff", "Bob Keeper",
		"--id", "user-2", "--email", "bob@example.com", "--position", "manager", "--json")
	staff := ParseJSON[library.User](t, result.Stdout)
	if staff.Position != library.PositionManager || len(staff.Permissions) == 0 {
		t.Errorf("unexpected staff: %+v", staff)
	}

	// Bad email is a validation error.
	result = env.RunCirc("user", "register", "member", "No Email", "--id", "user-3", "--email", "not-an-email")
	if result.ExitCode == 0 {
		t.Error("invalid email should fail")
	}

	result = env.MustRunCirc("user", "list", "--role", "staff", "--json")
	staffList := ParseJSON[[]library.User](t, result.Stdout)
	if len(staffList) != 1 || staffList[0].UserID != "user-2" {
		t.Errorf("staff filter returned %+v", staffList)
	}

	env.MustRunCirc("user", "remove", "user-2")
	result = env.RunCirc("user", "get", "user-2")
	if result.ExitCode != 1 {
		t.Errorf("get after remove exit = %d, want 1", result.ExitCode)
	}
}

func TestCirculationLifecycle(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunCirc("init")

	env.MustRunCirc("user", "register", "member", "Alice Reader",
		"--id", "user-1", "--email", "alice@example.com", "--date", "2024-03-01")
	env.MustRunCirc("item", "add", "book", "Dune",
		"--id", "item-1", "--author", "Frank Herbert", "--date", "2024-03-01")

	result := env.MustRunCirc("checkout", "user-1", "item-1", "--date", "2024-03-01", "--json")
	loan := ParseJSON[library.Loan](t, result.Stdout)
	if got := loan.DueAt.Format("2006-01-02"); got != "2024-03-22" {
		t.Errorf("due date = %s, want 2024-03-22", got)
	}

	// The item is now unavailable; a second checkout fails.
	result = env.RunCirc("checkout", "user-1", "item-1", "--date", "2024-03-02")
	if result.ExitCode != 1 {
		t.Errorf("checkout of unavailable item exit = %d, want 1", result.ExitCode)
	}

	result = env.MustRunCirc("loans", "user-1", "--date", "2024-03-05", "--json")
	open := ParseJSON[[]library.Loan](t, result.Stdout)
	if len(open) != 1 || open[0].LoanID != loan.LoanID {
		t.Fatalf("open loans = %+v", open)
	}

	// Renewal extends the due date by the book's loan period.
	result = env.MustRunCirc("renew", loan.LoanID, "--date", "2024-03-10", "--json")
	renewed := ParseJSON[library.Loan](t, result.Stdout)
	if got := renewed.DueAt.Format("2006-01-02"); got != "2024-04-12" {
		t.Errorf("renewed due date = %s, want 2024-04-12", got)
	}
	if renewed.RenewalCount != 1 {
		t.Errorf("renewal count = %d, want 1", renewed.RenewalCount)
	}

	// On-time return carries no fine and restores availability.
	result = env.MustRunCirc("checkin", loan.LoanID, "--date", "2024-04-01", "--json")
	returned := ParseJSON[checkinResult](t, result.Stdout)
	if returned.Fine != 0 {
		t.Errorf("fine = %v, want 0", returned.Fine)
	}

	result = env.MustRunCirc("item", "get", "item-1", "--json")
	item := ParseJSON[library.Item](t, result.Stdout)
	if !item.Available {
		t.Error("item should be available after checkin")
	}

	// Closed loans cannot be checked in or renewed again.
	if result := env.RunCirc("checkin", loan.LoanID, "--date", "2024-04-02"); result.ExitCode != 1 {
		t.Errorf("double checkin exit = %d, want 1", result.ExitCode)
	}
	if result := env.RunCirc("renew", loan.LoanID, "--date", "2024-04-02"); result.ExitCode != 1 {
		t.Errorf("renew after return exit = %d, want 1", result.ExitCode)
	}
}

func TestOverdueReturnAccruesFine(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunCirc("init")

	env.MustRunCirc("user", "register", "member", "Alice Reader",
		"--id", "user-1", "--email", "alice@example.com", "--date", "2024-03-01")
	env.MustRunCirc("item", "add", "book", "Dune",
		"--id", "item-1", "--date", "2024-03-01")

	result := env.MustRunCirc("checkout", "user-1", "item-1", "--date", "2024-03-01", "--json")
	loan := ParseJSON[library.Loan](t, result.Stdout)

	// Due 2024-03-22; overdue report four days later shows the loan.
	result = env.MustRunCirc("overdue", "--date", "2024-03-26", "--json")
	overdue := ParseJSON[[]library.Loan](t, result.Stdout)
	if len(overdue) != 1 || overdue[0].LoanID != loan.LoanID {
		t.Fatalf("overdue loans = %+v", overdue)
	}

	// Overdue loans cannot be renewed.
	if result := env.RunCirc("renew", loan.LoanID, "--date", "2024-03-26"); result.ExitCode != 1 {
		t.Errorf("overdue renew exit = %d, want 1", result.ExitCode)
	}

	// Return 4 days late: fine 4 * 0.50 = 2.00, added to the member balance.
	result = env.MustRunCirc("checkin", loan.LoanID, "--date", "2024-03-26", "--json")
	returned := ParseJSON[checkinResult](t, result.Stdout)
	if returned.Fine != 2.00 {
		t.Errorf("fine = %v, want 2.00", returned.Fine)
	}

	result = env.MustRunCirc("user", "get", "user-1", "--json")
	member := ParseJSON[library.User](t, result.Stdout)
	if member.FinesOwed != 2.00 {
		t.Errorf("fines owed = %v, want 2.00", member.FinesOwed)
	}

	// Paying more than owed is rejected; paying the balance clears it.
	if result := env.RunCirc("fine", "pay", "user-1", "5.00"); result.ExitCode != 1 {
		t.Errorf("overpay exit = %d, want 1", result.ExitCode)
	}
	env.MustRunCirc("fine", "pay", "user-1", "2.00")

	result = env.MustRunCirc("user", "get", "user-1", "--json")
	member = ParseJSON[library.User](t, result.Stdout)
	if member.FinesOwed != 0 {
		t.Errorf("fines owed after payment = %v, want 0", member.FinesOwed)
	}
}

func TestRemovalBlockedByOpenLoan(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunCirc("init")

	env.MustRunCirc("user", "register", "member", "Alice Reader",
		"--id", "user-1", "--email", "alice@example.com", "--date", "2024-03-01")
	env.MustRunCirc("item", "add", "book", "Dune",
		"--id", "item-1", "--date", "2024-03-01")

	result := env.MustRunCirc("checkout", "user-1", "item-1", "--date", "2024-03-01", "--json")
	loan := ParseJSON[library.Loan](t, result.Stdout)

	if result := env.RunCirc("item", "remove", "item-1"); result.ExitCode != 1 {
		t.Errorf("remove loaned item exit = %d, want 1", result.ExitCode)
	}
	if result := env.RunCirc("user", "remove", "user-1"); result.ExitCode != 1 {
		t.Errorf("remove borrowing user exit = %d, want 1", result.ExitCode)
	}

	env.MustRunCirc("checkin", loan.LoanID, "--date", "2024-03-10")
	env.MustRunCirc("item", "remove", "item-1")
	env.MustRunCirc("user", "remove", "user-1")
}

func TestStatsAcrossInvocations(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunCirc("init")

	env.MustRunCirc("user", "register", "member", "Alice Reader",
		"--id", "user-1", "--email", "alice@example.com", "--date", "2024-03-01")
	env.MustRunCirc("user", "register", "staff", "Bob Keeper",
		"--id", "user-2", "--email", "bob@example.com", "--position", "librarian", "--date", "2024-03-01")
	env.MustRunCirc("item", "add", "book", "Dune", "--id", "item-1", "--date", "2024-03-01")
	env.MustRunCirc("item", "add", "magazine", "National Geographic", "--id", "item-2", "--date", "2024-03-01")
	env.MustRunCirc("checkout", "user-1", "item-1", "--date", "2024-03-01")

	// Every command above ran in its own process; stats reads the state they
	// persisted.
	result := env.MustRunCirc("stats", "--date", "2024-03-26", "--json")
	stats := ParseJSON[library.Stats](t, result.Stdout)

	if stats.LibraryName != "Test Library" {
		t.Errorf("library name = %q, want Test Library", stats.LibraryName)
	}
	if stats.TotalItems != 2 || stats.AvailableItems != 1 {
		t.Errorf("items = %d/%d available, want 2/1", stats.TotalItems, stats.AvailableItems)
	}
	if stats.Members != 1 || stats.Staff != 1 {
		t.Errorf("users = %d members %d staff, want 1/1", stats.Members, stats.Staff)
	}
	if stats.ActiveLoans != 1 || stats.OverdueLoans != 1 {
		t.Errorf("loans = %d active %d overdue, want 1/1", stats.ActiveLoans, stats.OverdueLoans)
	}
	if stats.AccruingFines != 2.00 {
		t.Errorf("accruing fines = %v, want 2.00", stats.AccruingFines)
	}
}
