// Package sqlite implements the SQLite persistence backend for the
// circulation engine. It stores the full catalog, user registry, and loan
// ledger in a single database file and satisfies the library.Store contract.
package sqlite

// Schema DDL for all tables. Variant columns are nullable; the kind or role
// column says which apply to a row.
const (
	createUsers = `CREATE TABLE IF NOT EXISTS users (
    user_id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    role TEXT NOT NULL,
    registered_at TEXT NOT NULL,
    phone TEXT,
    fines_owed REAL NOT NULL DEFAULT 0,
    membership_expiry TEXT,
    position TEXT,
    hire_date TEXT,
    permissions TEXT,
    suspended INTEGER NOT NULL DEFAULT 0
);`

	createItems = `CREATE TABLE IF NOT EXISTS items (
    item_id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    kind TEXT NOT NULL,
    available INTEGER NOT NULL,
    added_at TEXT NOT NULL,
    author TEXT,
    isbn TEXT,
    pages INTEGER,
    issue_number TEXT,
    publisher TEXT,
    duration_minutes INTEGER,
    genre TEXT,
    director TEXT,
    rating TEXT
);`

	createLoans = `CREATE TABLE IF NOT EXISTS loans (
    loan_id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    item_id TEXT NOT NULL,
    checked_out_at TEXT NOT NULL,
    due_at TEXT NOT NULL,
    returned_at TEXT,
    renewal_count INTEGER NOT NULL DEFAULT 0,
    period_days INTEGER NOT NULL,
    max_renewals INTEGER NOT NULL,
    FOREIGN KEY (user_id) REFERENCES users(user_id),
    FOREIGN KEY (item_id) REFERENCES items(item_id)
);`
)

// Index DDL for common queries.
const (
	idxItemsKind  = `CREATE INDEX IF NOT EXISTS idx_items_kind ON items(kind);`
	idxLoansUser  = `CREATE INDEX IF NOT EXISTS idx_loans_user ON loans(user_id);`
	idxLoansItem  = `CREATE INDEX IF NOT EXISTS idx_loans_item ON loans(item_id);`
	idxLoansDueAt = `CREATE INDEX IF NOT EXISTS idx_loans_due_at ON loans(due_at);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createUsers,
	createItems,
	createLoans,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxItemsKind,
	idxLoansUser,
	idxLoansItem,
	idxLoansDueAt,
}
