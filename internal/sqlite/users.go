package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/carrelworks/circ/pkg/library"
)

const userColumns = `user_id, name, email, role, registered_at, phone,
    fines_owed, membership_expiry, position, hire_date, permissions, suspended`

// LoadUsers returns every user row, ordered by identifier.
func (s *Store) LoadUsers() ([]*library.User, error) {
	rows, err := s.db.Query("SELECT " + userColumns + " FROM users ORDER BY user_id")
	if err != nil {
		return nil, fmt.Errorf("querying users: %w", err)
	}
	defer rows.Close()

	var users []*library.User
	for rows.Next() {
		u, err := hydrateUser(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating users: %w", err)
	}
	return users, nil
}

// SaveUser inserts the user or replaces the existing row with the same ID.
func (s *Store) SaveUser(u *library.User) error {
	var permissions sql.NullString
	if len(u.Permissions) > 0 {
		data, err := json.Marshal(u.Permissions)
		if err != nil {
			return fmt.Errorf("marshaling permissions: %w", err)
		}
		permissions = sql.NullString{String: string(data), Valid: true}
	}

	suspended := 0
	if u.Suspended {
		suspended = 1
	}

	_, err := s.db.Exec(`INSERT INTO users (`+userColumns+`)
    VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    ON CONFLICT(user_id) DO UPDATE SET
        name = excluded.name,
        email = excluded.email,
        role = excluded.role,
        registered_at = excluded.registered_at,
        phone = excluded.phone,
        fines_owed = excluded.fines_owed,
        membership_expiry = excluded.membership_expiry,
        position = excluded.position,
        hire_date = excluded.hire_date,
        permissions = excluded.permissions,
        suspended = excluded.suspended`,
		u.UserID, u.Name, u.Email, u.Role, formatTime(u.RegisteredAt),
		nullString(u.Phone), u.FinesOwed, nullTime(u.MembershipExpiry),
		nullString(u.Position), nullTime(u.HireDate), permissions, suspended,
	)
	if err != nil {
		return fmt.Errorf("saving user %s: %w", u.UserID, err)
	}
	return nil
}

// DeleteUser removes the user row. Returns library.ErrNotFound when no row
// matches.
func (s *Store) DeleteUser(id string) error {
	res, err := s.db.Exec("DELETE FROM users WHERE user_id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting user %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting user %s: %w", id, err)
	}
	if n == 0 {
		return library.ErrNotFound
	}
	return nil
}

// hydrateUser converts the current row of a users query into a *library.User.
func hydrateUser(rows *sql.Rows) (*library.User, error) {
	var u library.User
	var registeredAt string
	var phone, membershipExpiry, position, hireDate, permissions sql.NullString
	var suspended int

	if err := rows.Scan(
		&u.UserID, &u.Name, &u.Email, &u.Role, &registeredAt, &phone,
		&u.FinesOwed, &membershipExpiry, &position, &hireDate, &permissions,
		&suspended,
	); err != nil {
		return nil, err
	}

	var err error
	u.RegisteredAt, err = parseTime(registeredAt)
	if err != nil {
		return nil, fmt.Errorf("registered_at: %w", err)
	}
	if membershipExpiry.Valid {
		u.MembershipExpiry, err = parseTime(membershipExpiry.String)
		if err != nil {
			return nil, fmt.Errorf("membership_expiry: %w", err)
		}
	}
	if hireDate.Valid {
		u.HireDate, err = parseTime(hireDate.String)
		if err != nil {
			return nil, fmt.Errorf("hire_date: %w", err)
		}
	}
	u.Phone = phone.String
	u.Position = position.String
	u.Suspended = suspended != 0
	if permissions.Valid {
		if err := json.Unmarshal([]byte(permissions.String), &u.Permissions); err != nil {
			return nil, fmt.Errorf("parsing permissions: %w", err)
		}
	}
	return &u, nil
}
