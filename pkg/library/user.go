package library

import (
	"strings"
	"time"
)

// User roles.
const (
	RoleMember = "member"
	RoleStaff  = "staff"
)

// Staff positions.
const (
	PositionLibrarian = "librarian"
	PositionManager   = "manager"
)

// Borrowing limits by role and position.
const (
	memberBorrowingLimit    = 5
	librarianBorrowingLimit = 15
	managerBorrowingLimit   = 20
)

// DefaultFineThreshold is the fines balance above which a member may not
// check out further items.
const DefaultFineThreshold = 10.00

// membershipTerm is the initial membership validity granted on registration.
const membershipTerm = 365 * 24 * time.Hour

// positionPermissions maps a staff position to its default permission set.
var positionPermissions = map[string][]string{
	PositionManager: {
		"view_catalog", "help_members", "add_items", "remove_items",
		"manage_users", "view_reports", "system_admin", "manage_fines",
	},
	PositionLibrarian: {
		"view_catalog", "help_members", "add_items", "remove_items",
		"check_out_items", "check_in_items", "view_member_history", "manage_fines",
	},
}

// User is a registered person who may borrow items. Role selects the variant:
// members carry a fines balance and a membership expiry, staff carry a
// position with permissions and may be suspended.
type User struct {
	UserID       string    `json:"user_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	RegisteredAt time.Time `json:"registered_at"`

	// Member fields.
	Phone            string    `json:"phone,omitempty"`
	FinesOwed        float64   `json:"fines_owed"`
	MembershipExpiry time.Time `json:"membership_expiry,omitempty"`

	// Staff fields.
	Position    string    `json:"position,omitempty"`
	HireDate    time.Time `json:"hire_date,omitempty"`
	Permissions []string  `json:"permissions,omitempty"`
	Suspended   bool      `json:"suspended,omitempty"`
}

// NewMember creates a member with a one-year membership starting at now.
func NewMember(userID, name, email, phone string, now time.Time) (*User, error) {
	u, err := newUser(userID, name, email, RoleMember, now)
	if err != nil {
		return nil, err
	}
	u.Phone = strings.TrimSpace(phone)
	u.MembershipExpiry = now.Add(membershipTerm)
	return u, nil
}

// NewStaff creates a staff user with the default permissions for the position.
func NewStaff(userID, name, email, position string, now time.Time) (*User, error) {
	u, err := newUser(userID, name, email, RoleStaff, now)
	if err != nil {
		return nil, err
	}
	perms, ok := positionPermissions[position]
	if !ok {
		return nil, ErrInvalidPosition
	}
	u.Position = position
	u.HireDate = now
	u.Permissions = append([]string(nil), perms...)
	return u, nil
}

func newUser(userID, name, email, role string, now time.Time) (*User, error) {
	userID = strings.TrimSpace(userID)
	name = strings.TrimSpace(name)
	if userID == "" {
		return nil, ErrInvalidID
	}
	if name == "" {
		return nil, ErrInvalidName
	}
	if !validEmail(email) {
		return nil, ErrInvalidEmail
	}
	return &User{
		UserID:       userID,
		Name:         name,
		Email:        email,
		Role:         role,
		RegisteredAt: now,
	}, nil
}

// validEmail checks the minimal shape of an address: an "@" followed by a
// domain containing a dot.
func validEmail(email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 {
		return false
	}
	return strings.Contains(email[at+1:], ".")
}

// Validate checks that the user is well-formed. Used when hydrating users
// from storage.
func (u *User) Validate() error {
	if strings.TrimSpace(u.UserID) == "" {
		return ErrInvalidID
	}
	if strings.TrimSpace(u.Name) == "" {
		return ErrInvalidName
	}
	switch u.Role {
	case RoleMember:
		if u.FinesOwed < 0 {
			return ErrInvalidAmount
		}
	case RoleStaff:
		if _, ok := positionPermissions[u.Position]; !ok {
			return ErrInvalidPosition
		}
	default:
		return ErrInvalidRole
	}
	return nil
}

// BorrowingLimit returns the maximum simultaneous open loans permitted:
// members 5, librarians 15, managers 20.
func (u *User) BorrowingLimit() int {
	if u.Role == RoleStaff {
		if u.Position == PositionManager {
			return managerBorrowingLimit
		}
		return librarianBorrowingLimit
	}
	return memberBorrowingLimit
}

// BorrowCheck reports whether the user may take out another loan given their
// current open-loan count and the configured fine threshold. It returns the
// specific rule that blocks the checkout, or nil when the user is eligible.
func (u *User) BorrowCheck(activeLoans int, fineThreshold float64, now time.Time) error {
	if activeLoans >= u.BorrowingLimit() {
		return ErrBorrowingLimit
	}
	switch u.Role {
	case RoleStaff:
		if u.Suspended {
			return ErrUserSuspended
		}
	case RoleMember:
		if u.FinesOwed > fineThreshold {
			return ErrFinesOutstanding
		}
		if !u.MembershipActive(now) {
			return ErrMembershipExpired
		}
	}
	return nil
}

// CanBorrow reports whether the user may take out another loan.
func (u *User) CanBorrow(activeLoans int, fineThreshold float64, now time.Time) bool {
	return u.BorrowCheck(activeLoans, fineThreshold, now) == nil
}

// AddFine adds a positive amount to the member's fines balance. Staff do not
// accrue fines; the call is a no-op for them.
func (u *User) AddFine(amount float64) {
	if u.Role != RoleMember || amount <= 0 {
		return
	}
	u.FinesOwed += amount
}

// PayFine reduces the member's fines balance. The amount must be positive and
// no larger than the balance owed.
func (u *User) PayFine(amount float64) error {
	if u.Role != RoleMember {
		return ErrInvalidRole
	}
	if amount <= 0 || amount > u.FinesOwed {
		return ErrInvalidAmount
	}
	u.FinesOwed -= amount
	return nil
}

// MembershipActive reports whether a member's membership is current at the
// given time. Staff memberships never expire.
func (u *User) MembershipActive(now time.Time) bool {
	if u.Role != RoleMember {
		return true
	}
	return !now.After(u.MembershipExpiry)
}

// RenewMembership extends a member's membership by the given number of
// 30-day months, from the current expiry when still active or from now when
// lapsed.
func (u *User) RenewMembership(now time.Time, months int) error {
	if u.Role != RoleMember {
		return ErrInvalidRole
	}
	if months <= 0 {
		return ErrInvalidAmount
	}
	extension := time.Duration(months) * 30 * 24 * time.Hour
	if u.MembershipActive(now) {
		u.MembershipExpiry = u.MembershipExpiry.Add(extension)
	} else {
		u.MembershipExpiry = now.Add(extension)
	}
	return nil
}

// HasPermission reports whether a staff user holds the named permission.
// Members hold no permissions.
func (u *User) HasPermission(permission string) bool {
	for _, p := range u.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}
