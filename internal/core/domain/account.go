package domain

import "time"

const (
	RoleClient   = "Client"
	RoleEmployee = "Employee"
	RoleAdmin    = "Admin"
)

// Account models a registered user of the dealership site.
type Account struct {
	ID           int       `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// FullName returns the display name used in greetings and review bylines.
func (a *Account) FullName() string {
	return a.FirstName + " " + a.LastName
}

// IsStaff reports whether the account may manage inventory.
func (a *Account) IsStaff() bool {
	return a.Role == RoleEmployee || a.Role == RoleAdmin
}

// Claims is the minimal identity embedded in a bearer token: enough to
// authenticate and role-gate a request. Profile fields are loaded fresh
// from the database when a handler needs them.
type Claims struct {
	AccountID int
	Role      string
}
