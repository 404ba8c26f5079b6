package domain

import (
	"errors"
	"time"
)

// AccountType selects which identity table an operation targets.
type AccountType string

const (
	AccountEmployee AccountType = "employee"
	AccountManager  AccountType = "manager"
)

// Valid reports whether the account type is one of the two known values.
func (a AccountType) Valid() bool {
	return a == AccountEmployee || a == AccountManager
}

// DashboardPath returns the route the account type lands on after login.
func (a AccountType) DashboardPath() string {
	if a == AccountManager {
		return "/manager-dashboard"
	}
	return "/employee-dashboard"
}

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrIdentityExists = errors.New("employee id or email already exists")
var ErrIdentityNotFound = errors.New("identity not found")
var ErrInvalidAccountType = errors.New("invalid account type")
var ErrInvalidEmployeeID = errors.New("employee id must be exactly 7 digits")
var ErrNotAuthenticated = errors.New("not authenticated")

// Identity is a stored employee or manager account record. Rows are created by
// registration and are never updated or deleted afterwards.
//
// Password is stored and compared as plain text; credential checks are a
// single equality lookup on (email, password) against the backing store.
type Identity struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	EmployeeID    string    `json:"employee_id" bson:"employee_id"`
	Name          string    `json:"name" bson:"name"`
	Role          string    `json:"role" bson:"role"`
	Email         string    `json:"email" bson:"email"`
	Password      string    `json:"-" bson:"password"`
	PhotoURL      string    `json:"photo_url,omitempty" bson:"photo_url,omitempty"`
	DateOfJoining time.Time `json:"date_of_joining" bson:"date_of_joining"`
	DateOfBirth   time.Time `json:"date_of_birth" bson:"date_of_birth"`
}
