package ports

import (
	"context"

	"github.com/easyleave/leave-api/internal/core/domain"
)

// RegisterInput carries all profile fields collected by the registration
// screen. Dates arrive as wire-format strings ("2006-01-02") and are parsed
// by the service.
type RegisterInput struct {
	AccountType   domain.AccountType
	Name          string
	PhotoURL      string
	EmployeeID    string
	Role          string
	DateOfJoining string
	DateOfBirth   string
	Email         string
	Password      string
}

// AuthService implements login and registration against the identity tables.
type AuthService interface {
	// Authenticate looks up exactly one identity matching the credentials in
	// the table selected by accountType.
	Authenticate(ctx context.Context, accountType domain.AccountType, email, password string) (*domain.Identity, error)

	// Register validates the 7-digit identifier locally and inserts a new
	// identity into the selected table.
	Register(ctx context.Context, input RegisterInput) (*domain.Identity, error)
}
