package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/easyleave/leave-api/internal/core/domain"
	"github.com/easyleave/leave-api/internal/core/ports"
)

const dateLayout = "2006-01-02"

// AuthService implements login and registration over the identity tables.
type AuthService struct {
	identities ports.IdentityRepository
	logger     zerolog.Logger
}

func NewAuthService(identities ports.IdentityRepository, logger zerolog.Logger) *AuthService {
	return &AuthService{identities: identities, logger: logger}
}

// Authenticate performs the credential point lookup against the table
// selected by accountType. Zero matches and lookup failures both collapse
// into domain.ErrInvalidCredentials so the response never distinguishes an
// unknown email from a wrong password.
func (s *AuthService) Authenticate(ctx context.Context, accountType domain.AccountType, email, password string) (*domain.Identity, error) {
	if !accountType.Valid() {
		return nil, domain.ErrInvalidAccountType
	}
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	identity, err := s.identities.FindByCredentials(ctx, accountType, email, password)
	if err != nil {
		if err != domain.ErrInvalidCredentials {
			s.logger.Error().Err(err).Str("account_type", string(accountType)).Msg("credential lookup failed")
		}
		return nil, domain.ErrInvalidCredentials
	}

	s.logger.Info().Str("account_type", string(accountType)).Str("identity_id", identity.ID).Msg("login succeeded")
	return identity, nil
}

// Register validates the 7-digit identifier locally, without touching the
// store, then inserts a new identity into the selected table.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.Identity, error) {
	if !input.AccountType.Valid() {
		return nil, domain.ErrInvalidAccountType
	}

	employeeID := digitsOnly(input.EmployeeID)
	if len(employeeID) != 7 {
		return nil, domain.ErrInvalidEmployeeID
	}

	joined, err := time.Parse(dateLayout, input.DateOfJoining)
	if err != nil {
		return nil, fmt.Errorf("parse date_of_joining: %w", err)
	}
	born, err := time.Parse(dateLayout, input.DateOfBirth)
	if err != nil {
		return nil, fmt.Errorf("parse date_of_birth: %w", err)
	}

	identity := &domain.Identity{
		EmployeeID:    employeeID,
		Name:          input.Name,
		Role:          input.Role,
		Email:         input.Email,
		Password:      input.Password,
		PhotoURL:      input.PhotoURL,
		DateOfJoining: joined,
		DateOfBirth:   born,
	}

	created, err := s.identities.Insert(ctx, input.AccountType, identity)
	if err != nil {
		if err != domain.ErrIdentityExists {
			s.logger.Error().Err(err).Str("account_type", string(input.AccountType)).Msg("registration insert failed")
		}
		return nil, err
	}

	s.logger.Info().Str("account_type", string(input.AccountType)).Str("identity_id", created.ID).Msg("identity registered")
	return created, nil
}

// digitsOnly strips every non-digit rune, mirroring the identifier field's
// input filtering on the registration screen.
func digitsOnly(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			out = append(out, r)
		}
	}
	return string(out)
}
