package ports

import (
	"context"

	"github.com/easyleave/leave-api/internal/core/domain"
)

// IdentityRepository defines persistence for employee and manager accounts.
// The account type selects which table the operation targets.
type IdentityRepository interface {
	// FindByCredentials performs the point lookup used by login: exactly one
	// row where email and password both match. Zero matches surface as
	// domain.ErrInvalidCredentials without distinguishing cause.
	FindByCredentials(ctx context.Context, accountType domain.AccountType, email, password string) (*domain.Identity, error)

	// Insert stores a new identity and returns the stored row. Uniqueness of
	// employee_id and email is enforced by the store; violations surface as
	// domain.ErrIdentityExists.
	Insert(ctx context.Context, accountType domain.AccountType, identity *domain.Identity) (*domain.Identity, error)

	// FindByIDs returns the identities whose store-assigned IDs are in ids.
	// Used to join requester profiles onto manager dashboard lists.
	FindByIDs(ctx context.Context, accountType domain.AccountType, ids []string) ([]*domain.Identity, error)
}
