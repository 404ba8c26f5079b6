// Package session holds the process-local record of the currently
// authenticated identity, replacing ad hoc parsing of serialized blobs at
// each dashboard mount with a single typed accessor.
package session

import (
	"context"

	"github.com/easyleave/leave-api/internal/core/domain"
)

// Session is the authenticated identity plus the account-type tag that
// selected its table at login.
type Session struct {
	Identity    domain.Identity    `json:"identity"`
	AccountType domain.AccountType `json:"account_type"`
}

// Store persists the session under two fixed keys: the serialized identity
// and the account-type tag. Both must be present and parse for Current to
// succeed, and both are cleared together on logout. The session is read at
// mount time only; it is never re-validated against the backing store.
type Store interface {
	// Current returns the stored session, or domain.ErrNotAuthenticated when
	// either key is absent or fails to parse.
	Current(ctx context.Context) (*Session, error)

	// Save writes both keys. Called on login and registration success.
	Save(ctx context.Context, s *Session) error

	// Clear removes both keys together.
	Clear(ctx context.Context) error
}
