package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/easyleave/leave-api/internal/core/domain"
	"github.com/easyleave/leave-api/internal/session"
)

// Fixed keys mirroring the browser-storage entries the session replaces:
// one for the serialized identity, one for the account-type tag.
const (
	keyUser        = "session:user"
	keyAccountType = "session:account_type"
)

// SessionStore implements session.Store on Redis under two fixed keys. No TTL
// is applied: like the original local storage, the session survives process
// restarts until an explicit logout.
type SessionStore struct {
	client *redis.Client
}

func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// Current loads both keys. The session is considered absent unless both keys
// exist and the identity blob parses.
func (s *SessionStore) Current(ctx context.Context) (*session.Session, error) {
	values, err := s.client.MGet(ctx, keyUser, keyAccountType).Result()
	if err != nil {
		return nil, fmt.Errorf("session read: %w", err)
	}

	blob, ok := values[0].(string)
	if !ok {
		return nil, domain.ErrNotAuthenticated
	}
	tag, ok := values[1].(string)
	if !ok {
		return nil, domain.ErrNotAuthenticated
	}

	accountType := domain.AccountType(tag)
	if !accountType.Valid() {
		return nil, domain.ErrNotAuthenticated
	}

	var identity domain.Identity
	if err := json.Unmarshal([]byte(blob), &identity); err != nil {
		return nil, domain.ErrNotAuthenticated
	}

	return &session.Session{Identity: identity, AccountType: accountType}, nil
}

// Save serializes the identity and writes both keys.
func (s *SessionStore) Save(ctx context.Context, sess *session.Session) error {
	blob, err := json.Marshal(sess.Identity)
	if err != nil {
		return fmt.Errorf("session encode: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, keyUser, blob, 0)
	pipe.Set(ctx, keyAccountType, string(sess.AccountType), 0)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("session write: %w", err)
	}
	return nil
}

// Clear deletes both keys together.
func (s *SessionStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, keyUser, keyAccountType).Err(); err != nil {
		return fmt.Errorf("session clear: %w", err)
	}
	return nil
}
