package session

import (
	"context"
	"errors"
	"time"

	"swasthya-backend/internal/domain/user"
)

var ErrNotFound = errors.New("session not found")

// Store holds resolved identities keyed by opaque token. Expired or unknown
// tokens yield ErrNotFound.
type Store interface {
	Put(ctx context.Context, token string, u user.User, ttl time.Duration) error
	Get(ctx context.Context, token string) (*user.User, error)
	Delete(ctx context.Context, token string) error
}
