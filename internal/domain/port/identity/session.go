package identity

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/entity"
)

// Token is an issued bearer token
type Token struct {
	Value     string
	ExpiresAt time.Time
}

// Claims is what a validated token says about its bearer
type Claims struct {
	UID      string
	Role     entity.Role
	IssuedAt time.Time
}

// TokenIssuer issues and validates bearer tokens
type TokenIssuer interface {
	Issue(uid string, role entity.Role) (*Token, error)
	Validate(token string) (*Claims, error)
}

// SessionRevoker invalidates every token issued to a user before a point in time
type SessionRevoker interface {
	RevokeAll(ctx context.Context, uid string) error
	IsRevoked(ctx context.Context, uid string, issuedAt time.Time) (bool, error)
}
