package identity

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/entity"
)

// Identity is the credential-side view of a user
type Identity struct {
	UID             string
	Email           string
	Phone           string
	ContactVerified bool
	Claims          map[string]string
	CreatedAt       time.Time
}

// Role returns the role claim, or "" when none is set
func (i *Identity) Role() entity.Role {
	return entity.Role(i.Claims["role"])
}

// NewIdentity carries what registration needs to create credentials
type NewIdentity struct {
	UID      string
	Email    string
	Phone    string
	Password string
}

// Provider is the identity and claims capability: lookup by id, read or
// replace claims, create and delete credentials
type Provider interface {
	// Create stores new credentials
	//
	// Possible errors:
	// - ErrDuplicateUser: If the email is already registered
	Create(ctx context.Context, identity NewIdentity) (*Identity, error)

	// Get looks up an identity by uid
	//
	// Possible errors:
	// - ErrUserNotFound: If no identity has the uid
	Get(ctx context.Context, uid string) (*Identity, error)

	// Authenticate checks an email and password pair
	//
	// Possible errors:
	// - ErrUnauthenticated: If the pair doesn't match a live identity
	Authenticate(ctx context.Context, email, password string) (*Identity, error)

	// SetRoleClaims replaces all claims with {role: role}
	SetRoleClaims(ctx context.Context, uid string, role entity.Role) error

	// MarkContactVerified records that the contact method was confirmed
	MarkContactVerified(ctx context.Context, uid string) error

	// Delete removes the identity
	//
	// Possible errors:
	// - ErrUserNotFound: If no identity has the uid
	Delete(ctx context.Context, uid string) error
}
