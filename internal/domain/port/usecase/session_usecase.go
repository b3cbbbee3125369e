package usecase

import (
	"context"

	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/port/identity"
)

// SessionUseCase exchanges credentials for a bearer token
type SessionUseCase interface {
	Login(ctx context.Context, email, password string) (*identity.Token, error)
}
