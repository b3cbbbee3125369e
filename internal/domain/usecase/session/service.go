// Package session exchanges identity credentials for bearer tokens
package session

import (
	"context"
	"strings"

	errs "github.com/amirhossein-jamali/bunk-loyalty/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bunk-loyalty/internal/domain/port/core"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/port/identity"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/port/persistence"
)

// Service implements usecase.SessionUseCase
type Service struct {
	uow        persistence.UnitOfWork
	identities identity.Provider
	issuer     identity.TokenIssuer
	logger     coreport.Logger
}

// NewService creates a new session Service
func NewService(
	uow persistence.UnitOfWork,
	identities identity.Provider,
	issuer identity.TokenIssuer,
	logger coreport.Logger,
) *Service {
	return &Service{
		uow:        uow,
		identities: identities,
		issuer:     issuer,
		logger:     logger,
	}
}

// Login checks the credentials and issues a token carrying the role stored on
// the user record
func (s *Service) Login(ctx context.Context, email, password string) (*identity.Token, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, errs.Invalidf("email and password are required")
	}

	id, err := s.identities.Authenticate(ctx, email, password)
	if err != nil {
		if errs.KindOf(err) == errs.KindInternal {
			s.logger.Error("Authentication backend failed", map[string]any{"error": err.Error()})
			return nil, errs.ErrInternalServer
		}
		s.logger.Info("Login rejected", map[string]any{"email": email})
		return nil, errs.ErrUnauthenticated
	}

	user, err := s.uow.GetUserRepository(ctx).GetByID(ctx, id.UID)
	if err != nil || user.Deleted {
		s.logger.Warn("Identity without a live user record", map[string]any{"uid": id.UID})
		return nil, errs.ErrUnauthenticated
	}

	token, err := s.issuer.Issue(user.ID, user.Role)
	if err != nil {
		s.logger.Error("Failed to issue token", map[string]any{"uid": user.ID, "error": err.Error()})
		return nil, errs.ErrInternalServer
	}

	s.logger.Info("User logged in", map[string]any{"uid": user.ID, "role": string(user.Role)})
	return token, nil
}
