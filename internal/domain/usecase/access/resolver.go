// Package access resolves an actor's role from the user store and enforces
// role requirements. Every failure closes: callers never learn whether the
// actor exists when they lack the role.
package access

import (
	"context"
	"errors"
	"slices"

	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bunk-loyalty/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bunk-loyalty/internal/domain/port/core"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/port/persistence"
)

// Resolver reads roles from user records. The user record is the source of
// truth; identity claims are only a cache of it.
type Resolver struct {
	uow    persistence.UnitOfWork
	logger coreport.Logger
}

// NewResolver creates a Resolver
func NewResolver(uow persistence.UnitOfWork, logger coreport.Logger) *Resolver {
	return &Resolver{
		uow:    uow,
		logger: logger,
	}
}

// load returns the live user record for actorID
func (r *Resolver) load(ctx context.Context, actorID string) (*entity.User, error) {
	user, err := r.uow.GetUserRepository(ctx).GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if user.Deleted {
		return nil, errs.ErrUserNotFound
	}
	return user, nil
}

// ResolveRole returns the role stored on the actor's user record.
// Missing or deleted users yield ErrUserNotFound.
func (r *Resolver) ResolveRole(ctx context.Context, actorID string) (entity.Role, error) {
	if actorID == "" {
		return "", errs.ErrUnauthenticated
	}
	user, err := r.load(ctx, actorID)
	if err != nil {
		return "", err
	}
	return user.Role, nil
}

// IsAssignedManager reports whether the actor is a manager assigned to bunkID
func (r *Resolver) IsAssignedManager(ctx context.Context, actorID, bunkID string) (bool, error) {
	user, err := r.load(ctx, actorID)
	if err != nil {
		return false, err
	}
	return user.IsManagerOf(bunkID), nil
}

// Require returns the actor's user record when it holds one of roles.
// An empty actor id is ErrUnauthenticated; anything else that goes wrong,
// including lookup failures, is ErrPermissionDenied.
func (r *Resolver) Require(ctx context.Context, actorID string, roles ...entity.Role) (*entity.User, error) {
	if actorID == "" {
		return nil, errs.ErrUnauthenticated
	}

	user, err := r.load(ctx, actorID)
	if err != nil {
		if !errors.Is(err, errs.ErrUserNotFound) {
			r.logger.Error("Failed to resolve actor role", map[string]any{
				"actorId": actorID,
				"error":   err.Error(),
			})
		}
		return nil, errs.ErrPermissionDenied
	}

	if len(roles) > 0 && !slices.Contains(roles, user.Role) {
		r.logger.Warn("Actor lacks required role", map[string]any{
			"actorId":  actorID,
			"role":     string(user.Role),
			"required": roles,
		})
		return nil, errs.ErrPermissionDenied
	}

	return user, nil
}
