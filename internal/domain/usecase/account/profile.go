package account

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bunk-loyalty/internal/domain/error"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/validation"
)

// UpdateUserProfile renames the actor, or another user when the actor is an admin
func (s *Service) UpdateUserProfile(ctx context.Context, req usecase.UpdateProfileRequest) error {
	actor, err := s.resolver.Require(ctx, req.ActorID)
	if err != nil {
		return err
	}

	target := req.TargetUID
	if target == "" {
		target = req.ActorID
	}
	if target != req.ActorID && actor.Role != entity.RoleAdmin {
		return errs.ErrPermissionDenied
	}
	if err := validation.RequireID("targetUid", target); err != nil {
		return err
	}

	firstName := strings.TrimSpace(req.FirstName)
	lastName := strings.TrimSpace(req.LastName)
	if !validation.IsValidFirstName(firstName) {
		return errs.Invalidf("first name must be 1-40 letters with no spaces")
	}
	if !validation.IsValidLastName(lastName) {
		return errs.Invalidf("last name must be 1-80 letters with at most two spaces")
	}

	err = s.uow.Execute(ctx, func(txCtx context.Context) error {
		users := s.uow.GetUserRepository(txCtx)
		user, err := users.GetByID(txCtx, target)
		if err != nil {
			return err
		}
		if user.Deleted {
			return errs.ErrUserNotFound
		}

		details := map[string]any{
			entity.DetailTargetUID: target,
			"previous":             map[string]any{"firstName": user.FirstName, "lastName": user.LastName},
			"firstName":            firstName,
			"lastName":             lastName,
		}
		user.Rename(firstName, lastName, s.timeProvider)
		if err := users.Update(txCtx, user); err != nil {
			return err
		}
		return s.audit(txCtx, entity.TypeUpdateUserProfile, actor.ID, actor.Role, details)
	})
	if err != nil {
		return s.internal("update_user_profile", req.ActorID, err)
	}
	return nil
}

// GetProfile returns the actor's own user record
func (s *Service) GetProfile(ctx context.Context, actorID string) (*entity.User, error) {
	return s.resolver.Require(ctx, actorID)
}

// GetAssignedBunk returns the bunk the manager is assigned to
func (s *Service) GetAssignedBunk(ctx context.Context, actorID string) (*entity.Bunk, error) {
	manager, err := s.resolver.Require(ctx, actorID, entity.RoleManager)
	if err != nil {
		return nil, err
	}
	bunkID := manager.AssignedBunk()
	if bunkID == "" {
		return nil, errs.WithMessage(errs.ErrBunkNotFound, "manager has no assigned bunk")
	}
	bunk, err := s.uow.GetBunkRepository(ctx).GetByID(ctx, bunkID)
	if err != nil {
		return nil, s.internal("get_assigned_bunk", actorID, err)
	}
	return bunk, nil
}
