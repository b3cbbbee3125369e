package admin

import (
	"context"

	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/entity"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/validation"
)

// SetUserRole replaces the target's role. The user record changes first; the
// identity claims are then replaced with {role}. A manager losing the role is
// unassigned from their bunk.
func (s *Service) SetUserRole(ctx context.Context, actorID, targetUID, newRole string) error {
	start := s.timeProvider.Now()

	err := func() error {
		if _, err := s.resolver.Require(ctx, actorID, entity.RoleAdmin); err != nil {
			return err
		}
		if err := validation.RequireID("targetUid", targetUID); err != nil {
			return err
		}
		role, err := entity.ParseRole(newRole)
		if err != nil {
			return err
		}

		err = s.uow.Execute(ctx, func(txCtx context.Context) error {
			user, err := s.liveUser(txCtx, targetUID)
			if err != nil {
				return err
			}

			previousRole := user.Role
			previousBunk := user.AssignedBunk()
			details := map[string]any{
				entity.DetailTargetUID: targetUID,
				"previousRole":         string(previousRole),
				"newRole":              string(role),
			}
			if role != entity.RoleManager && previousBunk != "" {
				if err := s.detachFromBunk(txCtx, targetUID, previousBunk); err != nil {
					return err
				}
				details["unassignedBunkId"] = previousBunk
			}

			user.ChangeRole(role, s.timeProvider)
			if err := s.uow.GetUserRepository(txCtx).Update(txCtx, user); err != nil {
				return err
			}
			return s.audit(txCtx, entity.TypeSetUserRole, actorID, details)
		})
		if err != nil {
			return err
		}

		return s.identities.SetRoleClaims(ctx, targetUID, role)
	}()

	if err = s.finish("set_user_role", actorID, targetUID, start, err); err != nil {
		return err
	}
	s.logger.Info("User role changed", map[string]any{"targetUid": targetUID, "role": newRole})
	return nil
}
