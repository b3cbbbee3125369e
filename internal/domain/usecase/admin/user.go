package admin

import (
	"context"

	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bunk-loyalty/internal/domain/error"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/validation"
)

// DeleteUser soft-deletes the target's user record, unassigns them from any
// bunk, removes their identity and revokes their sessions. Audit history is kept.
func (s *Service) DeleteUser(ctx context.Context, actorID, targetUID string) error {
	start := s.timeProvider.Now()

	err := func() error {
		if _, err := s.resolver.Require(ctx, actorID, entity.RoleAdmin); err != nil {
			return err
		}
		if err := validation.RequireID("uid", targetUID); err != nil {
			return err
		}
		if targetUID == actorID {
			return errs.ErrSelfDeletion
		}

		err := s.uow.Execute(ctx, func(txCtx context.Context) error {
			user, err := s.liveUser(txCtx, targetUID)
			if err != nil {
				return err
			}

			details := map[string]any{
				entity.DetailTargetUID: targetUID,
				"role":                 string(user.Role),
			}
			if bunkID := user.AssignedBunk(); bunkID != "" {
				if err := s.detachFromBunk(txCtx, targetUID, bunkID); err != nil {
					return err
				}
				details["unassignedBunkId"] = bunkID
			}

			user.MarkDeleted(s.timeProvider)
			if err := s.uow.GetUserRepository(txCtx).Update(txCtx, user); err != nil {
				return err
			}
			return s.audit(txCtx, entity.TypeDeleteUser, actorID, details)
		})
		if err != nil {
			return err
		}

		if err := s.identities.Delete(ctx, targetUID); err != nil && !errs.IsNotFoundError(err) {
			return err
		}
		if err := s.sessions.RevokeAll(ctx, targetUID); err != nil {
			// The deleted record already fails every role check
			s.logger.Warn("Failed to revoke sessions of deleted user", map[string]any{
				"targetUid": targetUID,
				"error":     err.Error(),
			})
		}
		return nil
	}()

	if err = s.finish("delete_user", actorID, targetUID, start, err); err != nil {
		return err
	}
	s.logger.Info("User deleted", map[string]any{"targetUid": targetUID})
	return nil
}
