package account

import (
	"context"

	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bunk-loyalty/internal/domain/error"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/validation"
)

// HandleContactVerified propagates an external contact confirmation to the
// identity and the user record. Only the first call writes an audit record.
func (s *Service) HandleContactVerified(ctx context.Context, uid string) error {
	if err := validation.RequireID("uid", uid); err != nil {
		return err
	}

	if err := s.identities.MarkContactVerified(ctx, uid); err != nil {
		return s.internal("contact_verified", uid, err)
	}

	changed := false
	err := s.uow.Execute(ctx, func(txCtx context.Context) error {
		changed = false
		users := s.uow.GetUserRepository(txCtx)
		user, err := users.GetByIDForUpdate(txCtx, uid)
		if err != nil {
			return err
		}
		if user.Deleted {
			return errs.ErrUserNotFound
		}
		if !user.MarkVerified(s.timeProvider) {
			return nil
		}
		if err := users.Update(txCtx, user); err != nil {
			return err
		}
		changed = true
		return s.audit(txCtx, entity.TypeAutoVerify, entity.SystemInitiator, "", map[string]any{
			entity.DetailTargetUID: uid,
		})
	})
	if err != nil {
		return s.internal("contact_verified", uid, err)
	}

	if changed {
		s.logger.Info("User marked as verified", map[string]any{"uid": uid})
	} else {
		s.logger.Debug("User already verified", map[string]any{"uid": uid})
	}
	return nil
}
