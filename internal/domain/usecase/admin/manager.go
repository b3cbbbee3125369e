package admin

import (
	"context"

	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bunk-loyalty/internal/domain/error"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/validation"
)

func validateAssignment(managerUID, bunkID string) error {
	if err := validation.RequireID("managerUid", managerUID); err != nil {
		return err
	}
	return validation.RequireID("bunkId", bunkID)
}

// AssignManagerToBunk sets the manager's assignment and adds them to the
// bunk's manager set in one unit of work. A manager assigned elsewhere is
// removed from the previous bunk first.
func (s *Service) AssignManagerToBunk(ctx context.Context, actorID, managerUID, bunkID string) error {
	start := s.timeProvider.Now()

	err := func() error {
		if _, err := s.resolver.Require(ctx, actorID, entity.RoleAdmin); err != nil {
			return err
		}
		if err := validateAssignment(managerUID, bunkID); err != nil {
			return err
		}

		return s.uow.Execute(ctx, func(txCtx context.Context) error {
			manager, err := s.liveUser(txCtx, managerUID)
			if err != nil {
				return err
			}
			bunks := s.uow.GetBunkRepository(txCtx)
			bunk, err := bunks.GetByID(txCtx, bunkID)
			if err != nil {
				return err
			}
			if manager.Role != entity.RoleManager {
				return errs.ErrNotAManager
			}

			previous := manager.AssignedBunk()
			if previous != "" && previous != bunkID {
				if err := s.detachFromBunk(txCtx, managerUID, previous); err != nil {
					return err
				}
			}

			manager.AssignTo(bunkID, s.timeProvider)
			if err := s.uow.GetUserRepository(txCtx).Update(txCtx, manager); err != nil {
				return err
			}
			bunk.AddManager(managerUID, s.timeProvider)
			if err := bunks.Update(txCtx, bunk); err != nil {
				return err
			}

			details := map[string]any{
				entity.DetailTargetUID: managerUID,
				entity.DetailBunkID:    bunkID,
			}
			if previous != "" && previous != bunkID {
				details["previousBunkId"] = previous
			}
			return s.audit(txCtx, entity.TypeAssignManager, actorID, details)
		})
	}()

	return s.finish("assign_manager", actorID, managerUID, start, err)
}

// UnassignManagerFromBunk clears the manager's assignment to bunkID
func (s *Service) UnassignManagerFromBunk(ctx context.Context, actorID, managerUID, bunkID string) error {
	start := s.timeProvider.Now()

	err := func() error {
		if _, err := s.resolver.Require(ctx, actorID, entity.RoleAdmin); err != nil {
			return err
		}
		if err := validateAssignment(managerUID, bunkID); err != nil {
			return err
		}

		return s.uow.Execute(ctx, func(txCtx context.Context) error {
			manager, err := s.liveUser(txCtx, managerUID)
			if err != nil {
				return err
			}
			bunks := s.uow.GetBunkRepository(txCtx)
			bunk, err := bunks.GetByID(txCtx, bunkID)
			if err != nil {
				return err
			}
			if manager.AssignedBunk() != bunkID && !bunk.HasManager(managerUID) {
				return errs.ErrManagerNotAssigned
			}

			if manager.AssignedBunk() == bunkID {
				manager.Unassign(s.timeProvider)
				if err := s.uow.GetUserRepository(txCtx).Update(txCtx, manager); err != nil {
					return err
				}
			}
			bunk.RemoveManager(managerUID, s.timeProvider)
			if err := bunks.Update(txCtx, bunk); err != nil {
				return err
			}

			return s.audit(txCtx, entity.TypeUnassignManager, actorID, map[string]any{
				entity.DetailTargetUID: managerUID,
				entity.DetailBunkID:    bunkID,
			})
		})
	}()

	return s.finish("unassign_manager", actorID, managerUID, start, err)
}
