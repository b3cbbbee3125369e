package admin

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bunk-loyalty/internal/domain/error"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/validation"
)

func validateBunk(req usecase.CreateBunkRequest) error {
	switch {
	case !validation.IsValidBunkName(req.Name):
		return errs.Invalidf("name must be 1-50 characters")
	case !validation.IsNonEmpty(req.Location):
		return errs.Invalidf("location is required")
	case !validation.IsNonEmpty(req.District):
		return errs.Invalidf("district is required")
	case !validation.IsNonEmpty(req.State):
		return errs.Invalidf("state is required")
	case !validation.IsValidPincode(req.Pincode):
		return errs.Invalidf("pincode must be 6 digits and not start with 0")
	}
	return nil
}

// CreateBunk creates a bunk with no managers and returns its id
func (s *Service) CreateBunk(ctx context.Context, req usecase.CreateBunkRequest) (string, error) {
	start := s.timeProvider.Now()
	var bunkID string

	err := func() error {
		if _, err := s.resolver.Require(ctx, req.ActorID, entity.RoleAdmin); err != nil {
			return err
		}

		req.Name = strings.TrimSpace(req.Name)
		req.Location = strings.TrimSpace(req.Location)
		req.District = strings.TrimSpace(req.District)
		req.State = strings.TrimSpace(req.State)
		req.Pincode = strings.TrimSpace(req.Pincode)
		if err := validateBunk(req); err != nil {
			return err
		}

		bunk := entity.NewBunk(s.idGenerator.NewID(), req.Name, req.Location, req.District, req.State, req.Pincode, s.timeProvider)
		return s.uow.Execute(ctx, func(txCtx context.Context) error {
			if err := s.uow.GetBunkRepository(txCtx).Create(txCtx, bunk); err != nil {
				return err
			}
			bunkID = bunk.ID
			return s.audit(txCtx, entity.TypeCreateBunk, req.ActorID, map[string]any{
				entity.DetailBunkID: bunk.ID,
				entity.DetailBunk:   bunk.Snapshot().ToMap(),
			})
		})
	}()

	if err = s.finish("create_bunk", req.ActorID, bunkID, start, err); err != nil {
		return "", err
	}
	s.logger.Info("Bunk created", map[string]any{"bunkId": bunkID, "name": req.Name})
	return bunkID, nil
}

// DeleteBunk unassigns every manager of the bunk and then removes it
func (s *Service) DeleteBunk(ctx context.Context, actorID, bunkID string) error {
	start := s.timeProvider.Now()

	err := func() error {
		if _, err := s.resolver.Require(ctx, actorID, entity.RoleAdmin); err != nil {
			return err
		}
		if err := validation.RequireID("bunkId", bunkID); err != nil {
			return err
		}

		return s.uow.Execute(ctx, func(txCtx context.Context) error {
			bunks := s.uow.GetBunkRepository(txCtx)
			users := s.uow.GetUserRepository(txCtx)

			bunk, err := bunks.GetByID(txCtx, bunkID)
			if err != nil {
				return err
			}

			unassigned := make([]string, 0, len(bunk.ManagerIDs))
			for _, managerID := range bunk.ManagerIDs {
				manager, err := users.GetByID(txCtx, managerID)
				if err != nil {
					if errs.IsNotFoundError(err) {
						continue
					}
					return err
				}
				if manager.AssignedBunk() != bunkID {
					continue
				}
				manager.Unassign(s.timeProvider)
				if err := users.Update(txCtx, manager); err != nil {
					return err
				}
				unassigned = append(unassigned, managerID)
			}

			if err := bunks.Delete(txCtx, bunkID); err != nil {
				return err
			}
			return s.audit(txCtx, entity.TypeDeleteBunk, actorID, map[string]any{
				entity.DetailBunkID:  bunkID,
				entity.DetailBunk:    bunk.Snapshot().ToMap(),
				"unassignedManagers": unassigned,
			})
		})
	}()

	return s.finish("delete_bunk", actorID, bunkID, start, err)
}

// ListBunks returns every bunk ordered by name
func (s *Service) ListBunks(ctx context.Context, actorID string) ([]*entity.Bunk, error) {
	if _, err := s.resolver.Require(ctx, actorID, entity.RoleAdmin); err != nil {
		return nil, err
	}
	bunks, err := s.uow.GetBunkRepository(ctx).List(ctx)
	if err != nil {
		s.logger.Error("Failed to list bunks", map[string]any{"error": err.Error()})
		return nil, errs.ErrInternalServer
	}
	return bunks, nil
}
