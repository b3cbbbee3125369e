package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bunk-loyalty/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bunk-loyalty/internal/domain/port/core"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BunkRepository implements BunkRepository interface using GORM. The manager
// set lives in the bunk_managers join table.
type BunkRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewBunkRepository creates a new BunkRepository instance
func NewBunkRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *BunkRepository {
	return &BunkRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *BunkRepository) modelToEntity(m *model.Bunk) *entity.Bunk {
	managerIDs := make([]string, 0, len(m.Managers))
	for _, manager := range m.Managers {
		managerIDs = append(managerIDs, manager.ManagerID)
	}
	return &entity.Bunk{
		ID:         m.ID,
		Name:       m.Name,
		Location:   m.Location,
		District:   m.District,
		State:      m.State,
		Pincode:    m.Pincode,
		ManagerIDs: managerIDs,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *BunkRepository) handleDatabaseError(operation string, err error, bunkID string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Debug("Bunk not found", map[string]any{
			"bunk_id": bunkID,
		})
		return errs.ErrBunkNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"bunk_id": bunkID,
		"error":   err.Error(),
	})

	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.WithMessage(errs.ErrAlreadyExists, "bunk already exists")
	}

	return r.errorClassifier.conflictOr(err)
}

func orderedManagers(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC").Order("manager_id ASC")
}

// GetByID retrieves a bunk with its manager set
func (r *BunkRepository) GetByID(ctx context.Context, id string) (*entity.Bunk, error) {
	r.logger.Debug("Getting bunk by ID", map[string]any{
		"bunk_id": id,
	})

	var bunkModel model.Bunk
	result := r.db.WithContext(ctx).
		Preload("Managers", orderedManagers).
		Where("id = ?", id).
		First(&bunkModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting bunk", result.Error, id)
	}

	return r.modelToEntity(&bunkModel), nil
}

// Create stores a new bunk
func (r *BunkRepository) Create(ctx context.Context, bunk *entity.Bunk) error {
	r.logger.Debug("Creating bunk", map[string]any{
		"bunk_id": bunk.ID,
		"name":    bunk.Name,
	})

	bunkModel := model.Bunk{
		ID:        bunk.ID,
		Name:      bunk.Name,
		Location:  bunk.Location,
		District:  bunk.District,
		State:     bunk.State,
		Pincode:   bunk.Pincode,
		CreatedAt: bunk.CreatedAt,
		UpdatedAt: bunk.UpdatedAt,
	}

	db := r.db.WithContext(ctx)
	if err := db.Omit("Managers").Create(&bunkModel).Error; err != nil {
		return r.handleDatabaseError("creating bunk", err, bunk.ID)
	}
	if err := r.addManagers(db, bunk.ID, bunk.ManagerIDs); err != nil {
		return r.handleDatabaseError("creating bunk managers", err, bunk.ID)
	}

	r.logger.Info("Bunk created successfully", map[string]any{
		"bunk_id": bunk.ID,
	})
	return nil
}

// Update persists the bunk fields and replaces its manager set
func (r *BunkRepository) Update(ctx context.Context, bunk *entity.Bunk) error {
	r.logger.Debug("Updating bunk", map[string]any{
		"bunk_id":  bunk.ID,
		"managers": bunk.ManagerIDs,
	})

	db := r.db.WithContext(ctx)
	result := db.Model(&model.Bunk{}).
		Where("id = ?", bunk.ID).
		Updates(map[string]any{
			"name":       bunk.Name,
			"location":   bunk.Location,
			"district":   bunk.District,
			"state":      bunk.State,
			"pincode":    bunk.Pincode,
			"updated_at": bunk.UpdatedAt,
		})
	if result.Error != nil {
		return r.handleDatabaseError("updating bunk", result.Error, bunk.ID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrBunkNotFound
	}

	// Entries already present keep their created_at, so the set keeps its order
	stale := db.Where("bunk_id = ?", bunk.ID)
	if len(bunk.ManagerIDs) > 0 {
		stale = stale.Where("manager_id NOT IN ?", bunk.ManagerIDs)
	}
	if err := stale.Delete(&model.BunkManager{}).Error; err != nil {
		return r.handleDatabaseError("pruning bunk managers", err, bunk.ID)
	}
	if err := r.addManagers(db, bunk.ID, bunk.ManagerIDs); err != nil {
		return r.handleDatabaseError("adding bunk managers", err, bunk.ID)
	}

	return nil
}

func (r *BunkRepository) addManagers(db *gorm.DB, bunkID string, managerIDs []string) error {
	if len(managerIDs) == 0 {
		return nil
	}

	now := r.timeProvider.Now()
	rows := make([]model.BunkManager, 0, len(managerIDs))
	for i, managerID := range managerIDs {
		rows = append(rows, model.BunkManager{
			BunkID:    bunkID,
			ManagerID: managerID,
			// Keep insertion order stable when several land in one call
			CreatedAt: now.Add(time.Duration(i) * time.Millisecond),
		})
	}

	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
}

// Delete removes the bunk and its manager set
func (r *BunkRepository) Delete(ctx context.Context, id string) error {
	r.logger.Debug("Deleting bunk", map[string]any{
		"bunk_id": id,
	})

	db := r.db.WithContext(ctx)
	if err := db.Where("bunk_id = ?", id).Delete(&model.BunkManager{}).Error; err != nil {
		return r.handleDatabaseError("deleting bunk managers", err, id)
	}

	result := db.Where("id = ?", id).Delete(&model.Bunk{})
	if result.Error != nil {
		return r.handleDatabaseError("deleting bunk", result.Error, id)
	}
	if result.RowsAffected == 0 {
		return errs.ErrBunkNotFound
	}

	r.logger.Info("Bunk deleted", map[string]any{
		"bunk_id": id,
	})
	return nil
}

// List returns every bunk ordered by name
func (r *BunkRepository) List(ctx context.Context) ([]*entity.Bunk, error) {
	var models []model.Bunk
	err := r.db.WithContext(ctx).
		Preload("Managers", orderedManagers).
		Order("name ASC").
		Order("id ASC").
		Find(&models).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing bunks", err, "")
	}

	bunks := make([]*entity.Bunk, 0, len(models))
	for i := range models {
		bunks = append(bunks, r.modelToEntity(&models[i]))
	}
	return bunks, nil
}
