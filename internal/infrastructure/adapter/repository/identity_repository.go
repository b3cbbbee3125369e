package repository

import (
	"context"
	"errors"
	"fmt"

	errs "github.com/amirhossein-jamali/bunk-loyalty/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bunk-loyalty/internal/domain/port/core"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/infrastructure/adapter/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// IdentityRepository stores credential records. It is used by the identity
// provider, never from inside a ledger unit of work.
type IdentityRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewIdentityRepository creates a new IdentityRepository instance
func NewIdentityRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *IdentityRepository {
	return &IdentityRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *IdentityRepository) handleDatabaseError(operation string, err error, key string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrUserNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"identity": key,
		"error":    err.Error(),
	})

	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.ErrDuplicateUser
	}
	return r.errorClassifier.conflictOr(err)
}

// Create stores a new identity
func (r *IdentityRepository) Create(ctx context.Context, identity *model.Identity) error {
	if identity.Claims == nil {
		identity.Claims = datatypes.JSONMap{}
	}
	if err := r.db.WithContext(ctx).Create(identity).Error; err != nil {
		return r.handleDatabaseError("creating identity", err, identity.UID)
	}
	return nil
}

// GetByUID looks up an identity by uid
func (r *IdentityRepository) GetByUID(ctx context.Context, uid string) (*model.Identity, error) {
	var identity model.Identity
	if err := r.db.WithContext(ctx).Where("uid = ?", uid).First(&identity).Error; err != nil {
		return nil, r.handleDatabaseError("getting identity", err, uid)
	}
	return &identity, nil
}

// GetByEmail looks up an identity by its normalized email
func (r *IdentityRepository) GetByEmail(ctx context.Context, email string) (*model.Identity, error) {
	var identity model.Identity
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&identity).Error; err != nil {
		return nil, r.handleDatabaseError("getting identity by email", err, email)
	}
	return &identity, nil
}

// UpdateFields writes the given columns and stamps updated_at
func (r *IdentityRepository) UpdateFields(ctx context.Context, uid string, fields map[string]any) error {
	fields["updated_at"] = r.timeProvider.Now()
	result := r.db.WithContext(ctx).Model(&model.Identity{}).Where("uid = ?", uid).Updates(fields)
	if result.Error != nil {
		return r.handleDatabaseError("updating identity", result.Error, uid)
	}
	if result.RowsAffected == 0 {
		return errs.ErrUserNotFound
	}
	return nil
}

// Delete removes the identity
func (r *IdentityRepository) Delete(ctx context.Context, uid string) error {
	result := r.db.WithContext(ctx).Where("uid = ?", uid).Delete(&model.Identity{})
	if result.Error != nil {
		return r.handleDatabaseError("deleting identity", result.Error, uid)
	}
	if result.RowsAffected == 0 {
		return errs.ErrUserNotFound
	}
	return nil
}
