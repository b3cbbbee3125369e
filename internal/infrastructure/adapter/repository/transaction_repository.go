package repository

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bunk-loyalty/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bunk-loyalty/internal/domain/port/core"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/infrastructure/adapter/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TransactionRepository implements the append-only audit store using GORM
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// entityToModel converts a transaction entity to a database model
func (r *TransactionRepository) entityToModel(transaction *entity.Transaction) model.Transaction {
	details := datatypes.JSONMap(transaction.Details)
	if details == nil {
		details = datatypes.JSONMap{}
	}
	return model.Transaction{
		ID:            transaction.ID,
		Type:          string(transaction.Type),
		InitiatorID:   transaction.InitiatorID,
		InitiatorRole: string(transaction.InitiatorRole),
		TargetUID:     transaction.TargetUID,
		RequestID:     transaction.RequestID,
		Details:       details,
		Timestamp:     transaction.Timestamp,
	}
}

func (r *TransactionRepository) modelToEntity(m *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:            m.ID,
		Type:          entity.TransactionType(m.Type),
		InitiatorID:   m.InitiatorID,
		InitiatorRole: entity.Role(m.InitiatorRole),
		Timestamp:     m.Timestamp.UTC(),
		TargetUID:     m.TargetUID,
		RequestID:     m.RequestID,
		Details:       map[string]any(m.Details),
	}
}

// Append stores a new audit record
func (r *TransactionRepository) Append(ctx context.Context, transaction *entity.Transaction) error {
	r.logger.Debug("Appending audit record", map[string]any{
		"transaction_id": transaction.ID,
		"type":           transaction.Type,
		"initiator_id":   transaction.InitiatorID,
	})

	transactionModel := r.entityToModel(transaction)
	result := r.db.WithContext(ctx).Create(&transactionModel)
	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			r.logger.Warn("Duplicate audit record detected", map[string]any{
				"transaction_id": transaction.ID,
				"request_id":     transaction.RequestID,
			})
			return errs.ErrDuplicateRequest
		}

		r.logger.Error("Failed to append audit record", map[string]any{
			"transaction_id": transaction.ID,
			"error":          result.Error.Error(),
		})
		return r.errorClassifier.conflictOr(result.Error)
	}

	r.logger.Info("Audit record appended", map[string]any{
		"transaction_id": transaction.ID,
		"type":           transaction.Type,
	})
	return nil
}

// GetByRequestID finds the record written for an idempotency key
func (r *TransactionRepository) GetByRequestID(ctx context.Context, requestID string) (*entity.Transaction, error) {
	var transactionModel model.Transaction
	result := r.db.WithContext(ctx).Where("request_id = ?", requestID).First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		r.logger.Error("Failed to look up audit record by request id", map[string]any{
			"request_id": requestID,
			"error":      result.Error.Error(),
		})
		return nil, r.errorClassifier.conflictOr(result.Error)
	}

	return r.modelToEntity(&transactionModel), nil
}

// List returns records matching the filter, newest first
func (r *TransactionRepository) List(ctx context.Context, filter persistence.TransactionFilter) ([]*entity.Transaction, error) {
	query := r.db.WithContext(ctx).Model(&model.Transaction{})
	if filter.InitiatorID != "" {
		query = query.Where("initiator_id = ?", filter.InitiatorID)
	}
	if filter.TargetUID != "" {
		query = query.Where("target_uid = ?", filter.TargetUID)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var models []model.Transaction
	if err := query.
		Order(clause.OrderByColumn{Column: clause.Column{Name: "timestamp"}, Desc: true}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: true}).
		Find(&models).Error; err != nil {
		r.logger.Error("Failed to list audit records", map[string]any{
			"initiator_id": filter.InitiatorID,
			"target_uid":   filter.TargetUID,
			"error":        err.Error(),
		})
		return nil, r.errorClassifier.conflictOr(err)
	}

	transactions := make([]*entity.Transaction, 0, len(models))
	for i := range models {
		transactions = append(transactions, r.modelToEntity(&models[i]))
	}
	return transactions, nil
}
