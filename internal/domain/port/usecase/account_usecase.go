package usecase

import (
	"context"

	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/entity"
)

// RegisterCustomerRequest carries a self-registration
type RegisterCustomerRequest struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Password  string
}

// UpdateProfileRequest renames a user. TargetUID defaults to the actor.
type UpdateProfileRequest struct {
	ActorID   string
	TargetUID string
	FirstName string
	LastName  string
}

// AccountUseCase covers registration, self-service reads and contact verification
type AccountUseCase interface {
	RegisterCustomer(ctx context.Context, req RegisterCustomerRequest) (string, error)
	UpdateUserProfile(ctx context.Context, req UpdateProfileRequest) error
	GetProfile(ctx context.Context, actorID string) (*entity.User, error)
	CustomerTransactions(ctx context.Context, actorID string, limit int) ([]*entity.Transaction, error)

	GetAssignedBunk(ctx context.Context, actorID string) (*entity.Bunk, error)
	ManagerTransactions(ctx context.Context, actorID string, limit int) ([]*entity.Transaction, error)

	// HandleContactVerified marks the user verified. Repeated calls are no-ops.
	HandleContactVerified(ctx context.Context, uid string) error
}
