package usecase

import (
	"context"

	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/entity"
)

// CreateBunkRequest carries the fields of a new bunk
type CreateBunkRequest struct {
	ActorID  string
	Name     string
	Location string
	District string
	State    string
	Pincode  string
}

// AdminUseCase groups the admin-only operations
type AdminUseCase interface {
	CreateBunk(ctx context.Context, req CreateBunkRequest) (string, error)
	DeleteBunk(ctx context.Context, actorID, bunkID string) error
	ListBunks(ctx context.Context, actorID string) ([]*entity.Bunk, error)

	AssignManagerToBunk(ctx context.Context, actorID, managerUID, bunkID string) error
	UnassignManagerFromBunk(ctx context.Context, actorID, managerUID, bunkID string) error

	SetUserRole(ctx context.Context, actorID, targetUID, newRole string) error
	DeleteUser(ctx context.Context, actorID, targetUID string) error

	// UpdateGlobalConfig applies a merge-patch given as a raw JSON object
	UpdateGlobalConfig(ctx context.Context, actorID string, updateData []byte) error
	GetGlobalConfig(ctx context.Context, actorID string) (*entity.GlobalConfig, error)

	ListTransactions(ctx context.Context, actorID string, limit int) ([]*entity.Transaction, error)
}
