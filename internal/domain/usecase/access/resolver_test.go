package access

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bunk-loyalty/internal/domain/error"
	mockcore "github.com/amirhossein-jamali/bunk-loyalty/mocks/port/core"
	mockpersistence "github.com/amirhossein-jamali/bunk-loyalty/mocks/port/persistence"
)

func newResolver(t *testing.T, users map[string]*entity.User, lookupErr error) *Resolver {
	t.Helper()

	userRepo := mockpersistence.NewMockUserRepository(t)
	userRepo.EXPECT().GetByID(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, id string) (*entity.User, error) {
			if lookupErr != nil {
				return nil, lookupErr
			}
			if u, ok := users[id]; ok {
				return u, nil
			}
			return nil, errs.ErrUserNotFound
		}).Maybe()

	uow := mockpersistence.NewMockUnitOfWork(t)
	uow.EXPECT().GetUserRepository(mock.Anything).Return(userRepo).Maybe()

	logger := mockcore.NewMockLogger(t)
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	return NewResolver(uow, logger)
}

func bunkID(id string) *string { return &id }

func TestResolver_ResolveRole(t *testing.T) {
	ctx := context.Background()
	users := map[string]*entity.User{
		"admin-1": {ID: "admin-1", Role: entity.RoleAdmin},
		"gone":    {ID: "gone", Role: entity.RoleManager, Deleted: true},
	}
	r := newResolver(t, users, nil)

	role, err := r.ResolveRole(ctx, "admin-1")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, role)

	_, err = r.ResolveRole(ctx, "missing")
	assert.True(t, errs.IsNotFoundError(err))

	_, err = r.ResolveRole(ctx, "gone")
	assert.ErrorIs(t, err, errs.ErrUserNotFound)

	_, err = r.ResolveRole(ctx, "")
	assert.ErrorIs(t, err, errs.ErrUnauthenticated)
}

func TestResolver_IsAssignedManager(t *testing.T) {
	ctx := context.Background()
	users := map[string]*entity.User{
		"m1": {ID: "m1", Role: entity.RoleManager, AssignedBunkID: bunkID("b1")},
		"m2": {ID: "m2", Role: entity.RoleManager},
		"c1": {ID: "c1", Role: entity.RoleCustomer, AssignedBunkID: bunkID("b1")},
	}
	r := newResolver(t, users, nil)

	ok, err := r.IsAssignedManager(ctx, "m1", "b1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.IsAssignedManager(ctx, "m1", "b2")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = r.IsAssignedManager(ctx, "m2", "b1")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = r.IsAssignedManager(ctx, "c1", "b1")
	require.NoError(t, err)
	assert.False(t, ok, "a stale assignment on a non-manager does not count")
}

func TestResolver_Require(t *testing.T) {
	ctx := context.Background()
	users := map[string]*entity.User{
		"admin-1":   {ID: "admin-1", Role: entity.RoleAdmin},
		"manager-1": {ID: "manager-1", Role: entity.RoleManager},
	}

	t.Run("empty actor is unauthenticated", func(t *testing.T) {
		r := newResolver(t, users, nil)
		_, err := r.Require(ctx, "", entity.RoleAdmin)
		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})

	t.Run("matching role returns the user", func(t *testing.T) {
		r := newResolver(t, users, nil)
		user, err := r.Require(ctx, "admin-1", entity.RoleAdmin)
		require.NoError(t, err)
		assert.Equal(t, "admin-1", user.ID)
	})

	t.Run("any of several roles", func(t *testing.T) {
		r := newResolver(t, users, nil)
		_, err := r.Require(ctx, "manager-1", entity.RoleAdmin, entity.RoleManager)
		assert.NoError(t, err)
	})

	t.Run("no roles means any live user", func(t *testing.T) {
		r := newResolver(t, users, nil)
		_, err := r.Require(ctx, "manager-1")
		assert.NoError(t, err)
	})

	t.Run("role mismatch is denied", func(t *testing.T) {
		r := newResolver(t, users, nil)
		_, err := r.Require(ctx, "manager-1", entity.RoleAdmin)
		assert.ErrorIs(t, err, errs.ErrPermissionDenied)
	})

	t.Run("unknown actor is denied", func(t *testing.T) {
		r := newResolver(t, users, nil)
		_, err := r.Require(ctx, "nobody", entity.RoleAdmin)
		assert.ErrorIs(t, err, errs.ErrPermissionDenied)
	})

	t.Run("lookup failure fails closed", func(t *testing.T) {
		r := newResolver(t, users, errors.New("connection reset"))
		_, err := r.Require(ctx, "admin-1", entity.RoleAdmin)
		assert.ErrorIs(t, err, errs.ErrPermissionDenied)
	})
}
