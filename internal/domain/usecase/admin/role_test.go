package admin

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bunk-loyalty/internal/domain/error"
)

func TestSetUserRole(t *testing.T) {
	ctx := context.Background()

	t.Run("promotes a customer and replaces claims", func(t *testing.T) {
		s := newStore()
		s.addUser("u1", entity.RoleCustomer, "")
		f := newFixture(t, s)
		f.identities.EXPECT().SetRoleClaims(mock.Anything, "u1", entity.RoleManager).Return(nil).Once()

		require.NoError(t, f.service.SetUserRole(ctx, "admin-1", "u1", "manager"))

		assert.Equal(t, entity.RoleManager, s.users["u1"].Role)
		records := s.recordsOf(entity.TypeSetUserRole)
		require.Len(t, records, 1)
		assert.Equal(t, "customer", records[0].Details["previousRole"])
		assert.Equal(t, "manager", records[0].Details["newRole"])
	})

	t.Run("demoted manager is unassigned", func(t *testing.T) {
		s := newStore()
		s.addBunk("b1", "Central", "m1")
		s.addUser("m1", entity.RoleManager, "b1")
		f := newFixture(t, s)
		f.identities.EXPECT().SetRoleClaims(mock.Anything, "m1", entity.RoleCustomer).Return(nil).Once()

		require.NoError(t, f.service.SetUserRole(ctx, "admin-1", "m1", "customer"))

		assert.Equal(t, entity.RoleCustomer, s.users["m1"].Role)
		assert.Nil(t, s.users["m1"].AssignedBunkID)
		assert.Empty(t, s.bunks["b1"].ManagerIDs)
		assert.Equal(t, "b1", s.recordsOf(entity.TypeSetUserRole)[0].Details["unassignedBunkId"])
	})

	t.Run("unknown role", func(t *testing.T) {
		s := newStore()
		s.addUser("u1", entity.RoleCustomer, "")
		f := newFixture(t, s)

		err := f.service.SetUserRole(ctx, "admin-1", "u1", "superuser")

		assert.Equal(t, errs.KindInvalidArgument, errs.KindOf(err))
		assert.Equal(t, entity.RoleCustomer, s.users["u1"].Role)
	})

	t.Run("missing user", func(t *testing.T) {
		f := newFixture(t, newStore())

		err := f.service.SetUserRole(ctx, "admin-1", "ghost", "admin")

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("claims failure is internal", func(t *testing.T) {
		s := newStore()
		s.addUser("u1", entity.RoleCustomer, "")
		f := newFixture(t, s)
		f.identities.EXPECT().SetRoleClaims(mock.Anything, "u1", entity.RoleAdmin).Return(errors.New("timeout")).Once()

		err := f.service.SetUserRole(ctx, "admin-1", "u1", "admin")

		assert.ErrorIs(t, err, errs.ErrInternalServer)
	})
}
