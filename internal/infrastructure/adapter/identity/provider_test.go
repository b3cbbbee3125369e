package identity_test

import (
	"context"
	"strings"
	"testing"

	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bunk-loyalty/internal/domain/error"
	identityport "github.com/amirhossein-jamali/bunk-loyalty/internal/domain/port/identity"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/infrastructure/adapter/identity"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/infrastructure/adapter/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newProvider(t *testing.T) *identity.Provider {
	t.Helper()
	log := logger.NewNoopLogger()
	testDB := database.NewTestDBManager(t, log)
	repo := repository.NewIdentityRepository(testDB.DB(), testDB.TimeProvider, log)
	return identity.NewProvider(repo, testDB.TimeProvider, log, bcrypt.MinCost)
}

func TestProvider_CreateAndAuthenticate(t *testing.T) {
	p := newProvider(t)
	ctx := context.Background()

	created, err := p.Create(ctx, identityport.NewIdentity{
		UID:      "cust-1",
		Email:    "  Jane@Example.COM ",
		Phone:    "9876543210",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", created.Email)
	assert.False(t, created.ContactVerified)
	assert.Empty(t, created.Role())

	got, err := p.Authenticate(ctx, "JANE@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "cust-1", got.UID)

	_, err = p.Authenticate(ctx, "jane@example.com", "wrong-password")
	assert.ErrorIs(t, err, errs.ErrUnauthenticated)

	_, err = p.Authenticate(ctx, "nobody@example.com", "secret1")
	assert.ErrorIs(t, err, errs.ErrUnauthenticated)
}

func TestProvider_DuplicateEmail(t *testing.T) {
	p := newProvider(t)
	ctx := context.Background()

	_, err := p.Create(ctx, identityport.NewIdentity{UID: "a", Email: "dup@example.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = p.Create(ctx, identityport.NewIdentity{UID: "b", Email: "DUP@example.com", Password: "secret2"})
	assert.ErrorIs(t, err, errs.ErrDuplicateUser)
}

func TestProvider_PasswordTooLong(t *testing.T) {
	p := newProvider(t)

	_, err := p.Create(context.Background(), identityport.NewIdentity{
		UID:      "long",
		Email:    "long@example.com",
		Password: strings.Repeat("x", 80),
	})
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestProvider_ClaimsAndVerification(t *testing.T) {
	p := newProvider(t)
	ctx := context.Background()

	_, err := p.Create(ctx, identityport.NewIdentity{UID: "mgr-1", Email: "mgr@example.com", Password: "secret1"})
	require.NoError(t, err)

	require.NoError(t, p.SetRoleClaims(ctx, "mgr-1", entity.RoleManager))
	require.NoError(t, p.MarkContactVerified(ctx, "mgr-1"))

	got, err := p.Get(ctx, "mgr-1")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleManager, got.Role())
	assert.Equal(t, map[string]string{"role": "manager"}, got.Claims)
	assert.True(t, got.ContactVerified)

	require.NoError(t, p.SetRoleClaims(ctx, "mgr-1", entity.RoleCustomer))
	got, err = p.Get(ctx, "mgr-1")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCustomer, got.Role())

	assert.ErrorIs(t, p.SetRoleClaims(ctx, "ghost", entity.RoleAdmin), errs.ErrUserNotFound)
	assert.ErrorIs(t, p.MarkContactVerified(ctx, "ghost"), errs.ErrUserNotFound)
}

func TestProvider_Delete(t *testing.T) {
	p := newProvider(t)
	ctx := context.Background()

	_, err := p.Create(ctx, identityport.NewIdentity{UID: "gone", Email: "gone@example.com", Password: "secret1"})
	require.NoError(t, err)

	require.NoError(t, p.Delete(ctx, "gone"))

	_, err = p.Get(ctx, "gone")
	assert.ErrorIs(t, err, errs.ErrUserNotFound)
	assert.ErrorIs(t, p.Delete(ctx, "gone"), errs.ErrUserNotFound)

	_, err = p.Authenticate(ctx, "gone@example.com", "secret1")
	assert.ErrorIs(t, err, errs.ErrUnauthenticated)
}
