package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bunk-loyalty/internal/domain/error"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/infrastructure/adapter/repository"
	timeprovider "github.com/amirhossein-jamali/bunk-loyalty/internal/infrastructure/adapter/time"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func setup(t *testing.T) (*database.TestDBManager, *timeprovider.FrozenTimeProvider) {
	t.Helper()
	return database.NewTestDBManager(t, logger.NewNoopLogger()), timeprovider.NewFrozenTimeProvider(baseTime)
}

func newCustomer(t *testing.T, clock *timeprovider.FrozenTimeProvider, id string) *entity.User {
	t.Helper()
	user, err := entity.NewCustomer(id, "Jane", "Doe", id+"@example.com", "", clock)
	require.NoError(t, err)
	return user
}

func TestUserRepository_CreateAndGet(t *testing.T) {
	tdb, clock := setup(t)
	repo := repository.NewUserRepository(tdb.DB(), clock, tdb.Logger)
	ctx := context.Background()

	user := newCustomer(t, clock, "c1")
	require.NoError(t, repo.Create(ctx, user))

	got, err := repo.GetByID(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCustomer, got.Role)
	assert.Equal(t, "c1@example.com", got.Email)
	assert.Equal(t, int64(0), got.Points())
	assert.Nil(t, got.AssignedBunkID)
	assert.True(t, baseTime.Equal(got.CreatedAt))

	err = repo.Create(ctx, newCustomer(t, clock, "c1"))
	assert.ErrorIs(t, err, errs.ErrDuplicateUser)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, errs.ErrUserNotFound)

	_, err = repo.GetByIDForUpdate(ctx, "missing")
	assert.ErrorIs(t, err, errs.ErrUserNotFound)
}

func TestUserRepository_Update(t *testing.T) {
	tdb, clock := setup(t)
	repo := repository.NewUserRepository(tdb.DB(), clock, tdb.Logger)
	ctx := context.Background()

	user := newCustomer(t, clock, "m1")
	require.NoError(t, repo.Create(ctx, user))

	clock.Advance(time.Minute)
	user.ChangeRole(entity.RoleManager, clock)
	user.AssignTo("bunk-1", clock)
	user.MarkVerified(clock)
	require.NoError(t, user.Credit(40, clock))
	require.NoError(t, repo.Update(ctx, user))

	got, err := repo.GetByIDForUpdate(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleManager, got.Role)
	assert.True(t, got.IsManagerOf("bunk-1"))
	assert.True(t, got.IsVerified)
	assert.Equal(t, int64(0), got.Points(), "Update never writes the balance")

	got.ChangeRole(entity.RoleCustomer, clock)
	require.NoError(t, repo.Update(ctx, got))
	got, err = repo.GetByID(ctx, "m1")
	require.NoError(t, err)
	assert.Nil(t, got.AssignedBunkID, "a nil assignment is written as NULL")

	err = repo.Update(ctx, newCustomer(t, clock, "ghost"))
	assert.ErrorIs(t, err, errs.ErrUserNotFound)
}

func TestUserRepository_UpdateKeepsConcurrentBalance(t *testing.T) {
	tdb, clock := setup(t)
	repo := repository.NewUserRepository(tdb.DB(), clock, tdb.Logger)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newCustomer(t, clock, "c1")))

	stale, err := repo.GetByID(ctx, "c1")
	require.NoError(t, err)

	require.NoError(t, repo.UpdatePoints(ctx, "c1", 90))

	stale.FirstName = "Renamed"
	require.NoError(t, repo.Update(ctx, stale))

	got, err := repo.GetByID(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.FirstName)
	assert.Equal(t, int64(90), got.Points(), "a stale profile write keeps the ledger balance")
}

func TestUserRepository_UpdatePoints(t *testing.T) {
	tdb, clock := setup(t)
	repo := repository.NewUserRepository(tdb.DB(), clock, tdb.Logger)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newCustomer(t, clock, "c1")))

	require.NoError(t, repo.UpdatePoints(ctx, "c1", 75))
	got, err := repo.GetByID(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, int64(75), got.Points())

	err = repo.UpdatePoints(ctx, "c1", -1)
	assert.ErrorIs(t, err, errs.ErrInternalServer)

	err = repo.UpdatePoints(ctx, "ghost", 1)
	assert.ErrorIs(t, err, errs.ErrUserNotFound)
}

func TestBunkRepository_Lifecycle(t *testing.T) {
	tdb, clock := setup(t)
	repo := repository.NewBunkRepository(tdb.DB(), clock, tdb.Logger)
	ctx := context.Background()

	bunk := entity.NewBunk("b1", "Highway Fuels", "NH 48", "Pune", "Maharashtra", "411001", clock)
	require.NoError(t, repo.Create(ctx, bunk))

	got, err := repo.GetByID(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, "Highway Fuels", got.Name)
	assert.Empty(t, got.ManagerIDs)

	clock.Advance(time.Second)
	got.AddManager("m1", clock)
	require.NoError(t, repo.Update(ctx, got))
	clock.Advance(time.Second)
	got.AddManager("m2", clock)
	require.NoError(t, repo.Update(ctx, got))

	got, err = repo.GetByID(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, []string{"m1", "m2"}, got.ManagerIDs)

	got.RemoveManager("m1", clock)
	require.NoError(t, repo.Update(ctx, got))
	got, err = repo.GetByID(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, []string{"m2"}, got.ManagerIDs)

	got.RemoveManager("m2", clock)
	require.NoError(t, repo.Update(ctx, got))
	got, err = repo.GetByID(ctx, "b1")
	require.NoError(t, err)
	assert.Empty(t, got.ManagerIDs)

	require.NoError(t, repo.Delete(ctx, "b1"))
	_, err = repo.GetByID(ctx, "b1")
	assert.ErrorIs(t, err, errs.ErrBunkNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "b1"), errs.ErrBunkNotFound)
	assert.ErrorIs(t, repo.Update(ctx, bunk), errs.ErrBunkNotFound)
}

func TestBunkRepository_ListOrderedByName(t *testing.T) {
	tdb, clock := setup(t)
	repo := repository.NewBunkRepository(tdb.DB(), clock, tdb.Logger)
	ctx := context.Background()

	for i, name := range []string{"Zeta", "Alpha", "Mid"} {
		bunk := entity.NewBunk(fmt.Sprintf("b%d", i), name, "loc", "dist", "state", "411001", clock)
		if name == "Alpha" {
			bunk.AddManager("m1", clock)
		}
		require.NoError(t, repo.Create(ctx, bunk))
	}

	bunks, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, bunks, 3)
	assert.Equal(t, "Alpha", bunks[0].Name)
	assert.Equal(t, []string{"m1"}, bunks[0].ManagerIDs)
	assert.Equal(t, "Mid", bunks[1].Name)
	assert.Equal(t, "Zeta", bunks[2].Name)
}

func TestConfigRepository_Upsert(t *testing.T) {
	tdb, clock := setup(t)
	repo := repository.NewConfigRepository(tdb.DB(), tdb.Logger)
	ctx := context.Background()

	_, err := repo.Get(ctx)
	assert.ErrorIs(t, err, errs.ErrConfigNotFound)

	require.NoError(t, repo.Save(ctx, &entity.GlobalConfig{
		CreditPercentage: decimal.RequireFromString("2.5"),
		RedemptionRate:   decimal.RequireFromString("0.75"),
		UpdatedAt:        clock.Now(),
	}))

	clock.Advance(time.Hour)
	require.NoError(t, repo.Save(ctx, &entity.GlobalConfig{
		CreditPercentage: decimal.RequireFromString("5"),
		RedemptionRate:   decimal.RequireFromString("0.75"),
		UpdatedAt:        clock.Now(),
	}))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.True(t, got.CreditPercentage.Equal(decimal.NewFromInt(5)), "got %s", got.CreditPercentage)
	assert.True(t, got.RedemptionRate.Equal(decimal.RequireFromString("0.75")), "got %s", got.RedemptionRate)
	assert.True(t, clock.Now().Equal(got.UpdatedAt))

	var rows int64
	require.NoError(t, tdb.DB().Table("global_config").Count(&rows).Error)
	assert.Equal(t, int64(1), rows)
}

func TestTransactionRepository_AppendAndList(t *testing.T) {
	tdb, clock := setup(t)
	repo := repository.NewTransactionRepository(tdb.DB(), tdb.Logger)
	ctx := context.Background()

	appendRecord := func(id string, txType entity.TransactionType, initiator, target string) *entity.Transaction {
		clock.Advance(time.Second)
		record, err := entity.NewTransaction(id, txType, initiator, entity.RoleManager, map[string]any{
			entity.DetailTargetUID:       target,
			entity.DetailPointsChange:    int64(10),
			entity.DetailResultingPoints: int64(10),
		}, clock)
		require.NoError(t, err)
		require.NoError(t, repo.Append(ctx, record))
		return record
	}

	appendRecord("t1", entity.TypeCredit, "m1", "c1")
	appendRecord("t2", entity.TypeCredit, "m2", "c1")
	appendRecord("t3", entity.TypeRedeem, "m1", "c2")

	all, err := repo.List(ctx, persistence.TransactionFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "t3", all[0].ID, "newest first")
	assert.Equal(t, int64(10), all[0].ResultingPoints(), "details survive the JSON column")

	byTarget, err := repo.List(ctx, persistence.TransactionFilter{TargetUID: "c1"})
	require.NoError(t, err)
	require.Len(t, byTarget, 2)
	assert.Equal(t, "t2", byTarget[0].ID)

	byInitiator, err := repo.List(ctx, persistence.TransactionFilter{InitiatorID: "m1", Limit: 1})
	require.NoError(t, err)
	require.Len(t, byInitiator, 1)
	assert.Equal(t, "t3", byInitiator[0].ID)
}

func TestTransactionRepository_RequestID(t *testing.T) {
	tdb, clock := setup(t)
	repo := repository.NewTransactionRepository(tdb.DB(), tdb.Logger)
	ctx := context.Background()

	first, err := entity.NewTransaction("t1", entity.TypeCredit, "m1", entity.RoleManager, nil, clock)
	require.NoError(t, err)
	require.NoError(t, repo.Append(ctx, first.WithRequestID("req-1")))

	got, err := repo.GetByRequestID(ctx, "req-1")
	require.NoError(t, err)
	assert.Equal(t, "t1", got.ID)
	assert.Equal(t, entity.RoleManager, got.InitiatorRole)

	second, err := entity.NewTransaction("t2", entity.TypeCredit, "m1", entity.RoleManager, nil, clock)
	require.NoError(t, err)
	err = repo.Append(ctx, second.WithRequestID("req-1"))
	assert.ErrorIs(t, err, errs.ErrDuplicateRequest)

	// records without a request id never collide
	for _, id := range []string{"t3", "t4"} {
		record, err := entity.NewTransaction(id, entity.TypeCreateBunk, "admin", entity.RoleAdmin, nil, clock)
		require.NoError(t, err)
		require.NoError(t, repo.Append(ctx, record))
	}

	_, err = repo.GetByRequestID(ctx, "req-unknown")
	assert.ErrorIs(t, err, errs.ErrNotFound)
}
