package ledger

import (
	"context"
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bunk-loyalty/internal/domain/error"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/port/usecase"
)

func redeem(actor, customer, bunk string, points int64) usecase.RedeemRequest {
	return usecase.RedeemRequest{ActorID: actor, CustomerID: customer, BunkID: bunk, PointsToRedeem: points}
}

func TestRedeemPoints_Success(t *testing.T) {
	s := standardStore()
	_ = s.users["c1"].SetPoints(250)
	f := newFixture(t, s)

	result, err := f.service.RedeemPoints(context.Background(), redeem("m1", "c1", "b1", 100))

	require.NoError(t, err)
	assert.Equal(t, int64(150), result.NewPoints)
	assert.True(t, result.RedeemedValue.Equal(decimal.NewFromInt(150)), "got %s", result.RedeemedValue)
	assert.Equal(t, int64(150), s.points("c1"))

	require.Len(t, s.records, 1)
	record := s.records[0]
	assert.Equal(t, entity.TypeRedeem, record.Type)
	assert.Equal(t, "c1", record.TargetUID)
	assert.Equal(t, int64(-100), record.PointsChange())
	assert.Equal(t, int64(150), record.ResultingPoints())
	assert.Equal(t, "150", record.Details[entity.DetailRedeemedValue])
	assert.Equal(t, s.bunks["b1"].Snapshot().ToMap(), record.Details[entity.DetailBunk])
}

func TestRedeemPoints_ValueIsNotRounded(t *testing.T) {
	s := standardStore()
	_ = s.users["c1"].SetPoints(3)
	s.config.RedemptionRate = decimal.RequireFromString("0.35")
	f := newFixture(t, s)

	result, err := f.service.RedeemPoints(context.Background(), redeem("m1", "c1", "b1", 3))

	require.NoError(t, err)
	assert.Equal(t, "1.05", result.RedeemedValue.String())
	assert.Equal(t, int64(0), result.NewPoints)
}

func TestRedeemPoints_Failures(t *testing.T) {
	testCases := []struct {
		name    string
		setup   func(s *store)
		req     usecase.RedeemRequest
		wantErr error
		kind    errs.Kind
	}{
		{
			name:    "self redeem",
			req:     redeem("m1", "m1", "b1", 10),
			wantErr: errs.ErrSelfDealing,
			kind:    errs.KindPermissionDenied,
		},
		{
			name:    "customer cannot redeem",
			req:     redeem("c1", "c2", "b1", 10),
			wantErr: errs.ErrPermissionDenied,
			kind:    errs.KindPermissionDenied,
		},
		{
			name:    "zero points",
			req:     redeem("m1", "c1", "b1", 0),
			wantErr: errs.ErrInvalidAmount,
			kind:    errs.KindInvalidArgument,
		},
		{
			name:    "negative points",
			req:     redeem("m1", "c1", "b1", -1),
			wantErr: errs.ErrInvalidAmount,
			kind:    errs.KindInvalidArgument,
		},
		{
			name:    "wrong bunk",
			req:     redeem("m2", "c1", "b1", 10),
			wantErr: errs.ErrWrongBunk,
			kind:    errs.KindPermissionDenied,
		},
		{
			name:    "unverified customer",
			req:     redeem("m1", "c2", "b1", 10),
			wantErr: errs.ErrCustomerNotVerified,
			kind:    errs.KindFailedPrecondition,
		},
		{
			name:    "more points than the balance",
			req:     redeem("m1", "c1", "b1", 51),
			wantErr: errs.ErrInsufficientPoints,
			kind:    errs.KindFailedPrecondition,
		},
		{
			name:    "insufficient points is reported before a bad rate",
			setup:   func(s *store) { s.config.RedemptionRate = decimal.Zero },
			req:     redeem("m1", "c1", "b1", 51),
			wantErr: errs.ErrInsufficientPoints,
			kind:    errs.KindFailedPrecondition,
		},
		{
			name:    "non-positive redemption rate",
			setup:   func(s *store) { s.config.RedemptionRate = decimal.NewFromInt(-1) },
			req:     redeem("m1", "c1", "b1", 10),
			wantErr: errs.ErrInvalidRedemptionRate,
			kind:    errs.KindFailedPrecondition,
		},
		{
			name:    "missing bunk",
			setup:   func(s *store) { delete(s.bunks, "b1") },
			req:     redeem("m1", "c1", "b1", 10),
			wantErr: errs.ErrBunkNotFound,
			kind:    errs.KindNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := standardStore()
			_ = s.users["c1"].SetPoints(50)
			if tc.setup != nil {
				tc.setup(s)
			}
			f := newFixture(t, s)

			_, err := f.service.RedeemPoints(context.Background(), tc.req)

			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.kind, errs.KindOf(err))
			assert.Empty(t, s.records)
			assert.Equal(t, int64(50), s.points("c1"))
		})
	}
}

func TestRedeemPoints_RequestIDReplay(t *testing.T) {
	s := standardStore()
	_ = s.users["c1"].SetPoints(10)
	s.config.RedemptionRate = decimal.RequireFromString("0.35")
	f := newFixture(t, s)
	ctx := context.Background()

	req := redeem("m1", "c1", "b1", 3)
	req.RequestID = "redeem-1"

	first, err := f.service.RedeemPoints(ctx, req)
	require.NoError(t, err)

	second, err := f.service.RedeemPoints(ctx, req)
	require.NoError(t, err)

	assert.True(t, second.Replayed)
	assert.Equal(t, first.NewPoints, second.NewPoints)
	assert.True(t, first.RedeemedValue.Equal(second.RedeemedValue))
	assert.Equal(t, int64(7), s.points("c1"))
	assert.Len(t, s.records, 1)

	t.Run("same id from another manager is rejected", func(t *testing.T) {
		s.users["m2"].AssignedBunkID = s.users["m1"].AssignedBunkID
		other := redeem("m2", "c1", "b1", 3)
		other.RequestID = "redeem-1"
		_, err := f.service.RedeemPoints(ctx, other)
		assert.ErrorIs(t, err, errs.ErrDuplicateRequest)
	})
}

func TestRedeemPoints_ReplayKeepsExactValue(t *testing.T) {
	s := standardStore()
	_ = s.users["c1"].SetPoints(10)
	s.config.RedemptionRate = decimal.RequireFromString("0.123456789012345678")
	f := newFixture(t, s)
	ctx := context.Background()

	req := redeem("m1", "c1", "b1", 7)
	req.RequestID = "redeem-exact"

	first, err := f.service.RedeemPoints(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "0.864197523086419746", first.RedeemedValue.String())
	assert.Equal(t, "0.864197523086419746", s.records[0].Details[entity.DetailRedeemedValue])

	second, err := f.service.RedeemPoints(ctx, req)
	require.NoError(t, err)
	assert.True(t, second.Replayed)
	assert.Equal(t, first.RedeemedValue.String(), second.RedeemedValue.String())
}

func TestRedeemPoints_LostRequestIDRaceReplays(t *testing.T) {
	s := standardStore()
	_ = s.users["c1"].SetPoints(50)
	f := newFixture(t, s)
	ctx := context.Background()

	req := redeem("m1", "c1", "b1", 20)
	req.RequestID = "redeem-race"

	first, err := f.service.RedeemPoints(ctx, req)
	require.NoError(t, err)

	s.hiddenLookups = 1
	second, err := f.service.RedeemPoints(ctx, req)

	require.NoError(t, err)
	assert.True(t, second.Replayed)
	assert.Equal(t, first.NewPoints, second.NewPoints)
	assert.Equal(t, "30", second.RedeemedValue.String())
	assert.Len(t, s.records, 1)
	assert.Equal(t, int64(30), s.points("c1"))
}

func TestLedger_BalanceNeverNegative(t *testing.T) {
	s := standardStore()
	f := newFixture(t, s)
	ctx := context.Background()
	rng := rand.New(rand.NewSource(42))

	var expected int64
	for i := 0; i < 200; i++ {
		if rng.Intn(2) == 0 {
			amount := float64(rng.Intn(300))
			result, err := f.service.CreditPoints(ctx, credit("m1", "c1", "b1", amount))
			if err == nil {
				expected = result.NewPoints
			} else {
				assert.True(t, errs.IsKind(err, errs.KindInvalidArgument) || errs.IsKind(err, errs.KindFailedPrecondition), "unexpected error %v", err)
			}
		} else {
			points := int64(rng.Intn(40) + 1)
			result, err := f.service.RedeemPoints(ctx, redeem("m1", "c1", "b1", points))
			if err == nil {
				expected = result.NewPoints
			} else {
				assert.ErrorIs(t, err, errs.ErrInsufficientPoints)
				assert.Less(t, s.points("c1"), points)
			}
		}

		require.GreaterOrEqual(t, s.points("c1"), int64(0))
		require.Equal(t, expected, s.points("c1"))
	}
}
