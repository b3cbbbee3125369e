package admin

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bunk-loyalty/internal/domain/error"
)

func TestParseConfigPatch(t *testing.T) {
	t.Run("credit percentage only", func(t *testing.T) {
		patch, err := ParseConfigPatch([]byte(`{"creditPercentage": 12.5}`))
		require.NoError(t, err)
		require.NotNil(t, patch.CreditPercentage)
		assert.Equal(t, "12.5", patch.CreditPercentage.String())
		assert.Nil(t, patch.RedemptionRate)
	})

	t.Run("pointValue is an alias", func(t *testing.T) {
		patch, err := ParseConfigPatch([]byte(`{"pointValue": 0.25}`))
		require.NoError(t, err)
		assert.Equal(t, "0.25", patch.RedemptionRate.String())
	})

	t.Run("both aliases agreeing", func(t *testing.T) {
		patch, err := ParseConfigPatch([]byte(`{"pointValue": 2, "redemptionRate": 2.0}`))
		require.NoError(t, err)
		assert.True(t, patch.RedemptionRate.Equal(decimal.NewFromInt(2)))
	})

	t.Run("unknown keys are ignored", func(t *testing.T) {
		patch, err := ParseConfigPatch([]byte(`{"creditPercentage": 5, "theme": "dark"}`))
		require.NoError(t, err)
		assert.Equal(t, "5", patch.CreditPercentage.String())
	})

	invalid := map[string]string{
		"not json":           `{creditPercentage: 5`,
		"array":              `[1, 2]`,
		"string value":       `{"creditPercentage": "10"}`,
		"above 100":          `{"creditPercentage": 101}`,
		"negative":           `{"creditPercentage": -1}`,
		"zero rate":          `{"redemptionRate": 0}`,
		"null rate":          `{"pointValue": null}`,
		"aliases disagree":   `{"pointValue": 1, "redemptionRate": 2}`,
		"no recognized keys": `{"foo": 1}`,
		"empty object":       `{}`,
	}
	for name, body := range invalid {
		t.Run(name, func(t *testing.T) {
			_, err := ParseConfigPatch([]byte(body))
			assert.ErrorIs(t, err, errs.ErrInvalidConfigUpdate)
			assert.Equal(t, errs.KindInvalidArgument, errs.KindOf(err))
		})
	}
}

func TestUpdateGlobalConfig(t *testing.T) {
	ctx := context.Background()

	t.Run("merges the patch", func(t *testing.T) {
		s := newStore()
		f := newFixture(t, s)

		require.NoError(t, f.service.UpdateGlobalConfig(ctx, "admin-1", []byte(`{"pointValue": 1.5}`)))

		assert.Equal(t, "10", s.config.CreditPercentage.String())
		assert.Equal(t, "1.5", s.config.RedemptionRate.String())
		assert.Equal(t, fixedTime, s.config.UpdatedAt)

		records := s.recordsOf(entity.TypeUpdateGlobalConfig)
		require.Len(t, records, 1)
		assert.Equal(t, map[string]any{"redemptionRate": 1.5}, records[0].Details["changes"])
	})

	t.Run("out of range leaves config unchanged", func(t *testing.T) {
		s := newStore()
		f := newFixture(t, s)

		err := f.service.UpdateGlobalConfig(ctx, "admin-1", []byte(`{"creditPercentage": 101}`))

		assert.Equal(t, errs.KindInvalidArgument, errs.KindOf(err))
		assert.Equal(t, "10", s.config.CreditPercentage.String())
		assert.Empty(t, s.records)
	})

	t.Run("creates a missing singleton", func(t *testing.T) {
		s := newStore()
		s.config = nil
		f := newFixture(t, s)

		require.NoError(t, f.service.UpdateGlobalConfig(ctx, "admin-1", []byte(`{"creditPercentage": 3, "redemptionRate": 0.5}`)))

		require.NotNil(t, s.config)
		assert.True(t, s.config.HasValidRedemptionRate())
	})

	t.Run("managers cannot update", func(t *testing.T) {
		s := newStore()
		s.addUser("m1", entity.RoleManager, "")
		f := newFixture(t, s)

		err := f.service.UpdateGlobalConfig(ctx, "m1", []byte(`{"creditPercentage": 1}`))

		assert.ErrorIs(t, err, errs.ErrPermissionDenied)
	})
}

func TestGetGlobalConfig(t *testing.T) {
	s := newStore()
	s.addUser("c1", entity.RoleCustomer, "")
	f := newFixture(t, s)

	config, err := f.service.GetGlobalConfig(context.Background(), "c1")

	require.NoError(t, err)
	assert.Equal(t, "10", config.CreditPercentage.String())

	_, err = f.service.GetGlobalConfig(context.Background(), "")
	assert.ErrorIs(t, err, errs.ErrUnauthenticated)
}

func TestListTransactions(t *testing.T) {
	s := newStore()
	for _, id := range []string{"t1", "t2", "t3"} {
		s.records = append(s.records, &entity.Transaction{ID: id, Type: entity.TypeCredit})
	}
	f := newFixture(t, s)

	records, err := f.service.ListTransactions(context.Background(), "admin-1", 2)

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "t3", records[0].ID)
	assert.Equal(t, 50, normalizeLimit(0))
	assert.Equal(t, 500, normalizeLimit(10_000))
}
