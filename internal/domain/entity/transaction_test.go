package entity

import (
	"testing"

	errs "github.com/amirhossein-jamali/bunk-loyalty/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransaction(t *testing.T) {
	clock := newClock()

	record, err := NewTransaction("t1", TypeCredit, "m1", RoleManager, map[string]any{
		DetailTargetUID:       "c1",
		DetailPointsChange:    int64(50),
		DetailResultingPoints: int64(120),
	}, clock)
	require.NoError(t, err)

	assert.Equal(t, "c1", record.TargetUID)
	assert.Equal(t, clock.Now(), record.Timestamp)
	assert.Nil(t, record.RequestID)
	assert.Equal(t, int64(50), record.PointsChange())
	assert.Equal(t, int64(120), record.ResultingPoints())

	record.WithRequestID("req-1")
	require.NotNil(t, record.RequestID)
	assert.Equal(t, "req-1", *record.RequestID)
}

func TestNewTransaction_Invalid(t *testing.T) {
	clock := newClock()

	_, err := NewTransaction("", TypeCredit, "m1", RoleManager, nil, clock)
	assert.ErrorIs(t, err, errs.ErrInvalidID)

	_, err = NewTransaction("t1", TypeCredit, "", RoleManager, nil, clock)
	assert.Equal(t, errs.KindInvalidArgument, errs.KindOf(err))
}

func TestTransaction_DetailsAfterJSONRoundTrip(t *testing.T) {
	record := &Transaction{Details: map[string]any{
		DetailPointsChange:    float64(-20),
		DetailResultingPoints: float64(30),
	}}

	assert.Equal(t, int64(-20), record.PointsChange())
	assert.Equal(t, int64(30), record.ResultingPoints())

	record.WithRequestID("")
	assert.Nil(t, record.RequestID)
	assert.Equal(t, int64(0), (&Transaction{}).PointsChange())
}

func TestBunk_ManagerSet(t *testing.T) {
	clock := newClock()
	bunk := NewBunk("b1", "Highway Fuels", "NH 48", "Pune", "Maharashtra", "411001", clock)
	assert.Empty(t, bunk.ManagerIDs)

	bunk.AddManager("m1", clock)
	bunk.AddManager("m2", clock)
	bunk.AddManager("m1", clock)
	assert.Equal(t, []string{"m1", "m2"}, bunk.ManagerIDs)
	assert.True(t, bunk.HasManager("m2"))

	bunk.RemoveManager("m1", clock)
	bunk.RemoveManager("missing", clock)
	assert.Equal(t, []string{"m2"}, bunk.ManagerIDs)

	snapshot := bunk.Snapshot().ToMap()
	assert.Equal(t, "Highway Fuels", snapshot["name"])
	assert.Equal(t, "411001", snapshot["pincode"])
}
