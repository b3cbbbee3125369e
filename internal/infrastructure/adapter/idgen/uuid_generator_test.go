package idgen

import (
	"testing"

	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/validation"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator_NewID(t *testing.T) {
	gen := NewUUIDGenerator()

	seen := make(map[string]struct{}, 100)
	for i := 0; i < 100; i++ {
		id := gen.NewID()

		parsed, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(4), parsed.Version())
		assert.True(t, validation.IsValidID(id), "generated ids must pass id validation")

		_, dup := seen[id]
		assert.False(t, dup)
		seen[id] = struct{}{}
	}
}
