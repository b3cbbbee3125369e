package idgen

import (
	coreport "github.com/amirhossein-jamali/bunk-loyalty/internal/domain/port/core"
	"github.com/google/uuid"
)

// UUIDGenerator issues random version 4 UUIDs
type UUIDGenerator struct{}

var _ coreport.IDGenerator = UUIDGenerator{}

// NewUUIDGenerator creates a new UUIDGenerator
func NewUUIDGenerator() UUIDGenerator {
	return UUIDGenerator{}
}

// NewID returns a new identifier
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}
