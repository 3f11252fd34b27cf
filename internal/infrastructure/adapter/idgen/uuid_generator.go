package idgen

import (
	"github.com/google/uuid"

	"github.com/powerstack-ng/powerstack-api/internal/domain/port/core"
)

// UUIDGenerator issues v4 UUIDs for transaction references and user IDs.
type UUIDGenerator struct{}

// NewUUIDGenerator creates a new UUID-backed reference generator
func NewUUIDGenerator() core.ReferenceGenerator {
	return &UUIDGenerator{}
}

// NewReference returns a fresh v4 UUID string
func (g *UUIDGenerator) NewReference() string {
	return uuid.NewString()
}
