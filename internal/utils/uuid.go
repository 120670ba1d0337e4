package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered identifiers for correlation ids and
// new entities. It falls back to random v4 UUIDs if v7 generation fails.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new identifier in its canonical string form.
func (g *UUIDGenerator) Generate() string {
	return g.GenerateUUID().String()
}

// GenerateUUID returns a new identifier.
func (g *UUIDGenerator) GenerateUUID() uuid.UUID {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}

	return v7
}
