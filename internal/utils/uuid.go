package utils

import "github.com/google/uuid"

// UUIDGenerator hands out time-ordered ids for orders, stored files and
// trace ids, so ids created later sort later.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7 string. If the clock source fails it falls back
// to a random v4 id.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
