package utils

import "github.com/google/uuid"

// UUIDGenerator mints identifiers for trial sessions and projects.
// UUIDv7 keeps ids roughly insertion-ordered, which helps index locality
// on the projects table.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a time-ordered UUIDv7 string, falling back to a random
// UUIDv4 if the system clock source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
