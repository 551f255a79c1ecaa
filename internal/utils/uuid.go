package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered record identifiers. V7 keeps local
// insertion order roughly sortable by id, which helps when inspecting the
// sync queue by hand.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
