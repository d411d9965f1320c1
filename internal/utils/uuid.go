// Package utils provides general-purpose helper utilities used across
// different parts of the application.
package utils

import "github.com/google/uuid"

// UUIDGenerator produces unique string identifiers. Used for recovery tokens
// and request trace IDs.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a random (v4) UUID string. Recovery tokens must not be
// time-ordered, so the sortable v7 variant is deliberately not used here.
func (g *UUIDGenerator) Generate() string {
	return uuid.NewString()
}
