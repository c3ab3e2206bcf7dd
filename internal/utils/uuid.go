package utils

import "github.com/google/uuid"

// RequestIDGenerator produces time-ordered request identifiers.
type RequestIDGenerator struct {
}

func NewRequestIDGenerator() *RequestIDGenerator {
	return &RequestIDGenerator{}
}

func (g *RequestIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
