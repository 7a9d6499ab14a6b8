package services

import "github.com/google/uuid"

// IDGenerator produces keys for records created without one
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator generates random version 4 UUIDs
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}
