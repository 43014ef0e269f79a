package id

import "github.com/google/uuid"

// UUIDGenerator issues random UUIDs as receipt identifiers.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator { return &UUIDGenerator{} }

func (*UUIDGenerator) NewID() string { return uuid.NewString() }
