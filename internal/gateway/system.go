package gateway

import (
	"time"

	"github.com/google/uuid"
)

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns the current local time.
func (SystemClock) Now() time.Time { return time.Now() }

// UUIDGenerator issues random (version 4) UUIDs.
type UUIDGenerator struct{}

// NewID returns a fresh random UUID.
func (UUIDGenerator) NewID() uuid.UUID { return uuid.New() }
