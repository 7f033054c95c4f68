package service

import (
	"strconv"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

type IDGenerator interface {
	NewID() string
}

type Clock interface {
	Now() time.Time
}

// UUIDGenerator issues time-ordered UUIDv7 identifiers.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// SequenceGenerator issues "<prefix>-1", "<prefix>-2", ... for tests and demos.
type SequenceGenerator struct {
	Prefix string
	next   atomic.Int64
}

func (g *SequenceGenerator) NewID() string {
	return g.Prefix + "-" + strconv.FormatInt(g.next.Add(1), 10)
}
