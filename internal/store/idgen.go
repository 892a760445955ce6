package store

import (
	"sync"
	"time"
)

// IDGenerator allocates unique entity ids. It is injected into the store so
// tests can supply deterministic ids.
type IDGenerator interface {
	NextID() int64
}

// clockIDGenerator derives ids from the wall clock in milliseconds, bumping
// by one when two allocations land in the same millisecond.
type clockIDGenerator struct {
	mu   sync.Mutex
	last int64
}

// NewClockIDGenerator returns the production id generator.
func NewClockIDGenerator() IDGenerator {
	return &clockIDGenerator{}
}

func (g *clockIDGenerator) NextID() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	id := time.Now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}
