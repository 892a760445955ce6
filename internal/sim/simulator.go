// Package sim fabricates plausible pending registrations on a timer so the
// organizer dashboards have live traffic to show.
package sim

import (
	"context"
	"math/rand"
	"time"

	"campusevents/internal/model"
	"campusevents/internal/store"
)

// DefaultInterval is how often a synthetic registration is attempted.
const DefaultInterval = 5 * time.Second

// Simulator injects synthetic registrations into the store.
type Simulator struct {
	store    *store.Store
	interval time.Duration
	rng      *rand.Rand
}

// New creates a simulator. A non-positive interval falls back to
// DefaultInterval; the rand seed is injected so tests can be deterministic.
func New(st *store.Store, interval time.Duration, seed int64) *Simulator {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Simulator{
		store:    st,
		interval: interval,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

// Run ticks until the context is canceled. Each tick reads the live store
// state, so reloaded collections are picked up on the next tick without a
// restart.
func (s *Simulator) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Tick(ctx)
		}
	}
}

// Tick attempts one synthetic registration: a uniformly random student
// paired with a uniformly random event. The tick is skipped when either
// pool is empty; duplicate and capacity checks happen atomically inside the
// store at insert time. Reports whether a registration was inserted.
func (s *Simulator) Tick(ctx context.Context) bool {
	var students []model.User
	for _, u := range s.store.Users() {
		if u.Role == model.RoleStudent {
			students = append(students, u)
		}
	}
	events := s.store.Events()
	if len(students) == 0 || len(events) == 0 {
		return false
	}
	student := students[s.rng.Intn(len(students))]
	event := events[s.rng.Intn(len(events))]
	return s.store.AddSyntheticRegistration(ctx, student.ID, event.ID)
}
