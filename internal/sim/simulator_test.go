package sim

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"campusevents/internal/model"
	"campusevents/internal/store"
)

type memStorage struct {
	blobs map[string][]byte
}

func (m *memStorage) Get(ctx context.Context, key string) ([]byte, error) {
	return m.blobs[key], nil
}

func (m *memStorage) Set(ctx context.Context, key string, value []byte) error {
	m.blobs[key] = value
	return nil
}

type seqIDGenerator struct {
	next int64
}

func (g *seqIDGenerator) NextID() int64 {
	g.next++
	return g.next
}

// fixtureStore loads a store from hand-built collection blobs.
func fixtureStore(t *testing.T, users []model.User, events []model.Event, regs []model.Registration) *store.Store {
	t.Helper()
	blobs := map[string][]byte{}
	for key, v := range map[string]any{
		"campus_events:users":         users,
		"campus_events:events":        events,
		"campus_events:registrations": regs,
	} {
		payload, err := json.Marshal(v)
		assert.NoError(t, err)
		blobs[key] = payload
	}
	s := store.New(&memStorage{blobs: blobs}, &seqIDGenerator{next: 1000})
	s.Load(context.Background())
	return s
}

func soon(days int) time.Time {
	return time.Now().AddDate(0, 0, days)
}

func TestTickInsertsPendingRegistration(t *testing.T) {
	ctx := context.Background()
	st := fixtureStore(t,
		[]model.User{{ID: 1, Name: "Student", Role: model.RoleStudent, Email: "s@x.com"}},
		[]model.Event{{ID: 1, Title: "Expo", Date: soon(7), MaxCapacity: 10}},
		nil,
	)
	simulator := New(st, time.Second, 1)

	assert.True(t, simulator.Tick(ctx))
	regs := st.RegistrationsForEvent(1)
	assert.Len(t, regs, 1)
	assert.Equal(t, model.StatusPending, regs[0].Status)
	assert.Equal(t, int64(1), regs[0].UserID)

	// The pair is now registered, so every further tick is a skip.
	for i := 0; i < 20; i++ {
		assert.False(t, simulator.Tick(ctx))
	}
	assert.Len(t, st.RegistrationsForEvent(1), 1)
}

func TestTickNeverExceedsCapacity(t *testing.T) {
	ctx := context.Background()
	st := fixtureStore(t,
		[]model.User{
			{ID: 1, Name: "A", Role: model.RoleStudent, Email: "a@x.com"},
			{ID: 2, Name: "B", Role: model.RoleStudent, Email: "b@x.com"},
		},
		[]model.Event{{ID: 1, Title: "Small Room", Date: soon(7), MaxCapacity: 1}},
		[]model.Registration{{ID: 1, EventID: 1, UserID: 1, Status: model.StatusApproved}},
	)
	simulator := New(st, time.Second, 42)

	for i := 0; i < 100; i++ {
		assert.False(t, simulator.Tick(ctx), "a full event must never gain a synthetic row")
	}
	assert.Len(t, st.RegistrationsForEvent(1), 1)
}

func TestTickSkipsEmptyPools(t *testing.T) {
	ctx := context.Background()

	t.Run("no students", func(t *testing.T) {
		st := fixtureStore(t,
			[]model.User{{ID: 1, Name: "Org", Role: model.RoleOrganizer, Email: "o@x.com"}},
			[]model.Event{{ID: 1, Title: "Expo", Date: soon(7), MaxCapacity: 10}},
			nil,
		)
		simulator := New(st, time.Second, 7)
		assert.False(t, simulator.Tick(ctx))
		assert.Empty(t, st.Registrations())
	})

	t.Run("no events", func(t *testing.T) {
		st := fixtureStore(t,
			[]model.User{{ID: 1, Name: "Student", Role: model.RoleStudent, Email: "s@x.com"}},
			[]model.Event{},
			nil,
		)
		simulator := New(st, time.Second, 7)
		assert.False(t, simulator.Tick(ctx))
		assert.Empty(t, st.Registrations())
	})
}

func TestTickOnlyPicksStudents(t *testing.T) {
	ctx := context.Background()
	st := fixtureStore(t,
		[]model.User{
			{ID: 1, Name: "Org", Role: model.RoleOrganizer, Email: "o@x.com"},
			{ID: 2, Name: "Admin", Role: model.RoleAdmin, Email: "a@x.com"},
			{ID: 3, Name: "Student", Role: model.RoleStudent, Email: "s@x.com"},
		},
		[]model.Event{{ID: 1, Title: "Expo", Date: soon(7), MaxCapacity: 10}},
		nil,
	)
	simulator := New(st, time.Second, 3)

	assert.True(t, simulator.Tick(ctx))
	regs := st.RegistrationsForEvent(1)
	assert.Len(t, regs, 1)
	assert.Equal(t, int64(3), regs[0].UserID)
}

func TestRunStopsOnCancel(t *testing.T) {
	st := fixtureStore(t,
		[]model.User{{ID: 1, Name: "Student", Role: model.RoleStudent, Email: "s@x.com"}},
		[]model.Event{{ID: 1, Title: "Expo", Date: soon(7), MaxCapacity: 10}},
		nil,
	)
	simulator := New(st, time.Millisecond, 1)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		simulator.Run(ctx)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("simulator did not stop after cancel")
	}
}
