package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/event-management-api/internal/domain"
)

type fakeEventRepository struct {
	mu      sync.Mutex
	events  map[uint]*domain.Event
	findErr error
}

func newFakeEventRepository(events ...domain.Event) *fakeEventRepository {
	r := &fakeEventRepository{events: make(map[uint]*domain.Event)}
	for i := range events {
		e := events[i]
		r.events[e.ID] = &e
	}
	return r
}

func (r *fakeEventRepository) FindAll(context.Context) ([]domain.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.findErr != nil {
		return nil, r.findErr
	}

	events := make([]domain.Event, 0, len(r.events))
	for _, e := range r.events {
		events = append(events, *e)
	}
	return events, nil
}

func (r *fakeEventRepository) CompleteIfScheduled(_ context.Context, id uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.events[id]
	if !ok || e.Status != domain.EventScheduled {
		return false, nil
	}
	e.Status = domain.EventCompleted
	return true, nil
}

func (r *fakeEventRepository) status(id uint) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.events[id].Status
}

func TestStatusSweeper_Sweep(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	repo := newFakeEventRepository(
		domain.Event{ID: 1, Status: domain.EventScheduled, DateTime: now.Add(-time.Hour)},
		domain.Event{ID: 2, Status: domain.EventScheduled, DateTime: now.Add(time.Hour)},
		domain.Event{ID: 3, Status: domain.EventCancelled, DateTime: now.Add(-time.Hour)},
		domain.Event{ID: 4, Status: "scheduled", DateTime: now.Add(-time.Hour)},
		domain.Event{ID: 5, Status: domain.EventScheduled},
		domain.Event{ID: 6, Status: domain.EventScheduled, DateTime: now},
	)
	sweeper := NewStatusSweeper(repo, "")

	updated, err := sweeper.Sweep(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 1, updated)

	assert.Equal(t, domain.EventCompleted, repo.status(1))
	assert.Equal(t, domain.EventScheduled, repo.status(2))
	assert.Equal(t, domain.EventCancelled, repo.status(3))
	assert.Equal(t, "scheduled", repo.status(4))
	assert.Equal(t, domain.EventScheduled, repo.status(5))
	assert.Equal(t, domain.EventScheduled, repo.status(6))

	updated, err = sweeper.Sweep(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 0, updated)
}

func TestStatusSweeper_SweepError(t *testing.T) {
	repo := newFakeEventRepository()
	repo.findErr = errors.New("db down")

	_, err := NewStatusSweeper(repo, "").Sweep(context.Background(), time.Now())

	assert.ErrorIs(t, err, repo.findErr)
}

func TestStatusSweeper_Start(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	repo := newFakeEventRepository(domain.Event{ID: 1, Status: domain.EventScheduled, DateTime: now.Add(-time.Minute)})

	sweeper := NewStatusSweeper(repo, DefaultSpec)
	sweeper.now = func() time.Time { return now }

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, sweeper.Start(ctx))
	assert.Equal(t, domain.EventCompleted, repo.status(1))
}

func TestStatusSweeper_StartInvalidSpec(t *testing.T) {
	err := NewStatusSweeper(newFakeEventRepository(), "not a cron").Start(context.Background())

	assert.Error(t, err)
}
