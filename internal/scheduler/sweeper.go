package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/vietanh2810/event-management-api/internal/domain"
)

// DefaultSpec runs the sweep daily at midnight.
const DefaultSpec = "0 0 * * *"

type EventRepository interface {
	FindAll(ctx context.Context) ([]domain.Event, error)
	CompleteIfScheduled(ctx context.Context, id uint) (bool, error)
}

// StatusSweeper moves scheduled events whose date has passed to Completed.
type StatusSweeper struct {
	repo EventRepository
	spec string
	now  func() time.Time
}

func NewStatusSweeper(repo EventRepository, spec string) *StatusSweeper {
	if spec == "" {
		spec = DefaultSpec
	}

	return &StatusSweeper{
		repo: repo,
		spec: spec,
		now:  time.Now,
	}
}

// Sweep completes every past due scheduled event and returns how many were updated.
func (s *StatusSweeper) Sweep(ctx context.Context, now time.Time) (int, error) {
	events, err := s.repo.FindAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	updated := 0
	for _, event := range events {
		if !event.IsPastDue(now) {
			continue
		}

		ok, err := s.repo.CompleteIfScheduled(ctx, event.ID)
		if err != nil {
			return updated, fmt.Errorf("s.repo.CompleteIfScheduled -> %w", err)
		}
		if ok {
			updated++
		}
	}

	return updated, nil
}

// Start runs one sweep immediately, then on the cron schedule until ctx is done.
func (s *StatusSweeper) Start(ctx context.Context) error {
	c := cron.New()
	if _, err := c.AddFunc(s.spec, func() { s.run(ctx) }); err != nil {
		return fmt.Errorf("c.AddFunc -> %w", err)
	}

	s.run(ctx)
	c.Start()

	go func() {
		<-ctx.Done()
		<-c.Stop().Done()
		zap.L().Info("status sweeper stopped")
	}()

	return nil
}

func (s *StatusSweeper) run(ctx context.Context) {
	updated, err := s.Sweep(ctx, s.now())
	if err != nil {
		zap.L().Error("status sweep failed", zap.Int("updated", updated), zap.Error(err))
		return
	}

	zap.L().Info("status sweep finished", zap.Int("updated", updated))
}
