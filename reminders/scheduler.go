package reminders

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Delivery receives notifications as they come due. Implementations
// must tolerate being called from the scheduler goroutine.
type Delivery func(Notification)

// Scheduler periodically evaluates the reminder rules and hands new
// notifications to a delivery callback. Deterministic notification IDs
// keep each notification to a single delivery per scheduler lifetime.
type Scheduler struct {
	rules    *Rules
	deliver  Delivery
	interval time.Duration
	seen     map[uuid.UUID]struct{}
	logger   *slog.Logger
}

// SchedulerOption configures a Scheduler.
type SchedulerOption func(*Scheduler)

// WithInterval sets the evaluation period. Default is one hour.
func WithInterval(interval time.Duration) SchedulerOption {
	return func(s *Scheduler) {
		if interval > 0 {
			s.interval = interval
		}
	}
}

// WithSchedulerLogger sets the logger used by the scheduler.
func WithSchedulerLogger(logger *slog.Logger) SchedulerOption {
	return func(s *Scheduler) {
		s.logger = logger.With("component", "reminder-scheduler")
	}
}

// NewScheduler creates a scheduler evaluating rules into deliver.
func NewScheduler(rules *Rules, deliver Delivery, options ...SchedulerOption) *Scheduler {
	s := &Scheduler{
		rules:    rules,
		deliver:  deliver,
		interval: time.Hour,
		seen:     map[uuid.UUID]struct{}{},
		logger:   slog.Default().With("component", "reminder-scheduler"),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Run evaluates immediately and then on every tick until the context is
// cancelled. Rule evaluation errors are logged and retried on the next
// tick.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.evaluate(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.evaluate(ctx)
		}
	}
}

// Evaluate runs one rule pass at the given instant, delivering only
// notifications not seen before. Exposed for direct use by callers that
// manage their own timing.
func (s *Scheduler) Evaluate(ctx context.Context, now time.Time) error {
	notifications, err := s.rules.Pending(ctx, now)
	if err != nil {
		return err
	}
	for _, notification := range notifications {
		if _, ok := s.seen[notification.ID]; ok {
			continue
		}
		s.seen[notification.ID] = struct{}{}
		s.deliver(notification)
	}
	return nil
}

func (s *Scheduler) evaluate(ctx context.Context) {
	if err := s.Evaluate(ctx, time.Now()); err != nil {
		s.logger.Error("rule evaluation failed", "err", err)
	}
}
