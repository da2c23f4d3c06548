package retry

import (
	"time"

	"gitlab.ozon.dev/safariproxd/recovery/internal/domain"
)

// Schedule turns a strategy plan into concrete deadlines. It implements
// domain.Planner.
type Schedule struct {
	policy     TimePolicy
	strategy   Strategy
	finalGrace time.Duration
}

func NewSchedule(policy TimePolicy, strategy Strategy, finalGrace time.Duration) *Schedule {
	if strategy == nil {
		strategy = &ReasonStrategy{Default: DefaultPlan()}
	}
	if finalGrace < 0 {
		finalGrace = 0
	}
	return &Schedule{policy: policy, strategy: strategy, finalGrace: finalGrace}
}

func (s *Schedule) MaxAttempts(reason domain.FailureReason) int {
	return s.strategy.PlanFor(reason).MaxAttempts
}

func (s *Schedule) Hint(reason domain.FailureReason) string {
	return s.strategy.PlanFor(reason).Hint
}

func (s *Schedule) Policy() TimePolicy {
	return s.policy
}

func (s *Schedule) NextAttemptAt(r domain.Record) time.Time {
	plan := s.strategy.PlanFor(r.FailureReason)
	if r.AttemptCount >= plan.MaxAttempts {
		base := r.UpdatedAt
		if r.LastAttemptAt != nil {
			base = *r.LastAttemptAt
		}
		return base.Add(s.finalGrace)
	}
	return s.policy.Adjust(r.CycleStartedAt.Add(plan.Delays[r.AttemptCount]))
}
