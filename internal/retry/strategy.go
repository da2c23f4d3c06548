package retry

import (
	"fmt"
	"time"

	"gitlab.ozon.dev/safariproxd/recovery/internal/domain"
)

// DefaultDelays are measured from the start of a retry cycle.
var DefaultDelays = []time.Duration{
	time.Hour,
	24 * time.Hour,
	72 * time.Hour,
	168 * time.Hour,
}

type Plan struct {
	Delays      []time.Duration
	MaxAttempts int
	Hint        string
}

func DefaultPlan() Plan {
	return Plan{
		Delays:      append([]time.Duration(nil), DefaultDelays...),
		MaxAttempts: domain.MaxAttempts,
		Hint:        "Please try again",
	}
}

func (p Plan) Validate() error {
	if p.MaxAttempts < 1 || p.MaxAttempts > domain.MaxAttempts {
		return fmt.Errorf("max attempts must be within [1, %d], got %d", domain.MaxAttempts, p.MaxAttempts)
	}
	if len(p.Delays) < p.MaxAttempts {
		return fmt.Errorf("need %d delays, got %d", p.MaxAttempts, len(p.Delays))
	}
	for i, d := range p.Delays {
		if d <= 0 {
			return fmt.Errorf("delay %d must be positive", i+1)
		}
		if i > 0 && d <= p.Delays[i-1] {
			return fmt.Errorf("delay %d (%s) must be later than delay %d (%s)", i+1, d, i, p.Delays[i-1])
		}
	}
	return nil
}

// Strategy picks a plan for a failure reason.
type Strategy interface {
	PlanFor(reason domain.FailureReason) Plan
}

// ReasonStrategy looks plans up by reason and falls back to Default.
type ReasonStrategy struct {
	Default Plan
	Reasons map[domain.FailureReason]Plan
}

func NewReasonStrategy(def Plan, reasons map[domain.FailureReason]Plan) (*ReasonStrategy, error) {
	if err := def.Validate(); err != nil {
		return nil, fmt.Errorf("default plan: %w", err)
	}
	for reason, p := range reasons {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("plan for %s: %w", reason, err)
		}
	}
	return &ReasonStrategy{Default: def, Reasons: reasons}, nil
}

func (s *ReasonStrategy) PlanFor(reason domain.FailureReason) Plan {
	if p, ok := s.Reasons[reason]; ok {
		return p
	}
	return s.Default
}

// DefaultReasonPlans is the per-reason table the product shipped with.
func DefaultReasonPlans() map[domain.FailureReason]Plan {
	return map[domain.FailureReason]Plan{
		domain.ReasonInsufficientFunds: {
			Delays:      []time.Duration{72 * time.Hour, 144 * time.Hour, 288 * time.Hour},
			MaxAttempts: 3,
			Hint:        "Please ensure sufficient funds are available",
		},
		domain.ReasonCardDeclined: {
			Delays:      DefaultDelays,
			MaxAttempts: 4,
			Hint:        "Please check your card details",
		},
		domain.ReasonExpiredCard: {
			Delays:      []time.Duration{time.Hour},
			MaxAttempts: 1,
			Hint:        "Your card has expired. Please update payment method",
		},
		domain.ReasonProcessingError: {
			Delays:      DefaultDelays,
			MaxAttempts: 4,
			Hint:        "A temporary processing error occurred",
		},
		domain.ReasonIncorrectCVC: {
			Delays:      []time.Duration{time.Hour, 24 * time.Hour},
			MaxAttempts: 2,
			Hint:        "Please verify your card security code",
		},
	}
}
