package domain

import (
	"time"
)

type RecordStatus uint8

const (
	StatusPending RecordStatus = iota
	StatusRetrying
	StatusRecovered
	StatusAbandoned
)

// MaxAttempts is the hard upper bound for attempts in one cycle. Strategies
// may allow fewer, never more.
const MaxAttempts = 4

type FailureReason string

const (
	ReasonInsufficientFunds FailureReason = "insufficient_funds"
	ReasonCardDeclined      FailureReason = "card_declined"
	ReasonExpiredCard       FailureReason = "expired_card"
	ReasonProcessingError   FailureReason = "processing_error"
	ReasonIncorrectCVC      FailureReason = "incorrect_cvc"
	ReasonOther             FailureReason = "other"
)

// Record is one failed payment and its retry state.
type Record struct {
	ID             string
	CustomerID     string
	CustomerName   string
	Email          string
	Amount         int64
	Currency       string
	FailureReason  FailureReason
	Status         RecordStatus
	AttemptCount   int
	CreatedAt      time.Time
	CycleStartedAt time.Time
	NextAttemptAt  *time.Time
	LastAttemptAt  *time.Time
	RecoveredAt    *time.Time
	UpdatedAt      time.Time
	Version        int64
}

// Planner computes deadlines for a record. Implemented by retry.Schedule.
type Planner interface {
	MaxAttempts(reason FailureReason) int
	// NextAttemptAt returns the deadline following r.AttemptCount attempts.
	// When the record has used all its attempts the deadline is the moment
	// it gets abandoned.
	NextAttemptAt(r Record) time.Time
}

type UpsertResult uint8

const (
	UpsertCreated UpsertResult = iota
	UpsertRefreshed
	UpsertRestarted
	// UpsertIgnored means the record is Recovered and was left as is.
	UpsertIgnored
)

func (r UpsertResult) String() string {
	switch r {
	case UpsertCreated:
		return "created"
	case UpsertRefreshed:
		return "refreshed"
	case UpsertRestarted:
		return "restarted"
	case UpsertIgnored:
		return "ignored"
	default:
		return "unknown"
	}
}

func (s RecordStatus) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusRetrying:
		return "retrying"
	case StatusRecovered:
		return "recovered"
	case StatusAbandoned:
		return "abandoned"
	default:
		return "unknown"
	}
}

func ParseStatus(s string) (RecordStatus, bool) {
	switch s {
	case "pending":
		return StatusPending, true
	case "retrying":
		return StatusRetrying, true
	case "recovered":
		return StatusRecovered, true
	case "abandoned":
		return StatusAbandoned, true
	default:
		return 0, false
	}
}

func (r *Record) IsTerminal() bool {
	return r.Status == StatusRecovered || r.Status == StatusAbandoned
}

func (r *Record) IsActive() bool {
	return r.Status == StatusPending || r.Status == StatusRetrying
}

func (r *Record) IsDue(now time.Time) bool {
	return r.IsActive() && r.NextAttemptAt != nil && !r.NextAttemptAt.After(now)
}

// NewRecord builds the first state of a record from a failure event.
func NewRecord(ev FailureEvent, now time.Time, p Planner) Record {
	createdAt := ev.OccurredAt
	if createdAt.IsZero() || createdAt.After(now) {
		createdAt = now
	}
	r := Record{
		ID:             ev.PaymentID,
		CreatedAt:      createdAt,
		CycleStartedAt: createdAt,
		Status:         StatusPending,
		UpdatedAt:      now,
	}
	r.refresh(ev)
	next := p.NextAttemptAt(r)
	r.NextAttemptAt = &next
	return r
}

// ApplyFailure merges a failure event into the current record. cur is nil
// when no record exists for the id yet. Recovered is final; only an
// Abandoned record starts a new cycle.
func ApplyFailure(cur *Record, ev FailureEvent, now time.Time, p Planner) (Record, UpsertResult) {
	if cur == nil {
		return NewRecord(ev, now, p), UpsertCreated
	}
	if cur.Status == StatusRecovered {
		return cur.Clone(), UpsertIgnored
	}

	r := *cur
	r.refresh(ev)
	r.UpdatedAt = now
	if r.IsActive() {
		return r, UpsertRefreshed
	}

	anchor := ev.OccurredAt
	if anchor.IsZero() || anchor.After(now) || anchor.Before(r.CycleStartedAt) {
		anchor = now
	}
	r.Status = StatusPending
	r.AttemptCount = 0
	r.CycleStartedAt = anchor
	r.LastAttemptAt = nil
	r.RecoveredAt = nil
	next := p.NextAttemptAt(r)
	r.NextAttemptAt = &next
	return r, UpsertRestarted
}

// refresh copies informational fields. Customer identity set at creation is
// only filled in when it was empty.
func (r *Record) refresh(ev FailureEvent) {
	if r.CustomerID == "" {
		r.CustomerID = ev.CustomerID
	}
	if r.CustomerName == "" {
		r.CustomerName = ev.CustomerName
	}
	if r.Email == "" {
		r.Email = ev.Email
	}
	r.Amount = ev.Amount
	r.Currency = ev.Currency
	if ev.FailureReason != "" {
		r.FailureReason = ev.FailureReason
	}
	if r.FailureReason == "" {
		r.FailureReason = ReasonOther
	}
}

// Transition describes what Advance did to a record.
type Transition struct {
	Kind    NotificationKind
	Attempt int
	From    RecordStatus
	To      RecordStatus
}

// Advance performs one scheduled step on a due record.
func (r *Record) Advance(now time.Time, p Planner) (Transition, error) {
	if !r.IsDue(now) {
		return Transition{}, NotDueError(r.ID)
	}

	tr := Transition{From: r.Status}
	limit := p.MaxAttempts(r.FailureReason)
	if r.AttemptCount < limit {
		r.AttemptCount++
		r.Status = StatusRetrying
		attemptAt := now
		r.LastAttemptAt = &attemptAt
		next := p.NextAttemptAt(*r)
		r.NextAttemptAt = &next
		tr.Kind = KindForAttempt(r.AttemptCount, limit)
	} else {
		r.Status = StatusAbandoned
		r.NextAttemptAt = nil
		tr.Kind = KindAbandoned
	}
	r.UpdatedAt = now
	tr.Attempt = r.AttemptCount
	tr.To = r.Status
	return tr, nil
}

// MarkRecovered forces a non-terminal record into Recovered.
func (r *Record) MarkRecovered(at time.Time) bool {
	if !r.IsActive() {
		return false
	}
	recoveredAt := at
	r.Status = StatusRecovered
	r.RecoveredAt = &recoveredAt
	r.NextAttemptAt = nil
	r.UpdatedAt = at
	return true
}

// Clone returns a copy that shares no pointers with r.
func (r Record) Clone() Record {
	r.NextAttemptAt = cloneTime(r.NextAttemptAt)
	r.LastAttemptAt = cloneTime(r.LastAttemptAt)
	r.RecoveredAt = cloneTime(r.RecoveredAt)
	return r
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
