package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// FailureEvent is a validated payment failure reported by the provider.
type FailureEvent struct {
	EventID       string
	PaymentID     string
	CustomerID    string
	CustomerName  string
	Email         string
	Amount        int64
	Currency      string
	FailureReason FailureReason
	OccurredAt    time.Time
}

// SuccessEvent reports that a previously failed payment went through.
type SuccessEvent struct {
	EventID    string
	PaymentID  string
	OccurredAt time.Time
}

func (e *FailureEvent) Validate() error {
	if e.PaymentID == "" {
		return InvalidEventError("missing payment id")
	}
	if e.Amount <= 0 {
		return InvalidEventError(fmt.Sprintf("amount must be positive, got %d", e.Amount))
	}
	if len(e.Currency) != 3 {
		return InvalidEventError(fmt.Sprintf("currency %q is not an ISO code", e.Currency))
	}
	if e.Email == "" || !strings.Contains(e.Email, "@") {
		return InvalidEventError(fmt.Sprintf("recipient email %q is invalid", e.Email))
	}
	e.Currency = strings.ToUpper(e.Currency)
	e.FailureReason = FailureReason(strings.ToLower(string(e.FailureReason)))
	return nil
}

func (e *SuccessEvent) Validate() error {
	if e.PaymentID == "" {
		return InvalidEventError("missing payment id")
	}
	return nil
}

type NotificationKind string

const (
	KindFailed      NotificationKind = "failed"
	KindRetry1h     NotificationKind = "retry_1h"
	KindRetry24h    NotificationKind = "retry_24h"
	KindRetry3d     NotificationKind = "retry_3d"
	KindFinalNotice NotificationKind = "final_notice"
	KindRecovered   NotificationKind = "recovered"
	KindAbandoned   NotificationKind = "abandoned"
)

// KindForAttempt maps an attempt number to its template. The last attempt a
// strategy allows always gets the final notice.
func KindForAttempt(attempt, limit int) NotificationKind {
	if attempt >= limit {
		return KindFinalNotice
	}
	switch attempt {
	case 1:
		return KindRetry1h
	case 2:
		return KindRetry24h
	default:
		return KindRetry3d
	}
}

// NotificationIntent asks the notification collaborator to send one message.
type NotificationIntent struct {
	ID        uuid.UUID         `json:"id"`
	RecordID  string            `json:"record_id"`
	Kind      NotificationKind  `json:"kind"`
	Recipient string            `json:"recipient_email"`
	Attempt   int               `json:"attempt"`
	Context   map[string]string `json:"context"`
	CreatedAt time.Time         `json:"created_at"`
}

func NewIntent(r Record, kind NotificationKind, now time.Time) NotificationIntent {
	ctx := map[string]string{
		"customer_name": r.CustomerName,
		"amount":        FormatAmount(r.Amount, r.Currency),
		"currency":      r.Currency,
		"reason":        string(r.FailureReason),
		"status":        r.Status.String(),
	}
	if ctx["customer_name"] == "" {
		ctx["customer_name"] = "Valued Customer"
	}
	if r.NextAttemptAt != nil && r.IsActive() {
		ctx["next_attempt_at"] = r.NextAttemptAt.UTC().Format(time.RFC3339)
	}
	return NotificationIntent{
		ID:        uuid.New(),
		RecordID:  r.ID,
		Kind:      kind,
		Recipient: r.Email,
		Attempt:   r.AttemptCount,
		Context:   ctx,
		CreatedAt: now,
	}
}

// FormatAmount renders minor units as a decimal string, e.g. 1999 USD -> "19.99 USD".
func FormatAmount(amount int64, currency string) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return fmt.Sprintf("%s%d.%02d %s", sign, amount/100, amount%100, currency)
}

type OutboxStatus string

const (
	OutboxStatusCreated   OutboxStatus = "CREATED"
	OutboxStatusCompleted OutboxStatus = "COMPLETED"
	OutboxStatusFailed    OutboxStatus = "FAILED"
)

const (
	OutboxMaxAttempts = 3
	OutboxRetryDelay  = 30 * time.Second
)

type OutboxMessage struct {
	ID            uuid.UUID
	Key           string
	Payload       []byte
	Status        OutboxStatus
	Error         *string
	Attempts      int
	CreatedAt     time.Time
	SentAt        *time.Time
	LastAttemptAt *time.Time
}

func (m *OutboxMessage) CanRetry(now time.Time) bool {
	if m.Attempts >= OutboxMaxAttempts {
		return false
	}
	if m.LastAttemptAt == nil {
		return true
	}
	return now.Sub(*m.LastAttemptAt) >= OutboxRetryDelay
}

func (m *OutboxMessage) ShouldFail() bool {
	return m.Attempts >= OutboxMaxAttempts
}
