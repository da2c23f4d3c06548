package httpapi

import (
	"time"

	"gitlab.ozon.dev/safariproxd/recovery/internal/domain"
)

type recordResponse struct {
	ID            string     `json:"id"`
	CustomerID    string     `json:"customer_id,omitempty"`
	CustomerName  string     `json:"customer_name,omitempty"`
	Email         string     `json:"email"`
	Amount        int64      `json:"amount"`
	AmountDisplay string     `json:"amount_display"`
	Currency      string     `json:"currency"`
	FailureReason string     `json:"failure_reason"`
	Status        string     `json:"status"`
	AttemptCount  int        `json:"attempt_count"`
	CreatedAt     time.Time  `json:"created_at"`
	NextAttemptAt *time.Time `json:"next_attempt_at,omitempty"`
	LastAttemptAt *time.Time `json:"last_attempt_at,omitempty"`
	RecoveredAt   *time.Time `json:"recovered_at,omitempty"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func toRecordResponse(r domain.Record) recordResponse {
	return recordResponse{
		ID:            r.ID,
		CustomerID:    r.CustomerID,
		CustomerName:  r.CustomerName,
		Email:         r.Email,
		Amount:        r.Amount,
		AmountDisplay: domain.FormatAmount(r.Amount, r.Currency),
		Currency:      r.Currency,
		FailureReason: string(r.FailureReason),
		Status:        r.Status.String(),
		AttemptCount:  r.AttemptCount,
		CreatedAt:     r.CreatedAt,
		NextAttemptAt: r.NextAttemptAt,
		LastAttemptAt: r.LastAttemptAt,
		RecoveredAt:   r.RecoveredAt,
		UpdatedAt:     r.UpdatedAt,
	}
}
