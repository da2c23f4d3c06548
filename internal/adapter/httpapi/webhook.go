package httpapi

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"gitlab.ozon.dev/safariproxd/recovery/internal/domain"
)

const maxWebhookBody = 1 << 20

const (
	eventPaymentFailed    = "invoice.payment_failed"
	eventPaymentSucceeded = "invoice.payment_succeeded"
	eventInvoicePaid      = "invoice.paid"
)

type stripeEvent struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Created int64  `json:"created"`
	Data    struct {
		Object stripeInvoice `json:"object"`
	} `json:"data"`
}

type stripeInvoice struct {
	ID            string `json:"id"`
	Customer      string `json:"customer"`
	CustomerEmail string `json:"customer_email"`
	CustomerName  string `json:"customer_name"`
	AmountDue     int64  `json:"amount_due"`
	Currency      string `json:"currency"`
	FailureCode   string `json:"failure_code"`
	LastError     *struct {
		Code        string `json:"code"`
		DeclineCode string `json:"decline_code"`
	} `json:"last_finalization_error"`
}

func (inv stripeInvoice) reason() domain.FailureReason {
	if inv.LastError != nil {
		if inv.LastError.DeclineCode != "" {
			return domain.FailureReason(inv.LastError.DeclineCode)
		}
		if inv.LastError.Code != "" {
			return domain.FailureReason(inv.LastError.Code)
		}
	}
	if inv.FailureCode != "" {
		return domain.FailureReason(inv.FailureCode)
	}
	return domain.ReasonOther
}

func (e stripeEvent) occurredAt() time.Time {
	if e.Created <= 0 {
		return time.Time{}
	}
	return time.Unix(e.Created, 0).UTC()
}

func (s *Server) stripeWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
	if err != nil {
		writeError(w, domain.InvalidEventError("read body: "+err.Error()))
		return
	}

	var ev stripeEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		writeError(w, domain.InvalidEventError("invalid payload: "+err.Error()))
		return
	}
	inv := ev.Data.Object

	switch ev.Type {
	case eventPaymentFailed:
		currency := inv.Currency
		if currency == "" {
			currency = "usd"
		}
		out, err := s.ingress.ReportFailure(r.Context(), domain.FailureEvent{
			EventID:       ev.ID,
			PaymentID:     inv.ID,
			CustomerID:    inv.Customer,
			CustomerName:  inv.CustomerName,
			Email:         inv.CustomerEmail,
			Amount:        inv.AmountDue,
			Currency:      currency,
			FailureReason: inv.reason(),
			OccurredAt:    ev.occurredAt(),
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"status":    "success",
			"result":    out.Result.String(),
			"duplicate": out.Duplicate,
		})

	case eventPaymentSucceeded, eventInvoicePaid:
		out, err := s.ingress.ReportSuccess(r.Context(), domain.SuccessEvent{
			EventID:    ev.ID,
			PaymentID:  inv.ID,
			OccurredAt: ev.occurredAt(),
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"status":    "success",
			"recovered": out.Recovered,
			"duplicate": out.Duplicate,
		})

	default:
		slog.Debug("Ignoring webhook event", "type", ev.Type, "event_id", ev.ID)
		writeJSON(w, http.StatusOK, map[string]string{"status": "ignored"})
	}
}
