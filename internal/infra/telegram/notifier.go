package telegram

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"time"

	"gitlab.ozon.dev/safariproxd/recovery/internal/domain"
)

// Notifier posts the intents operators care about to a chat.
type Notifier struct {
	client *Client
	loc    *time.Location
	kinds  map[domain.NotificationKind]bool
}

func NewNotifier(client *Client, loc *time.Location) *Notifier {
	if loc == nil {
		loc = time.UTC
	}
	return &Notifier{
		client: client,
		loc:    loc,
		kinds: map[domain.NotificationKind]bool{
			domain.KindFinalNotice: true,
			domain.KindRecovered:   true,
			domain.KindAbandoned:   true,
		},
	}
}

func (n *Notifier) Wants(kind domain.NotificationKind) bool {
	return n.kinds[kind]
}

func (n *Notifier) NotifyIntent(ctx context.Context, intent domain.NotificationIntent) error {
	if !n.client.IsEnabled() {
		slog.Debug("Telegram notifications disabled, skipping")
		return nil
	}
	if !n.Wants(intent.Kind) {
		return nil
	}
	if err := n.client.SendMessage(ctx, n.Format(intent)); err != nil {
		return fmt.Errorf("send telegram notification: %w", err)
	}
	slog.Debug("Telegram notification sent", "intent_id", intent.ID, "kind", intent.Kind)
	return nil
}

func (n *Notifier) Format(intent domain.NotificationIntent) string {
	ts := intent.CreatedAt.In(n.loc).Format("2006-01-02 15:04")
	id := html.EscapeString(intent.RecordID)
	amount := html.EscapeString(intent.Context["amount"])
	customer := html.EscapeString(intent.Context["customer_name"])
	reason := html.EscapeString(intent.Context["reason"])

	switch intent.Kind {
	case domain.KindRecovered:
		return fmt.Sprintf("✅ <b>Payment recovered</b>\n\nPayment: <code>%s</code>\nCustomer: %s\nAmount: %s\nAttempts: %d\nTime: %s",
			id, customer, amount, intent.Attempt, ts)
	case domain.KindAbandoned:
		return fmt.Sprintf("❌ <b>Payment abandoned</b>\n\nPayment: <code>%s</code>\nCustomer: %s\nAmount: %s\nReason: %s\nTime: %s",
			id, customer, amount, reason, ts)
	case domain.KindFinalNotice:
		return fmt.Sprintf("⚠️ <b>Final notice sent</b>\n\nPayment: <code>%s</code>\nCustomer: %s\nAmount: %s\nReason: %s\nTime: %s",
			id, customer, amount, reason, ts)
	default:
		return fmt.Sprintf("ℹ️ <b>%s</b>\n\nPayment: <code>%s</code>\nAmount: %s\nTime: %s",
			html.EscapeString(string(intent.Kind)), id, amount, ts)
	}
}

func (n *Notifier) NotifyError(ctx context.Context, errorMsg, ref string) error {
	if !n.client.IsEnabled() {
		return nil
	}
	message := fmt.Sprintf("❗ <b>Processing error</b>\n\nRef: <code>%s</code>\nError: <code>%s</code>\nTime: %s",
		html.EscapeString(ref), html.EscapeString(errorMsg), time.Now().In(n.loc).Format("15:04:05"))
	if err := n.client.SendMessage(ctx, message); err != nil {
		return fmt.Errorf("send telegram error: %w", err)
	}
	return nil
}
