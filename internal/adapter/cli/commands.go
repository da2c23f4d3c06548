package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"gitlab.ozon.dev/safariproxd/recovery/internal/config"
	"gitlab.ozon.dev/safariproxd/recovery/internal/domain"
	"gitlab.ozon.dev/safariproxd/recovery/internal/repository/postgres"
	"go.uber.org/multierr"
)

func parseTime(cmd *cobra.Command, name string, def time.Time) (time.Time, error) {
	raw, err := cmd.Flags().GetString(name)
	if err != nil {
		return time.Time{}, fmt.Errorf("flag.GetString: %w", err)
	}
	if raw == "" {
		return def, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, InvalidEventError(fmt.Sprintf("--%s: %v", name, err))
	}
	return t.UTC(), nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func closeRuntime(rt *Runtime) {
	if err := rt.Close(); err != nil {
		slog.Warn("Close failed", "error", err)
	}
}

func (a *CLIAdapter) Migrate(cmd *cobra.Command, args []string) error {
	cfg, err := a.config()
	if err != nil {
		return err
	}
	if cfg.Storage.Driver != config.StoragePostgres {
		return errors.New("ERROR: migrate requires storage.driver=postgres")
	}
	client, err := OpenDB(cmd.Context(), cfg)
	if err != nil {
		return InternalError(err)
	}
	defer client.Close()

	if err := postgres.Migrate(client.WriteDB()); err != nil {
		return InternalError(err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "MIGRATIONS_APPLIED")
	return nil
}

func (a *CLIAdapter) Tick(cmd *cobra.Command, args []string) error {
	rt, err := a.runtime(cmd.Context())
	if err != nil {
		return err
	}
	defer closeRuntime(rt)

	at, err := parseTime(cmd, "at", a.clock())
	if err != nil {
		return err
	}
	res, tickErr := rt.Scheduler(rt.Notifier).Tick(cmd.Context(), at)
	if err := printJSON(cmd.OutOrStdout(), res); err != nil {
		return err
	}
	if tickErr != nil {
		return fmt.Errorf("ERROR: %d record(s) failed: %w", len(multierr.Errors(tickErr)), tickErr)
	}
	return nil
}

func (a *CLIAdapter) Stats(cmd *cobra.Command, args []string) error {
	rt, err := a.runtime(cmd.Context())
	if err != nil {
		return err
	}
	defer closeRuntime(rt)

	st, err := rt.StatsService().Stats(cmd.Context())
	if err != nil {
		return mapError(err)
	}
	return printJSON(cmd.OutOrStdout(), st)
}

func (a *CLIAdapter) Records(cmd *cobra.Command, args []string) error {
	statusStr, err := cmd.Flags().GetString("status")
	if err != nil {
		return fmt.Errorf("flag.GetString: %w", err)
	}
	id, err := cmd.Flags().GetString("id")
	if err != nil {
		return fmt.Errorf("flag.GetString: %w", err)
	}
	var (
		filter    domain.RecordStatus
		hasFilter bool
	)
	if statusStr != "" {
		st, ok := domain.ParseStatus(statusStr)
		if !ok {
			return InvalidEventError("unknown status " + statusStr)
		}
		filter, hasFilter = st, true
	}

	rt, err := a.runtime(cmd.Context())
	if err != nil {
		return err
	}
	defer closeRuntime(rt)

	var records []domain.Record
	if id != "" {
		rec, err := rt.Store.Get(cmd.Context(), id)
		if err != nil {
			return mapError(err)
		}
		records = []domain.Record{rec}
	} else {
		records, err = rt.Store.Snapshot(cmd.Context())
		if err != nil {
			return mapError(err)
		}
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSTATUS\tATTEMPTS\tAMOUNT\tREASON\tNEXT_ATTEMPT")
	for _, r := range records {
		if hasFilter && r.Status != filter {
			continue
		}
		next := "-"
		if r.NextAttemptAt != nil {
			next = r.NextAttemptAt.UTC().Format(time.RFC3339)
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%s\n",
			r.ID, r.Status, r.AttemptCount, domain.FormatAmount(r.Amount, r.Currency), r.FailureReason, next)
	}
	return tw.Flush()
}

func (a *CLIAdapter) ReportFailure(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	paymentID, _ := flags.GetString("payment-id")
	eventID, _ := flags.GetString("event-id")
	customerID, _ := flags.GetString("customer-id")
	customerName, _ := flags.GetString("customer-name")
	email, _ := flags.GetString("email")
	currency, _ := flags.GetString("currency")
	reason, _ := flags.GetString("reason")
	amount, err := flags.GetInt64("amount")
	if err != nil {
		return fmt.Errorf("flag.GetInt64: %w", err)
	}
	at, err := parseTime(cmd, "at", a.clock())
	if err != nil {
		return err
	}

	rt, err := a.runtime(cmd.Context())
	if err != nil {
		return err
	}
	defer closeRuntime(rt)

	out, err := rt.Ingress(rt.Notifier).WithClock(a.clock).ReportFailure(cmd.Context(), domain.FailureEvent{
		EventID:       eventID,
		PaymentID:     paymentID,
		CustomerID:    customerID,
		CustomerName:  customerName,
		Email:         email,
		Amount:        amount,
		Currency:      currency,
		FailureReason: domain.FailureReason(reason),
		OccurredAt:    at,
	})
	if err != nil {
		return mapError(err)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "FAILURE_RECORDED: %s\n", out.Record.ID)
	fmt.Fprintf(w, "RESULT: %s\n", out.Result)
	if out.Record.NextAttemptAt != nil {
		fmt.Fprintf(w, "NEXT_ATTEMPT: %s\n", out.Record.NextAttemptAt.UTC().Format(time.RFC3339))
	}
	return nil
}

func (a *CLIAdapter) ReportSuccess(cmd *cobra.Command, args []string) error {
	paymentID, _ := cmd.Flags().GetString("payment-id")
	eventID, _ := cmd.Flags().GetString("event-id")
	at, err := parseTime(cmd, "at", a.clock())
	if err != nil {
		return err
	}

	rt, err := a.runtime(cmd.Context())
	if err != nil {
		return err
	}
	defer closeRuntime(rt)

	out, err := rt.Ingress(rt.Notifier).WithClock(a.clock).ReportSuccess(cmd.Context(), domain.SuccessEvent{
		EventID:    eventID,
		PaymentID:  paymentID,
		OccurredAt: at,
	})
	if err != nil {
		return mapError(err)
	}
	if !out.Recovered {
		fmt.Fprintf(cmd.OutOrStdout(), "NOT_RECOVERED: %s\n", paymentID)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "RECOVERED: %s\n", out.Record.ID)
	return nil
}
