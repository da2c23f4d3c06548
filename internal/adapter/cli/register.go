package cli

import "github.com/spf13/cobra"

func (a *CLIAdapter) RegisterCommands(rootCmd *cobra.Command) {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Runs the HTTP ingress, the scheduler and notification delivery.",
		RunE:  a.Serve,
	}
	rootCmd.AddCommand(serveCmd)

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Applies database migrations.",
		RunE:  a.Migrate,
	}
	rootCmd.AddCommand(migrateCmd)

	tickCmd := &cobra.Command{
		Use:   "tick",
		Short: "Runs one scheduler tick and prints the result.",
		RunE:  a.Tick,
	}
	tickCmd.Flags().String("at", "", "Tick time (RFC3339), defaults to now")
	rootCmd.AddCommand(tickCmd)

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Prints recovery statistics.",
		RunE:  a.Stats,
	}
	rootCmd.AddCommand(statsCmd)

	recordsCmd := &cobra.Command{
		Use:   "records",
		Short: "Lists recovery records.",
		RunE:  a.Records,
	}
	recordsCmd.Flags().String("status", "", "Filter by status: pending, retrying, recovered, abandoned")
	recordsCmd.Flags().String("id", "", "Show a single record")
	rootCmd.AddCommand(recordsCmd)

	failureCmd := &cobra.Command{
		Use:   "report-failure",
		Short: "Reports a failed payment.",
		RunE:  a.ReportFailure,
	}
	failureCmd.Flags().String("payment-id", "", "Provider payment id")
	failureCmd.Flags().String("event-id", "", "Provider event id used for deduplication")
	failureCmd.Flags().String("customer-id", "", "Customer id")
	failureCmd.Flags().String("customer-name", "", "Customer name")
	failureCmd.Flags().String("email", "", "Recipient email")
	failureCmd.Flags().Int64("amount", 0, "Amount in minor units, e.g. 1999 for 19.99")
	failureCmd.Flags().String("currency", "USD", "ISO currency code")
	failureCmd.Flags().String("reason", "other", "Failure reason code")
	failureCmd.Flags().String("at", "", "Failure time (RFC3339), defaults to now")
	failureCmd.MarkFlagRequired("payment-id")
	failureCmd.MarkFlagRequired("email")
	failureCmd.MarkFlagRequired("amount")
	rootCmd.AddCommand(failureCmd)

	successCmd := &cobra.Command{
		Use:   "report-success",
		Short: "Reports that a failed payment went through.",
		RunE:  a.ReportSuccess,
	}
	successCmd.Flags().String("payment-id", "", "Provider payment id")
	successCmd.Flags().String("event-id", "", "Provider event id used for deduplication")
	successCmd.Flags().String("at", "", "Success time (RFC3339), defaults to now")
	successCmd.MarkFlagRequired("payment-id")
	rootCmd.AddCommand(successCmd)
}
