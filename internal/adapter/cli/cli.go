package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"gitlab.ozon.dev/safariproxd/recovery/internal/config"
	"gitlab.ozon.dev/safariproxd/recovery/internal/metrics"
)

type RuntimeFactory func(ctx context.Context, cfg *config.Config, m metrics.Provider) (*Runtime, error)

type CLIAdapter struct {
	configPath string
	loadConfig func(path string) (*config.Config, error)
	newRuntime RuntimeFactory
	clock      func() time.Time
}

func NewCLIAdapter() *CLIAdapter {
	return &CLIAdapter{
		loadConfig: config.Load,
		newRuntime: NewRuntime,
		clock:      time.Now,
	}
}

// WithRuntime replaces how commands build storage and the planner.
func (a *CLIAdapter) WithRuntime(f RuntimeFactory) *CLIAdapter {
	a.newRuntime = f
	return a
}

func (a *CLIAdapter) WithConfigLoader(f func(path string) (*config.Config, error)) *CLIAdapter {
	a.loadConfig = f
	return a
}

func (a *CLIAdapter) WithClock(clock func() time.Time) *CLIAdapter {
	a.clock = clock
	return a
}

func (a *CLIAdapter) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "recovery",
		Short:         "Failed payment recovery service",
		Long:          `Schedules retries for failed payments, tracks recoveries and reports recovery stats.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "config/config.yaml", "Path to the YAML config")
	a.RegisterCommands(root)
	return root
}

func (a *CLIAdapter) config() (*config.Config, error) {
	cfg, err := a.loadConfig(a.configPath)
	if err != nil {
		return nil, err
	}
	setupLogger(cfg)
	return cfg, nil
}

// runtime loads config and opens storage for one-shot commands.
func (a *CLIAdapter) runtime(ctx context.Context) (*Runtime, error) {
	cfg, err := a.config()
	if err != nil {
		return nil, err
	}
	return a.newRuntime(ctx, cfg, metrics.NewNoOpProvider())
}
