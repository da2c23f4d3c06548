package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/caarlos0/env/v10"
	"github.com/pkg/errors"
	"gitlab.ozon.dev/safariproxd/recovery/internal/domain"
	"gitlab.ozon.dev/safariproxd/recovery/internal/infra/telegram"
	"gitlab.ozon.dev/safariproxd/recovery/internal/retry"
	"gitlab.ozon.dev/safariproxd/recovery/internal/tracing"
	"gopkg.in/yaml.v3"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type ReasonPlan struct {
	Delays      []time.Duration `yaml:"delays"`
	MaxAttempts int             `yaml:"max_attempts"`
	Hint        string          `yaml:"hint"`
}

type Config struct {
	Service struct {
		HTTPAddress  string        `yaml:"http_address" env:"RECOVERY_HTTP_ADDRESS"`
		AdminAddress string        `yaml:"admin_address" env:"RECOVERY_ADMIN_ADDRESS"`
		Timeout      time.Duration `yaml:"timeout"`
		ShutdownWait time.Duration `yaml:"shutdown_wait"`
		RateLimit    string        `yaml:"rate_limit"`
	} `yaml:"service"`

	Log struct {
		Level string `yaml:"level" env:"RECOVERY_LOG_LEVEL"`
	} `yaml:"log"`

	Retry struct {
		OptimalHours      []int                 `yaml:"optimal_hours"`
		Location          string                `yaml:"location" env:"RECOVERY_TIMEZONE"`
		FinalGrace        time.Duration         `yaml:"final_grace"`
		UseBuiltinReasons bool                  `yaml:"use_builtin_reasons"`
		Reasons           map[string]ReasonPlan `yaml:"reasons"`
	} `yaml:"retry"`

	Scheduler struct {
		Interval  time.Duration `yaml:"interval"`
		BatchSize int           `yaml:"batch_size"`
	} `yaml:"scheduler"`

	Storage struct {
		Driver string `yaml:"driver" env:"RECOVERY_STORAGE"`
	} `yaml:"storage"`

	DB struct {
		ReadHost  string `yaml:"read_host" env:"POSTGRES_READ_HOST"`
		WriteHost string `yaml:"write_host" env:"POSTGRES_WRITE_HOST"`
		Port      int    `yaml:"port" env:"POSTGRES_PORT"`
		Name      string `yaml:"name" env:"POSTGRES_DB"`
		User      string `yaml:"-" env:"POSTGRES_USER"`
		Pass      string `yaml:"-" env:"POSTGRES_PASSWORD"`
		SSL       string `yaml:"sslmode"`
		Pool      struct {
			MaxOpen int `yaml:"max_open"`
			MaxIdle int `yaml:"max_idle"`
		} `yaml:"pool"`
	} `yaml:"db"`

	Kafka struct {
		Enabled  bool     `yaml:"enabled"`
		Brokers  []string `yaml:"brokers" env:"KAFKA_BROKERS" envSeparator:","`
		Topic    string   `yaml:"topic"`
		GroupID  string   `yaml:"group_id"`
		Producer struct {
			Timeout time.Duration `yaml:"timeout"`
			Retries int           `yaml:"retries"`
		} `yaml:"producer"`
	} `yaml:"kafka"`

	Notify struct {
		Workers int           `yaml:"workers"`
		Queue   int           `yaml:"queue"`
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"notify"`

	Dedup struct {
		Size int           `yaml:"size"`
		TTL  time.Duration `yaml:"ttl"`
	} `yaml:"dedup"`

	Outbox struct {
		WorkerInterval time.Duration `yaml:"worker_interval"`
		BatchSize      int           `yaml:"batch_size"`
	} `yaml:"outbox"`

	Tracing  tracing.Config  `yaml:"tracing"`
	Telegram telegram.Config `yaml:"telegram"`
}

func (c *Config) ReadDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.DB.User, c.DB.Pass, c.DB.ReadHost, c.DB.Port, c.DB.Name, c.DB.SSL)
}

func (c *Config) WriteDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.DB.User, c.DB.Pass, c.DB.WriteHost, c.DB.Port, c.DB.Name, c.DB.SSL)
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read yaml")
	}
	return Parse(data)
}

// Parse decodes yaml, overlays the environment, fills defaults and validates.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "parse yaml")
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, errors.Wrap(err, "parse env")
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "validate")
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Service.HTTPAddress == "" {
		c.Service.HTTPAddress = ":8080"
	}
	if c.Service.Timeout <= 0 {
		c.Service.Timeout = 5 * time.Second
	}
	if c.Service.ShutdownWait <= 0 {
		c.Service.ShutdownWait = 15 * time.Second
	}
	if c.Service.RateLimit == "" {
		c.Service.RateLimit = "100-S"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Retry.Location == "" {
		c.Retry.Location = "UTC"
	}
	if c.Scheduler.Interval <= 0 {
		c.Scheduler.Interval = time.Minute
	}
	if c.Scheduler.BatchSize <= 0 {
		c.Scheduler.BatchSize = 500
	}
	if c.Storage.Driver == "" {
		c.Storage.Driver = StorageMemory
	}
	if c.DB.Port == 0 {
		c.DB.Port = 5432
	}
	if c.DB.SSL == "" {
		c.DB.SSL = "disable"
	}
	if c.Kafka.Topic == "" {
		c.Kafka.Topic = "payment-recovery.notifications"
	}
	if c.Kafka.GroupID == "" {
		c.Kafka.GroupID = "payment-recovery-notifier"
	}
	if c.Kafka.Producer.Timeout <= 0 {
		c.Kafka.Producer.Timeout = 5 * time.Second
	}
	if c.Kafka.Producer.Retries <= 0 {
		c.Kafka.Producer.Retries = 3
	}
	if c.Notify.Workers <= 0 {
		c.Notify.Workers = 4
	}
	if c.Notify.Queue <= 0 {
		c.Notify.Queue = 1024
	}
	if c.Notify.Timeout <= 0 {
		c.Notify.Timeout = 10 * time.Second
	}
	if c.Dedup.Size <= 0 {
		c.Dedup.Size = 10000
	}
	if c.Dedup.TTL <= 0 {
		c.Dedup.TTL = 24 * time.Hour
	}
	if c.Outbox.WorkerInterval <= 0 {
		c.Outbox.WorkerInterval = 5 * time.Second
	}
	if c.Outbox.BatchSize <= 0 {
		c.Outbox.BatchSize = 100
	}
}

func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case StorageMemory, StoragePostgres:
	default:
		return errors.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	if c.Retry.FinalGrace < 0 {
		return errors.New("retry.final_grace must not be negative")
	}
	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		return errors.New("kafka.brokers required when kafka is enabled")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	if _, err := c.Schedule(); err != nil {
		return err
	}
	return nil
}

func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Retry.Location)
	if err != nil {
		return nil, errors.Wrapf(err, "retry.location %q", c.Retry.Location)
	}
	return loc, nil
}

func (c *Config) LogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(c.Log.Level))); err != nil {
		return 0, errors.Wrapf(err, "log.level %q", c.Log.Level)
	}
	return lvl, nil
}

// Schedule builds the retry planner from the retry section.
func (c *Config) Schedule() (*retry.Schedule, error) {
	loc, err := c.Location()
	if err != nil {
		return nil, err
	}
	policy, err := retry.NewTimePolicy(c.Retry.OptimalHours, loc)
	if err != nil {
		return nil, errors.Wrap(err, "retry.optimal_hours")
	}

	reasons := map[domain.FailureReason]retry.Plan{}
	if c.Retry.UseBuiltinReasons {
		reasons = retry.DefaultReasonPlans()
	}
	def := retry.DefaultPlan()
	for name, rp := range c.Retry.Reasons {
		p := retry.Plan{Delays: rp.Delays, MaxAttempts: rp.MaxAttempts, Hint: rp.Hint}
		if len(p.Delays) == 0 {
			p.Delays = def.Delays
		}
		if p.MaxAttempts == 0 {
			p.MaxAttempts = len(p.Delays)
			if p.MaxAttempts > domain.MaxAttempts {
				p.MaxAttempts = domain.MaxAttempts
			}
		}
		if p.Hint == "" {
			p.Hint = def.Hint
		}
		reasons[domain.FailureReason(name)] = p
	}

	strategy, err := retry.NewReasonStrategy(def, reasons)
	if err != nil {
		return nil, errors.Wrap(err, "retry.reasons")
	}
	return retry.NewSchedule(policy, strategy, c.Retry.FinalGrace), nil
}
