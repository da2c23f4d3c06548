package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.ozon.dev/safariproxd/recovery/internal/app"
	"gitlab.ozon.dev/safariproxd/recovery/internal/config"
	"gitlab.ozon.dev/safariproxd/recovery/internal/metrics"
)

var someConstTime = time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC)

func newTestCLI(t *testing.T) *CLIAdapter {
	t.Helper()

	cfg, err := config.Parse([]byte("log:\n  level: error\n"))
	require.NoError(t, err)
	rt, err := NewRuntime(context.Background(), cfg, nil)
	require.NoError(t, err)

	return NewCLIAdapter().
		WithConfigLoader(func(string) (*config.Config, error) { return cfg, nil }).
		WithRuntime(func(context.Context, *config.Config, metrics.Provider) (*Runtime, error) { return rt, nil }).
		WithClock(func() time.Time { return someConstTime })
}

func run(t *testing.T, a *CLIAdapter, args ...string) (string, error) {
	t.Helper()
	root := a.RootCommand()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestCLI_Lifecycle(t *testing.T) {
	t.Parallel()

	a := newTestCLI(t)

	out, err := run(t, a, "report-failure",
		"--payment-id", "in_1",
		"--event-id", "evt_1",
		"--email", "ada@example.com",
		"--amount", "1999",
		"--reason", "card_declined")
	require.NoError(t, err)
	assert.Contains(t, out, "FAILURE_RECORDED: in_1")
	assert.Contains(t, out, "RESULT: created")
	assert.Contains(t, out, "NEXT_ATTEMPT: 2025-03-03T10:00:00Z")

	out, err = run(t, a, "records", "--status", "pending")
	require.NoError(t, err)
	assert.Contains(t, out, "in_1")
	assert.Contains(t, out, "19.99 USD")

	out, err = run(t, a, "tick", "--at", "2025-03-03T10:00:00Z")
	require.NoError(t, err)
	var res app.TickResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 1, res.Due)
	assert.Equal(t, 1, res.Advanced)

	out, err = run(t, a, "report-success", "--payment-id", "in_1", "--event-id", "evt_2")
	require.NoError(t, err)
	assert.Contains(t, out, "RECOVERED: in_1")

	out, err = run(t, a, "stats")
	require.NoError(t, err)
	var st app.Stats
	require.NoError(t, json.Unmarshal([]byte(out), &st))
	assert.Equal(t, 1, st.Total)
	assert.Equal(t, 1, st.Recovered)
	assert.Equal(t, 1.0, st.RecoveryRate)
}

func TestCLI_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		wantErr string
		wantOut string
	}{
		{
			name:    "UnknownRecord",
			args:    []string{"records", "--id", "in_404"},
			wantErr: "RECORD_NOT_FOUND",
		},
		{
			name:    "BadStatus",
			args:    []string{"records", "--status", "lost"},
			wantErr: "INVALID_EVENT",
		},
		{
			name:    "BadEmail",
			args:    []string{"report-failure", "--payment-id", "in_2", "--email", "nobody", "--amount", "100"},
			wantErr: "INVALID_EVENT",
		},
		{
			name:    "BadTime",
			args:    []string{"tick", "--at", "yesterday"},
			wantErr: "INVALID_EVENT",
		},
		{
			name:    "MigrateWithoutPostgres",
			args:    []string{"migrate"},
			wantErr: "requires storage.driver=postgres",
		},
		{
			name:    "SuccessForUnknown",
			args:    []string{"report-success", "--payment-id", "in_404"},
			wantOut: "NOT_RECOVERED: in_404",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out, err := run(t, newTestCLI(t), tt.args...)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, out, tt.wantOut)
		})
	}
}
