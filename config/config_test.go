package config_test

import (
	"testing"
	"time"

	"github.com/mbolis/confirmation-statement/config"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var requiredArgs = []string{
	"--session-secret", "s3cr3t",
	"--api-url", "http://api.local/",
	"--payments-api-url", "http://payments.local",
	"--api-key", "key",
	"--sign-in-url", "http://account.local/signin",
	"--sign-out-url", "http://account.local/signout",
	"--company-lookup-url", "http://lookup.local",
}

func load(t *testing.T, args ...string) (config.Config, error) {
	t.Helper()

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	config.Flags(fs)
	require.NoError(t, fs.Parse(args), "Setup: parse flags")

	v, err := config.NewViper(fs)
	require.NoError(t, err, "Setup: bind viper")
	return config.Load(v)
}

func TestLoad(t *testing.T) {
	cfg, err := load(t, append(requiredArgs, "--port", "8080", "--psc-multiple-from", "2024-01-31")...)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Addr)
	assert.Equal(t, "http://localhost:8080", cfg.Url())
	assert.Equal(t, "http://api.local", cfg.APIUrl, "trailing slash is trimmed")
	assert.Equal(t, 1, cfg.PSCLimit)
	assert.Equal(t, 5, cfg.PSCLimitMultiple)
	assert.Equal(t, "/metrics", cfg.MetricsPath)
	require.NotNil(t, cfg.PSCMultipleFrom.EnabledFrom)
	assert.Nil(t, cfg.EmailAddressFrom.EnabledFrom)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("CS_API_KEY", "from-env")
	t.Setenv("CS_PSC_LIMIT", "2")

	args := []string{
		"--session-secret", "s3cr3t",
		"--api-url", "http://api.local",
		"--payments-api-url", "http://payments.local",
		"--sign-in-url", "http://account.local/signin",
		"--sign-out-url", "http://account.local/signout",
		"--company-lookup-url", "http://lookup.local",
	}
	cfg, err := load(t, args...)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.APIKey)
	assert.Equal(t, 2, cfg.PSCLimit)
}

func TestLoadReportsAllMissingParameters(t *testing.T) {
	_, err := load(t, "--psc-multiple-from", "not-a-date")
	require.Error(t, err)

	for _, want := range []string{"--session-secret", "--api-url", "--api-key", "--sign-out-url", "psc-multiple-from"} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestFeatureFlagEnabled(t *testing.T) {
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := map[string]struct {
		flag config.FeatureFlag
		now  time.Time
		want bool
	}{
		"disabled flag":        {flag: config.FeatureFlag{}, now: from.AddDate(10, 0, 0), want: false},
		"before enabled date":  {flag: config.EnabledFrom(from), now: from.Add(-time.Second), want: false},
		"exactly enabled date": {flag: config.EnabledFrom(from), now: from, want: true},
		"after enabled date":   {flag: config.EnabledFrom(from), now: from.AddDate(0, 0, 1), want: true},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.flag.Enabled(tc.now))
		})
	}
}

func TestParseFeatureFlag(t *testing.T) {
	f, err := config.ParseFeatureFlag("")
	require.NoError(t, err)
	assert.False(t, f.Enabled(time.Now()))

	f, err = config.ParseFeatureFlag("2020-05-17")
	require.NoError(t, err)
	assert.True(t, f.Enabled(time.Date(2020, 5, 17, 0, 0, 0, 0, time.UTC)))

	_, err = config.ParseFeatureFlag("17/05/2020")
	require.Error(t, err)
}

func TestMaxPSCs(t *testing.T) {
	cfg := config.Config{PSCLimit: 1, PSCLimitMultiple: 5}
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 1, cfg.MaxPSCs(now))

	cfg.PSCMultipleFrom = config.EnabledFrom(now.AddDate(0, -1, 0))
	assert.Equal(t, 5, cfg.MaxPSCs(now))
}
