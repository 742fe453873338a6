package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jekabolt/grbpwr-insights/internal/categorize"
	"github.com/jekabolt/grbpwr-insights/internal/daterange"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFile(t *testing.T) {
	cfg, err := LoadConfig("config.toml")
	require.NoError(t, err)

	assert.True(t, cfg.DB.Automigrate)
	assert.Equal(t, 10, cfg.DB.MaxOpenConnections)
	assert.Equal(t, -4, cfg.Logger.Level)
	assert.Equal(t, "8081", cfg.HTTP.Port)
	assert.Equal(t, []string{"https://admin.grbpwr.com"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, 15*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, "60m", cfg.Auth.JWTTTL)
	assert.Equal(t, 15*time.Minute, cfg.Auth.LoginLimit.Window)
	assert.Equal(t, 5, cfg.Auth.LoginLimit.PerUsername)
	assert.Equal(t, []string{"127.0.0.1"}, cfg.Auth.TrustedProxies)

	assert.Equal(t, 7, cfg.Analytics.Behavior.PossibleInactiveAfterDays)
	assert.Equal(t, 21, cfg.Analytics.Behavior.LostAfterDays)
	assert.Equal(t, 3, cfg.Analytics.Behavior.ActiveMinOrders)
	assert.Equal(t, categorize.SpendingFixed, cfg.Analytics.Spending.Mode)
	assert.True(t, decimal.NewFromInt(200).Equal(cfg.Analytics.Spending.StandardFrom))
	assert.True(t, decimal.NewFromInt(1000).Equal(cfg.Analytics.Spending.PremiumFrom))
	assert.Equal(t, 90.0, cfg.Analytics.Spending.PremiumPercentile)
	assert.Len(t, cfg.Analytics.BehaviorOrder, 8)

	assert.Equal(t, 500, cfg.Seed.Clients)
	assert.Equal(t, 8760*time.Hour, cfg.Seed.History)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("MYSQL_DSN", "env:dsn@tcp(db:3306)/x")
	t.Setenv("ANALYTICS_SPENDING_PREMIUM_FROM", "2500.50")
	t.Setenv("ANALYTICS__BEHAVIOR__LOST_AFTER_DAYS", "120")
	t.Setenv("AUTH_TRUSTED_PROXIES", "10.0.0.0/8,192.168.0.1")

	cfg, err := LoadConfig("config.toml")
	require.NoError(t, err)
	assert.Equal(t, "env:dsn@tcp(db:3306)/x", cfg.DB.DSN)
	assert.True(t, decimal.RequireFromString("2500.50").Equal(cfg.Analytics.Spending.PremiumFrom))
	assert.Equal(t, 120, cfg.Analytics.Behavior.LostAfterDays)
	assert.Equal(t, []string{"10.0.0.0/8", "192.168.0.1"}, cfg.Auth.TrustedProxies)
}

// Recency is measured inside the analysed window, so a threshold longer than the
// default window can never match.
func TestShippedRecencyThresholdsFitDefaultWindow(t *testing.T) {
	cfg, err := LoadConfig("config.toml")
	require.NoError(t, err)

	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	w := daterange.New(daterange.WithNow(func() time.Time { return now })).Preset(daterange.DefaultPreset)
	span := w.To.Sub(w.From)

	b := cfg.Analytics.Behavior
	for _, d := range []int{b.PossibleInactiveAfterDays, b.InactiveAfterDays, b.LostAfterDays} {
		assert.Less(t, time.Duration(d)*24*time.Hour, span, d)
	}
}

func TestLoadConfigBuildsDSN(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.toml")
	require.NoError(t, os.WriteFile(path, []byte("[logger]\nlevel = 0\n"), 0o600))

	t.Setenv("MYSQL_HOST", "db")
	t.Setenv("MYSQL_USER", "u")
	t.Setenv("MYSQL_PASSWORD", "p")
	t.Setenv("MYSQL_DATABASE", "insights")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "u:p@tcp(db:3306)/insights?charset=utf8&parseTime=true", cfg.DB.DSN)
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Empty(t, cfg.HTTP.Port)
}
