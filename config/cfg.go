package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	httpapi "github.com/jekabolt/grbpwr-insights/internal/api/http"
	"github.com/jekabolt/grbpwr-insights/internal/apisrv/auth"
	"github.com/jekabolt/grbpwr-insights/internal/categorize"
	"github.com/jekabolt/grbpwr-insights/internal/seed"
	"github.com/jekabolt/grbpwr-insights/internal/store"
	"github.com/jekabolt/grbpwr-insights/log"
	"github.com/mitchellh/mapstructure"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config represents the global configuration for the service.
type Config struct {
	DB        store.Config      `mapstructure:"mysql"`
	Logger    log.Config        `mapstructure:"logger"`
	HTTP      httpapi.Config    `mapstructure:"http"`
	Auth      auth.Config       `mapstructure:"auth"`
	Analytics categorize.Config `mapstructure:"analytics"`
	Seed      seed.Config       `mapstructure:"seed"`
}

// LoadConfig loads the configuration from a file and/or environment variables.
// Environment variables take precedence over config file values.
// Nested config keys use double underscore, e.g., MYSQL__DSN for mysql.dsn;
// the common ones also have flat aliases, e.g., MYSQL_DSN.
func LoadConfig(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("toml")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "__", "-", "__"))
	bindEnvVars(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			// If config file doesn't exist, continue with env vars only
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %v", err)
			}
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/config/grbpwr-insights")
		v.AddConfigPath("/etc/grbpwr-insights")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %v", err)
			}
		}
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(c *mapstructure.DecoderConfig) {
		c.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
			stringToDecimalHookFunc(),
		)
	})
	if err := v.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config into struct: %v", err)
	}

	// Build the DSN from individual MYSQL_* env vars when it is not set
	if config.DB.DSN == "" {
		mysqlHost := os.Getenv("MYSQL_HOST")
		mysqlPort := os.Getenv("MYSQL_PORT")
		mysqlUser := os.Getenv("MYSQL_USER")
		mysqlPassword := os.Getenv("MYSQL_PASSWORD")
		mysqlDatabase := os.Getenv("MYSQL_DATABASE")
		if mysqlHost != "" {
			if mysqlPort == "" {
				mysqlPort = "3306"
			}
			if mysqlUser != "" && mysqlPassword != "" && mysqlDatabase != "" {
				config.DB.DSN = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8&parseTime=true",
					mysqlUser, mysqlPassword, mysqlHost, mysqlPort, mysqlDatabase)
			}
		}
	}

	return &config, nil
}

// stringToDecimalHookFunc decodes money amounts given as strings or numbers.
func stringToDecimalHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t != reflect.TypeOf(decimal.Decimal{}) {
			return data, nil
		}
		switch d := data.(type) {
		case string:
			if d == "" {
				return decimal.Zero, nil
			}
			return decimal.NewFromString(d)
		case int:
			return decimal.NewFromInt(int64(d)), nil
		case int64:
			return decimal.NewFromInt(d), nil
		case float64:
			return decimal.NewFromFloat(d), nil
		}
		return data, nil
	}
}

// bindEnvVars binds environment variables to config keys
// This allows using both nested keys (MYSQL__DSN) and flat keys (MYSQL_DSN)
func bindEnvVars(v *viper.Viper) {
	// MySQL
	v.BindEnv("mysql.dsn", "MYSQL_DSN")
	v.BindEnv("mysql.automigrate", "MYSQL_AUTOMIGRATE")
	v.BindEnv("mysql.max_open_connections", "MYSQL_MAX_OPEN_CONNECTIONS")
	v.BindEnv("mysql.max_idle_connections", "MYSQL_MAX_IDLE_CONNECTIONS")
	v.BindEnv("mysql.tls_ca_path", "MYSQL_TLS_CA_PATH")

	// Logger
	v.BindEnv("logger.level", "LOG_LEVEL")
	v.BindEnv("logger.add_source", "LOG_ADD_SOURCE")

	// HTTP
	v.BindEnv("http.port", "HTTP_PORT")
	v.BindEnv("http.address", "HTTP_ADDRESS")
	v.BindEnv("http.allowed_origins", "HTTP_ALLOWED_ORIGINS")
	v.BindEnv("http.shutdown_timeout", "HTTP_SHUTDOWN_TIMEOUT")

	// Auth
	v.BindEnv("auth.jwt_secret", "AUTH_JWT_SECRET")
	v.BindEnv("auth.master_password", "AUTH_MASTER_PASSWORD")
	v.BindEnv("auth.password_hasher_salt_size", "AUTH_PASSWORD_HASHER_SALT_SIZE")
	v.BindEnv("auth.password_hasher_iterations", "AUTH_PASSWORD_HASHER_ITERATIONS")
	v.BindEnv("auth.jwt_ttl", "AUTH_JWT_TTL")
	v.BindEnv("auth.login_limit.window", "AUTH_LOGIN_LIMIT_WINDOW")
	v.BindEnv("auth.login_limit.per_ip", "AUTH_LOGIN_LIMIT_PER_IP")
	v.BindEnv("auth.login_limit.per_username", "AUTH_LOGIN_LIMIT_PER_USERNAME")
	v.BindEnv("auth.trusted_proxies", "AUTH_TRUSTED_PROXIES")

	// Analytics
	v.BindEnv("analytics.behavior.possible_inactive_after_days", "ANALYTICS_POSSIBLE_INACTIVE_AFTER_DAYS")
	v.BindEnv("analytics.behavior.inactive_after_days", "ANALYTICS_INACTIVE_AFTER_DAYS")
	v.BindEnv("analytics.behavior.lost_after_days", "ANALYTICS_LOST_AFTER_DAYS")
	v.BindEnv("analytics.behavior.recovered_after_gap_days", "ANALYTICS_RECOVERED_AFTER_GAP_DAYS")
	v.BindEnv("analytics.behavior.active_min_orders", "ANALYTICS_ACTIVE_MIN_ORDERS")
	v.BindEnv("analytics.behavior.possible_active_min_orders", "ANALYTICS_POSSIBLE_ACTIVE_MIN_ORDERS")
	v.BindEnv("analytics.spending.mode", "ANALYTICS_SPENDING_MODE")
	v.BindEnv("analytics.spending.standard_from", "ANALYTICS_SPENDING_STANDARD_FROM")
	v.BindEnv("analytics.spending.premium_from", "ANALYTICS_SPENDING_PREMIUM_FROM")
	v.BindEnv("analytics.spending.standard_percentile", "ANALYTICS_SPENDING_STANDARD_PERCENTILE")
	v.BindEnv("analytics.spending.premium_percentile", "ANALYTICS_SPENDING_PREMIUM_PERCENTILE")

	// Seed
	v.BindEnv("seed.tenant_id", "SEED_TENANT_ID")
	v.BindEnv("seed.clients", "SEED_CLIENTS")
	v.BindEnv("seed.history", "SEED_HISTORY")
}
