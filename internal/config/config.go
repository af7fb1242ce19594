package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	UI       UIConfig
	Mortgage MortgageConfig
	Predict  PredictConfig
	Log      LogConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	CurrencySymbol   string        `mapstructure:"currency_symbol"`
	MobileBreakpoint int           `mapstructure:"mobile_breakpoint"`
	NoticeTimeout    time.Duration `mapstructure:"notice_timeout"`
	PrefsPath        string        `mapstructure:"prefs_path"`
}

// MortgageConfig holds the defaults used for the per-property estimate.
type MortgageConfig struct {
	DownPaymentPct float64 `mapstructure:"down_payment_pct"`
	InterestRate   float64 `mapstructure:"interest_rate"`
	TermYears      int     `mapstructure:"term_years"`
}

// PredictConfig points at the prediction service.
type PredictConfig struct {
	Endpoint string
	Timeout  time.Duration
}

// LogConfig controls the log file.
type LogConfig struct {
	Path  string
	Level string
}

func dataDir() string {
	return filepath.Join(os.Getenv("HOME"), ".local", "share", "propcompare")
}

func configPath() string {
	if p := os.Getenv("PROPCOMPARE_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "propcompare", "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix PROPCOMPARE_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(dataDir(), "propcompare.db"))
	v.SetDefault("ui.currency_symbol", "₹")
	v.SetDefault("ui.mobile_breakpoint", 100)
	v.SetDefault("ui.notice_timeout", "3s")
	v.SetDefault("ui.prefs_path", filepath.Join(dataDir(), "prefs.json"))
	v.SetDefault("mortgage.down_payment_pct", 0.2)
	v.SetDefault("mortgage.interest_rate", 8.5)
	v.SetDefault("mortgage.term_years", 20)
	v.SetDefault("predict.endpoint", "https://housing-backend-4lag.onrender.com")
	v.SetDefault("predict.timeout", "15s")
	v.SetDefault("log.path", filepath.Join(dataDir(), "propcompare.log"))
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")
	v.SetConfigFile(configPath())

	v.SetEnvPrefix("PROPCOMPARE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	if err := v.ReadInConfig(); err != nil && !isMissing(err) {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.UI.MobileBreakpoint < 0 {
		return Config{}, fmt.Errorf("ui.mobile_breakpoint must not be negative")
	}
	return c, nil
}

func isMissing(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := configPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("ui.currency_symbol", cfg.UI.CurrencySymbol)
	v.Set("ui.mobile_breakpoint", cfg.UI.MobileBreakpoint)
	v.Set("ui.notice_timeout", cfg.UI.NoticeTimeout.String())
	v.Set("ui.prefs_path", cfg.UI.PrefsPath)
	v.Set("mortgage.down_payment_pct", cfg.Mortgage.DownPaymentPct)
	v.Set("mortgage.interest_rate", cfg.Mortgage.InterestRate)
	v.Set("mortgage.term_years", cfg.Mortgage.TermYears)
	v.Set("predict.endpoint", cfg.Predict.Endpoint)
	v.Set("predict.timeout", cfg.Predict.Timeout.String())
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
