package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/rewired-gh/tokval/internal/models"
)

// Config represents the complete application configuration
type Config struct {
	Valuation ValuationConfig `mapstructure:"valuation"`
	Engine    EngineConfig    `mapstructure:"engine"`
	Report    ReportConfig    `mapstructure:"report"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// ValuationConfig holds the financial assumptions of a run. Values are passed
// through unchecked; the valuation engine validates them.
type ValuationConfig struct {
	Forecast            float64 `mapstructure:"forecast"`
	RiskFreeRate        float64 `mapstructure:"risk_free_rate"`        // percent
	PlatformRiskPremium float64 `mapstructure:"platform_risk_premium"` // percent
	PlatformAdjustment  float64 `mapstructure:"platform_adjustment"`   // percent, negative for a deduction
	BaselineAudience    int64   `mapstructure:"baseline_audience"`
	RPM                 float64 `mapstructure:"rpm"`
	InvestorCount       int     `mapstructure:"investor_count"`
	LiftPerInvestor     float64 `mapstructure:"lift_per_investor"`
}

// EngineConfig holds scenario evaluation configuration
type EngineConfig struct {
	Parallel bool `mapstructure:"parallel"`
	Workers  int  `mapstructure:"workers"`
}

// ReportConfig holds report output configuration
type ReportConfig struct {
	Format string `mapstructure:"format"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// flagKeys maps CLI flag names to configuration keys.
var flagKeys = map[string]string{
	"forecast":              "valuation.forecast",
	"risk-free-rate":        "valuation.risk_free_rate",
	"platform-risk-premium": "valuation.platform_risk_premium",
	"platform-adjustment":   "valuation.platform_adjustment",
	"baseline-audience":     "valuation.baseline_audience",
	"rpm":                   "valuation.rpm",
	"investor-count":        "valuation.investor_count",
	"lift-per-investor":     "valuation.lift_per_investor",
	"parallel":              "engine.parallel",
	"workers":               "engine.workers",
	"format":                "report.format",
	"log-level":             "logging.level",
	"log-format":            "logging.format",
}

// Load reads configuration from defaults, an optional file, environment
// variables and command-line flags, in increasing order of precedence.
// An empty path skips the config file. flags may be nil.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// Set defaults
	setDefaults(v)

	// Enable environment variable override, e.g. TOKVAL_VALUATION_FORECAST
	v.SetEnvPrefix("TOKVAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("failed to bind flag --%s: %w", name, err)
			}
		}
	}

	// Unmarshal into Config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setDefaults configures default values for all configuration options
func setDefaults(v *viper.Viper) {
	// Valuation defaults; forecast has no meaningful default and must be supplied
	v.SetDefault("valuation.forecast", 0.0)
	v.SetDefault("valuation.risk_free_rate", 4.5)
	v.SetDefault("valuation.platform_risk_premium", 12.0)
	v.SetDefault("valuation.platform_adjustment", -9.1)
	v.SetDefault("valuation.baseline_audience", 1000000)
	v.SetDefault("valuation.rpm", 15.0)
	v.SetDefault("valuation.investor_count", 1000)
	v.SetDefault("valuation.lift_per_investor", 10.0)

	// Engine defaults
	v.SetDefault("engine.parallel", false)
	v.SetDefault("engine.workers", 4)

	// Report defaults
	v.SetDefault("report.format", "text")

	// Logging defaults
	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "text")
}

// Validate checks that all configuration values are valid
func (c *Config) Validate() error {
	// Validate Engine config
	if c.Engine.Workers < 1 || c.Engine.Workers > 256 {
		return fmt.Errorf("engine.workers must be between 1 and 256")
	}

	// Validate Report config
	validReportFormats := map[string]bool{"text": true, "json": true}
	if !validReportFormats[c.Report.Format] {
		return fmt.Errorf("report.format must be one of: text, json")
	}

	// Validate Logging config
	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("logging.level must be one of: debug, info, warn, error")
	}
	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[c.Logging.Format] {
		return fmt.Errorf("logging.format must be one of: json, text")
	}

	return nil
}

// Assumptions converts the valuation section into engine input.
func (c *Config) Assumptions() models.Assumptions {
	return models.Assumptions{
		Forecast:            c.Valuation.Forecast,
		RiskFreeRate:        c.Valuation.RiskFreeRate,
		PlatformRiskPremium: c.Valuation.PlatformRiskPremium,
		PlatformAdjustment:  c.Valuation.PlatformAdjustment,
		BaselineAudience:    c.Valuation.BaselineAudience,
		RPM:                 c.Valuation.RPM,
		InvestorCount:       c.Valuation.InvestorCount,
		LiftPerInvestor:     c.Valuation.LiftPerInvestor,
	}
}
