package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/probe-group/finflags/internal/rules"
)

// Config holds the full application configuration.
type Config struct {
	Server ServerConfig `yaml:"server" mapstructure:"server"`
	Upload UploadConfig `yaml:"upload" mapstructure:"upload"`
	Rules  rules.Config `yaml:"rules" mapstructure:"rules"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

// ServerConfig configures the upload-and-view server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// UploadConfig bounds statement uploads.
type UploadConfig struct {
	MaxBytes      int64   `yaml:"max_bytes" mapstructure:"max_bytes"`
	RatePerSecond float64 `yaml:"rate_per_second" mapstructure:"rate_per_second"`
	RateBurst     int     `yaml:"rate_burst" mapstructure:"rate_burst"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("FINFLAGS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	def := rules.DefaultConfig()
	v.SetDefault("server.port", 8080)
	v.SetDefault("upload.max_bytes", 2<<20)
	v.SetDefault("upload.rate_per_second", 5.0)
	v.SetDefault("upload.rate_burst", 10)
	v.SetDefault("rules.revenue_floor", def.RevenueFloor)
	v.SetDefault("rules.borrowing_ratio_ceiling", def.BorrowingRatioCeiling)
	v.SetDefault("rules.iscr_floor", def.ISCRFloor)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	if err := rules.ValidateConfig(cfg.Rules); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
