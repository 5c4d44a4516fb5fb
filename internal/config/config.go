// Package config loads service settings from defaults, an optional YAML file and
// FISHSTATS_* environment variables.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ougirez/fishstats/internal/pkg/constants"
	"github.com/spf13/viper"
)

var (
	ErrMissingAddr            = errors.New("server.addr is required")
	ErrMissingBasePath        = errors.New("data.base_path is required")
	ErrInvalidDelimiter       = errors.New("data.delimiter must be a single character")
	ErrInvalidSeasonalAverage = errors.New("analytics.seasonal_average must be one of: per_year, per_record")
	ErrInvalidTopN            = errors.New("analytics.default_top_n must be between 1 and 100")
	ErrInvalidLogLevel        = errors.New("log.level must be one of: debug, info, warn, error")
	ErrInvalidLogFormat       = errors.New("log.format must be one of: console, json")
)

const (
	SeasonalAveragePerYear   = "per_year"
	SeasonalAveragePerRecord = "per_record"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Data      DataConfig      `mapstructure:"data"`
	Analytics AnalyticsConfig `mapstructure:"analytics"`
	Log       LogConfig       `mapstructure:"log"`
}

type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	CORSOrigins     []string      `mapstructure:"cors_origins"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DataConfig points at the three CSV sources. File paths are relative to BasePath
// unless absolute.
type DataConfig struct {
	BasePath       string `mapstructure:"base_path"`
	LandingsFile   string `mapstructure:"landings_file"`
	ProductionFile string `mapstructure:"production_file"`
	PlantsFile     string `mapstructure:"plants_file"`
	Encoding       string `mapstructure:"encoding"`
	Delimiter      string `mapstructure:"delimiter"`
}

type AnalyticsConfig struct {
	SeasonalAverage string `mapstructure:"seasonal_average"`
	DefaultTopN     int    `mapstructure:"default_top_n"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(constants.ViperServerAddrKey, ":3000")
	v.SetDefault(constants.ViperServerCORSOriginsKey, []string{"http://localhost:5173", "http://localhost:3000"})
	v.SetDefault(constants.ViperServerShutdownTimeoutKey, 10*time.Second)

	v.SetDefault(constants.ViperDataBasePathKey, "./Base de Datos")
	v.SetDefault(constants.ViperDataLandingsFileKey, filepath.Join("BD_desembarque", "BD_desembarque.csv"))
	v.SetDefault(constants.ViperDataProductionFileKey, filepath.Join("BD_materia_prima_produccion", "BD_materia_prima_produccion.csv"))
	v.SetDefault(constants.ViperDataPlantsFileKey, filepath.Join("BD_plantas", "BD_plantas.csv"))
	v.SetDefault(constants.ViperDataEncodingKey, "latin1")
	v.SetDefault(constants.ViperDataDelimiterKey, ";")

	v.SetDefault(constants.ViperAnalyticsSeasonalAverageKey, SeasonalAveragePerYear)
	v.SetDefault(constants.ViperAnalyticsDefaultTopNKey, 10)

	v.SetDefault(constants.ViperLogLevelKey, "info")
	v.SetDefault(constants.ViperLogFormatKey, "console")
}

// New returns a viper instance with defaults and env overrides wired.
// Precedence: flags > env vars > config file > defaults.
func New() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// Load reads configPath (optional) into v and returns the validated Config.
func Load(v *viper.Viper, configPath string) (*Config, error) {
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return ErrMissingAddr
	}

	if c.Data.BasePath == "" {
		return ErrMissingBasePath
	}

	if utf8.RuneCountInString(c.Data.Delimiter) != 1 {
		return ErrInvalidDelimiter
	}

	switch c.Analytics.SeasonalAverage {
	case SeasonalAveragePerYear, SeasonalAveragePerRecord:
	default:
		return ErrInvalidSeasonalAverage
	}

	if c.Analytics.DefaultTopN < 1 || c.Analytics.DefaultTopN > 100 {
		return ErrInvalidTopN
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		return ErrInvalidLogLevel
	}

	if c.Log.Format != "console" && c.Log.Format != "json" {
		return ErrInvalidLogFormat
	}

	return nil
}

// Path resolves a dataset file against BasePath.
func (d DataConfig) Path(file string) string {
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(d.BasePath, file)
}

// DelimiterRune returns the configured field separator.
func (d DataConfig) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(d.Delimiter)
	return r
}
