package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTempConfigFile(t *testing.T, content string) string {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), "fishstats.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	return configPath
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, ":3000", cfg.Server.Addr)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "latin1", cfg.Data.Encoding)
	assert.Equal(t, ';', cfg.Data.DelimiterRune())
	assert.Equal(t, SeasonalAveragePerYear, cfg.Analytics.SeasonalAverage)
	assert.Equal(t, 10, cfg.Analytics.DefaultTopN)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_File(t *testing.T) {
	path := createTempConfigFile(t, `
server:
  addr: ":8080"
  cors_origins: ["https://dashboard.example"]
data:
  base_path: /srv/data
  plants_file: plantas.csv
analytics:
  seasonal_average: per_record
  default_top_n: 5
log:
  level: debug
  format: json
`)

	cfg, err := Load(New(), path)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, []string{"https://dashboard.example"}, cfg.Server.CORSOrigins)
	assert.Equal(t, filepath.Join("/srv/data", "plantas.csv"), cfg.Data.Path(cfg.Data.PlantsFile))
	assert.Equal(t, SeasonalAveragePerRecord, cfg.Analytics.SeasonalAverage)
	assert.Equal(t, 5, cfg.Analytics.DefaultTopN)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("FISHSTATS_DATA_BASE_PATH", "/tmp/datasets")
	t.Setenv("FISHSTATS_LOG_LEVEL", "warn")

	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, "/tmp/datasets", cfg.Data.BasePath)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(New(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		cfg, err := Load(New(), "")
		require.NoError(t, err)
		return *cfg
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"empty addr", func(c *Config) { c.Server.Addr = "" }, ErrMissingAddr},
		{"empty base path", func(c *Config) { c.Data.BasePath = "" }, ErrMissingBasePath},
		{"long delimiter", func(c *Config) { c.Data.Delimiter = ";;" }, ErrInvalidDelimiter},
		{"bad average", func(c *Config) { c.Analytics.SeasonalAverage = "median" }, ErrInvalidSeasonalAverage},
		{"zero top n", func(c *Config) { c.Analytics.DefaultTopN = 0 }, ErrInvalidTopN},
		{"bad level", func(c *Config) { c.Log.Level = "trace" }, ErrInvalidLogLevel},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, ErrInvalidLogFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), tt.want)
		})
	}
}

func TestDataConfig_PathAbsolute(t *testing.T) {
	d := DataConfig{BasePath: "data"}
	abs := filepath.Join(string(filepath.Separator), "abs", "file.csv")
	assert.Equal(t, abs, d.Path(abs))
}
