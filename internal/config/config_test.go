package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validYAML = `
data_dir: /tmp/workouts
plans_dir: /tmp/workouts/my-plans
default_plan: core-focus
log:
  level: debug
  file: /tmp/workouts/app.log
  json: true
`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// TestLoadValid verifies that a well-formed YAML config loads with all fields populated.
func TestLoadValid(t *testing.T) {
	cfg, err := Load(writeTemp(t, validYAML))
	require.NoError(t, err)

	assert.Equal(t, "/tmp/workouts", cfg.DataDir)
	assert.Equal(t, "/tmp/workouts/my-plans", cfg.PlansDir)
	assert.Equal(t, "core-focus", cfg.DefaultPlan)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/workouts/app.log", cfg.Log.File)
	assert.True(t, cfg.Log.JSON)
	assert.False(t, cfg.Log.Stdout)
}

// TestLoadMissingFile verifies that a missing file yields the defaults.
func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

// TestLoadPartial verifies that fields absent from the file keep their defaults.
func TestLoadPartial(t *testing.T) {
	cfg, err := Load(writeTemp(t, "default_plan: full-body-hiit\n"))
	require.NoError(t, err)

	def := Default()
	assert.Equal(t, "full-body-hiit", cfg.DefaultPlan)
	assert.Equal(t, def.DataDir, cfg.DataDir)
	assert.Equal(t, def.Log.Level, cfg.Log.Level)
}

// TestEnvOverride verifies that WORKOUTSESSIONS_ env vars take precedence over YAML values.
func TestEnvOverride(t *testing.T) {
	t.Setenv("WORKOUTSESSIONS_DATA_DIR", "/srv/data")
	t.Setenv("WORKOUTSESSIONS_PLANS_DIR", "/srv/plans")
	t.Setenv("WORKOUTSESSIONS_DEFAULT_PLAN", "morning-strength")
	t.Setenv("WORKOUTSESSIONS_LOG_LEVEL", "warn")
	t.Setenv("WORKOUTSESSIONS_LOG_FILE", "/srv/app.log")
	t.Setenv("WORKOUTSESSIONS_LOG_JSON", "false")

	cfg, err := Load(writeTemp(t, validYAML))
	require.NoError(t, err)

	assert.Equal(t, "/srv/data", cfg.DataDir)
	assert.Equal(t, "/srv/plans", cfg.PlansDir)
	assert.Equal(t, "morning-strength", cfg.DefaultPlan)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "/srv/app.log", cfg.Log.File)
	assert.False(t, cfg.Log.JSON)
}

// TestEnvOverrideBadBool verifies that an unparseable bool leaves the file value alone.
func TestEnvOverrideBadBool(t *testing.T) {
	t.Setenv("WORKOUTSESSIONS_LOG_JSON", "sometimes")

	cfg, err := Load(writeTemp(t, validYAML))
	require.NoError(t, err)
	assert.True(t, cfg.Log.JSON)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"malformed yaml", "data_dir: [\n", "parsing config file"},
		{"empty data dir", "data_dir: \"\"\n", "data_dir is required"},
		{"bad log level", "log:\n  level: loud\n", "not a valid level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeTemp(t, tt.content))
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
