package config_test

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookup(env map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, config.FrontendGUI, cfg.Frontend)
	assert.Equal(t, time.Second, cfg.Linger)
	assert.Equal(t, tetris.DefaultConfig(), cfg.Game)
}

func TestApplyEnv(t *testing.T) {
	cfg := config.Default()
	err := cfg.ApplyEnv(lookup(map[string]string{
		"BLOCKFALL_FRONTEND":      "tui",
		"BLOCKFALL_RANDOMIZER":    "bag",
		"BLOCKFALL_SEED":          "42",
		"BLOCKFALL_GARBAGE":       "3",
		"BLOCKFALL_MUTED":         "true",
		"BLOCKFALL_LINGER":        "-1s",
		"BLOCKFALL_DROP_INTERVAL": "800ms",
		"BLOCKFALL_VOLUME":        "0.3",
		"BLOCKFALL_WIDTH":         "",
		"FRONTEND":                "gui",
	}))
	require.NoError(t, err)

	assert.Equal(t, "tui", cfg.Frontend)
	assert.Equal(t, "bag", cfg.Randomizer)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, 3, cfg.Garbage)
	assert.True(t, cfg.Muted)
	assert.Equal(t, -time.Second, cfg.Linger)
	assert.Equal(t, 800*time.Millisecond, cfg.Game.InitialDropInterval)
	assert.InDelta(t, 0.3, cfg.Volume, 1e-9)
	assert.Equal(t, 10, cfg.Game.Width, "empty values are ignored")
}

func TestApplyEnvInvalid(t *testing.T) {
	cfg := config.Default()
	err := cfg.ApplyEnv(lookup(map[string]string{
		"BLOCKFALL_GARBAGE":  "lots",
		"BLOCKFALL_MUTED":    "perhaps",
		"BLOCKFALL_SEED":     "-1",
		"BLOCKFALL_FRONTEND": "tui",
	}))

	assert.ErrorIs(t, err, config.ErrInvalid)
	assert.ErrorContains(t, err, "BLOCKFALL_GARBAGE")
	assert.ErrorContains(t, err, "BLOCKFALL_MUTED")
	assert.ErrorContains(t, err, "BLOCKFALL_SEED")
	assert.Equal(t, 0, cfg.Garbage)
	assert.Equal(t, "tui", cfg.Frontend, "valid variables still apply")
}

func TestValidate(t *testing.T) {
	tests := map[string]func(*config.Config){
		"frontend":    func(c *config.Config) { c.Frontend = "web" },
		"randomizer":  func(c *config.Config) { c.Randomizer = "fair" },
		"garbage":     func(c *config.Config) { c.Garbage = 20 },
		"negative":    func(c *config.Config) { c.Garbage = -1 },
		"cell size":   func(c *config.Config) { c.CellSize = 0 },
		"volume":      func(c *config.Config) { c.Volume = 1.5 },
		"no path":     func(c *config.Config) { c.HighScorePath = "" },
		"board":       func(c *config.Config) { c.Game.Width = 2 },
		"drop period": func(c *config.Config) { c.Game.InitialDropInterval = 0 },
	}

	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := config.Default()
			mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
		})
	}

	cfg := config.Default()
	cfg.Game.Width = 2
	assert.ErrorIs(t, cfg.Validate(), tetris.ErrInvalidConfig, "game errors keep their sentinel")
}

func TestRegisterFlags(t *testing.T) {
	cfg := config.Default()
	cfg.Garbage = 4

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.RegisterFlags(fs)
	assert.Equal(t, "4", fs.Lookup("garbage").DefValue, "current values become defaults")

	require.NoError(t, fs.Parse([]string{"-frontend", "tui", "-mute", "-linger", "2s", "-seed", "9", "-width", "12"}))
	assert.Equal(t, "tui", cfg.Frontend)
	assert.True(t, cfg.Muted)
	assert.Equal(t, 2*time.Second, cfg.Linger)
	assert.Equal(t, uint64(9), cfg.Seed)
	assert.Equal(t, 12, cfg.Game.Width)
	assert.Equal(t, 4, cfg.Garbage)
}

func TestLoadDotEnvMissing(t *testing.T) {
	assert.NoError(t, config.LoadDotEnv(filepath.Join(t.TempDir(), ".env")))
}

func TestLoadPrecedence(t *testing.T) {
	dotenv := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(dotenv, []byte(
		"BLOCKFALL_GARBAGE=2\nBLOCKFALL_FRONTEND=tui\nBLOCKFALL_RANDOMIZER=bag\n"), 0o644))
	t.Setenv("BLOCKFALL_FRONTEND", "gui")
	t.Cleanup(func() {
		os.Unsetenv("BLOCKFALL_GARBAGE")
		os.Unsetenv("BLOCKFALL_RANDOMIZER")
	})

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg, err := config.Load(fs, []string{"-randomizer", "uniform"}, dotenv)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Garbage, ".env beats defaults")
	assert.Equal(t, "gui", cfg.Frontend, "environment beats .env")
	assert.Equal(t, "uniform", cfg.Randomizer, "flags beat everything")
}

func TestLoadInvalidFlag(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	_, err := config.Load(fs, []string{"-frontend", "web"}, filepath.Join(t.TempDir(), ".env"))
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestNewRandomizer(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 11

	a, b := cfg.NewRandomizer(), cfg.NewRandomizer()
	for range 20 {
		assert.Equal(t, a.Next(), b.Next())
	}

	cfg.Randomizer = config.RandomizerBag
	assert.IsType(t, &tetris.Bag{}, cfg.NewRandomizer())
}
