// Package config assembles the runtime settings from defaults, an optional
// .env file, BLOCKFALL_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"math/rand/v2"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/plus3/blockfall/highscore"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

// ErrInvalid is wrapped by every configuration error.
var ErrInvalid = errors.New("invalid configuration")

const (
	FrontendGUI = "gui"
	FrontendTUI = "tui"

	RandomizerUniform = "uniform"
	RandomizerBag     = "bag"
)

// EnvPrefix prefixes every environment variable read by ApplyEnv.
const EnvPrefix = "BLOCKFALL_"

// Config is everything cmd/blockfall needs to start a session.
type Config struct {
	Game tetris.Config

	Frontend      string
	HighScorePath string
	Randomizer    string
	// Seed drives piece selection; 0 picks a random seed.
	Seed    uint64
	Garbage int

	Muted  bool
	Volume float64
	Debug  bool
	// Linger is how long the final board stays visible. Negative waits for
	// the player to quit.
	Linger   time.Duration
	CellSize int
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Game:          tetris.DefaultConfig(),
		Frontend:      FrontendGUI,
		HighScorePath: highscore.DefaultPath,
		Randomizer:    RandomizerUniform,
		Volume:        1,
		Linger:        loop.DefaultLinger,
		CellSize:      30,
	}
}

// LoadDotEnv exports the variables in path into the process environment
// without overriding ones already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides fields from BLOCKFALL_* variables found by lookup,
// usually os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	var errs []error
	get := func(name string) (string, bool) {
		v, ok := lookup(EnvPrefix + name)
		return v, ok && v != ""
	}
	fail := func(name, v string, err error) {
		errs = append(errs, fmt.Errorf("%w: %s%s=%q: %v", ErrInvalid, EnvPrefix, name, v, err))
	}

	str := func(name string, dst *string) {
		if v, ok := get(name); ok {
			*dst = v
		}
	}
	integer := func(name string, dst *int) {
		if v, ok := get(name); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				fail(name, v, err)
				return
			}
			*dst = n
		}
	}
	boolean := func(name string, dst *bool) {
		if v, ok := get(name); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				fail(name, v, err)
				return
			}
			*dst = b
		}
	}
	duration := func(name string, dst *time.Duration) {
		if v, ok := get(name); ok {
			d, err := time.ParseDuration(v)
			if err != nil {
				fail(name, v, err)
				return
			}
			*dst = d
		}
	}

	str("FRONTEND", &c.Frontend)
	str("HIGHSCORE", &c.HighScorePath)
	str("RANDOMIZER", &c.Randomizer)
	integer("GARBAGE", &c.Garbage)
	integer("WIDTH", &c.Game.Width)
	integer("HEIGHT", &c.Game.Height)
	integer("CELL_SIZE", &c.CellSize)
	boolean("MUTED", &c.Muted)
	boolean("DEBUG", &c.Debug)
	duration("LINGER", &c.Linger)
	duration("DROP_INTERVAL", &c.Game.InitialDropInterval)

	if v, ok := get("SEED"); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			fail("SEED", v, err)
		} else {
			c.Seed = seed
		}
	}
	if v, ok := get("VOLUME"); ok {
		vol, err := strconv.ParseFloat(v, 64)
		if err != nil {
			fail("VOLUME", v, err)
		} else {
			c.Volume = vol
		}
	}

	return errors.Join(errs...)
}

// RegisterFlags binds command-line flags to c. The current field values
// become the flag defaults, so call it after ApplyEnv.
func (c *Config) RegisterFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.Frontend, "frontend", c.Frontend, "presentation: gui or tui")
	flags.StringVar(&c.HighScorePath, "highscore", c.HighScorePath, "path of the high score file")
	flags.StringVar(&c.Randomizer, "randomizer", c.Randomizer, "piece selection: uniform or bag")
	flags.Uint64Var(&c.Seed, "seed", c.Seed, "piece selection seed (0 = random)")
	flags.IntVar(&c.Garbage, "garbage", c.Garbage, "pre-fill this many bottom rows with garbage")
	flags.IntVar(&c.Game.Width, "width", c.Game.Width, "board width in cells")
	flags.IntVar(&c.Game.Height, "height", c.Game.Height, "board height in cells")
	flags.DurationVar(&c.Game.InitialDropInterval, "drop-interval", c.Game.InitialDropInterval, "gravity interval at level 1")
	flags.BoolVar(&c.Muted, "mute", c.Muted, "disable sound")
	flags.Float64Var(&c.Volume, "volume", c.Volume, "sound volume between 0 and 1")
	flags.BoolVar(&c.Debug, "debug", c.Debug, "enable the debug overlay (gui, F1 toggles)")
	flags.DurationVar(&c.Linger, "linger", c.Linger, "how long to show the final board (negative waits for quit)")
	flags.IntVar(&c.CellSize, "cell-size", c.CellSize, "gui cell size in pixels")
}

// Validate checks every field.
func (c Config) Validate() error {
	if err := c.Game.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	switch {
	case c.Frontend != FrontendGUI && c.Frontend != FrontendTUI:
		return fmt.Errorf("%w: frontend must be %q or %q, got %q", ErrInvalid, FrontendGUI, FrontendTUI, c.Frontend)
	case c.Randomizer != RandomizerUniform && c.Randomizer != RandomizerBag:
		return fmt.Errorf("%w: randomizer must be %q or %q, got %q", ErrInvalid, RandomizerUniform, RandomizerBag, c.Randomizer)
	case c.Garbage < 0 || c.Garbage >= c.Game.Height:
		return fmt.Errorf("%w: garbage must be in [0,%d), got %d", ErrInvalid, c.Game.Height, c.Garbage)
	case c.CellSize <= 0:
		return fmt.Errorf("%w: cell size must be positive, got %d", ErrInvalid, c.CellSize)
	case c.Volume < 0 || c.Volume > 1:
		return fmt.Errorf("%w: volume must be in [0,1], got %g", ErrInvalid, c.Volume)
	case c.HighScorePath == "":
		return fmt.Errorf("%w: high score path is empty", ErrInvalid)
	}
	return nil
}

// NewRandomizer builds the configured piece randomizer.
func (c Config) NewRandomizer() tetris.Randomizer {
	seed := c.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	if c.Randomizer == RandomizerBag {
		return tetris.NewBag(seed)
	}
	return tetris.NewUniform(seed)
}

// Load runs the whole chain: defaults, the .env file at dotenv, the process
// environment and finally args parsed with flags.
func Load(flags *flag.FlagSet, args []string, dotenv string) (Config, error) {
	cfg := Default()
	if err := LoadDotEnv(dotenv); err != nil {
		return cfg, err
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}

	cfg.RegisterFlags(flags)
	if err := flags.Parse(args); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}
