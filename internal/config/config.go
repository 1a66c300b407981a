// Package config resolves runtime settings from defaults, an optional .env
// file, FORGE_* environment variables and command-line flags, in that order.
package config

import (
	"flag"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/appengine-ltd/forge-and-field/internal/forge"
)

const (
	EnvDataset    = "FORGE_DATASET"
	EnvJournal    = "FORGE_JOURNAL"
	EnvForgeDelay = "FORGE_FORGE_DELAY"
	EnvWidth      = "FORGE_WIDTH"
	EnvHeight     = "FORGE_HEIGHT"

	DefaultWidth  = 1280
	DefaultHeight = 720
)

type Config struct {
	// DatasetPath is a YAML dataset; empty means the bundled demo.
	DatasetPath string
	// JournalPath is the journal file; empty means the user config dir.
	JournalPath string
	ForgeDelay  time.Duration
	Width       int
	Height      int
	Classic     bool
	ShowVersion bool
}

func Default() Config {
	return Config{
		ForgeDelay: forge.DefaultDelay,
		Width:      DefaultWidth,
		Height:     DefaultHeight,
	}
}

// Load builds the configuration for a process started with args (without
// the program name). A missing .env file is not an error.
func Load(args []string) (Config, error) {
	_ = godotenv.Load()
	cfg, err := FromEnv(Default(), os.Getenv)
	if err != nil {
		return Config{}, err
	}
	cfg, err = ParseFlags(cfg, args, os.Stderr)
	if err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// FromEnv overlays environment values read through getenv onto cfg.
func FromEnv(cfg Config, getenv func(string) string) (Config, error) {
	if v := strings.TrimSpace(getenv(EnvDataset)); v != "" {
		cfg.DatasetPath = v
	}
	if v := strings.TrimSpace(getenv(EnvJournal)); v != "" {
		cfg.JournalPath = v
	}
	if v := strings.TrimSpace(getenv(EnvForgeDelay)); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, errors.Wrapf(err, "parse %s", EnvForgeDelay)
		}
		cfg.ForgeDelay = d
	}
	if v := strings.TrimSpace(getenv(EnvWidth)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, errors.Wrapf(err, "parse %s", EnvWidth)
		}
		cfg.Width = n
	}
	if v := strings.TrimSpace(getenv(EnvHeight)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, errors.Wrapf(err, "parse %s", EnvHeight)
		}
		cfg.Height = n
	}
	return cfg, nil
}

// ParseFlags overlays command-line flags onto cfg. Usage and parse errors
// are written to out.
func ParseFlags(cfg Config, args []string, out io.Writer) (Config, error) {
	fs := flag.NewFlagSet("forge-and-field", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.StringVar(&cfg.DatasetPath, "dataset", cfg.DatasetPath, "path to a YAML dataset (default: bundled demo)")
	fs.StringVar(&cfg.JournalPath, "journal", cfg.JournalPath, "path to the journal file")
	fs.DurationVar(&cfg.ForgeDelay, "forge-delay", cfg.ForgeDelay, "how long a forge takes")
	fs.BoolVar(&cfg.Classic, "classic", cfg.Classic, "run the terminal client")
	fs.BoolVar(&cfg.ShowVersion, "version", cfg.ShowVersion, "print version and exit")
	if err := fs.Parse(args); err != nil {
		return cfg, errors.Wrap(err, "parse flags")
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("window size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.ForgeDelay < 0 {
		return errors.Errorf("forge delay must not be negative, got %s", c.ForgeDelay)
	}
	return nil
}
