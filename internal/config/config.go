// Package config loads grid and command settings from the environment and
// command-line flags. Flags override environment values.
package config

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/talgya/hexgrid/internal/hexgrid"
)

// Strategy names accepted for Config.Strategy.
const (
	StrategyExact       = "exact"
	StrategyApproximate = "approximate"
)

// Config holds grid construction parameters and command options.
type Config struct {
	Orientation string  `env:"HEXGRID_ORIENTATION" envDefault:"flat"`
	OriginX     float64 `env:"HEXGRID_ORIGIN_X"    envDefault:"0"`
	OriginY     float64 `env:"HEXGRID_ORIGIN_Y"    envDefault:"0"`
	SizeX       float64 `env:"HEXGRID_SIZE_X"      envDefault:"1"`
	SizeY       float64 `env:"HEXGRID_SIZE_Y"      envDefault:"1"`
	Strategy    string  `env:"HEXGRID_STRATEGY"    envDefault:"exact"`
	Verbose     bool    `env:"HEXGRID_VERBOSE"`

	// Command inputs, flags only.
	Polygon string // Path to a JSON polygon ring, "-" for stdin
	Shape   string // Built-in shape when Polygon is empty: blob, hexagon
	Seed    int64
	Radius  float64
	At      string // "x,y" point to locate instead of rasterizing
	Layers  int    // Neighbor layers to list around the located cell
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// ParseConfig parses the environment, then flags from args, into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.Orientation, "orientation", cfg.Orientation, "hexagon orientation: flat or pointy")
	fs.Float64Var(&cfg.OriginX, "origin-x", cfg.OriginX, "plane x of the center of cell (0, 0)")
	fs.Float64Var(&cfg.OriginY, "origin-y", cfg.OriginY, "plane y of the center of cell (0, 0)")
	fs.Float64Var(&cfg.SizeX, "size-x", cfg.SizeX, "hexagon scale on the x axis")
	fs.Float64Var(&cfg.SizeY, "size-y", cfg.SizeY, "hexagon scale on the y axis")
	fs.StringVar(&cfg.Strategy, "strategy", cfg.Strategy, "rasterization strategy: exact or approximate")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "enable debug logging")
	fs.StringVar(&cfg.Polygon, "polygon", "", "JSON file with a polygon ring ([[x, y], ...]), - for stdin")
	fs.StringVar(&cfg.Shape, "shape", "blob", "built-in polygon when -polygon is not set: blob or hexagon")
	fs.Int64Var(&cfg.Seed, "seed", 42, "noise seed for the blob shape")
	fs.Float64Var(&cfg.Radius, "radius", 10, "radius of the built-in shape")
	fs.StringVar(&cfg.At, "at", "", "locate the cell at x,y instead of rasterizing")
	fs.IntVar(&cfg.Layers, "layers", 0, "with -at, also list neighbors within this many layers")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the grid parameters.
func (c Config) Validate() error {
	var errs []error
	if _, err := hexgrid.OrientationByName(c.Orientation); err != nil {
		errs = append(errs, err)
	}
	if c.SizeX <= 0 || c.SizeY <= 0 {
		errs = append(errs, fmt.Errorf("size must be positive, got (%g, %g)", c.SizeX, c.SizeY))
	}
	switch strings.ToLower(c.Strategy) {
	case StrategyExact, StrategyApproximate:
	default:
		errs = append(errs, fmt.Errorf("unknown strategy %q", c.Strategy))
	}
	if c.Layers < 0 {
		errs = append(errs, fmt.Errorf("layers must not be negative, got %d", c.Layers))
	}
	return errors.Join(errs...)
}

// Grid builds the grid described by c.
func (c Config) Grid() (*hexgrid.Grid, error) {
	orientation, err := hexgrid.OrientationByName(c.Orientation)
	if err != nil {
		return nil, err
	}

	var geom hexgrid.Geometry
	if strings.ToLower(c.Strategy) != StrategyApproximate {
		geom = hexgrid.PlanarGeometry{}
	}
	return hexgrid.NewGrid(orientation,
		hexgrid.Pt(c.OriginX, c.OriginY),
		hexgrid.Pt(c.SizeX, c.SizeY),
		hexgrid.WithGeometry(geom),
	), nil
}
