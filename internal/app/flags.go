package app

import (
	"flag"
	"strconv"
	"strings"
	"time"

	"cellular/internal/view"
	"cellular/pkg/core"
	"cellular/pkg/sims/life"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim      string
	Pattern  string
	Soup     int
	Density  float64
	Seed     int64
	CellSize int
	TPS      int
	Interval time.Duration
	Width    int
	Height   int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:      "life",
		Pattern:  "r-pentomino",
		Density:  0.35,
		Seed:     42,
		CellSize: view.DefaultCellSize,
		TPS:      60,
		Interval: core.DefaultInterval,
		Width:    960,
		Height:   720,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "pattern stamped at the origin, one of "+strings.Join(life.PatternNames(), ", ")+" (empty for none)")
	fs.IntVar(&c.Soup, "soup", c.Soup, "half-width of a random soup around the origin (0 disables)")
	fs.Float64Var(&c.Density, "density", c.Density, "probability that a soup cell starts alive")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "time between generations while running")
	fs.IntVar(&c.Width, "width", c.Width, "initial window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "initial window height in pixels")
}

// SimConfig renders the sim-specific options as the string map factories take.
func (c *Config) SimConfig() map[string]string {
	return map[string]string{
		"pattern": c.Pattern,
		"soup":    strconv.Itoa(c.Soup),
		"density": strconv.FormatFloat(c.Density, 'g', -1, 64),
		"seed":    strconv.FormatInt(c.Seed, 10),
	}
}
