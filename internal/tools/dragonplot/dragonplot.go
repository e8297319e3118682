// Package dragonplot implements the dragon command: build a dragon curve,
// expand it and print it as text.
package dragonplot

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"strconv"
	"unicode/utf8"

	"honnef.co/go/dragon"
	"honnef.co/go/dragon/internal/platform/config"
	"honnef.co/go/dragon/internal/render"
)

const (
	// maxFactorLimit caps the configurable MaxFactor.
	maxFactorLimit = 1024
	// maxGridCells caps the number of cells Run renders.
	maxGridCells = 1 << 24
)

// Config holds configuration for plotting a dragon curve. Environment
// variables provide defaults that flags and positional arguments override.
type Config struct {
	Order     int
	Factor    int    `env:"DRAGON_EXPAND_FACTOR" envDefault:"2"`
	On        string `env:"DRAGON_ON_GLYPH" envDefault:"·"`
	Off       string `env:"DRAGON_OFF_GLYPH"`
	MaxOrder  int    `env:"DRAGON_MAX_ORDER" envDefault:"16"`
	MaxFactor int    `env:"DRAGON_MAX_FACTOR" envDefault:"64"`
	Verbose   bool   `env:"DRAGON_VERBOSE"`
}

// ParseConfig parses the environment, then flags and positional arguments,
// into a Config. The positional arguments are ORDER and an optional
// EXPAND_FACTOR; flags may appear before, between or after them.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Config{Off: " "}
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.IntVar(&cfg.Factor, "factor", cfg.Factor, "expansion factor; scales the curve and adds points along each segment")
	fs.StringVar(&cfg.On, "on", cfg.On, "glyph for cells on the curve")
	fs.StringVar(&cfg.Off, "off", cfg.Off, "glyph for cells off the curve")
	fs.IntVar(&cfg.MaxOrder, "max-order", cfg.MaxOrder, "largest order to accept")
	fs.IntVar(&cfg.MaxFactor, "max-factor", cfg.MaxFactor, "largest expand factor to accept")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "log curve statistics to stderr")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: %s [flags] ORDER [EXPAND_FACTOR]\n", fs.Name())
		fs.PrintDefaults()
	}
	pos, err := parseInterspersed(fs, args)
	if err != nil {
		return Config{}, err
	}

	switch len(pos) {
	case 2:
		factor, err := strconv.Atoi(pos[1])
		if err != nil {
			return Config{}, fmt.Errorf("invalid expand factor %q: %w", pos[1], err)
		}
		cfg.Factor = factor
		fallthrough
	case 1:
		order, err := strconv.Atoi(pos[0])
		if err != nil {
			return Config{}, fmt.Errorf("invalid order %q: %w", pos[0], err)
		}
		cfg.Order = order
	case 0:
		return Config{}, errors.New("missing order argument")
	default:
		return Config{}, fmt.Errorf("too many arguments: %q", pos[2:])
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// parseInterspersed parses flags that appear anywhere in args and returns the
// positional arguments in order. Everything after "--" is positional.
func parseInterspersed(fs *flag.FlagSet, args []string) ([]string, error) {
	var pos []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		rest := fs.Args()
		if len(rest) == 0 {
			return pos, nil
		}
		if consumed := args[:len(args)-len(rest)]; len(consumed) > 0 && consumed[len(consumed)-1] == "--" {
			return append(pos, rest...), nil
		}
		pos = append(pos, rest[0])
		args = rest[1:]
	}
}

// Validate checks cfg for values the curve algebra and the renderer cannot
// handle.
func (cfg Config) Validate() error {
	if cfg.MaxOrder < 0 || cfg.MaxOrder > dragon.MaxOrder {
		return fmt.Errorf("max order must be between 0 and %d, got %d", dragon.MaxOrder, cfg.MaxOrder)
	}
	if cfg.Order < 0 {
		return fmt.Errorf("order must not be negative, got %d", cfg.Order)
	}
	if cfg.Order > cfg.MaxOrder {
		return fmt.Errorf("order %d exceeds the maximum of %d", cfg.Order, cfg.MaxOrder)
	}
	if cfg.MaxFactor < 1 || cfg.MaxFactor > maxFactorLimit {
		return fmt.Errorf("max factor must be between 1 and %d, got %d", maxFactorLimit, cfg.MaxFactor)
	}
	if cfg.Factor < 1 {
		return fmt.Errorf("expand factor must be at least 1, got %d", cfg.Factor)
	}
	if cfg.Factor > cfg.MaxFactor {
		return fmt.Errorf("expand factor %d exceeds the maximum of %d", cfg.Factor, cfg.MaxFactor)
	}
	if utf8.RuneCountInString(cfg.On) != 1 {
		return fmt.Errorf("on glyph must be a single character, got %q", cfg.On)
	}
	if utf8.RuneCountInString(cfg.Off) != 1 {
		return fmt.Errorf("off glyph must be a single character, got %q", cfg.Off)
	}
	return nil
}

// Run builds the curve described by cfg and writes it to out. If cfg.Verbose
// is set, statistics about the curve are written to logger.
func Run(cfg Config, out io.Writer, logger *log.Logger) error {
	if out == nil {
		return errors.New("output is required")
	}
	if logger == nil || !cfg.Verbose {
		logger = log.New(io.Discard, "", 0)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	c, err := dragon.Build(cfg.Order)
	if err != nil {
		return fmt.Errorf("build curve: %w", err)
	}
	logger.Printf("order %d: %d points, bounding box %v", cfg.Order, c.Len(), c.BoundingBox())

	// Build justifies the curve, so expanding scales its bottom right corner
	// and the grid can be sized before any points are generated.
	br := c.BottomRight()
	grid := dragon.Sz(br.X*cfg.Factor+1, br.Y*cfg.Factor+1)
	if grid.Area() > maxGridCells {
		return fmt.Errorf("grid %v exceeds %d cells; lower the order or the expand factor", grid, maxGridCells)
	}

	c, err = c.Expand(cfg.Factor)
	if err != nil {
		return fmt.Errorf("expand curve: %w", err)
	}
	set := dragon.NewPointSet(c)
	logger.Printf("expanded by %d: %d points (%d distinct), grid %v", cfg.Factor, c.Len(), set.Len(), render.Grid(set))

	on, _ := utf8.DecodeRuneInString(cfg.On)
	off, _ := utf8.DecodeRuneInString(cfg.Off)
	if err := render.Text(out, set, render.Options{On: on, Off: off}); err != nil {
		return fmt.Errorf("render curve: %w", err)
	}
	return nil
}
