package sfile

import (
	"fmt"
	"log/slog"

	"github.com/seisio/sfile-go/internal/parser"
	"github.com/seisio/sfile-go/pkg/sfile/layout"
)

// Format selects the phase-line layout generation.
type Format = parser.Format

const (
	// FormatNordic is the classic layout used by Seisan before v12.
	FormatNordic = parser.FormatNordic
	// FormatNordic2 is the layout introduced with Seisan v12.
	FormatNordic2 = parser.FormatNordic2
)

// DefaultCenturyCutoff is the two-digit-year century boundary: values
// at or above it resolve to the 1900s, values below it to the 2000s.
const DefaultCenturyCutoff = parser.DefaultCenturyCutoff

// Option configures Parse behavior using the functional options pattern.
type Option func(*parser.Config)

// WithFormat selects the phase-line layout. Default: FormatNordic.
func WithFormat(f Format) Option {
	return func(c *parser.Config) {
		c.Format = f
	}
}

// WithCenturyCutoff overrides the two-digit-year century boundary.
// Default: DefaultCenturyCutoff.
func WithCenturyCutoff(cutoff int) Option {
	return func(c *parser.Config) {
		c.CenturyCutoff = cutoff
	}
}

// WithoutArrivals skips phase lines entirely. The lines are still
// retained in the Event's raw text.
func WithoutArrivals() Option {
	return func(c *parser.Config) {
		c.ReadArrivals = false
	}
}

// WithLayouts registers vendor-extension layouts. Lines whose type
// code is otherwise unrecognized are matched against these layouts and
// decoded into Event.Extensions.
func WithLayouts(lf *layout.File) Option {
	return func(c *parser.Config) {
		if lf == nil {
			return
		}
		c.Extensions = append(c.Extensions, lf.Compile()...)
	}
}

// WithLogger sets a logger for parse diagnostics (unrecognized lines
// at debug level). Default: discard.
func WithLogger(logger *slog.Logger) Option {
	return func(c *parser.Config) {
		if logger != nil {
			c.Logger = logger
		}
	}
}

// buildConfig applies options to the default config and validates it.
func buildConfig(opts []Option) (parser.Config, error) {
	cfg := parser.DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.Format != FormatNordic && cfg.Format != FormatNordic2 {
		return cfg, fmt.Errorf("format must be nordic or nordic2, got %d", cfg.Format)
	}
	if cfg.CenturyCutoff < 0 || cfg.CenturyCutoff > 99 {
		return cfg, fmt.Errorf("century cutoff must be in [0,99], got %d", cfg.CenturyCutoff)
	}
	return cfg, nil
}
