package pathops

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"

	"github.com/pelletier/go-toml/v2"
)

// Options configures parsing, simplification and serialization. The zero
// value is not useful; start from [DefaultOptions] or pass a nil *Options to
// get the defaults.
//
// Options can be decoded from TOML with [LoadOptions]:
//
//	tolerance = 1e-7
//	precision = 3
//	max_segments = 5000
type Options struct {
	// Tolerance is the spatial tolerance, relative to the extent of the
	// input. Points closer than this are treated as the same point.
	Tolerance float64 `toml:"tolerance"`
	// ParamTolerance is the tolerance on segment parameters. Cuts closer
	// than this on one segment are merged.
	ParamTolerance float64 `toml:"param_tolerance"`
	// ArcTolerance is the maximum distance, in path units, between an
	// elliptical arc and the cubic Béziers that approximate it.
	ArcTolerance float64 `toml:"arc_tolerance"`

	// MaxSegments bounds the number of monotonic pieces the input is split
	// into.
	MaxSegments int `toml:"max_segments"`
	// MaxIntersections bounds the total number of cut points.
	MaxIntersections int `toml:"max_intersections"`
	// MaxSubdivisions bounds the number of curve subdivision steps in one
	// call to Simplify.
	MaxSubdivisions int `toml:"max_subdivisions"`

	// Precision is the number of decimal places written by Serialize.
	Precision int `toml:"precision"`

	// Logger receives debug and warning messages. Nil discards them.
	Logger *slog.Logger `toml:"-"`
}

// DefaultOptions returns the default options. Each call returns a new value.
func DefaultOptions() *Options {
	return &Options{
		Tolerance:        1e-6,
		ParamTolerance:   1e-9,
		ArcTolerance:     0.1,
		MaxSegments:      100_000,
		MaxIntersections: 1_000_000,
		MaxSubdivisions:  1 << 20,
		Precision:        6,
	}
}

func (o *Options) orDefault() *Options {
	if o == nil {
		return DefaultOptions()
	}
	return o
}

// Validate checks that all tolerances and bounds are usable.
func (o *Options) Validate() error {
	switch {
	case !(o.Tolerance > 0):
		return fmt.Errorf("tolerance must be positive, got %g: %w", o.Tolerance, ErrInvalidOptions)
	case !(o.ParamTolerance > 0):
		return fmt.Errorf("param_tolerance must be positive, got %g: %w", o.ParamTolerance, ErrInvalidOptions)
	case !(o.ArcTolerance > 0):
		return fmt.Errorf("arc_tolerance must be positive, got %g: %w", o.ArcTolerance, ErrInvalidOptions)
	case o.MaxSegments <= 0:
		return fmt.Errorf("max_segments must be positive, got %d: %w", o.MaxSegments, ErrInvalidOptions)
	case o.MaxIntersections <= 0:
		return fmt.Errorf("max_intersections must be positive, got %d: %w", o.MaxIntersections, ErrInvalidOptions)
	case o.MaxSubdivisions <= 0:
		return fmt.Errorf("max_subdivisions must be positive, got %d: %w", o.MaxSubdivisions, ErrInvalidOptions)
	case o.Precision < 0 || o.Precision > 17:
		return fmt.Errorf("precision must be in [0, 17], got %d: %w", o.Precision, ErrInvalidOptions)
	}
	return nil
}

// LoadOptions reads TOML from r. Keys that are absent keep their default
// values; unknown keys are an error.
func LoadOptions(r io.Reader) (*Options, error) {
	opts := DefaultOptions()
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(opts); err != nil {
		return nil, fmt.Errorf("decoding options: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

// ParseOptions is like [LoadOptions] but reads from a byte slice.
func ParseOptions(data []byte) (*Options, error) {
	return LoadOptions(bytes.NewReader(data))
}
