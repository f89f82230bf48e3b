package pathops

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	require.NoError(t, opts.Validate())
	// Each call returns a fresh value.
	opts.Precision = 1
	diff(t, 6, DefaultOptions().Precision)
	if (*Options)(nil).orDefault() == nil {
		t.Error("nil options didn't resolve to the defaults")
	}
}

func TestLoadOptions(t *testing.T) {
	const data = `
tolerance = 1e-7
precision = 3
max_segments = 5000
`
	opts, err := LoadOptions(strings.NewReader(data))
	require.NoError(t, err)
	want := DefaultOptions()
	want.Tolerance = 1e-7
	want.Precision = 3
	want.MaxSegments = 5000
	diff(t, want, opts)
}

func TestParseOptionsErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		invalid bool
	}{
		{"unknown key", "tolerence = 1e-7", false},
		{"wrong type", `precision = "three"`, false},
		{"syntax", "tolerance = ", false},
		{"negative tolerance", "tolerance = -1.0", true},
		{"zero param tolerance", "param_tolerance = 0.0", true},
		{"zero arc tolerance", "arc_tolerance = 0.0", true},
		{"zero segments", "max_segments = 0", true},
		{"zero intersections", "max_intersections = 0", true},
		{"zero subdivisions", "max_subdivisions = 0", true},
		{"precision too high", "precision = 18", true},
		{"negative precision", "precision = -1", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := ParseOptions([]byte(tt.data))
			require.Error(t, err)
			assert.Nil(t, opts)
			assert.Equal(t, tt.invalid, errors.Is(err, ErrInvalidOptions), "%s", err)
		})
	}
}

func TestOptionsValidateNaN(t *testing.T) {
	opts := DefaultOptions()
	opts.Tolerance = math.NaN()
	assert.ErrorIs(t, opts.Validate(), ErrInvalidOptions)
}

func TestOptionsLogger(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Logger = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	_, err := Simplify(mustParse(t, "M0 0L100 0L0 100L100 100Z"), opts)
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "pkg=pathops")
	assert.Contains(t, out, "reassembled contours")

	// Without a logger, nothing is written and nothing breaks.
	opts.Logger = nil
	_, err = Simplify(mustParse(t, "M0 0L100 0L0 100L100 100Z"), opts)
	require.NoError(t, err)
	assert.False(t, (*Options)(nil).logger().Enabled(t.Context(), slog.LevelError))
}
