package pad

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cwbudde/algo-baseline/numeric"
)

// Errors returned by padding functions.
var (
	ErrEmptyData         = errors.New("pad: empty data")
	ErrNegativePadLength = errors.New("pad: pad length must be >= 0")
	ErrUnknownMode       = errors.New("pad: unknown mode")
	ErrExtrapolateWindow = errors.New("pad: extrapolate window must be > 0")
)

// Mode selects how edge values are generated.
type Mode int

const (
	// ModeReflect mirrors the data about the edge sample, without
	// repeating the edge sample itself.
	ModeReflect Mode = iota

	// ModeEdge repeats the edge sample.
	ModeEdge

	// ModeConstant fills with a constant value (see WithConstant).
	ModeConstant

	// ModeExtrapolate fits a first-degree polynomial to a boundary
	// window and evaluates it outward, extending a trend rather than
	// mirroring values.
	ModeExtrapolate
)

// ParseMode converts a mode name to a Mode. Names are matched
// case-insensitively.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(name) {
	case "reflect":
		return ModeReflect, nil
	case "edge":
		return ModeEdge, nil
	case "constant":
		return ModeConstant, nil
	case "extrapolate":
		return ModeExtrapolate, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, name)
	}
}

// FillFunc fills both pad segments in place. The segments arrive
// zeroed with length equal to the pad length; data is the original
// sequence and must not be modified.
type FillFunc func(left, right []float64, data []float64)

type config struct {
	mode      Mode
	fill      FillFunc
	constant  float64
	window    numeric.Param
	windowSet bool
}

// Option configures edge padding.
type Option func(*config)

// WithMode selects one of the built-in padding modes.
func WithMode(m Mode) Option {
	return func(c *config) {
		c.mode = m
	}
}

// WithFill installs a custom fill callback, overriding the mode.
func WithFill(f FillFunc) Option {
	return func(c *config) {
		c.fill = f
	}
}

// WithConstant sets the fill value for ModeConstant.
func WithConstant(v float64) Option {
	return func(c *config) {
		c.constant = v
	}
}

// WithExtrapolateWindow sets the boundary window used by
// ModeExtrapolate on both sides.
func WithExtrapolateWindow(w int) Option {
	return func(c *config) {
		c.window = numeric.Scalar(float64(w))
		c.windowSet = true
	}
}

// WithExtrapolateWindows sets distinct left and right boundary windows
// for ModeExtrapolate.
func WithExtrapolateWindows(left, right int) Option {
	return func(c *config) {
		c.window = numeric.Array([]float64{float64(left), float64(right)})
		c.windowSet = true
	}
}

// PadEdges returns data extended by padLength values on each side.
// The output has length len(data) + 2*padLength and the original data
// occupies the middle. A negative padLength is an error.
func PadEdges(data []float64, padLength int, opts ...Option) ([]float64, error) {
	left, right, err := Edges(data, padLength, opts...)
	if err != nil {
		return nil, err
	}

	out := make([]float64, 0, len(data)+2*padLength)
	out = append(out, left...)
	out = append(out, data...)
	out = append(out, right...)
	return out, nil
}

// Edges returns just the two pad segments, each padLength long,
// without concatenating them to the data. When padLength is 0 both
// segments are empty.
func Edges(data []float64, padLength int, opts ...Option) (left, right []float64, err error) {
	if padLength < 0 {
		return nil, nil, fmt.Errorf("%w: %d", ErrNegativePadLength, padLength)
	}

	if padLength == 0 {
		return []float64{}, []float64{}, nil
	}

	if len(data) == 0 {
		return nil, nil, ErrEmptyData
	}

	cfg := config{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	left = make([]float64, padLength)
	right = make([]float64, padLength)
	n := len(data)

	if cfg.fill != nil {
		cfg.fill(left, right, data)
		return left, right, nil
	}

	switch cfg.mode {
	case ModeReflect:
		for i := range left {
			left[i] = data[reflectIndex(i-padLength, n)]
			right[i] = data[reflectIndex(n+i, n)]
		}
	case ModeEdge:
		for i := range left {
			left[i] = data[0]
			right[i] = data[n-1]
		}
	case ModeConstant:
		for i := range left {
			left[i] = cfg.constant
			right[i] = cfg.constant
		}
	case ModeExtrapolate:
		if err := extrapolate(left, right, data, padLength, &cfg); err != nil {
			return nil, nil, err
		}
	default:
		return nil, nil, fmt.Errorf("%w: %d", ErrUnknownMode, cfg.mode)
	}

	return left, right, nil
}

// reflectIndex maps an out-of-range index into [0, n-1] by mirroring
// about the boundary samples, bouncing as often as needed.
func reflectIndex(k, n int) int {
	if n == 1 {
		return 0
	}

	period := 2 * (n - 1)
	m := k % period
	if m < 0 {
		m += period
	}

	if m >= n {
		m = period - m
	}

	return m
}

// extrapolate fills both segments by fitting a line to each boundary
// window and evaluating it over the pad positions.
func extrapolate(left, right, data []float64, padLength int, cfg *config) error {
	n := len(data)

	window := cfg.window
	if !cfg.windowSet {
		// Default window follows the pad length, but keeps at least
		// two points for the line fit when the data allows it.
		w := padLength
		if w < 2 {
			w = 2
		}
		if w > n {
			w = n
		}
		window = numeric.Scalar(float64(w))
	}

	windows, _, err := window.Resolve(2, true)
	if err != nil {
		return err
	}

	wl, wr := int(windows[0]), int(windows[1])
	if wl <= 0 || wr <= 0 {
		return fmt.Errorf("%w: got (%d, %d)", ErrExtrapolateWindow, wl, wr)
	}

	if wl > n {
		wl = n
	}
	if wr > n {
		wr = n
	}

	slopeL, interceptL := lineFit(data, 0, wl)
	slopeR, interceptR := lineFit(data, n-wr, wr)

	for i := range left {
		left[i] = interceptL + slopeL*float64(i-padLength)
		right[i] = interceptR + slopeR*float64(n+i)
	}

	return nil
}

// lineFit computes the least-squares line through
// (start, data[start]) .. (start+length-1, data[start+length-1]).
// A single point yields a horizontal line.
func lineFit(data []float64, start, length int) (slope, intercept float64) {
	if length == 1 {
		return 0, data[start]
	}

	var sx, sy, sxx, sxy float64
	for i := 0; i < length; i++ {
		x := float64(start + i)
		y := data[start+i]
		sx += x
		sy += y
		sxx += x * x
		sxy += x * y
	}

	nf := float64(length)
	denom := nf*sxx - sx*sx
	if denom == 0 {
		return 0, sy / nf
	}

	slope = (nf*sxy - sx*sy) / denom
	intercept = (sy - slope*sx) / nf
	return slope, intercept
}
