package slide

import (
	"errors"
	"fmt"
	"strings"
)

// Method selects how the per-edge slide ranges of a loop are combined
// into a single loop-level range.
type Method int

const (
	// Average uses the component-wise mean of all edge ranges
	Average Method = iota
	// Minimum uses the component-wise minimum of all edge ranges
	Minimum
	// Maximum uses the component-wise maximum of all edge ranges
	Maximum
	// First uses the range of the first measured edge
	First
)

// String returns the canonical name of the method
func (m Method) String() string {
	switch m {
	case Average:
		return "average"
	case Minimum:
		return "minimum"
	case Maximum:
		return "maximum"
	case First:
		return "first"
	default:
		return fmt.Sprintf("method(%d)", int(m))
	}
}

// ParseMethod converts a method name to a Method, case-insensitively
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(name) {
	case "average", "avg":
		return Average, nil
	case "minimum", "min":
		return Minimum, nil
	case "maximum", "max":
		return Maximum, nil
	case "first":
		return First, nil
	default:
		return Average, fmt.Errorf("unknown measurement method %q (expected average, minimum, maximum or first)", name)
	}
}

// DefaultNonQuadScale is the conservative factor applied to slide range
// estimates on triangle and n-gon adjacency. The estimate measures to
// face corners rather than to an opposite edge, so it is scaled down to
// stay short of self-intersection.
const DefaultNonQuadScale = 0.7

// Options control the loop analysis
type Options struct {
	// Method selects the range aggregation statistic
	Method Method

	// NonQuadScale scales the corner-distance estimate used when an
	// edge's adjacent faces are not both quadrilaterals
	NonQuadScale float64

	// MirrorMissingOpposite reuses the one known side's distance for
	// both directions when a quad yields no opposite edge. When false,
	// such edges fall back to the corner-distance estimate instead.
	MirrorMissingOpposite bool
}

// DefaultOptions returns the analysis options used by the original tool
func DefaultOptions() Options {
	return Options{
		Method:                Average,
		NonQuadScale:          DefaultNonQuadScale,
		MirrorMissingOpposite: true,
	}
}

// EdgeRange is the directional slide range of a single edge: how far it
// can travel toward each of its two flanking boundaries.
type EdgeRange struct {
	Edge     int
	Positive float64
	Negative float64
}

// LoopDistance is the aggregated directional slide range of a loop
type LoopDistance struct {
	Positive float64
	Negative float64
}

// Analysis is the result of analyzing an edge loop selection
type Analysis struct {
	// Loop holds the edge indices actually analyzed. This is the raw
	// selection when it validates as a loop, or the repaired chain.
	Loop []int

	// Ranges holds the per-edge slide ranges of the slideable loop edges
	Ranges []EdgeRange

	// Distance is the aggregated loop-level slide range
	Distance LoopDistance

	// LoopWidth is the mean total travel (positive + negative) across
	// the measured edges. Informational only.
	LoopWidth float64

	// Repaired reports whether the raw selection failed loop validation
	// and a traced chain was used instead
	Repaired bool
}

// Analysis failure modes. Degenerate ranges are not errors: a zero
// distance in the requested direction resolves to factor 0.
var (
	// ErrNoSelection means no edges were selected at invocation
	ErrNoSelection = errors.New("no edges selected")

	// ErrNoValidLoop means the selection could not be validated or
	// repaired into a usable loop, or no selected edge was slideable
	ErrNoValidLoop = errors.New("no valid edge loop in selection")
)
