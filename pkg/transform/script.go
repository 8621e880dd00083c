package transform

import (
	"fmt"
	"io"
	"strconv"
)

// Script is a Slider that renders the transform invocation as a Blender
// Python snippet instead of executing it. The output can be pasted into
// the host's Python console or piped to `blender --python-expr` to run
// the slide with the computed factor.
type Script struct {
	w io.Writer
}

// NewScript creates a script emitter writing to w
func NewScript(w io.Writer) *Script {
	return &Script{w: w}
}

// Slide writes the operator call for the given parameters
func (s *Script) Slide(p Params) error {
	_, err := fmt.Fprintf(s.w,
		"bpy.ops.transform.edge_slide(value=%s, use_even=%s, flipped=%s, use_clamp=%s, mirror=%s, snap=%s, release_confirm=%s)\n",
		strconv.FormatFloat(p.Value, 'g', -1, 64),
		pyBool(p.UseEven),
		pyBool(p.Flipped),
		pyBool(p.UseClamp),
		pyBool(p.Mirror),
		pyBool(p.Snap),
		pyBool(p.ReleaseConfirm),
	)
	if err != nil {
		return fmt.Errorf("failed to write slide script: %w", err)
	}
	return nil
}

func pyBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
