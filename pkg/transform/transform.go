package transform

// Params carries the arguments of the native edge slide transform.
// Mirror, Snap and ReleaseConfirm are fixed by NewParams; the host
// operator is always invoked the same way apart from the user-facing
// value and flags.
type Params struct {
	Value          float64
	UseEven        bool
	Flipped        bool
	UseClamp       bool
	Mirror         bool
	Snap           bool
	ReleaseConfirm bool
}

// NewParams builds transform parameters for a resolved slide factor
func NewParams(factor float64, useEven, flipped, useClamp bool) Params {
	return Params{
		Value:          factor,
		UseEven:        useEven,
		Flipped:        flipped,
		UseClamp:       useClamp,
		Mirror:         false,
		Snap:           false,
		ReleaseConfirm: true,
	}
}

// Slider is the native edge slide transform of the host application.
// It is an opaque collaborator: callers hand it a factor and flags and
// must not assume anything about its interpolation.
type Slider interface {
	Slide(p Params) error
}

// Recorder is a Slider that records every invocation. It backs tests
// and dry runs.
type Recorder struct {
	Calls []Params
	Err   error
}

// Slide records the parameters and returns the configured error
func (r *Recorder) Slide(p Params) error {
	r.Calls = append(r.Calls, p)
	return r.Err
}
