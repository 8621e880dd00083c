package transform

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParamsFixedFlags(t *testing.T) {
	p := NewParams(0.5, true, false, true)

	assert.Equal(t, 0.5, p.Value)
	assert.True(t, p.UseEven)
	assert.False(t, p.Flipped)
	assert.True(t, p.UseClamp)

	assert.False(t, p.Mirror)
	assert.False(t, p.Snap)
	assert.True(t, p.ReleaseConfirm)
}

func TestRecorderRecordsCalls(t *testing.T) {
	r := &Recorder{}

	require.NoError(t, r.Slide(NewParams(0.25, false, false, true)))
	require.NoError(t, r.Slide(NewParams(-1, false, true, false)))

	require.Len(t, r.Calls, 2)
	assert.Equal(t, 0.25, r.Calls[0].Value)
	assert.Equal(t, -1.0, r.Calls[1].Value)
	assert.True(t, r.Calls[1].Flipped)
}

func TestRecorderPropagatesError(t *testing.T) {
	wantErr := errors.New("host rejected transform")
	r := &Recorder{Err: wantErr}

	err := r.Slide(NewParams(0.5, false, false, true))
	assert.ErrorIs(t, err, wantErr)
	assert.Len(t, r.Calls, 1)
}

func TestScriptRendersOperatorCall(t *testing.T) {
	var buf strings.Builder
	s := NewScript(&buf)

	require.NoError(t, s.Slide(NewParams(0.5, true, false, true)))

	want := "bpy.ops.transform.edge_slide(value=0.5, use_even=True, flipped=False, use_clamp=True, mirror=False, snap=False, release_confirm=True)\n"
	assert.Equal(t, want, buf.String())
}

func TestScriptRendersNegativeFactor(t *testing.T) {
	var buf strings.Builder
	s := NewScript(&buf)

	require.NoError(t, s.Slide(NewParams(-0.125, false, true, false)))

	out := buf.String()
	assert.Contains(t, out, "value=-0.125")
	assert.Contains(t, out, "flipped=True")
	assert.Contains(t, out, "use_clamp=False")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("write failed")
}

func TestScriptWriteFailure(t *testing.T) {
	s := NewScript(failingWriter{})

	err := s.Slide(NewParams(0.5, false, false, true))
	assert.Error(t, err)
}
