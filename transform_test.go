package svgpath

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	mt "github.com/rustyoz/Mtransform"
	"github.com/stretchr/testify/require"
)

func TestTransformed(t *testing.T) {
	p, err := Build("M1 1 L2 2 C1 1 2 2 3 3 S1 1 2 2 Z", Transformed[Path](NewRecorder(), Scale(2, 3)))
	require.NoError(t, err)

	want := []DrawingInstruction{
		move(2, 3),
		line(4, 6),
		curve(2, 3, 4, 6, 6, 9),
		quad(2, 3, 4, 6),
		closePath(),
	}
	if diff := cmp.Diff(want, p.Instructions()); diff != "" {
		t.Errorf("instructions mismatch (-want +got):\n%s", diff)
	}
}

func TestTransformIdentity(t *testing.T) {
	rec := NewRecorder()
	require.NoError(t, AddCircle(NewTransformBuilder(rec, mt.Identity()), 10, 5, 5))
	want, err := ApproximateCircle(10, 5, 5)
	require.NoError(t, err)
	require.Equal(t, want.Instructions(), rec.Finish().Instructions())
}

func TestCompose(t *testing.T) {
	p, err := Build("M1 1 L-2 4", Transformed[Path](NewRecorder(), Compose(Scale(2, 2), Scale(3, 1))))
	require.NoError(t, err)
	require.Equal(t, []DrawingInstruction{move(6, 2), line(-12, 8)}, p.Instructions())
}
