package svgpath

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestDrawPoints(t *testing.T) {
	var tts = []struct {
		name   string
		points string
		closed bool
		want   []DrawingInstruction
	}{
		{"polyline", "0,0 10,0 10,10", false, []DrawingInstruction{
			move(0, 0), line(10, 0), line(10, 10),
		}},
		{"polygon", "0 0 10 0 10 10", true, []DrawingInstruction{
			move(0, 0), line(10, 0), line(10, 10), closePath(),
		}},
		{"single point", "5,5", false, []DrawingInstruction{
			move(5, 5),
		}},
		{"trailing separators", " 1 1 2 2 ,\n", false, []DrawingInstruction{
			move(1, 1), line(2, 2),
		}},
	}
	for _, tt := range tts {
		t.Run(tt.name, func(t *testing.T) {
			rec := NewRecorder()
			require.NoError(t, DrawPoints(tt.points, rec, tt.closed))
			if diff := cmp.Diff(tt.want, rec.Finish().Instructions()); diff != "" {
				t.Errorf("instructions mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDrawPointsErrors(t *testing.T) {
	rec := NewRecorder()

	err := DrawPoints("0,0 10", rec, false)
	require.ErrorIs(t, err, ErrArityMismatch)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, 4, pe.Expected)
	require.Equal(t, 3, pe.Actual)

	err = DrawPoints("", rec, true)
	require.ErrorIs(t, err, ErrArityMismatch)
	require.ErrorAs(t, err, &pe)
	require.Equal(t, 2, pe.Expected)

	err = DrawPoints("0,0 a,b", rec, false)
	require.ErrorIs(t, err, ErrMalformedNumber)

	err = DrawPoints("1 2 ; 3 4", rec, false)
	require.ErrorIs(t, err, ErrMalformedNumber)
	require.ErrorAs(t, err, &pe)
	require.Equal(t, 4, pe.Pos)

	err = DrawPoints("0 0 1.5.5", rec, true)
	require.ErrorIs(t, err, ErrMalformedNumber)

	err = DrawPoints("0 0 10 10 #", rec, true)
	require.ErrorIs(t, err, ErrMalformedNumber)

	require.Equal(t, 0, rec.Finish().Len())
}
