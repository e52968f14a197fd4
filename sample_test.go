package pathgeom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResampleCount(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(10, 0)}
	got, err := Resample(pts, 5, 0, true)
	require.NoError(t, err)

	want := []Point{Pt(0, 0), Pt(2.5, 0), Pt(5, 0), Pt(7.5, 0), Pt(10, 0)}
	diff(t, want, got, approx(1e-9))
}

func TestResampleStepRounded(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(10, 0)}
	got, err := Resample(pts, 0, 3, true)
	require.NoError(t, err)

	// endpoint reached exactly, spacing uniform and no wider than step
	require.Less(t, got[len(got)-1].Distance(Pt(10, 0)), Tol.Merge)
	for i := 1; i < len(got); i++ {
		d := got[i].Distance(got[i-1])
		require.LessOrEqual(t, d, 3.0+Tol.Merge)
		require.InDelta(t, got[1].Distance(got[0]), d, 1e-9)
	}
}

func TestResampleStepRaw(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(10, 0)}
	got, err := Resample(pts, 0, 3, false)
	require.NoError(t, err)

	want := []Point{Pt(0, 0), Pt(3, 0), Pt(6, 0), Pt(9, 0)}
	diff(t, want, got, approx(1e-9))
}

func TestResampleStepBeyondLength(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(5, 0), Pt(10, 0)}
	got, err := Resample(pts, 0, 25, true)
	require.NoError(t, err)
	diff(t, []Point{Pt(0, 0), Pt(10, 0)}, got)
}

func TestResampleArgs(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(10, 0)}
	_, err := Resample(pts, 5, 3, true)
	require.ErrorIs(t, err, ErrResampleArgs)
	_, err = Resample(pts, 0, 0, true)
	require.ErrorIs(t, err, ErrResampleArgs)
}

func TestResampleCorners(t *testing.T) {
	// an L shape of total length 20
	pts := []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10)}
	got, err := Resample(pts, 5, 0, true)
	require.NoError(t, err)

	want := []Point{Pt(0, 0), Pt(5, 0), Pt(10, 0), Pt(10, 5), Pt(10, 10)}
	diff(t, want, got, approx(1e-9))
}

func TestSampleOrderAndClamp(t *testing.T) {
	ps := NewPathSample([]Point{Pt(0, 0), Pt(10, 0)})
	require.InDelta(t, 10, ps.Length, 1e-12)

	got := ps.Sample([]float64{7, 2, 10})
	diff(t, []Point{Pt(7, 0), Pt(2, 0), Pt(10, 0)}, got, approx(1e-9))
}

func TestTruncateLength(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(3, 0), Pt(3, 4), Pt(10, 4)}
	ps := NewPathSample(pts)

	for _, d := range []float64{0.5, 3, 5, 7, ps.Length} {
		truncated := ps.Truncate(d)
		require.InDelta(t, d, PolylineLength(truncated), Tol.Merge,
			"truncate at %g", d)
	}
}

func TestTruncateReusesVertex(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(3, 0), Pt(3, 4)}
	ps := NewPathSample(pts)

	// the cut lands exactly on an existing vertex
	truncated := ps.Truncate(3)
	diff(t, []Point{Pt(0, 0), Pt(3, 0)}, truncated)

	truncated = ps.Truncate(5)
	require.Len(t, truncated, 3)
	diff(t, Pt(3, 2), truncated[2], approx(1e-9))
}

func TestPathSampleDegenerateSegment(t *testing.T) {
	// the middle segment is shorter than the zero tolerance
	pts := []Point{Pt(0, 0), Pt(5, 0), Pt(5, 1e-14), Pt(10, 0)}
	ps := NewPathSample(pts)
	got := ps.Sample([]float64{2.5, 7.5})
	diff(t, []Point{Pt(2.5, 0), Pt(7.5, 0)}, got, approx(1e-6))
}

func TestResamplePreservesEndpointsIn3D(t *testing.T) {
	pts := []Point{Pt3(0, 0, 0), Pt3(0, 0, 10)}
	got, err := Resample(pts, 3, 0, true)
	require.NoError(t, err)
	diff(t, []Point{Pt3(0, 0, 0), Pt3(0, 0, 5), Pt3(0, 0, 10)}, got, approx(1e-9))
}

func TestResampleStepRoundedSpacing(t *testing.T) {
	// length 10 with step 4: spacing must shrink to 10/3, not stretch
	pts := []Point{Pt(0, 0), Pt(10, 0)}
	got, err := Resample(pts, 0, 4, true)
	require.NoError(t, err)
	require.Len(t, got, 4)
	require.InDelta(t, 10.0/3.0, got[1].Distance(got[0]), 1e-9)
	require.True(t, math.Abs(got[len(got)-1].X-10) < Tol.Merge)
}
