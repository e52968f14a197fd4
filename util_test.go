package pathgeom

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func approx(tol float64) cmp.Option {
	return cmpopts.EquateApprox(0, tol)
}

// unitSquare returns a CCW unit square: four vertices and four line
// entities tracing 0→1→2→3→0.
func unitSquare() (Vertices, []Curve) {
	verts := NewVertices(2, []Point{
		Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1),
	})
	entities := []Curve{
		&Line{Index: []int{0, 1}},
		&Line{Index: []int{1, 2}},
		&Line{Index: []int{2, 3}},
		&Line{Index: []int{3, 0}},
	}
	return verts, entities
}
