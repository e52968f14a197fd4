package pathgeom

import "math"

// CubicBezier is a cubic Bézier segment whose four control points live in
// the vertex pool. Only the first and last control vertices lie on the
// curve and participate in the vertex graph.
type CubicBezier struct {
	Index [4]int
}

var _ Curve = (*CubicBezier)(nil)

func (b *CubicBezier) Closed() bool {
	return false
}

func (b *CubicBezier) Nodes() [][2]int {
	return [][2]int{{b.Index[0], b.Index[3]}}
}

func (b *CubicBezier) Endpoints() [2]int {
	return [2]int{b.Index[0], b.Index[3]}
}

func (b *CubicBezier) Points() []int {
	return b.Index[:]
}

func (b *CubicBezier) Reverse() {
	b.Index[0], b.Index[1], b.Index[2], b.Index[3] =
		b.Index[3], b.Index[2], b.Index[1], b.Index[0]
}

// Discretize evaluates the Bernstein form at uniform parameter values.
// The sample count grows with the control polygon length relative to
// scale, so flatter curves get fewer points.
func (b *CubicBezier) Discretize(verts Vertices, scale float64) []Point {
	p0 := verts.At(b.Index[0])
	p1 := verts.At(b.Index[1])
	p2 := verts.At(b.Index[2])
	p3 := verts.At(b.Index[3])

	hull := p0.Distance(p1) + p1.Distance(p2) + p2.Distance(p3)
	n := min(max(int(math.Ceil(hull/(1e-2*scale))), 16), 256)

	pts := make([]Point, 0, n+1)
	for i := 0; i <= n; i++ {
		pts = append(pts, evalCubic(p0, p1, p2, p3, float64(i)/float64(n)))
	}
	return pts
}

func evalCubic(p0, p1, p2, p3 Point, t float64) Point {
	mt := 1 - t
	b0 := mt * mt * mt
	b1 := 3 * mt * mt * t
	b2 := 3 * mt * t * t
	b3 := t * t * t
	return Point{
		X: b0*p0.X + b1*p1.X + b2*p2.X + b3*p3.X,
		Y: b0*p0.Y + b1*p1.Y + b2*p2.Y + b3*p3.Y,
		Z: b0*p0.Z + b1*p1.Z + b2*p2.Z + b3*p3.Z,
	}
}
