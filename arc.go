package pathgeom

import "math"

// Arc is a circular arc through three vertices: start, an interior point,
// and end. With Circle set, the three vertices instead describe a full
// circle and the arc is a closed loop.
type Arc struct {
	Index  [3]int
	Circle bool
}

var _ Curve = (*Arc)(nil)

func (a *Arc) Closed() bool {
	return a.Circle
}

func (a *Arc) Nodes() [][2]int {
	return [][2]int{{a.Index[0], a.Index[2]}}
}

func (a *Arc) Endpoints() [2]int {
	return [2]int{a.Index[0], a.Index[2]}
}

func (a *Arc) Points() []int {
	return a.Index[:]
}

func (a *Arc) Reverse() {
	a.Index[0], a.Index[2] = a.Index[2], a.Index[0]
}

// Discretize samples the circumscribed circle through the arc's three
// points. The chordal deviation of the result stays below a tolerance
// proportional to scale. Collinear control points degrade to the
// three-point polyline.
func (a *Arc) Discretize(verts Vertices, scale float64) []Point {
	p0 := verts.At(a.Index[0])
	p1 := verts.At(a.Index[1])
	p2 := verts.At(a.Index[2])

	center, radius, ok := circumcircle(p0, p1, p2)
	if !ok {
		return []Point{p0, p1, p2}
	}

	th0 := math.Atan2(p0.Y-center.Y, p0.X-center.X)
	th1 := math.Atan2(p1.Y-center.Y, p1.X-center.X)
	th2 := math.Atan2(p2.Y-center.Y, p2.X-center.X)

	var sweep float64
	if a.Circle {
		sweep = 2 * math.Pi
	} else {
		// sweep from start to end passing through the interior point
		sweep = angleSweep(th0, th2)
		if !angleBetween(th0, sweep, th1) {
			sweep -= math.Copysign(2*math.Pi, sweep)
		}
	}

	n := arcSegments(radius, sweep, scale)
	pts := make([]Point, 0, n+1)
	for i := 0; i <= n; i++ {
		th := th0 + sweep*float64(i)/float64(n)
		s, c := math.Sincos(th)
		pts = append(pts, Pt3(center.X+radius*c, center.Y+radius*s, p0.Z))
	}
	return pts
}

// circumcircle returns the center and radius of the circle through three
// planar points, or ok=false when they are collinear within [Tol.Zero].
func circumcircle(p0, p1, p2 Point) (Point, float64, bool) {
	d := 2 * (p0.X*(p1.Y-p2.Y) + p1.X*(p2.Y-p0.Y) + p2.X*(p0.Y-p1.Y))
	if math.Abs(d) < Tol.Zero {
		return Point{}, 0, false
	}
	s0 := p0.X*p0.X + p0.Y*p0.Y
	s1 := p1.X*p1.X + p1.Y*p1.Y
	s2 := p2.X*p2.X + p2.Y*p2.Y
	cx := (s0*(p1.Y-p2.Y) + s1*(p2.Y-p0.Y) + s2*(p0.Y-p1.Y)) / d
	cy := (s0*(p2.X-p1.X) + s1*(p0.X-p2.X) + s2*(p1.X-p0.X)) / d
	center := Pt3(cx, cy, p0.Z)
	return center, center.Distance(p0), true
}

// angleSweep returns the signed CCW sweep from th0 to th1 in (-2π, 2π),
// preferring the positive direction.
func angleSweep(th0, th1 float64) float64 {
	sweep := math.Mod(th1-th0, 2*math.Pi)
	if sweep < 0 {
		sweep += 2 * math.Pi
	}
	return sweep
}

// angleBetween reports whether angle th lies on the sweep starting at th0.
func angleBetween(th0, sweep, th float64) bool {
	d := math.Mod(th-th0, 2*math.Pi)
	if d < 0 {
		d += 2 * math.Pi
	}
	if sweep >= 0 {
		return d <= sweep
	}
	return d-2*math.Pi >= sweep
}

// arcSegments returns the segment count that keeps the chordal deviation
// of a polyline approximation below a scale-relative tolerance.
func arcSegments(radius, sweep, scale float64) int {
	tol := 1e-3 * scale
	if tol >= radius {
		return 4
	}
	dth := 2 * math.Acos(1-tol/radius)
	n := int(math.Ceil(math.Abs(sweep) / dth))
	return min(max(n, 4), 512)
}
