package pathgeom

// Vertices is a pool of points addressed by index. Entities store vertex
// indices instead of coordinates, so a pool is shared by every entity of a
// drawing. Dim records whether the data is planar (2) or spatial (3);
// orientation normalization only applies to planar pools.
type Vertices struct {
	Dim    int
	Points []Point
}

// NewVertices returns a pool over pts. dim must be 2 or 3.
func NewVertices(dim int, pts []Point) Vertices {
	return Vertices{Dim: dim, Points: pts}
}

// At returns the point stored at index i.
func (v Vertices) At(i int) Point {
	return v.Points[i]
}

// Select returns the points for a sequence of vertex indices.
func (v Vertices) Select(indices []int) []Point {
	pts := make([]Point, len(indices))
	for i, idx := range indices {
		pts[i] = v.Points[idx]
	}
	return pts
}

// IsCCW reports whether a closed planar ring winds counter-clockwise,
// using the signed shoelace area over X and Y. The ring's first point
// does not need to be repeated at the end.
func IsCCW(ring []Point) bool {
	if len(ring) < 3 {
		return false
	}
	var area float64
	for i, p := range ring {
		q := ring[(i+1)%len(ring)]
		area += p.X*q.Y - q.X*p.Y
	}
	return area > 0
}

// Unitize returns v scaled to magnitude 1, or the zero vector when v is
// shorter than [Tol.Zero]. Unlike [Vec3.Mul] with a reciprocal, it never
// divides by a near-zero length.
func Unitize(v Vec3) Vec3 {
	n := v.Hypot()
	if n < Tol.Zero {
		return Vec3{}
	}
	return v.Mul(1 / n)
}

// PolylineLength returns the total length of the segments connecting pts
// in order.
func PolylineLength(pts []Point) float64 {
	var length float64
	for i := 1; i < len(pts); i++ {
		length += pts[i].Distance(pts[i-1])
	}
	return length
}
