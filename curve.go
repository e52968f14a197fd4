package pathgeom

// Curve is a vertex-indexed curve primitive. Implementations do not store
// coordinates; they reference a shared [Vertices] pool by index.
//
// Points returns the defining vertex indices in traversal order and
// Reverse flips that order in place. Reversing a curve swaps its
// Endpoints and reverses its Discretize output; nothing else may change.
type Curve interface {
	// Closed reports whether the curve is a complete loop on its own.
	Closed() bool
	// Nodes returns one vertex-index pair per internal edge segment.
	Nodes() [][2]int
	// Endpoints returns the two terminal vertex indices.
	Endpoints() [2]int
	// Points returns the defining vertex indices in traversal order.
	Points() []int
	// Reverse flips the traversal order in place.
	Reverse()
	// Discretize approximates the curve as ordered points from the pool.
	// scale is the overall drawing scale; tolerances are relative to it.
	Discretize(verts Vertices, scale float64) []Point
}

// Line is a straight polyline through two or more vertices. A line whose
// first and last indices coincide is a closed loop.
type Line struct {
	Index []int
}

var _ Curve = (*Line)(nil)

func (l *Line) Closed() bool {
	return len(l.Index) > 2 && l.Index[0] == l.Index[len(l.Index)-1]
}

func (l *Line) Nodes() [][2]int {
	nodes := make([][2]int, 0, len(l.Index)-1)
	for i := 1; i < len(l.Index); i++ {
		nodes = append(nodes, [2]int{l.Index[i-1], l.Index[i]})
	}
	return nodes
}

func (l *Line) Endpoints() [2]int {
	return [2]int{l.Index[0], l.Index[len(l.Index)-1]}
}

func (l *Line) Points() []int {
	return l.Index
}

func (l *Line) Reverse() {
	reverseInts(l.Index)
}

func (l *Line) Discretize(verts Vertices, scale float64) []Point {
	return verts.Select(l.Index)
}

func reverseInts(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
