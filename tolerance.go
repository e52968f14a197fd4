package pathgeom

// Tolerance bundles the global distance tolerances. Zero guards divisions
// and degenerate-segment tests; Merge is the distance below which two
// points are considered the same vertex.
type Tolerance struct {
	Zero  float64
	Merge float64
}

// Tol holds the tolerances used by every operation in this package.
// Callers working at unusual scales may adjust it before use; it is read
// concurrently and must not be changed while operations are in flight.
var Tol = Tolerance{
	Zero:  1e-12,
	Merge: 1e-5,
}
