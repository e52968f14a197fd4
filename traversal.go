package pathgeom

import "github.com/pkg/errors"

// ClosedPaths extracts every closed loop from a set of entities as
// ordered entity-index paths. Self-closed entities each become a
// single-entity path; the remaining loops are found as a cycle basis of
// the vertex graph and resolved with ResolveVertexCycle, which reorients
// entity point order in place. Cycles with fewer than two vertices carry
// no path and are skipped.
//
// Because of the in-place reorientation, concurrent calls over the same
// entities must be externally serialized.
func ClosedPaths(entities []Curve, verts Vertices) ([][]int, error) {
	vg, closed := BuildVertexGraph(entities)

	paths := make([][]int, 0, len(closed))
	for _, i := range closed {
		paths = append(paths, []int{i})
	}
	for _, cycle := range vg.CycleBasis() {
		if len(cycle) < 2 {
			continue
		}
		path, err := ResolveVertexCycle(cycle, vg, entities, &verts)
		if err != nil {
			return nil, errors.Wrap(err, "resolving vertex cycle")
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// DiscretizePath turns an entity path into one connected polyline. Each
// entity except the last loses its final point, since consecutive
// entities of a resolved path start where the previous one ended.
// Planar results are normalized to counter-clockwise order; the reversed
// copy never aliases entity output. Returns ErrEmptyPath for an empty
// path.
func DiscretizePath(entities []Curve, verts Vertices, path []int, scale float64) ([]Point, error) {
	if len(path) == 0 {
		return nil, ErrEmptyPath
	}

	var discrete []Point
	if len(path) == 1 {
		discrete = entities[path[0]].Discretize(verts, scale)
	} else {
		for i, id := range path {
			current := entities[id].Discretize(verts, scale)
			if i < len(path)-1 {
				current = current[:len(current)-1]
			}
			discrete = append(discrete, current...)
		}
	}

	if verts.Dim == 2 && !IsCCW(discrete) {
		reversed := make([]Point, len(discrete))
		for i, pt := range discrete {
			reversed[len(discrete)-1-i] = pt
		}
		discrete = reversed
	}
	return discrete, nil
}
