package pathgeom

import (
	"sync/atomic"

	"github.com/emirpasic/gods/sets/linkedhashset"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// dedupDropped counts duplicate entity indices dropped while resolving
// vertex cycles. A well-formed simple cycle should never revisit an edge;
// the counter exists to find out whether real inputs ever do.
var dedupDropped atomic.Uint64

// DedupDropped returns how many duplicate entity indices have been
// dropped during cycle resolution since the package was loaded.
func DedupDropped() uint64 {
	return dedupDropped.Load()
}

// ResolveVertexCycle converts a simple cycle of vertex indices into an
// ordered, oriented path of entity indices.
//
// When verts is non-nil the cycle's winding decides the traversal
// direction: counter-clockwise keeps the vertex order, clockwise reverses
// it. Without coordinates the vertex order is kept.
//
// The entities along the path have their internal point order reversed in
// place so that each entity's tail vertex is the next entity's head; a
// returned path can then be walked without re-reversal. This mutation is
// one-way and makes concurrent resolution over the same entities unsafe.
//
// Returns ErrEdgesNotConnected when two adjacent entities share no
// endpoint, which indicates a malformed or non-simple cycle. Entities
// reversed before the failure stay reversed; the caller should discard
// the path.
func ResolveVertexCycle(cycle []int, vg *VertexGraph, entities []Curve, verts *Vertices) ([]int, error) {
	forward := true
	if verts != nil {
		forward = IsCCW(verts.Select(cycle))
	}

	// recover the entity labeling each consecutive vertex pair, including
	// the wrap-around pair, keeping first occurrences only
	seen := linkedhashset.New()
	for i := range cycle {
		u := cycle[i]
		v := cycle[(i+1)%len(cycle)]
		entity, ok := vg.EntityBetween(u, v)
		if !ok {
			return nil, errors.Wrapf(ErrEdgesNotConnected,
				"no entity between vertices %d and %d", u, v)
		}
		if seen.Contains(entity) {
			dedupDropped.Add(1)
			logger.Debug("duplicate entity in vertex cycle",
				zap.Int("entity", entity))
			continue
		}
		seen.Add(entity)
	}

	path := make([]int, 0, seen.Size())
	it := seen.Iterator()
	for it.Next() {
		path = append(path, it.Value().(int))
	}
	if !forward {
		reverseInts(path)
	}

	// align every entity's internal point order with the path direction
	for i := range path {
		a := path[i]
		b := path[(i+1)%len(path)]
		ra, rb, err := edgeDirection(entities[a].Endpoints(), entities[b].Endpoints())
		if err != nil {
			return nil, errors.Wrapf(err, "entities %d and %d", a, b)
		}
		if ra {
			entities[a].Reverse()
		}
		if rb {
			entities[b].Reverse()
		}
	}
	return path, nil
}

// edgeDirection reports which of two adjacent edges must be reversed so
// that a's tail vertex equals b's head vertex.
func edgeDirection(a, b [2]int) (reverseA, reverseB bool, err error) {
	switch {
	case a[0] == b[0]:
		return true, false, nil
	case a[0] == b[1]:
		return true, true, nil
	case a[1] == b[0]:
		return false, false, nil
	case a[1] == b[1]:
		return false, true, nil
	}
	return false, false, ErrEdgesNotConnected
}
