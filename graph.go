package pathgeom

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// entityEdge is a graph edge labeled with the entity that produced it.
type entityEdge struct {
	F, T   graph.Node
	Entity int
}

func (e entityEdge) From() graph.Node { return e.F }
func (e entityEdge) To() graph.Node   { return e.T }
func (e entityEdge) ReversedEdge() graph.Edge {
	return entityEdge{F: e.T, T: e.F, Entity: e.Entity}
}

// VertexGraph is an undirected graph over vertex indices whose edges
// remember the entity they came from. It is built fresh per extraction
// and discarded afterwards.
type VertexGraph struct {
	g *simple.UndirectedGraph
}

// BuildVertexGraph builds the vertex graph for a set of entities and
// returns it together with the indices of self-closed entities. Closed
// entities are complete loops on their own and contribute no edges; open
// entities contribute one labeled edge per node pair. A repeated edge
// between the same vertex pair keeps the last entity's label; an edge
// with identical ends is skipped, as it could only yield a degenerate
// cycle.
func BuildVertexGraph(entities []Curve) (*VertexGraph, []int) {
	vg := &VertexGraph{g: simple.NewUndirectedGraph()}
	var closed []int
	for i, e := range entities {
		if e.Closed() {
			closed = append(closed, i)
			continue
		}
		for _, node := range e.Nodes() {
			if node[0] == node[1] {
				continue
			}
			vg.g.SetEdge(entityEdge{
				F:      simple.Node(node[0]),
				T:      simple.Node(node[1]),
				Entity: i,
			})
		}
	}
	return vg, closed
}

// EntityBetween returns the entity labeling the edge between two vertex
// indices, or ok=false when no such edge exists.
func (vg *VertexGraph) EntityBetween(u, v int) (int, bool) {
	e := vg.g.Edge(int64(u), int64(v))
	if e == nil {
		return 0, false
	}
	return e.(entityEdge).Entity, true
}

// Degree returns the number of vertices adjacent to vertex u.
func (vg *VertexGraph) Degree(u int) int {
	return vg.g.From(int64(u)).Len()
}

// CycleBasis enumerates a minimal generating set of simple cycles using
// Paton's algorithm. The closing repetition of each walk's first vertex
// is stripped, so a triangle comes back as three vertex indices.
func (vg *VertexGraph) CycleBasis() [][]int {
	raw := topo.UndirectedCyclesIn(vg.g)
	cycles := make([][]int, 0, len(raw))
	for _, walk := range raw {
		if len(walk) > 1 && walk[0].ID() == walk[len(walk)-1].ID() {
			walk = walk[:len(walk)-1]
		}
		cycle := make([]int, len(walk))
		for i, n := range walk {
			cycle[i] = int(n.ID())
		}
		cycles = append(cycles, cycle)
	}
	return cycles
}

// ConnectedOpen partitions the graph's vertices into those on clean
// degree-2 cycle structure ("okay") and those in components containing a
// branch point, dangling end, or isolated vertex ("broken"). A single
// irregular vertex spoils its whole component: no simple loop can be
// extracted from it. The partition is advisory; path extraction does not
// depend on it.
func (vg *VertexGraph) ConnectedOpen() (broken, okay map[int]bool) {
	broken = make(map[int]bool)
	okay = make(map[int]bool)
	for _, component := range topo.ConnectedComponents(vg.g) {
		regular := true
		for _, n := range component {
			if vg.Degree(int(n.ID())) != 2 {
				regular = false
				break
			}
		}
		for _, n := range component {
			if regular {
				okay[int(n.ID())] = true
			} else {
				broken[int(n.ID())] = true
			}
		}
	}
	return broken, okay
}
