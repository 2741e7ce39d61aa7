// Package skillgraph builds the skill/tool connection graph and computes its
// layout and centrality metrics.
package skillgraph

import (
	"math"
	"math/rand/v2"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
	"gonum.org/v1/gonum/graph/layout"
	"gonum.org/v1/gonum/graph/simple"
)

// Layout defaults, matching the published portfolio figures.
const (
	DefaultLayoutSeed       uint64 = 42
	DefaultLayoutIterations        = 50
)

// layoutPrecision rounds normalized coordinates to six decimal places,
// absorbing the float summation jitter left by neighbor iteration order.
const layoutPrecision = 1e6

// Position is a node coordinate normalized into the unit square.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// orderedGraph enumerates nodes in ascending ID order. simple.UndirectedGraph
// iterates its node map in randomized order, which would hand the seeded
// initial placements to different nodes on every call.
type orderedGraph struct {
	*simple.UndirectedGraph
}

func (g orderedGraph) Nodes() graph.Nodes {
	nodes := graph.NodesOf(g.UndirectedGraph.Nodes())
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID() < nodes[j].ID() })
	return iterator.NewOrderedNodes(nodes)
}

// Layout computes a force-directed placement of the graph nodes. The same
// seed always yields the same positions. Coordinates are min-max normalized
// into [0,1] so callers can scale them onto any canvas.
func (g *Graph) Layout(seed uint64, iterations int) map[string]Position {
	if iterations <= 0 {
		iterations = DefaultLayoutIterations
	}

	eades := layout.EadesR2{
		Repulsion: 1,
		Rate:      0.05,
		Updates:   iterations,
		Theta:     0.15,
		Src:       rand.NewPCG(seed, seed),
	}
	optimizer := layout.NewOptimizerR2(orderedGraph{g.g}, eades.Update)
	for optimizer.Update() {
	}

	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	raw := make(map[string][2]float64, len(g.names))
	for _, name := range g.names {
		coord := optimizer.Coord2(g.ids[name])
		raw[name] = [2]float64{coord.X, coord.Y}
		minX = math.Min(minX, coord.X)
		maxX = math.Max(maxX, coord.X)
		minY = math.Min(minY, coord.Y)
		maxY = math.Max(maxY, coord.Y)
	}

	spanX := maxX - minX
	spanY := maxY - minY

	positions := make(map[string]Position, len(raw))
	for name, coord := range raw {
		pos := Position{X: 0.5, Y: 0.5}
		if spanX > 0 {
			pos.X = (coord[0] - minX) / spanX
		}
		if spanY > 0 {
			pos.Y = (coord[1] - minY) / spanY
		}
		pos.X = math.Round(pos.X*layoutPrecision) / layoutPrecision
		pos.Y = math.Round(pos.Y*layoutPrecision) / layoutPrecision
		positions[name] = pos
	}
	return positions
}
