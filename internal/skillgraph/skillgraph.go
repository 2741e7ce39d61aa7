// Package skillgraph builds the skill/tool connection graph and computes its
// layout and centrality metrics.
package skillgraph

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/graph/simple"

	"github.com/craig/portfolio-visualizer/internal/portfolio"
)

// Graph is an undirected skill/tool graph with stable name-to-ID mapping.
// Node IDs are assigned in sorted name order so downstream layout and
// centrality results are reproducible.
type Graph struct {
	g     *simple.UndirectedGraph
	ids   map[string]int64
	names []string // sorted; index == node ID
	edges int
}

// Build constructs the graph from the connection list. Duplicate edges are
// collapsed; self loops and empty endpoints are rejected.
func Build(connections []portfolio.Connection) (*Graph, error) {
	if len(connections) == 0 {
		return nil, &BuildError{Message: "connection list is empty"}
	}

	nodeSet := make(map[string]struct{}, len(connections)*2)
	for _, conn := range connections {
		if conn.Source == "" || conn.Target == "" {
			return nil, &BuildError{
				Message: fmt.Sprintf("connection %q -- %q has an empty endpoint", conn.Source, conn.Target),
			}
		}
		if conn.Source == conn.Target {
			return nil, &BuildError{
				Message: fmt.Sprintf("connection %q -- %q is a self loop", conn.Source, conn.Target),
			}
		}
		nodeSet[conn.Source] = struct{}{}
		nodeSet[conn.Target] = struct{}{}
	}

	names := make([]string, 0, len(nodeSet))
	for name := range nodeSet {
		names = append(names, name)
	}
	sort.Strings(names)

	ids := make(map[string]int64, len(names))
	g := simple.NewUndirectedGraph()
	for i, name := range names {
		ids[name] = int64(i)
		g.AddNode(simple.Node(int64(i)))
	}

	edges := 0
	seen := make(map[[2]int64]struct{}, len(connections))
	for _, conn := range connections {
		from, to := ids[conn.Source], ids[conn.Target]
		if to < from {
			from, to = to, from
		}
		key := [2]int64{from, to}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		g.SetEdge(simple.Edge{F: simple.Node(from), T: simple.Node(to)})
		edges++
	}

	return &Graph{g: g, ids: ids, names: names, edges: edges}, nil
}

// NumNodes returns the node count.
func (g *Graph) NumNodes() int {
	return len(g.names)
}

// NumEdges returns the number of distinct undirected edges.
func (g *Graph) NumEdges() int {
	return g.edges
}

// Nodes returns all node names in sorted order.
func (g *Graph) Nodes() []string {
	nodes := make([]string, len(g.names))
	copy(nodes, g.names)
	return nodes
}

// Degree returns the number of neighbors of the named node.
func (g *Graph) Degree(name string) int {
	id, ok := g.ids[name]
	if !ok {
		return 0
	}
	return g.g.From(id).Len()
}

// Neighbors returns the named node's neighbors in sorted order.
func (g *Graph) Neighbors(name string) []string {
	id, ok := g.ids[name]
	if !ok {
		return nil
	}

	var neighbors []string
	iter := g.g.From(id)
	for iter.Next() {
		neighbors = append(neighbors, g.names[iter.Node().ID()])
	}
	sort.Strings(neighbors)
	return neighbors
}
