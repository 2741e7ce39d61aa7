// Package skillgraph builds the skill/tool connection graph and computes its
// layout and centrality metrics.
package skillgraph

import (
	"sort"

	"gonum.org/v1/gonum/graph/network"
)

// NodeScore pairs a node name with a centrality score.
type NodeScore struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// Stats holds the network metrics reported after generation.
// Centrality scores are normalized to [0,1]; TopConnected and TopBridging are
// sorted by score descending with name as the tie-breaker.
type Stats struct {
	Nodes        int                `json:"nodes"`
	Edges        int                `json:"edges"`
	Density      float64            `json:"density"`
	Degree       map[string]float64 `json:"degree_centrality"`
	Betweenness  map[string]float64 `json:"betweenness_centrality"`
	TopConnected []NodeScore        `json:"top_connected"`
	TopBridging  []NodeScore        `json:"top_bridging"`
}

// Stats computes density, degree centrality and betweenness centrality.
func (g *Graph) Stats() *Stats {
	n := g.NumNodes()
	m := g.NumEdges()

	stats := &Stats{
		Nodes:       n,
		Edges:       m,
		Degree:      make(map[string]float64, n),
		Betweenness: make(map[string]float64, n),
	}
	if n > 1 {
		stats.Density = float64(2*m) / float64(n*(n-1))
	}

	for _, name := range g.names {
		degree := 0.0
		if n > 1 {
			degree = float64(g.Degree(name)) / float64(n-1)
		}
		stats.Degree[name] = degree
	}

	// Brandes betweenness counts ordered pairs, so the undirected
	// normalization divisor is (n-1)(n-2) rather than (n-1)(n-2)/2.
	raw := network.Betweenness(g.g)
	scale := 0.0
	if n > 2 {
		scale = 1.0 / float64((n-1)*(n-2))
	}
	for _, name := range g.names {
		stats.Betweenness[name] = raw[g.ids[name]] * scale
	}

	stats.TopConnected = rankNodes(stats.Degree)
	stats.TopBridging = rankNodes(stats.Betweenness)

	return stats
}

// rankNodes sorts a score map descending, breaking ties by name.
func rankNodes(scores map[string]float64) []NodeScore {
	ranked := make([]NodeScore, 0, len(scores))
	for name, score := range scores {
		ranked = append(ranked, NodeScore{Name: name, Score: score})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Name < ranked[j].Name
	})
	return ranked
}
