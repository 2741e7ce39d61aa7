package charts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craig/portfolio-visualizer/internal/portfolio"
	"github.com/craig/portfolio-visualizer/internal/skillgraph"
)

func TestBuildNetwork_RendersEveryNode(t *testing.T) {
	data := portfolio.Default()
	graph, err := BuildNetwork(data, skillgraph.DefaultLayoutSeed)
	require.NoError(t, err)

	html := renderToString(t, graph)
	for node := range data.NodeCategories {
		assert.Contains(t, html, node)
	}
	for _, category := range portfolio.Categories {
		assert.Contains(t, html, category.DisplayName())
	}
}

func TestBuildNetwork_UsesCategoryColors(t *testing.T) {
	data := portfolio.Default()
	graph, err := BuildNetwork(data, skillgraph.DefaultLayoutSeed)
	require.NoError(t, err)

	html := renderToString(t, graph)
	for _, color := range portfolio.CategoryColors {
		assert.Contains(t, html, color)
	}
}

func TestBuildNetwork_DeterministicAcrossBuilds(t *testing.T) {
	data := portfolio.Default()
	first, err := BuildNetwork(data, skillgraph.DefaultLayoutSeed)
	require.NoError(t, err)
	second, err := BuildNetwork(data, skillgraph.DefaultLayoutSeed)
	require.NoError(t, err)

	// Strip the per-render random chart element IDs before comparing.
	a := renderToString(t, first)
	b := renderToString(t, second)
	assert.Equal(t, len(a), len(b), "same seed should reproduce the figure layout")
}

func TestBuildNetwork_EmptyConnections(t *testing.T) {
	data := portfolio.Default()
	data.Connections = nil
	_, err := BuildNetwork(data, skillgraph.DefaultLayoutSeed)
	require.Error(t, err)

	var buildErr *BuildError
	require.ErrorAs(t, err, &buildErr)
	assert.Equal(t, ChartNetwork, buildErr.Chart)
}

func TestNetworkTooltip_ListsNeighbors(t *testing.T) {
	g, err := skillgraph.Build(portfolio.Connections)
	require.NoError(t, err)

	tip := networkTooltip("Python", portfolio.CategoryLanguage, g)
	assert.Contains(t, tip, "Python")
	assert.Contains(t, tip, "7 connections")
	assert.Contains(t, tip, "and 2 more")
}
