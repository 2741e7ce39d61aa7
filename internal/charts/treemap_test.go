package charts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craig/portfolio-visualizer/internal/portfolio"
)

func TestBuildTreemap_GroupsToolsByCategory(t *testing.T) {
	tm, err := BuildTreemap(portfolio.Tools, portfolio.NodeCategories)
	require.NoError(t, err)

	html := renderToString(t, tm)
	for _, tool := range portfolio.Tools {
		assert.Contains(t, html, tool.Name)
	}
	assert.Contains(t, html, "Programming Languages")
	assert.Contains(t, html, "ML/AI Tools")
}

func TestBuildTreemap_EmptyTools(t *testing.T) {
	_, err := BuildTreemap(nil, portfolio.NodeCategories)
	require.Error(t, err)

	var buildErr *BuildError
	require.ErrorAs(t, err, &buildErr)
	assert.Equal(t, ChartTreemap, buildErr.Chart)
}

func TestBuildTreemap_InvalidScore(t *testing.T) {
	tools := []portfolio.ToolScore{{Name: "Abacus", Score: -4}}
	_, err := BuildTreemap(tools, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Abacus")
}

func TestBuildTreemap_UnmappedToolFallsBackToCompetency(t *testing.T) {
	tools := []portfolio.ToolScore{{Name: "Mystery Tool", Score: 50}}
	tm, err := BuildTreemap(tools, map[string]portfolio.Category{})
	require.NoError(t, err)

	html := renderToString(t, tm)
	assert.Contains(t, html, "Mystery Tool")
	assert.Contains(t, html, portfolio.CategoryCompetency.DisplayName())
}
