package inspect

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craig/portfolio-visualizer/internal/charts"
	"github.com/craig/portfolio-visualizer/internal/portfolio"
)

func renderedChart(t *testing.T) string {
	t.Helper()
	radar, err := charts.BuildRadar(portfolio.Skills, portfolio.ProficiencyBands)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, radar.Render(&buf))
	return buf.String()
}

func TestVerifyChart_AcceptsRenderedFigure(t *testing.T) {
	assert.NoError(t, VerifyChart(strings.NewReader(renderedChart(t))))
}

func TestVerifyChart_RejectsMissingContainer(t *testing.T) {
	err := VerifyChart(strings.NewReader("<html><body><p>hello</p></body></html>"))
	require.Error(t, err)

	var verifyErr *VerifyError
	require.ErrorAs(t, err, &verifyErr)
	assert.Contains(t, verifyErr.Message, "container")
}

func TestVerifyChart_RejectsMissingInitScript(t *testing.T) {
	html := `<html><body><div class="container"><div class="item" id="chart"></div></div></body></html>`
	err := VerifyChart(strings.NewReader(html))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "echarts.init")
}

func TestVerifyChartFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "radar.html")
	require.NoError(t, os.WriteFile(path, []byte(renderedChart(t)), 0o644))
	assert.NoError(t, VerifyChartFile(path))
}

func TestVerifyChartFile_MissingFile(t *testing.T) {
	err := VerifyChartFile(filepath.Join(t.TempDir(), "absent.html"))
	require.Error(t, err)

	var verifyErr *VerifyError
	require.ErrorAs(t, err, &verifyErr)
	assert.Contains(t, verifyErr.Path, "absent.html")
}

func TestVerifyChartFile_ReportsPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.html")
	require.NoError(t, os.WriteFile(path, []byte("<html></html>"), 0o644))

	err := VerifyChartFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}
