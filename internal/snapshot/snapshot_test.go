package snapshot

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craig/portfolio-visualizer/internal/charts"
	"github.com/craig/portfolio-visualizer/internal/portfolio"
)

func chromeAvailable() bool {
	for _, bin := range []string{"google-chrome", "google-chrome-stable", "chromium", "chromium-browser"} {
		if _, err := exec.LookPath(bin); err == nil {
			return true
		}
	}
	return false
}

func TestCapturePNG_MissingDocument(t *testing.T) {
	err := CapturePNG(context.Background(), filepath.Join(t.TempDir(), "absent.html"), "out.png", time.Second)
	require.Error(t, err)

	var captureErr *CaptureError
	require.ErrorAs(t, err, &captureErr)
	assert.Contains(t, captureErr.Message, "not found")
}

func TestCaptureCharts_PropagatesFailure(t *testing.T) {
	err := CaptureCharts(context.Background(), []string{"radar"}, t.TempDir(), t.TempDir(), time.Second)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "capturing radar")
}

func TestCapturePNG_RendersChart(t *testing.T) {
	if !chromeAvailable() {
		t.Skip("Chrome not available, skipping capture test")
	}

	radar, err := charts.BuildRadar(portfolio.Skills, portfolio.ProficiencyBands)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, radar.Render(&buf))

	dir := t.TempDir()
	htmlPath := filepath.Join(dir, "radar.html")
	require.NoError(t, os.WriteFile(htmlPath, buf.Bytes(), 0o644))

	outPath := filepath.Join(dir, "radar.png")
	require.NoError(t, CapturePNG(context.Background(), htmlPath, outPath, DefaultTimeout))

	png, err := os.ReadFile(outPath)
	require.NoError(t, err)
	require.Greater(t, len(png), 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}
