package generator

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/craig/portfolio-visualizer/internal/schemas"
)

// ManifestFile is the name of the run manifest written into the output directory.
const ManifestFile = "manifest.json"

// Chart statuses recorded in the manifest.
const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)

// Manifest is the machine-readable record of a generation run.
type Manifest struct {
	RunID      string          `json:"run_id"`
	StartedAt  time.Time       `json:"started_at"`
	FinishedAt time.Time       `json:"finished_at"`
	OutputDir  string          `json:"output_dir"`
	Generated  int             `json:"generated"`
	Failed     int             `json:"failed"`
	Charts     []ManifestEntry `json:"charts"`
}

// ManifestEntry records the outcome of one chart.
type ManifestEntry struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	File   string `json:"file,omitempty"`
	Error  string `json:"error,omitempty"`
}

// BuildManifest converts a run summary into its manifest document.
func BuildManifest(s *Summary) *Manifest {
	m := &Manifest{
		RunID:      s.RunID.String(),
		StartedAt:  s.Started.UTC(),
		FinishedAt: s.Finished.UTC(),
		OutputDir:  s.OutputDir,
		Charts:     make([]ManifestEntry, 0, len(s.Results)),
	}
	for _, result := range s.Results {
		entry := ManifestEntry{Name: result.Name}
		if result.Err != nil {
			entry.Status = StatusFailed
			entry.Error = result.Err.Error()
			m.Failed++
		} else {
			entry.Status = StatusOK
			entry.File = filepath.Base(result.File)
			m.Generated++
		}
		m.Charts = append(m.Charts, entry)
	}
	return m
}

// WriteManifest validates the summary's manifest against its schema and
// writes it to path.
func WriteManifest(s *Summary, path string) error {
	doc, err := json.MarshalIndent(BuildManifest(s), "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	if err := schemas.ValidateManifest(doc); err != nil {
		return fmt.Errorf("manifest failed schema validation: %w", err)
	}
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
