package charts

import (
	"io"
	"os"
	"path/filepath"
)

// Figure is any chart that can render itself as a standalone HTML document.
// Every go-echarts chart type satisfies it.
type Figure interface {
	Render(w io.Writer) error
}

// WriteHTML renders the figure into an HTML file at path, creating parent
// directories as needed.
func WriteHTML(fig Figure, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &RenderError{Path: path, Message: "creating output directory", Cause: err}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return &RenderError{Path: path, Message: "creating output file", Cause: err}
	}
	defer f.Close()

	if err := fig.Render(f); err != nil {
		return &RenderError{Path: path, Message: "rendering figure", Cause: err}
	}
	return nil
}
