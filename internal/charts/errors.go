// Package charts builds the portfolio visualizations as renderable ECharts figures.
package charts

import "fmt"

// BuildError represents a failure assembling a chart from the dataset
type BuildError struct {
	Chart   string
	Message string
	Cause   error
}

func (e *BuildError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s chart build error: %s: %v", e.Chart, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s chart build error: %s", e.Chart, e.Message)
}

func (e *BuildError) Unwrap() error {
	return e.Cause
}

// RenderError represents a failure writing a rendered figure to disk
type RenderError struct {
	Path    string
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error for %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("render error for %s: %s", e.Path, e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
