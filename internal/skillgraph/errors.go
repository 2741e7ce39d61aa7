// Package skillgraph builds the skill/tool connection graph and computes its
// layout and centrality metrics.
package skillgraph

import "fmt"

// BuildError represents an error constructing the connection graph.
type BuildError struct {
	Message string
	Cause   error
}

func (e *BuildError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("graph build error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("graph build error: %s", e.Message)
}

func (e *BuildError) Unwrap() error {
	return e.Cause
}
