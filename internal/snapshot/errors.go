package snapshot

import "fmt"

// CaptureError represents a failed browser capture
type CaptureError struct {
	Path    string
	Message string
	Cause   error
}

func (e *CaptureError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("capture error for %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("capture error for %s: %s", e.Path, e.Message)
}

func (e *CaptureError) Unwrap() error {
	return e.Cause
}
