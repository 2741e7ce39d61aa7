// Package portfolio provides the statically declared career dataset and its data-quality rules.
package portfolio

// Violation severities.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Violation represents a single data-quality failure.
type Violation struct {
	Type     string `json:"type"`
	Severity string `json:"severity"`
	Details  string `json:"details"`

	// Record identifies the role, skill or edge that caused the violation.
	Record string `json:"record,omitempty"`
}

// Violations represents a collection of data-quality failures.
type Violations struct {
	Violations []Violation `json:"violations"`
}

// ErrorCount returns the number of error-severity violations.
func (v *Violations) ErrorCount() int {
	count := 0
	for _, violation := range v.Violations {
		if violation.Severity == SeverityError {
			count++
		}
	}
	return count
}

// WarningCount returns the number of warning-severity violations.
func (v *Violations) WarningCount() int {
	count := 0
	for _, violation := range v.Violations {
		if violation.Severity == SeverityWarning {
			count++
		}
	}
	return count
}

// HasErrors reports whether any error-severity violation exists.
func (v *Violations) HasErrors() bool {
	return v.ErrorCount() > 0
}
