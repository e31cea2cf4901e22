package classify

import (
	"github.com/google/uuid"
)

// Diagnostic codes.
const (
	DiagPredicateError = "predicate_error"
	DiagRecursionLimit = "recursion_limit"
)

// Diagnostic records one contained failure during a run. Diagnostics never
// abort classification; they describe what was skipped or degraded.
type Diagnostic struct {
	Code    string `json:"code"`
	Path    string `json:"path"`
	Pattern string `json:"pattern,omitempty"`
	Detail  string `json:"detail"`
}

// Diagnostics collects the contained failures of a single classification
// run. Each run gets a fresh collector and a unique ID; collectors are never
// shared across runs.
type Diagnostics struct {
	RunID   string       `json:"run_id"`
	Entries []Diagnostic `json:"entries,omitempty"`
}

func newDiagnostics() *Diagnostics {
	return &Diagnostics{RunID: uuid.NewString()}
}

func (d *Diagnostics) add(code, path, patternLabel, detail string) {
	d.Entries = append(d.Entries, Diagnostic{
		Code:    code,
		Path:    path,
		Pattern: patternLabel,
		Detail:  detail,
	})
}

// HasCode reports whether any entry carries the given code.
func (d *Diagnostics) HasCode(code string) bool {
	for _, e := range d.Entries {
		if e.Code == code {
			return true
		}
	}
	return false
}
