package classify

// DefaultConfidenceFloor is the minimum confidence a candidate needs to win.
const DefaultConfidenceFloor = 50

// Resolver picks the single winning candidate: discard below the confidence
// floor, then rank by priority descending, confidence descending, and
// registration index ascending.
//
// Priority strictly dominates confidence. An explicit marker such as an ARIA
// role or a vendor class prefix always outranks a generic heuristic no
// matter how confident the heuristic is; confidence only discriminates
// within a specificity tier. This two-level ranking is load-bearing and must
// not collapse into a single score.
type Resolver struct {
	Floor int
}

// Resolve returns the winning candidate and true, or the zero Candidate and
// false when every candidate is below the floor (the element is
// unclassified).
func (r Resolver) Resolve(candidates []Candidate) (Candidate, bool) {
	var best Candidate
	found := false
	for _, c := range candidates {
		if c.Confidence < r.Floor {
			continue
		}
		if !found || ranksAbove(c, best) {
			best = c
			found = true
		}
	}
	return best, found
}

// ranksAbove reports whether a outranks b. Candidates arrive in registration
// order, so on a full tie the first-seen candidate (lower index) stands.
func ranksAbove(a, b Candidate) bool {
	if a.Priority != b.Priority {
		return a.Priority > b.Priority
	}
	if a.Confidence != b.Confidence {
		return a.Confidence > b.Confidence
	}
	return a.Pattern < b.Pattern
}
