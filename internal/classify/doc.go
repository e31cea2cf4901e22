// Package classify implements the component recognition engine: the
// per-element Matcher, the priority-based Resolver, and the containment-aware
// tree Classifier.
//
// Classification is a pure, synchronous transformation from an ElementNode
// tree plus style lookup to a Component tree. The only shared state is the
// frozen pattern Registry, so independent trees may be classified
// concurrently with zero coordination.
//
// Failure containment: a faulty custom predicate degrades one pattern to
// non-matching for one element; a branch exceeding the recursion/node guard
// is replaced by a diagnostic marker. Neither aborts the rest of the run.
package classify
