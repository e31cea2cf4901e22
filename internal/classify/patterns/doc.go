// Package patterns holds the built-in recognition rule tables.
//
// Authoring is split into per-category files (content, layout, navigation,
// media, interactive, commerce) purely for readability; Builtin flattens
// them into one priority-ranked Registry. Confidence and priority values are
// hand-tuned per pattern and treated as opaque configuration: tests assert
// exact tie-break behavior rather than a calibrated scale.
package patterns
