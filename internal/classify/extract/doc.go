// Package extract implements the per-container-type attribute analyzers.
//
// Each extractor is a pure, read-only function of a matched subtree and its
// style snapshot, returning the type-specific attribute record that replaces
// the subtree's child Components in the output tree. Extractors are
// deterministic given identical input and never mutate the element tree.
//
// Text captured into attribute records (item titles, captions) is sanitized
// with bluemonday before storage.
package extract
