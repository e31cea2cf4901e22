// Package pattern defines the declarative recognition rule model and the
// shared, effectively-immutable Registry the classifier resolves against.
//
// A Pattern maps a predicate set to a component type with a confidence and a
// priority. Predicates are plain data evaluated by the matcher; the single
// escape hatch for rules that cannot be expressed declaratively is the
// CSSPredicate function, which built-in patterns supply as Go closures and
// YAML-authored patterns supply as sandboxed goja scripts.
//
// Registries are built once at start-up, validated eagerly, frozen, and then
// shared read-only across arbitrarily many concurrent classification runs.
package pattern
