// Package component defines the closed taxonomy of semantic UI component
// types and the Component tree produced by classification.
//
// The taxonomy is fixed: patterns may only map to one of the declared Type
// values, and the set of container types (types whose internal subtree is
// absorbed into their own attributes instead of being emitted as child
// Components) is declared centrally here rather than re-derived by callers.
package component
