// Package types defines the entity types, the element capability interfaces,
// and the standard errors shared by the sortable buckets engine and its view
// bindings. It also holds the state preparation helpers that resolve item and
// bucket identifiers before an instance is created.
package types
