// Package merge folds a resolution chain into one effective configuration
// tree.
//
// The fold applies three rules key-by-key, recursively, from the oldest
// ancestor to the newest descendant:
//
//   - A key absent in the descendant inherits the ancestor's value unchanged,
//     including an ancestor null.
//   - A key present in the descendant with an explicit null becomes null,
//     clearing whatever the ancestor held.
//   - A key present with a scalar or sequence replaces the ancestor's value
//     wholesale; sequences are never merged element-wise. Two mappings merge
//     recursively; mismatched kinds are replaced, not reconciled.
//
// The functions are pure: inputs are never mutated and the result is safe to
// share across goroutines.
package merge
