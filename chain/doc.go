// Package chain resolves a document's extends chain.
//
// Starting from a located document, the resolver reads the reserved extends
// key, loads the referenced parent, and recurses upward until it reaches a
// document with no parent (extends absent or explicitly null). The result is
// the ordered chain, oldest ancestor first, ready to be folded by the merge
// package.
//
// Relative references resolve against the directory of the referencing
// document, not the process working directory. A visited-set rejects cycles,
// including self-references, and a configurable depth limit bounds
// pathological inputs.
//
// Error Handling:
//   - Use errors.Is(err, chain.ErrCyclicExtension) for cycles; the error
//     text names the full walk in order
//   - Use errors.Is(err, chain.ErrDepthExceeded) for over-deep chains
package chain
