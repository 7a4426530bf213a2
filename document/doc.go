// Package document parses structured configuration text into an immutable
// value tree.
//
// This package uses github.com/goccy/go-yaml with ordered-map decoding so
// mapping key order survives parsing. The tree distinguishes a key present
// with an explicit null from an absent key; the distinction drives the
// inherit-versus-clear semantics applied when documents are merged.
//
// A Document is a mapping-rooted tree tagged with its source location. The
// reserved top-level key "extends" (legacy alias "from") names a parent
// document; ExtendsRef exposes it without interpreting the reference.
//
// Usage:
//
//	doc, err := document.Load("/etc/hjarta/config.yaml")
//	if err != nil {
//	    // Handle error: file not found, malformed YAML, non-mapping root.
//	}
//	value, present := doc.Root().Field("container")
//
// Error Handling:
//   - Use errors.Is(err, document.ErrParse) for malformed input
//   - Parse errors name the offending source; goccy error text carries
//     line and column detail
package document
