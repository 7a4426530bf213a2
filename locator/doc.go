// Package locator selects the starting document for configuration
// resolution.
//
// Three precedence tiers participate, first readable match wins:
//
//  1. An explicit caller-supplied path.
//  2. The fixed installed-system location (/etc/hjarta/config.yaml).
//  3. The bundled default document embedded in the library.
//
// Exactly one tier is chosen; the tiers are never merged with each other.
// Merging only happens along a document's own extends chain, which is a
// separate mechanism handled by the chain package.
//
// Error Handling:
//   - Use errors.Is(err, locator.ErrSourceNotFound) when no tier is readable;
//     callers should treat this as fatal during startup
package locator
