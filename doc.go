// Package config resolves layered YAML configuration into one effective,
// immutable tree queried by dot-delimited paths.
//
// Resolution walks three stages. The locator picks the single starting
// document by strict precedence: an explicit caller-supplied source, then
// the installed-system location, then the bundled default shipped with the
// library. The chain resolver follows the document's reserved `extends` key
// (legacy alias `from`) upward to its oldest ancestor, rejecting cycles and
// over-deep chains. The merger folds the chain downward, descendant wins,
// with a tri-state distinction between an absent key (inherit the ancestor's
// value), a key set to explicit null (clear it), and a key set to a value
// (replace it).
//
// # Usage
//
//	cfg, err := config.Resolve(config.WithSource("/etc/hjarta/override.yaml"))
//	if err != nil {
//	    // Fatal: no readable source, malformed document, or a broken chain.
//	}
//
//	memory, err := cfg.Get("container.memory") // null Value if explicitly cleared
//	port := cfg.IntOr("lock.redis.port", 6379)
//
// Sections owned by consuming subsystems decode into their own structs:
//
//	var lock LockSettings
//	err = cfg.Decode("lock", &lock)
//
// # Concurrency
//
// Resolution is synchronous and side-effect-free beyond reading sources.
// A resolved Config is immutable and freely shareable across goroutines
// without synchronization. Independent resolutions never coordinate.
//
// # Errors
//
// Resolution either fully succeeds or fails with a sentinel-wrapped error;
// no partial result is ever returned. See locator.ErrSourceNotFound,
// document.ErrParse, chain.ErrCyclicExtension, chain.ErrDepthExceeded and
// the accessor's ErrPathNotFound.
package config
