package config

import (
	"github.com/0xalexb/hjarta-config/chain"
	"github.com/0xalexb/hjarta-config/document"
	"github.com/0xalexb/hjarta-config/locator"
	"github.com/0xalexb/hjarta-config/merge"
)

// Config is an effective configuration: the result of locating a starting
// document, following its extends chain, and folding the chain into one
// tree. It is immutable once constructed and safe for unsynchronized
// concurrent reads.
type Config struct {
	root    *document.Value
	sources []string
}

// Resolve produces an effective configuration.
//
// The starting document is chosen by strict precedence: an explicit source
// (WithSource or WithDocument), then the installed-system location, then the
// bundled default. The chosen document's extends chain is followed oldest
// ancestor first and folded with descendant-wins semantics. Chaining applies
// uniformly to all tiers, explicit overrides included.
func Resolve(opts ...Option) (*Config, error) {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	resolver := chain.New(options.chainOptions()...)

	docs, err := resolveChain(resolver, &options)
	if err != nil {
		return nil, err
	}

	sources := make([]string, 0, len(docs))
	for _, doc := range docs {
		sources = append(sources, doc.Source())
	}

	return &Config{
		root:    merge.Fold(docs),
		sources: sources,
	}, nil
}

// FromDocument folds a single already-parsed document into a Config without
// consulting any source tier or following extends. Useful for tests and for
// callers that manage document loading themselves.
func FromDocument(doc *document.Document) *Config {
	return &Config{
		root:    doc.Root(),
		sources: []string{doc.Source()},
	}
}

func resolveChain(resolver *chain.Resolver, options *Options) ([]*document.Document, error) {
	if options.Document != nil {
		return resolver.ResolveFrom(chain.OSLoader(), options.Document)
	}

	src, err := locator.New(options.locatorOptions()...).Locate(options.Source)
	if err != nil {
		return nil, err
	}

	return resolver.Resolve(src)
}

// Root returns the effective configuration tree.
func (c *Config) Root() *document.Value {
	return c.root
}

// Sources returns the locations of the folded chain, oldest ancestor first.
// The slice is a copy.
func (c *Config) Sources() []string {
	sources := make([]string, len(c.sources))
	copy(sources, c.sources)

	return sources
}
