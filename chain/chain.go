package chain

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/0xalexb/hjarta-config/document"
	"github.com/0xalexb/hjarta-config/locator"
)

// DefaultMaxDepth bounds how many documents a single extends chain may span.
const DefaultMaxDepth = 32

// ErrCyclicExtension is returned when an extends chain revisits a document.
var ErrCyclicExtension = errors.New("cyclic extends chain")

// ErrDepthExceeded is returned when an extends chain grows past the
// configured depth limit.
var ErrDepthExceeded = errors.New("extends chain exceeds depth limit")

// Loader loads documents for extends references and resolves relative
// references against the document that declared them.
type Loader interface {
	Load(ref string) (*document.Document, error)
	ResolveRef(base, ref string) string
}

// OSLoader returns a Loader reading documents from the operating system
// filesystem. Relative references resolve against the directory of the
// referencing document.
//
//nolint:ireturn // the interface is the deliberate extension point
func OSLoader() Loader {
	return osLoader{}
}

// FSLoader returns a Loader reading documents from an fs.FS, used when the
// chain starts at the bundled default document.
//
//nolint:ireturn // the interface is the deliberate extension point
func FSLoader(fsys fs.FS) Loader {
	return fsLoader{fsys: fsys}
}

type osLoader struct{}

func (osLoader) Load(ref string) (*document.Document, error) {
	return document.Load(ref)
}

func (osLoader) ResolveRef(base, ref string) string {
	if filepath.IsAbs(ref) {
		return filepath.Clean(ref)
	}

	return filepath.Join(filepath.Dir(base), ref)
}

type fsLoader struct {
	fsys fs.FS
}

func (l fsLoader) Load(ref string) (*document.Document, error) {
	return document.LoadFS(l.fsys, ref)
}

func (l fsLoader) ResolveRef(base, ref string) string {
	return path.Join(path.Dir(base), ref)
}

// Resolver walks a document's extends chain and returns the full ordered
// chain, oldest ancestor first.
type Resolver struct {
	maxDepth int
}

// Option defines a function type for configuring a Resolver.
type Option func(*Resolver)

// WithMaxDepth overrides the chain depth limit. Values below one fall back
// to DefaultMaxDepth.
func WithMaxDepth(depth int) Option {
	return func(r *Resolver) {
		if depth > 0 {
			r.maxDepth = depth
		}
	}
}

// New creates a Resolver with the default depth limit.
func New(opts ...Option) *Resolver {
	resolver := &Resolver{maxDepth: DefaultMaxDepth}

	for _, apply := range opts {
		apply(resolver)
	}

	return resolver
}

// Resolve loads the located source and follows its extends chain. The
// returned slice is ordered oldest ancestor first and always ends with the
// document the source points at.
func (r *Resolver) Resolve(src locator.Source) ([]*document.Document, error) {
	loader := loaderFor(src)

	start, err := loader.Load(src.Path)
	if err != nil {
		return nil, err
	}

	return r.ResolveFrom(loader, start)
}

// ResolveFrom follows the extends chain of an already-parsed document,
// loading ancestors through the supplied loader.
func (r *Resolver) ResolveFrom(loader Loader, start *document.Document) ([]*document.Document, error) {
	docs := []*document.Document{start}
	walked := []string{start.Source()}
	visited := map[string]bool{start.Source(): true}

	current := start

	for {
		ref, ok, err := current.ExtendsRef()
		if err != nil {
			return nil, err
		}

		if !ok {
			return docs, nil
		}

		resolved := loader.ResolveRef(current.Source(), ref)

		if visited[resolved] {
			cycle := append(walked, resolved)

			return nil, fmt.Errorf("%w: %s", ErrCyclicExtension, strings.Join(cycle, " -> "))
		}

		if len(docs) >= r.maxDepth {
			return nil, fmt.Errorf("%w: %d documents reached at %q", ErrDepthExceeded, r.maxDepth, resolved)
		}

		parent, err := loader.Load(resolved)
		if err != nil {
			return nil, fmt.Errorf("resolving extends of %q: %w", current.Source(), err)
		}

		visited[resolved] = true
		walked = append(walked, resolved)
		docs = append([]*document.Document{parent}, docs...)
		current = parent
	}
}

//nolint:ireturn // the interface is the deliberate extension point
func loaderFor(src locator.Source) Loader {
	if src.FS != nil {
		return FSLoader(src.FS)
	}

	return OSLoader()
}
