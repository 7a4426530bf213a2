package config

import (
	"io/fs"

	"github.com/0xalexb/hjarta-config/chain"
	"github.com/0xalexb/hjarta-config/document"
	"github.com/0xalexb/hjarta-config/locator"
)

// Options holds the inputs of a resolution request.
type Options struct {
	Source        string
	Document      *document.Document
	InstalledPath string
	Bundled       fs.FS
	BundledPath   string
	MaxDepth      int
}

// Option defines a function type for applying resolution options.
type Option func(*Options)

// WithSource supplies an explicit starting document path. It takes
// precedence over the installed and bundled tiers.
func WithSource(path string) Option {
	return func(opts *Options) {
		opts.Source = path
	}
}

// WithDocument supplies an already-parsed starting document, bypassing the
// source locator entirely. The document may still declare extends; relative
// references resolve against its source tag.
func WithDocument(doc *document.Document) Option {
	return func(opts *Options) {
		opts.Document = doc
	}
}

// WithInstalledPath overrides the installed-system location consulted when
// no explicit source is supplied.
func WithInstalledPath(path string) Option {
	return func(opts *Options) {
		opts.InstalledPath = path
	}
}

// WithBundled overrides the bundled default document, e.g. with an
// application's own embedded filesystem.
func WithBundled(fsys fs.FS, path string) Option {
	return func(opts *Options) {
		opts.Bundled = fsys
		opts.BundledPath = path
	}
}

// WithMaxDepth overrides the extends chain depth limit.
func WithMaxDepth(depth int) Option {
	return func(opts *Options) {
		opts.MaxDepth = depth
	}
}

func (o *Options) locatorOptions() []locator.Option {
	var opts []locator.Option

	if o.InstalledPath != "" {
		opts = append(opts, locator.WithInstalledPath(o.InstalledPath))
	}

	if o.Bundled != nil {
		opts = append(opts, locator.WithBundled(o.Bundled, o.BundledPath))
	}

	return opts
}

func (o *Options) chainOptions() []chain.Option {
	var opts []chain.Option

	if o.MaxDepth > 0 {
		opts = append(opts, chain.WithMaxDepth(o.MaxDepth))
	}

	return opts
}
