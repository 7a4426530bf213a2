package locator

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/0xalexb/hjarta-config/document"
)

//go:embed bundled/config.yaml
var bundledFS embed.FS

// DefaultInstalledPath is the fixed system location consulted when no
// explicit source is supplied.
const DefaultInstalledPath = "/etc/hjarta/config.yaml"

// BundledPath is the location of the default document inside the bundled
// filesystem shipped with the library.
const BundledPath = "bundled/config.yaml"

// ErrSourceNotFound is returned when no precedence tier yields a readable
// document. This is fatal: no configuration can be derived.
var ErrSourceNotFound = errors.New("no readable configuration source")

// Tier identifies the precedence level a source was selected from.
type Tier int

// Precedence tiers, highest first. Exactly one tier is ever selected; tiers
// are never merged with each other.
const (
	TierExplicit Tier = iota
	TierInstalled
	TierBundled
)

// String returns a human-readable name for the tier.
func (t Tier) String() string {
	switch t {
	case TierExplicit:
		return "explicit"
	case TierInstalled:
		return "installed"
	case TierBundled:
		return "bundled"
	default:
		return fmt.Sprintf("Tier(%d)", int(t))
	}
}

// Source identifies the single document chosen as the start of a resolution
// chain. FS is nil for sources backed by the operating system filesystem.
type Source struct {
	Path string
	Tier Tier
	FS   fs.FS
}

// Load reads and parses the document the source points at.
func (s Source) Load() (*document.Document, error) {
	if s.FS != nil {
		return document.LoadFS(s.FS, s.Path)
	}

	return document.Load(s.Path)
}

// Locator selects the starting document for a resolution request following
// strict precedence: explicit source, then the installed-system location,
// then the bundled default.
type Locator struct {
	installed   string
	bundled     fs.FS
	bundledPath string
}

// Option defines a function type for configuring a Locator.
type Option func(*Locator)

// WithInstalledPath overrides the installed-system location.
func WithInstalledPath(path string) Option {
	return func(l *Locator) {
		l.installed = path
	}
}

// WithBundled overrides the bundled default document, e.g. with an
// application's own embedded filesystem.
func WithBundled(fsys fs.FS, path string) Option {
	return func(l *Locator) {
		l.bundled = fsys
		l.bundledPath = path
	}
}

// New creates a Locator with the library defaults applied.
func New(opts ...Option) *Locator {
	locator := &Locator{
		installed:   DefaultInstalledPath,
		bundled:     bundledFS,
		bundledPath: BundledPath,
	}

	for _, apply := range opts {
		apply(locator)
	}

	return locator
}

// Locate returns the single source to start resolution from. The explicit
// argument may be empty, meaning no caller-supplied override. The first
// readable tier wins and the remaining tiers are never consulted.
func (l *Locator) Locate(explicit string) (Source, error) {
	var tried []string

	if explicit != "" {
		cleanPath := filepath.Clean(explicit)
		if err := readableFile(cleanPath); err == nil {
			return Source{Path: cleanPath, Tier: TierExplicit}, nil
		}

		tried = append(tried, fmt.Sprintf("explicit %q", cleanPath))
	}

	if err := readableFile(l.installed); err == nil {
		return Source{Path: l.installed, Tier: TierInstalled}, nil
	}

	tried = append(tried, fmt.Sprintf("installed %q", l.installed))

	if _, err := fs.Stat(l.bundled, l.bundledPath); err == nil {
		return Source{Path: l.bundledPath, Tier: TierBundled, FS: l.bundled}, nil
	}

	tried = append(tried, fmt.Sprintf("bundled %q", l.bundledPath))

	return Source{}, fmt.Errorf("%w: tried %v", ErrSourceNotFound, tried)
}

func readableFile(path string) error {
	stat, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat file %q: %w", path, err)
	}

	if stat.IsDir() {
		return fmt.Errorf("path %q: %w", path, document.ErrPathIsDirectory)
	}

	return nil
}
