package document

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// KeyExtends is the reserved top-level key naming a parent document.
const KeyExtends = "extends"

// KeyFrom is the legacy spelling of KeyExtends. It is consulted only when
// KeyExtends is absent.
const KeyFrom = "from"

// ErrParse is returned when a source cannot be parsed into a document.
var ErrParse = errors.New("parse error")

// ErrPathIsDirectory is returned when a source path points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// ErrBadExtendsRef is returned when the reserved extends key holds anything
// other than a string reference or an explicit null.
var ErrBadExtendsRef = errors.New("extends reference must be a string or null")

// Document is a parsed configuration document: a mapping root tagged with the
// source location it was loaded from. Documents are read-only once parsed.
type Document struct {
	source string
	root   *Value
}

// Parse parses YAML data into a Document. The source tag is used in error
// messages and for cycle detection; it carries no semantics beyond identity.
//
// The document root must be a mapping. Empty input parses as an empty mapping.
func Parse(data []byte, source string) (*Document, error) {
	var raw any

	err := yaml.UnmarshalWithOptions(data, &raw, yaml.UseOrderedMap())
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrParse, source, err)
	}

	if raw == nil {
		return &Document{source: source, root: Mapping()}, nil
	}

	root := fromRaw(raw)
	if root.Kind() != KindMapping {
		return nil, fmt.Errorf("%w: %s: document root is a %s, expected a mapping", ErrParse, source, root.Kind())
	}

	return &Document{source: source, root: root}, nil
}

// Load reads and parses a document from the filesystem.
func Load(path string) (*Document, error) {
	cleanPath := filepath.Clean(path)

	stat, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("stat file %q: %w", cleanPath, err)
	}

	if stat.IsDir() {
		return nil, fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
	}

	data, err := os.ReadFile(cleanPath) // #nosec G304 -- path is cleaned and validated
	if err != nil {
		return nil, fmt.Errorf("reading file %q: %w", cleanPath, err)
	}

	return Parse(data, cleanPath)
}

// LoadFS reads and parses a document from an fs.FS, typically an embedded
// bundle of default documents.
func LoadFS(fsys fs.FS, path string) (*Document, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("reading bundled file %q: %w", path, err)
	}

	return Parse(data, path)
}

// Source returns the location tag the document was parsed with.
func (d *Document) Source() string {
	return d.source
}

// Root returns the document's mapping root.
func (d *Document) Root() *Value {
	return d.root
}

// ExtendsRef returns the parent reference declared by the reserved extends
// key. ok is false when the key is absent or explicitly null, both of which
// terminate an extension chain.
func (d *Document) ExtendsRef() (ref string, ok bool, err error) {
	value, present := d.root.Field(KeyExtends)
	if !present {
		value, present = d.root.Field(KeyFrom)
	}

	if !present || value.IsNull() {
		return "", false, nil
	}

	ref, isString := value.AsString()
	if !isString {
		return "", false, fmt.Errorf("%w: %s holds a %s", ErrBadExtendsRef, d.source, value.Kind())
	}

	return ref, true, nil
}
