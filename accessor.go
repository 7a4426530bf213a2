package config

import (
	"fmt"
	"strings"

	"github.com/0xalexb/hjarta-config/document"
)

// PathSeparator delimits the key segments of an access path.
const PathSeparator = "."

// Get navigates the effective configuration by dot-delimited mapping keys
// and returns the value at the path. An explicit null stored at the path is
// returned as a null Value, not an error: null is a meaningful configured
// value (e.g. "no limit").
//
// Get fails with ErrPathNotFound when a segment is missing or a non-mapping
// value (nulls included) is reached before the path is exhausted. The error
// names the unresolved segment. An empty path returns the root.
func (c *Config) Get(path string) (*document.Value, error) {
	if path == "" {
		return c.root, nil
	}

	segments := strings.Split(path, PathSeparator)
	current := c.root

	for i, segment := range segments {
		if current.Kind() != document.KindMapping {
			return nil, fmt.Errorf("%w: %q is not a mapping (resolving %q)",
				ErrPathNotFound, strings.Join(segments[:i], PathSeparator), path)
		}

		next, present := current.Field(segment)
		if !present {
			return nil, fmt.Errorf("%w: no key %q (resolving %q)", ErrPathNotFound, segment, path)
		}

		current = next
	}

	return current, nil
}

// GetOr is Get with a fallback: a missing path, or an explicit null crossed
// before the final segment, yields the fallback instead of an error. An
// exactly-null terminal value is still returned as the null Value, never
// substituted with the fallback.
func (c *Config) GetOr(path string, fallback *document.Value) *document.Value {
	value, err := c.Get(path)
	if err != nil {
		return fallback
	}

	return value
}

// Has reports whether the path resolves to a value, null included.
func (c *Config) Has(path string) bool {
	_, err := c.Get(path)

	return err == nil
}

// String returns the string scalar at the path.
func (c *Config) String(path string) (string, error) {
	value, err := c.Get(path)
	if err != nil {
		return "", err
	}

	s, ok := value.AsString()
	if !ok {
		return "", fmt.Errorf("%w: %q holds a %s, expected a string scalar", ErrWrongKind, path, value.Kind())
	}

	return s, nil
}

// StringOr returns the string scalar at the path, or fallback when the path
// is missing or holds a different kind.
func (c *Config) StringOr(path, fallback string) string {
	s, err := c.String(path)
	if err != nil {
		return fallback
	}

	return s
}

// Int returns the integer scalar at the path.
func (c *Config) Int(path string) (int64, error) {
	value, err := c.Get(path)
	if err != nil {
		return 0, err
	}

	n, ok := value.AsInt()
	if !ok {
		return 0, fmt.Errorf("%w: %q holds a %s, expected an integer scalar", ErrWrongKind, path, value.Kind())
	}

	return n, nil
}

// IntOr returns the integer scalar at the path, or fallback when the path is
// missing or holds a different kind.
func (c *Config) IntOr(path string, fallback int64) int64 {
	n, err := c.Int(path)
	if err != nil {
		return fallback
	}

	return n
}

// Float returns the floating-point scalar at the path. Integers convert.
func (c *Config) Float(path string) (float64, error) {
	value, err := c.Get(path)
	if err != nil {
		return 0, err
	}

	f, ok := value.AsFloat()
	if !ok {
		return 0, fmt.Errorf("%w: %q holds a %s, expected a numeric scalar", ErrWrongKind, path, value.Kind())
	}

	return f, nil
}

// FloatOr returns the floating-point scalar at the path, or fallback when
// the path is missing or holds a different kind.
func (c *Config) FloatOr(path string, fallback float64) float64 {
	f, err := c.Float(path)
	if err != nil {
		return fallback
	}

	return f
}

// Bool returns the boolean scalar at the path.
func (c *Config) Bool(path string) (bool, error) {
	value, err := c.Get(path)
	if err != nil {
		return false, err
	}

	b, ok := value.AsBool()
	if !ok {
		return false, fmt.Errorf("%w: %q holds a %s, expected a boolean scalar", ErrWrongKind, path, value.Kind())
	}

	return b, nil
}

// BoolOr returns the boolean scalar at the path, or fallback when the path
// is missing or holds a different kind.
func (c *Config) BoolOr(path string, fallback bool) bool {
	b, err := c.Bool(path)
	if err != nil {
		return fallback
	}

	return b
}

// Strings returns the sequence of string scalars at the path.
func (c *Config) Strings(path string) ([]string, error) {
	value, err := c.Get(path)
	if err != nil {
		return nil, err
	}

	if value.Kind() != document.KindSequence {
		return nil, fmt.Errorf("%w: %q holds a %s, expected a sequence", ErrWrongKind, path, value.Kind())
	}

	result := make([]string, 0, value.Len())

	for i := range value.Len() {
		item := value.Index(i)

		s, ok := item.AsString()
		if !ok {
			return nil, fmt.Errorf("%w: %q item %d holds a %s, expected a string scalar",
				ErrWrongKind, path, i, item.Kind())
		}

		result = append(result, s)
	}

	return result, nil
}
