package config

import "errors"

// ErrPathNotFound is returned when an access path cannot be resolved and no
// fallback was supplied. Recoverable: callers may retry with a fallback.
var ErrPathNotFound = errors.New("path not found")

// ErrWrongKind is returned by typed getters when the resolved value has a
// different shape than requested.
var ErrWrongKind = errors.New("unexpected value kind")
