package config

import (
	"fmt"
	"log/slog"

	"github.com/goccy/go-yaml"
)

// Validator defines an interface for validating decoded configuration
// sections.
type Validator interface {
	Validate() error
}

// Defaulter defines an interface for setting default values in decoded
// configuration sections.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// Decode unmarshals the subtree at the path into target, a pointer to a
// struct or map with yaml tags. The subtree round-trips through YAML with
// mapping key order preserved.
//
// If target implements Defaulter, defaults are applied after unmarshaling;
// if it implements Validator, validation runs last and its error is
// returned.
func (c *Config) Decode(path string, target any) error {
	value, err := c.Get(path)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshaling %q: %w", path, err)
	}

	err = yaml.Unmarshal(data, target)
	if err != nil {
		return fmt.Errorf("decoding %q: %w", path, err)
	}

	targetDefaulter, isDefaulter := target.(Defaulter)
	if isDefaulter {
		changed := targetDefaulter.SetDefaults()
		if changed {
			slog.Info("defaults applied", slog.String("path", path))
		}
	}

	targetValidatable, isValidatable := target.(Validator)
	if isValidatable {
		err := targetValidatable.Validate()
		if err != nil {
			return fmt.Errorf("validating %q: %w", path, err)
		}
	}

	return nil
}
