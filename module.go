package config

import (
	"go.uber.org/fx"
)

// NewModule creates an Fx module that resolves configuration once and
// provides the resulting *Config to the container. Resolution errors surface
// through Fx at construction time.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(opts ...Option) fx.Option {
	return fx.Module("config",
		fx.Provide(func() (*Config, error) {
			return Resolve(opts...)
		}),
	)
}
