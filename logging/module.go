package logging

import (
	"log/slog"

	"go.uber.org/fx"
)

// NewModule creates an Fx module that loads the logging document and
// provides a ready *slog.Logger to the container. An empty explicit path
// means the installed and bundled tiers are consulted.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(explicit string, opts ...Option) fx.Option {
	return fx.Module("logging",
		fx.Provide(func() (*LoggerConfig, error) {
			return Load(explicit, opts...)
		}),
		fx.Provide(NewLoggerFromConfig),
	)
}

// NewLoggerFromConfig opens the configured output and builds a logger on it.
func NewLoggerFromConfig(config *LoggerConfig) (*slog.Logger, error) {
	w, err := Writer(*config)
	if err != nil {
		return nil, err
	}

	return NewLogger(*config, w), nil
}
