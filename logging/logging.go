package logging

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/0xalexb/hjarta-config/locator"
)

//go:embed bundled/logging.yaml
var bundledFS embed.FS

// DefaultInstalledPath is the fixed system location of the logging document.
const DefaultInstalledPath = "/etc/hjarta/logging.yaml"

// BundledPath is the location of the default logging document inside the
// bundled filesystem shipped with the library.
const BundledPath = "bundled/logging.yaml"

// ErrUnknownOutput is returned when the configured output is not one of
// "stdout", "stderr" or "file".
var ErrUnknownOutput = errors.New("unknown log output")

// LoggerConfig holds configuration for the logger.
type LoggerConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
	File   string `yaml:"file"`
}

// SetDefaults sets default values for the LoggerConfig.
func (c *LoggerConfig) SetDefaults() (changed bool) {
	if c.Level == "" {
		c.Level = "info"
		changed = true
	}

	if c.Format == "" {
		c.Format = "json"
		changed = true
	}

	if c.Output == "" {
		c.Output = "stderr"
		changed = true
	}

	return changed
}

// Option defines a function type for configuring the logging loader.
type Option func(*loadOptions)

type loadOptions struct {
	installed   string
	bundled     fs.FS
	bundledPath string
}

// WithInstalledPath overrides the installed-system location of the logging
// document.
func WithInstalledPath(path string) Option {
	return func(opts *loadOptions) {
		opts.installed = path
	}
}

// WithBundled overrides the bundled default logging document.
func WithBundled(fsys fs.FS, path string) Option {
	return func(opts *loadOptions) {
		opts.bundled = fsys
		opts.bundledPath = path
	}
}

// Load selects and decodes the logging document using the same source
// precedence as configuration resolution (explicit, then installed, then
// bundled) without following any extends chain. Logging documents do not
// participate in inheritance.
//
// When the bundled default is selected, a file output is redirected to a
// fresh temp file: the bundled document points at a system log path that
// only exists on installed systems.
func Load(explicit string, opts ...Option) (*LoggerConfig, error) {
	options := loadOptions{
		installed:   DefaultInstalledPath,
		bundled:     bundledFS,
		bundledPath: BundledPath,
	}

	for _, apply := range opts {
		apply(&options)
	}

	loc := locator.New(
		locator.WithInstalledPath(options.installed),
		locator.WithBundled(options.bundled, options.bundledPath),
	)

	src, err := loc.Locate(explicit)
	if err != nil {
		return nil, err
	}

	doc, err := src.Load()
	if err != nil {
		return nil, err
	}

	data, err := yaml.Marshal(doc.Root())
	if err != nil {
		return nil, fmt.Errorf("marshaling logging document %q: %w", doc.Source(), err)
	}

	config := &LoggerConfig{}

	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("decoding logging document %q: %w", doc.Source(), err)
	}

	config.SetDefaults()

	if src.Tier == locator.TierBundled && config.Output == "file" {
		tempFile, err := os.CreateTemp("", "hjarta-*.log")
		if err != nil {
			return nil, fmt.Errorf("creating temp log file: %w", err)
		}

		config.File = tempFile.Name()

		closeErr := tempFile.Close()
		if closeErr != nil {
			return nil, fmt.Errorf("closing temp log file: %w", closeErr)
		}
	}

	return config, nil
}

// NewLogger creates a new slog.Logger with the configured format and the
// specified output. The level is parsed from the config; defaults to INFO if
// invalid or empty.
func NewLogger(config LoggerConfig, w io.Writer) *slog.Logger {
	level := parseLevel(config.Level)
	handlerOptions := &slog.HandlerOptions{
		AddSource:   false,
		Level:       level,
		ReplaceAttr: nil,
	}

	var handler slog.Handler
	if strings.EqualFold(config.Format, "text") {
		handler = slog.NewTextHandler(w, handlerOptions)
	} else {
		handler = slog.NewJSONHandler(w, handlerOptions)
	}

	return slog.New(handler)
}

// Writer opens the output the config names. File outputs are opened in
// append mode and their directory is created if missing.
func Writer(config LoggerConfig) (io.Writer, error) {
	switch strings.ToLower(config.Output) {
	case "stdout":
		return os.Stdout, nil
	case "stderr", "":
		return os.Stderr, nil
	case "file":
		err := os.MkdirAll(filepath.Dir(config.File), 0o750)
		if err != nil {
			return nil, fmt.Errorf("creating log directory for %q: %w", config.File, err)
		}

		logFile, err := os.OpenFile(config.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600) // #nosec G304 -- path comes from configuration
		if err != nil {
			return nil, fmt.Errorf("opening log file %q: %w", config.File, err)
		}

		return logFile, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOutput, config.Output)
	}
}

func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
