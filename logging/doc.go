// Package logging configures slog from a tiered logging document.
//
// The logging document is selected with the same precedence as the main
// configuration (explicit path, then /etc/hjarta/logging.yaml, then the
// bundled default) but without extends chaining: logging documents do not
// inherit. When the bundled default is selected, its file output is
// redirected to a temp file, since the bundled path only exists on installed
// systems.
package logging
