package config_test

import (
	"testing"
	"testing/fstest"

	config "github.com/0xalexb/hjarta-config"
	"github.com/0xalexb/hjarta-config/document"
	"github.com/stretchr/testify/require"
)

func TestWithSource(t *testing.T) {
	t.Parallel()

	var opts config.Options

	config.WithSource("/tmp/override.yaml")(&opts)

	require.Equal(t, "/tmp/override.yaml", opts.Source)
}

func TestWithDocument(t *testing.T) {
	t.Parallel()

	doc, err := document.Parse([]byte("core: {}\n"), "inline.yaml")
	require.NoError(t, err)

	var opts config.Options

	config.WithDocument(doc)(&opts)

	require.Same(t, doc, opts.Document)
}

func TestWithInstalledPath(t *testing.T) {
	t.Parallel()

	var opts config.Options

	config.WithInstalledPath("/etc/other/config.yaml")(&opts)

	require.Equal(t, "/etc/other/config.yaml", opts.InstalledPath)
}

func TestWithBundled(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{}

	var opts config.Options

	config.WithBundled(fsys, "defaults/app.yaml")(&opts)

	require.Equal(t, fsys, opts.Bundled)
	require.Equal(t, "defaults/app.yaml", opts.BundledPath)
}

func TestWithMaxDepth(t *testing.T) {
	t.Parallel()

	var opts config.Options

	config.WithMaxDepth(8)(&opts)

	require.Equal(t, 8, opts.MaxDepth)
}

func TestOptionsDefaults(t *testing.T) {
	t.Parallel()

	var opts config.Options

	require.Empty(t, opts.Source)
	require.Nil(t, opts.Document)
	require.Zero(t, opts.MaxDepth)
}
