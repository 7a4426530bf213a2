package locator

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)

	err := os.WriteFile(path, []byte(content), 0o600)
	require.NoError(t, err)

	return path
}

func missingPath(t *testing.T) string {
	t.Helper()

	return filepath.Join(t.TempDir(), "does-not-exist.yaml")
}

func TestLocator_Locate_ExplicitWins(t *testing.T) {
	t.Parallel()

	explicit := writeConfig(t, "explicit.yaml", "core: {}\n")
	installed := writeConfig(t, "installed.yaml", "core: {}\n")

	locator := New(WithInstalledPath(installed))

	src, err := locator.Locate(explicit)

	require.NoError(t, err)
	assert.Equal(t, TierExplicit, src.Tier)
	assert.Equal(t, explicit, src.Path)
	assert.Nil(t, src.FS)
}

func TestLocator_Locate_UnreadableExplicitFallsThrough(t *testing.T) {
	t.Parallel()

	installed := writeConfig(t, "installed.yaml", "core: {}\n")

	locator := New(WithInstalledPath(installed))

	src, err := locator.Locate(missingPath(t))

	require.NoError(t, err)
	assert.Equal(t, TierInstalled, src.Tier)
	assert.Equal(t, installed, src.Path)
}

func TestLocator_Locate_InstalledBeforeBundled(t *testing.T) {
	t.Parallel()

	installed := writeConfig(t, "installed.yaml", "core: {}\n")

	locator := New(WithInstalledPath(installed))

	src, err := locator.Locate("")

	require.NoError(t, err)
	assert.Equal(t, TierInstalled, src.Tier)
}

func TestLocator_Locate_BundledDefault(t *testing.T) {
	t.Parallel()

	locator := New(WithInstalledPath(missingPath(t)))

	src, err := locator.Locate("")

	require.NoError(t, err)
	assert.Equal(t, TierBundled, src.Tier)
	assert.Equal(t, BundledPath, src.Path)
	require.NotNil(t, src.FS)

	doc, err := src.Load()
	require.NoError(t, err)

	container, present := doc.Root().Field("container")
	require.True(t, present)

	memory, present := container.Field("memory")
	require.True(t, present)
	assert.True(t, memory.IsNull(), "bundled default leaves container limits unset")
}

func TestLocator_Locate_CustomBundled(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"defaults/app.yaml": &fstest.MapFile{Data: []byte("core: {}\n")},
	}

	locator := New(
		WithInstalledPath(missingPath(t)),
		WithBundled(fsys, "defaults/app.yaml"),
	)

	src, err := locator.Locate("")

	require.NoError(t, err)
	assert.Equal(t, TierBundled, src.Tier)
	assert.Equal(t, "defaults/app.yaml", src.Path)
}

func TestLocator_Locate_NoSourceAnywhere(t *testing.T) {
	t.Parallel()

	locator := New(
		WithInstalledPath(missingPath(t)),
		WithBundled(fstest.MapFS{}, "defaults/app.yaml"),
	)

	src, err := locator.Locate(missingPath(t))

	require.ErrorIs(t, err, ErrSourceNotFound)
	assert.Empty(t, src.Path)
	assert.Contains(t, err.Error(), "explicit")
	assert.Contains(t, err.Error(), "installed")
	assert.Contains(t, err.Error(), "bundled")
}

func TestLocator_Locate_DirectoryIsNotReadable(t *testing.T) {
	t.Parallel()

	installed := writeConfig(t, "installed.yaml", "core: {}\n")

	locator := New(WithInstalledPath(installed))

	src, err := locator.Locate(t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, TierInstalled, src.Tier)
}

func TestTier_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "explicit", TierExplicit.String())
	assert.Equal(t, "installed", TierInstalled.String())
	assert.Equal(t, "bundled", TierBundled.String())
}
