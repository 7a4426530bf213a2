package document

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_MappingRoot(t *testing.T) {
	t.Parallel()

	data := []byte(`
core:
  team_mode: true
git:
  working_directory: ~/hjarta
`)

	doc, err := Parse(data, "test.yaml")

	require.NoError(t, err)
	assert.Equal(t, "test.yaml", doc.Source())
	assert.Equal(t, KindMapping, doc.Root().Kind())

	core, present := doc.Root().Field("core")
	require.True(t, present)

	teamMode, present := core.Field("team_mode")
	require.True(t, present)

	enabled, ok := teamMode.AsBool()
	require.True(t, ok)
	assert.True(t, enabled)
}

func TestParse_KeyOrderPreserved(t *testing.T) {
	t.Parallel()

	data := []byte(`
zebra: 1
alpha: 2
middle: 3
`)

	doc, err := Parse(data, "order.yaml")

	require.NoError(t, err)
	assert.Equal(t, []string{"zebra", "alpha", "middle"}, doc.Root().Keys())
}

func TestParse_ExplicitNullVersusAbsent(t *testing.T) {
	t.Parallel()

	data := []byte(`
container:
  memory: null
  cpu: 2
`)

	doc, err := Parse(data, "nulls.yaml")
	require.NoError(t, err)

	container, present := doc.Root().Field("container")
	require.True(t, present)

	memory, present := container.Field("memory")
	require.True(t, present, "explicit null must register as present")
	assert.True(t, memory.IsNull())

	_, present = container.Field("disk")
	assert.False(t, present, "absent key must not register as present")
}

func TestParse_EmptyDocument(t *testing.T) {
	t.Parallel()

	doc, err := Parse(nil, "empty.yaml")

	require.NoError(t, err)
	assert.Equal(t, KindMapping, doc.Root().Kind())
	assert.Zero(t, doc.Root().Len())
}

func TestParse_NonMappingRoot(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
	}{
		{
			name: "scalar root",
			data: `just a string`,
		},
		{
			name: "sequence root",
			data: "- one\n- two\n",
		},
	}

	for _, testInfo := range tests {
		t.Run(testInfo.name, func(t *testing.T) {
			t.Parallel()

			doc, err := Parse([]byte(testInfo.data), "bad.yaml")

			require.ErrorIs(t, err, ErrParse)
			assert.Nil(t, doc)
			assert.Contains(t, err.Error(), "bad.yaml")
		})
	}
}

func TestParse_MalformedYAML(t *testing.T) {
	t.Parallel()

	data := []byte("core:\n  team_mode: [unclosed\n")

	doc, err := Parse(data, "broken.yaml")

	require.ErrorIs(t, err, ErrParse)
	assert.Nil(t, doc)
	assert.Contains(t, err.Error(), "broken.yaml")
}

func TestDocument_ExtendsRef(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		wantRef string
		wantOK  bool
	}{
		{
			name:    "extends string",
			data:    "extends: base.yaml\n",
			wantRef: "base.yaml",
			wantOK:  true,
		},
		{
			name:    "legacy from string",
			data:    "from: base.yaml\n",
			wantRef: "base.yaml",
			wantOK:  true,
		},
		{
			name:    "extends wins over from",
			data:    "extends: first.yaml\nfrom: second.yaml\n",
			wantRef: "first.yaml",
			wantOK:  true,
		},
		{
			name:   "explicit null terminates",
			data:   "extends: null\ncore: {}\n",
			wantOK: false,
		},
		{
			name:   "absent terminates",
			data:   "core: {}\n",
			wantOK: false,
		},
	}

	for _, testInfo := range tests {
		t.Run(testInfo.name, func(t *testing.T) {
			t.Parallel()

			doc, err := Parse([]byte(testInfo.data), "test.yaml")
			require.NoError(t, err)

			ref, ok, err := doc.ExtendsRef()

			require.NoError(t, err)
			assert.Equal(t, testInfo.wantOK, ok)
			assert.Equal(t, testInfo.wantRef, ref)
		})
	}
}

func TestDocument_ExtendsRef_NonString(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte("extends:\n  nested: true\n"), "bad-extends.yaml")
	require.NoError(t, err)

	_, _, err = doc.ExtendsRef()

	require.ErrorIs(t, err, ErrBadExtendsRef)
	assert.Contains(t, err.Error(), "bad-extends.yaml")
}

func TestLoad_Success(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	err := os.WriteFile(configPath, []byte("core:\n  team_mode: true\n"), 0o600)
	require.NoError(t, err)

	doc, err := Load(configPath)

	require.NoError(t, err)
	assert.Equal(t, configPath, doc.Source())
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()

	doc, err := Load("/nonexistent/path/config.yaml")

	require.Error(t, err)
	assert.Nil(t, doc)
	assert.Contains(t, err.Error(), "stat file")
}

func TestLoad_Directory(t *testing.T) {
	t.Parallel()

	doc, err := Load(t.TempDir())

	require.ErrorIs(t, err, ErrPathIsDirectory)
	assert.Nil(t, doc)
}

func TestLoadFS_Success(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"bundled/config.yaml": &fstest.MapFile{Data: []byte("core: {}\n")},
	}

	doc, err := LoadFS(fsys, "bundled/config.yaml")

	require.NoError(t, err)
	assert.Equal(t, "bundled/config.yaml", doc.Source())
}

func TestLoadFS_Missing(t *testing.T) {
	t.Parallel()

	doc, err := LoadFS(fstest.MapFS{}, "missing.yaml")

	require.Error(t, err)
	assert.Nil(t, doc)
	assert.Contains(t, err.Error(), "missing.yaml")
}
