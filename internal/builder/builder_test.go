package builder

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantmind-br/sitenav-go/internal/domain"
	"github.com/quantmind-br/sitenav-go/internal/site"
)

const testConfig = `{
	"previewTitle": "Docs",
	"previewDescription": "All docs",
	"collections": [
		{
			"label": "Main",
			"children": [
				{
					"id": "guides",
					"label": "Guides",
					"description": "Guide pages",
					"directory": "content/guides",
					"fileOrder": ["omega.html", "missing.html"],
					"overrides": {
						"alpha": {"label": "Alpha Custom"}
					}
				}
			]
		},
		{
			"label": "Empty",
			"children": []
		}
	]
}`

func setupProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	dir := filepath.Join(root, "content", "guides")
	require.NoError(t, os.MkdirAll(dir, 0755))

	fragments := map[string]string{
		"alpha.html": `<h2>Alpha</h2><p>First page</p>`,
		"zeta.html":  `<h2>Zeta &amp; Friends</h2><p>Last page</p>`,
		"omega.html": `<h1>Omega</h1>`,
	}
	for name, content := range fragments {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}

	configPath := filepath.Join(root, "site.config.json")
	require.NoError(t, os.WriteFile(configPath, []byte(testConfig), 0644))

	return root
}

func newTestBuilder(t *testing.T, root string) *Builder {
	t.Helper()
	b, err := New(Options{RootDir: root})
	require.NoError(t, err)
	return b
}

func TestBuilder_Assemble(t *testing.T) {
	root := setupProject(t)
	b := newTestBuilder(t, root)

	m, err := b.Assemble(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Docs", m.PreviewTitle)
	assert.Equal(t, "All docs", m.PreviewDescription)
	require.Len(t, m.Collections, 2)

	main := m.Collections[0]
	assert.Equal(t, "Main", main.Label)
	require.Len(t, main.Children, 1)

	guides := main.Children[0]
	assert.Equal(t, "guides", guides.ID)
	assert.Equal(t, "Guides", guides.Label)
	assert.Equal(t, "Guide pages", guides.Description)

	// omega.html is explicitly ordered first; missing.html is silently
	// omitted; the rest follow sorted lexicographically.
	require.Len(t, guides.Files, 3)
	assert.Equal(t, "omega", guides.Files[0].ID)
	assert.Equal(t, "alpha", guides.Files[1].ID)
	assert.Equal(t, "zeta", guides.Files[2].ID)

	assert.Equal(t, "Omega", guides.Files[0].Label)
	assert.Equal(t, "", guides.Files[0].Description)
	assert.Equal(t, "Alpha Custom", guides.Files[1].Label)
	assert.Equal(t, "First page", guides.Files[1].Description)
	assert.Equal(t, "Zeta & Friends", guides.Files[2].Label)
	assert.Equal(t, "content/guides/zeta.html", guides.Files[2].Path)

	// Empty collections mirror the config with empty children lists.
	empty := m.Collections[1]
	assert.Equal(t, "Empty", empty.Label)
	assert.NotNil(t, empty.Children)
	assert.Len(t, empty.Children, 0)
}

func TestBuilder_Run_WritesManifest(t *testing.T) {
	root := setupProject(t)
	b := newTestBuilder(t, root)

	require.NoError(t, b.Run(context.Background()))

	outPath := filepath.Join(root, "site.manifest.json")
	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	assert.True(t, len(data) > 0)
	assert.Equal(t, byte('\n'), data[len(data)-1])
	assert.Contains(t, string(data), "  \"previewTitle\": \"Docs\"")
	assert.Contains(t, string(data), "Zeta & Friends")

	var m domain.Manifest
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, "Docs", m.PreviewTitle)
	require.Len(t, m.Collections, 2)
	assert.Len(t, m.Collections[0].Children[0].Files, 3)
}

func TestBuilder_Run_Idempotent(t *testing.T) {
	root := setupProject(t)
	b := newTestBuilder(t, root)
	outPath := filepath.Join(root, "site.manifest.json")

	require.NoError(t, b.Run(context.Background()))
	first, err := os.ReadFile(outPath)
	require.NoError(t, err)

	require.NoError(t, b.Run(context.Background()))
	second, err := os.ReadFile(outPath)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuilder_Run_MissingDirectory(t *testing.T) {
	root := setupProject(t)
	require.NoError(t, os.RemoveAll(filepath.Join(root, "content", "guides")))
	b := newTestBuilder(t, root)

	err := b.Run(context.Background())

	assert.ErrorIs(t, err, domain.ErrDirectoryNotFound)

	// The run failed before the write step; no output exists.
	_, statErr := os.Stat(filepath.Join(root, "site.manifest.json"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestBuilder_Run_MissingDirectoryLeavesPriorManifest(t *testing.T) {
	root := setupProject(t)
	b := newTestBuilder(t, root)
	outPath := filepath.Join(root, "site.manifest.json")

	require.NoError(t, b.Run(context.Background()))
	before, err := os.ReadFile(outPath)
	require.NoError(t, err)

	require.NoError(t, os.RemoveAll(filepath.Join(root, "content", "guides")))
	assert.Error(t, b.Run(context.Background()))

	after, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestBuilder_Run_DryRun(t *testing.T) {
	root := setupProject(t)
	b, err := New(Options{RootDir: root, DryRun: true})
	require.NoError(t, err)

	require.NoError(t, b.Run(context.Background()))

	_, statErr := os.Stat(filepath.Join(root, "site.manifest.json"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestBuilder_Run_MissingConfig(t *testing.T) {
	b := newTestBuilder(t, t.TempDir())

	err := b.Run(context.Background())

	assert.ErrorIs(t, err, site.ErrConfigNotFound)
}

func TestBuilder_Run_CancelledContext(t *testing.T) {
	root := setupProject(t)
	b := newTestBuilder(t, root)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := b.Run(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestBuilder_Validate(t *testing.T) {
	t.Run("valid project", func(t *testing.T) {
		root := setupProject(t)
		b := newTestBuilder(t, root)

		assert.NoError(t, b.Validate(context.Background()))
	})

	t.Run("missing directory fails", func(t *testing.T) {
		root := setupProject(t)
		require.NoError(t, os.RemoveAll(filepath.Join(root, "content", "guides")))
		b := newTestBuilder(t, root)

		assert.ErrorIs(t, b.Validate(context.Background()), domain.ErrDirectoryNotFound)
	})
}

func TestBuilder_CustomPaths(t *testing.T) {
	root := setupProject(t)
	require.NoError(t, os.Rename(
		filepath.Join(root, "site.config.json"),
		filepath.Join(root, "nav.json"),
	))

	b, err := New(Options{
		RootDir:    root,
		ConfigPath: "nav.json",
		OutputPath: filepath.Join("build", "nav.manifest.json"),
	})
	require.NoError(t, err)

	require.NoError(t, b.Run(context.Background()))

	_, statErr := os.Stat(filepath.Join(root, "build", "nav.manifest.json"))
	assert.NoError(t, statErr)
}
