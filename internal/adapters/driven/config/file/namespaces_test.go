package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/hgurn/internal/core/domain"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadNamespaceDefinitions_TOML(t *testing.T) {
	path := writeFile(t, "namespaces.toml", `
[[namespace]]
id = "aat"
kind = "hierarchical"
base_url = "http://vocab.getty.edu/aat/"

[[namespace]]
id = "osm"
kind = "resource-path"
base_url = "https://www.openstreetmap.org/"
markers = ["node/", "way/"]
`)

	defs, err := LoadNamespaceDefinitions(path)
	require.NoError(t, err)
	require.Len(t, defs, 2)

	assert.Equal(t, domain.NamespaceDefinition{
		ID:      "aat",
		Kind:    domain.KindHierarchical,
		BaseURL: "http://vocab.getty.edu/aat/",
	}, defs[0])
	assert.Equal(t, []string{"node/", "way/"}, defs[1].Markers)
}

func TestLoadNamespaceDefinitions_YAML(t *testing.T) {
	path := writeFile(t, "namespaces.yaml", `
namespace:
  - id: kloeke2
    kind: query-param
    base_url: http://example.org/index.php
    param: code
  - id: geo
    kind: numeric
    base_url: http://geo.example/
    hosts: [www.geo.example]
`)

	defs, err := LoadNamespaceDefinitions(path)
	require.NoError(t, err)
	require.Len(t, defs, 2)
	assert.Equal(t, "code", defs[0].Param)
	assert.Equal(t, domain.KindNumeric, defs[1].Kind)
	assert.Equal(t, []string{"www.geo.example"}, defs[1].Hosts)
}

func TestLoadNamespaceDefinitions_EmptyYAML(t *testing.T) {
	defs, err := LoadNamespaceDefinitions(writeFile(t, "empty.yml", ""))
	require.NoError(t, err)
	assert.Empty(t, defs)
}

func TestLoadNamespaceDefinitions_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadNamespaceDefinitions(filepath.Join(t.TempDir(), "nope.toml"))
		assert.Error(t, err)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := LoadNamespaceDefinitions(writeFile(t, "namespaces.json", "{}"))
		assert.Error(t, err)
	})

	t.Run("unknown toml field", func(t *testing.T) {
		_, err := LoadNamespaceDefinitions(writeFile(t, "n.toml", "[[namespace]]\nid = \"x\"\nbaseurl = \"http://x/\"\n"))
		assert.Error(t, err)
	})

	t.Run("unknown yaml field", func(t *testing.T) {
		_, err := LoadNamespaceDefinitions(writeFile(t, "n.yaml", "namespace:\n  - id: x\n    baseurl: http://x/\n"))
		assert.Error(t, err)
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := LoadNamespaceDefinitions(writeFile(t, "n.toml", "[[namespace]]\nkind = \"numeric\"\n"))
		assert.ErrorIs(t, err, domain.ErrInvalidNamespaceID)
	})
}
