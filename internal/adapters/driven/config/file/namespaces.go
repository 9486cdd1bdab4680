package file

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/hgurn/internal/core/domain"
)

// namespaceFile is the layout of a namespace definition file:
//
//	[[namespace]]
//	id = "aat"
//	kind = "hierarchical"
//	base_url = "http://vocab.getty.edu/aat/"
type namespaceFile struct {
	Namespaces []domain.NamespaceDefinition `toml:"namespace" yaml:"namespace"`
}

// LoadNamespaceDefinitions reads namespace definitions from a .toml, .yaml
// or .yml file. Unknown fields are rejected so typos do not silently drop
// matching rules.
func LoadNamespaceDefinitions(path string) ([]domain.NamespaceDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading namespaces: %w", err)
	}

	var f namespaceFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported namespace file type %q", ext)
	}

	for i, def := range f.Namespaces {
		if strings.TrimSpace(def.ID) == "" {
			return nil, fmt.Errorf("%s: namespace %d: %w", path, i+1, domain.ErrInvalidNamespaceID)
		}
	}
	return f.Namespaces, nil
}
