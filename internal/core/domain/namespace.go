package domain

// NamespaceKind names a built-in translation rule family.
type NamespaceKind string

const (
	// KindNumeric extracts the first run of digits from a URL.
	KindNumeric NamespaceKind = "numeric"

	// KindHierarchical captures an optional literal segment plus a numeric id.
	KindHierarchical NamespaceKind = "hierarchical"

	// KindResourcePath captures everything after a path marker.
	KindResourcePath NamespaceKind = "resource-path"

	// KindQueryParam captures the value of a query parameter.
	KindQueryParam NamespaceKind = "query-param"

	// KindCustom is any handler registered programmatically.
	KindCustom NamespaceKind = "custom"
)

// Namespace describes a registered namespace for listings.
type Namespace struct {
	// ID is the registry key, lowercase.
	ID string

	// BaseURL is the canonical URL prefix of the vocabulary.
	BaseURL string

	// Kind is the rule family of the handler, KindCustom when unknown.
	Kind NamespaceKind
}

// NamespaceDefinition declares a namespace in a configuration file.
// Which fields apply depends on Kind.
type NamespaceDefinition struct {
	// ID is the namespace id.
	ID string `toml:"id" yaml:"id"`

	// Kind selects the rule family.
	Kind NamespaceKind `toml:"kind" yaml:"kind"`

	// BaseURL is the canonical prefix. For resource-path namespaces it is the
	// root the path markers follow.
	BaseURL string `toml:"base_url" yaml:"base_url"`

	// Hosts lists extra host names accepted besides the base URL host (numeric).
	Hosts []string `toml:"hosts" yaml:"hosts"`

	// Segment is the optional literal path segment (hierarchical).
	Segment string `toml:"segment" yaml:"segment"`

	// Markers are the accepted path markers (resource-path).
	Markers []string `toml:"markers" yaml:"markers"`

	// Canonical is the marker used when rebuilding URLs (resource-path).
	// Defaults to the first marker.
	Canonical string `toml:"canonical" yaml:"canonical"`

	// Param is the query parameter carrying the id (query-param).
	Param string `toml:"param" yaml:"param"`
}
