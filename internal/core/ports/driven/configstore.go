package driven

// Configuration keys read by the CLI.
const (
	// ConfigKeyDefaultDataset scopes bare identifiers when no --dataset is given.
	ConfigKeyDefaultDataset = "normalize.default_dataset"

	// ConfigKeyNamespacesFile points at a TOML or YAML file of extra namespaces.
	ConfigKeyNamespacesFile = "namespaces.file"

	// ConfigKeyDataDir is the directory of the concordance database.
	ConfigKeyDataDir = "storage.data_dir"
)

// ConfigStore provides access to application configuration.
// Keys use dot notation; nested tables in the file are flattened.
type ConfigStore interface {
	// GetString retrieves a string configuration value.
	// Returns empty string if key doesn't exist or isn't a string.
	GetString(key string) string

	// Set stores a configuration value.
	// The value is persisted immediately.
	Set(key string, value string) error

	// Keys returns all configured keys, sorted.
	Keys() []string

	// Path returns the configuration file path.
	Path() string
}
