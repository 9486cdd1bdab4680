// Package cli provides the hgurn command-line interface.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/hgurn/internal/core/domain"
	"github.com/custodia-labs/hgurn/internal/core/ports/driven"
	"github.com/custodia-labs/hgurn/internal/core/ports/driving"
	"github.com/custodia-labs/hgurn/internal/logger"
)

// version is set from the build in main.
var version = "dev"

var verbose bool

// Services wired by main.
var (
	urnService      driving.URNService
	batchService    driving.BatchService
	configStore     driven.ConfigStore
	namespaceLoader func(path string) ([]domain.NamespaceDefinition, error)
)

var rootCmd = &cobra.Command{
	Use:   "hgurn",
	Short: "Normalise identifiers to canonical URNs",
	Long: `hgurn turns gazetteer and knowledge base identifiers into canonical URNs.

Identifiers can be full URLs (http://sws.geonames.org/2759794/), scoped ids
(tgn/7006952) or bare ids combined with a dataset. URNs of registered
namespaces translate back to dereferenceable URLs.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug output")
}

// Services holds the driving ports and helpers the commands need.
type Services struct {
	URN    driving.URNService
	Batch  driving.BatchService
	Config driven.ConfigStore

	// LoadNamespaces reads namespace definitions from a file.
	LoadNamespaces func(path string) ([]domain.NamespaceDefinition, error)
}

// SetServices injects the services used by the commands.
func SetServices(s Services) {
	urnService = s.URN
	batchService = s.Batch
	configStore = s.Config
	namespaceLoader = s.LoadNamespaces
}

// Execute runs the root command.
func Execute(ctx context.Context, v string) error {
	if v != "" {
		version = v
	}
	return rootCmd.ExecuteContext(ctx)
}

// defaultDataset returns the flag value, or the configured default.
func defaultDataset(flag string) string {
	if flag != "" || configStore == nil {
		return flag
	}
	return configStore.GetString(driven.ConfigKeyDefaultDataset)
}
