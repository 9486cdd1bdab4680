package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/hgurn/internal/core/domain"
)

var (
	normalizeDataset string
	normalizeResolve bool
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize [identifier]",
	Short: "Normalise an identifier to a URN",
	Long: `Normalise a URL, a dataset/id pair or a bare id to its canonical URN.

URLs are matched against the registered namespaces. Scoped ids of a
registered namespace become urn:hg:<namespace>:<id>; others become
urn:hgid:<dataset>/<id>. Bare ids need --dataset or the
normalize.default_dataset setting.`,
	Example: `  hgurn normalize http://sws.geonames.org/2759794/
  hgurn normalize tgn/7006952
  hgurn normalize bus-1 --dataset buses`,
	Args: cobra.ExactArgs(1),
	RunE: runNormalize,
}

func init() {
	normalizeCmd.Flags().StringVarP(&normalizeDataset, "dataset", "d", "", "dataset scope for bare ids")
	normalizeCmd.Flags().BoolVar(&normalizeResolve, "resolve", false, "also print the URL of the URN")
	rootCmd.AddCommand(normalizeCmd)
}

func runNormalize(cmd *cobra.Command, args []string) error {
	if urnService == nil {
		return errors.New("urn service not configured")
	}

	urn, err := urnService.Normalize(args[0], defaultDataset(normalizeDataset))
	if err != nil {
		return fmt.Errorf("normalize failed: %w", err)
	}

	if !normalizeResolve || !domain.IsHGURN(urn) {
		fmt.Fprintln(cmd.OutOrStdout(), urn)
		return nil
	}

	url, err := urnService.URNToURL(urn)
	if err != nil {
		return fmt.Errorf("resolve failed: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", urn, url)
	return nil
}
