package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var urlNamespace string

var urlCmd = &cobra.Command{
	Use:   "url [url]",
	Short: "Translate a URL to a URN",
	Long: `Translate a vocabulary URL to its canonical URN.

Without --namespace the registered namespaces are scanned in order and the
first match wins.`,
	Args: cobra.ExactArgs(1),
	RunE: runURL,
}

func init() {
	urlCmd.Flags().StringVarP(&urlNamespace, "namespace", "n", "", "namespace id to use instead of matching")
	rootCmd.AddCommand(urlCmd)
}

func runURL(cmd *cobra.Command, args []string) error {
	if urnService == nil {
		return errors.New("urn service not configured")
	}

	urn, err := urnService.URLToURN(args[0], urlNamespace)
	if err != nil {
		return fmt.Errorf("translate failed: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), urn)
	return nil
}
