package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var urnCmd = &cobra.Command{
	Use:   "urn [urn]",
	Short: "Translate a URN to a URL",
	Long:  `Translate urn:hg:<namespace>:<id> back to a dereferenceable URL.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runURN,
}

func init() {
	rootCmd.AddCommand(urnCmd)
}

func runURN(cmd *cobra.Command, args []string) error {
	if urnService == nil {
		return errors.New("urn service not configured")
	}

	url, err := urnService.URNToURL(args[0])
	if err != nil {
		return fmt.Errorf("translate failed: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), url)
	return nil
}
