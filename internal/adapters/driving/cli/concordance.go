package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var concordanceCmd = &cobra.Command{
	Use:   "concordance [urn]",
	Short: "Show recorded identifiers for a URN",
	Long: `List the source identifiers that batch runs recorded as normalising to
the given URN. Only runs started with "hgurn batch --record" are stored.`,
	Args: cobra.ExactArgs(1),
	RunE: runConcordance,
}

func init() {
	rootCmd.AddCommand(concordanceCmd)
}

func runConcordance(cmd *cobra.Command, args []string) error {
	if batchService == nil {
		return errors.New("batch service not configured")
	}

	records, err := batchService.Lookup(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("lookup failed: %w", err)
	}

	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No recorded identifiers.")
		return nil
	}

	for _, c := range records {
		line := c.Identifier
		if c.Dataset != "" {
			line += " (dataset " + c.Dataset + ")"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\trun %s\t%s\n", line, c.RunID, c.CreatedAt.Format(time.RFC3339))
	}
	return nil
}
