package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/hgurn/internal/core/domain"
	"github.com/custodia-labs/hgurn/internal/core/ports/driving"
)

// Output formats for batch results.
const (
	formatText  = "text"
	formatJSONL = "jsonl"
)

var (
	batchDataset string
	batchFormat  string
	batchRecord  bool
)

var batchCmd = &cobra.Command{
	Use:   "batch [file]",
	Short: "Normalise identifiers in bulk",
	Long: `Normalise one identifier per line from a file, or from stdin when no file
is given. Lines are either a plain identifier or a JSON object:

  {"id": "bus-1", "dataset": "buses"}

Blank lines and lines starting with # are skipped. Failures are reported per
line and do not stop the run. With --record the results are saved to the
concordance database and can be queried with "hgurn concordance".

Output defaults to text on a terminal and JSON lines otherwise.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVarP(&batchDataset, "dataset", "d", "", "dataset scope for bare ids")
	batchCmd.Flags().StringVarP(&batchFormat, "format", "f", "", "output format: text or jsonl")
	batchCmd.Flags().BoolVar(&batchRecord, "record", false, "save results to the concordance database")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	if batchService == nil {
		return errors.New("batch service not configured")
	}

	format, err := resolveFormat(batchFormat, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	in := cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	records, err := readRecords(in)
	if err != nil {
		return err
	}

	summary, err := batchService.Run(cmd.Context(), records, driving.BatchOptions{
		DefaultDataset: defaultDataset(batchDataset),
		Record:         batchRecord,
	})
	if err != nil {
		return fmt.Errorf("batch failed: %w", err)
	}

	if err := writeResults(cmd.OutOrStdout(), format, summary.Results); err != nil {
		return err
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "run %s: %d identifiers, %d failed\n",
		summary.RunID, summary.Total, summary.Failed)
	return nil
}

func resolveFormat(flag string, out io.Writer) (string, error) {
	switch flag {
	case formatText, formatJSONL:
		return flag, nil
	case "":
		if isTerminal(out) {
			return formatText, nil
		}
		return formatJSONL, nil
	default:
		return "", fmt.Errorf("unknown format %q (want %s or %s)", flag, formatText, formatJSONL)
	}
}

// readRecords parses one record per line.
func readRecords(r io.Reader) ([]domain.IdentifierRecord, error) {
	var records []domain.IdentifierRecord

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		if !strings.HasPrefix(text, "{") {
			records = append(records, domain.IdentifierRecord{Identifier: text})
			continue
		}

		var rec domain.IdentifierRecord
		if err := json.Unmarshal([]byte(text), &rec); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return records, nil
}

func writeResults(w io.Writer, format string, results []domain.Concordance) error {
	if format == formatJSONL {
		enc := json.NewEncoder(w)
		for i := range results {
			if err := enc.Encode(results[i]); err != nil {
				return fmt.Errorf("failed to encode result: %w", err)
			}
		}
		return nil
	}

	for _, c := range results {
		if c.OK() {
			fmt.Fprintf(w, "%s\t%s\n", c.Identifier, c.URN)
			continue
		}
		fmt.Fprintf(w, "%s\terror: %s\n", c.Identifier, c.Error)
	}
	return nil
}
