package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/hgurn/internal/core/domain"
)

func resetBatchFlags() {
	batchDataset = ""
	batchFormat = ""
	batchRecord = false
}

func TestReadRecords(t *testing.T) {
	input := `# comment
http://sws.geonames.org/2759794/

{"id": "bus-1", "dataset": "buses"}
  tgn/7006952
`
	records, err := readRecords(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []domain.IdentifierRecord{
		{Identifier: "http://sws.geonames.org/2759794/"},
		{Identifier: "bus-1", Dataset: "buses"},
		{Identifier: "tgn/7006952"},
	}, records)
}

func TestReadRecords_InvalidJSON(t *testing.T) {
	_, err := readRecords(strings.NewReader("tgn/1\n{\"id\": \n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestResolveFormat(t *testing.T) {
	tests := []struct {
		name    string
		flag    string
		want    string
		wantErr bool
	}{
		{name: "explicit text", flag: "text", want: formatText},
		{name: "explicit jsonl", flag: "jsonl", want: formatJSONL},
		{name: "non-terminal default", flag: "", want: formatJSONL},
		{name: "unknown", flag: "csv", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveFormat(tt.flag, new(bytes.Buffer))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBatchCmd_TextFromStdin(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetBatchFlags()

	in := strings.NewReader("tgn/7006952\nbus-1\nhttp://example.org/x\n")
	out, stderr, err := execute(t, in, "batch", "--format", "text", "--dataset", "buses")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "tgn/7006952\turn:hg:tgn:7006952", lines[0])
	assert.Equal(t, "bus-1\turn:hgid:buses/bus-1", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "http://example.org/x\terror: "))
	assert.Contains(t, stderr, "run run-test: 3 identifiers, 1 failed")
}

func TestBatchCmd_JSONLFromFile(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetBatchFlags()

	path := filepath.Join(t.TempDir(), "ids.txt")
	require.NoError(t, os.WriteFile(path, []byte("wikidata/Q727\n{\"id\": \"7\"}\n"), 0600))

	out, _, err := execute(t, nil, "batch", path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)

	var first domain.Concordance
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "run-test", first.RunID)
	assert.Equal(t, "urn:hg:wikidata:Q727", first.URN)
	assert.Equal(t, "http://www.wikidata.org/entity/Q727", first.URL)

	var second domain.Concordance
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.False(t, second.OK())
}

func TestBatchCmd_RecordThenConcordance(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetBatchFlags()

	in := strings.NewReader("http://vocab.getty.edu/tgn/7006952\ntgn/7006952\n")
	_, _, err := execute(t, in, "batch", "--record", "--format", "text")
	require.NoError(t, err)

	out, _, err := execute(t, nil, "concordance", "urn:hg:tgn:7006952")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "http://vocab.getty.edu/tgn/7006952\trun run-test\t"))
	assert.True(t, strings.HasPrefix(lines[1], "tgn/7006952\trun run-test\t"))
}

func TestConcordanceCmd_NoRecords(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, _, err := execute(t, nil, "concordance", "urn:hg:tgn:1")
	require.NoError(t, err)
	assert.Equal(t, "No recorded identifiers.\n", out)
}

func TestBatchCmd_ErrorsWithoutServices(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	batchService = nil

	_, _, err := execute(t, strings.NewReader("tgn/1\n"), "batch")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "batch service not configured")
}
