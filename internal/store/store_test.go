package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openInMemory(t *testing.T) *Store {
	t.Helper()
	s, err := Open("")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openInMemory(t)
	assert.NotNil(t, s.DB())
}

func TestEnsureSchemas(t *testing.T) {
	s := openInMemory(t)
	require.NoError(t, s.EnsureScoreSchema())
	require.NoError(t, s.EnsureFrequencySchema())

	// Idempotent.
	require.NoError(t, s.EnsureScoreSchema())

	for _, table := range []string{"SILVA", "SURF", "SYNVEP", "SPLICEAI", "gnomad_db"} {
		n, err := s.RowCount(table)
		require.NoError(t, err, table)
		assert.Zero(t, n, table)
	}
}

func TestQuoteIdent(t *testing.T) {
	assert.Equal(t, `"pos"`, QuoteIdent("pos"))
	assert.Equal(t, `"#GERP++"`, QuoteIdent("#GERP++"))
	assert.Equal(t, `"#CpG?"`, QuoteIdent("#CpG?"))
	assert.Equal(t, `"a""b"`, QuoteIdent(`a"b`))
}

const surfTSV = "CHR\tPOS\tREF\tALT\tGENE\tSURF\n" +
	"7\t91763673\tC\tA\tAKAP9\t0.42\n" +
	"19\t10194837\tG\tT\tDNMT1\t0.17\n"

func TestLoadTable(t *testing.T) {
	s := openInMemory(t)
	require.NoError(t, s.EnsureScoreSchema())

	path := filepath.Join(t.TempDir(), "surf.tsv")
	require.NoError(t, os.WriteFile(path, []byte(surfTSV), 0644))

	require.NoError(t, s.LoadTable("SURF", path))
	n, err := s.RowCount("SURF")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	// Reload replaces rather than appends.
	require.NoError(t, s.LoadTable("SURF", path))
	n, err = s.RowCount("SURF")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestLoadTableUnknown(t *testing.T) {
	s := openInMemory(t)
	err := s.LoadTable("NOT_A_TABLE", "nope.tsv")
	assert.Error(t, err)
}
