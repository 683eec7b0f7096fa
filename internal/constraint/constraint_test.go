package constraint

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const synvepCSV = `GENES,pval,fdr,z
A1BG,0.04,0.10,1
A1CF,0.50,0.61,2
DNMT1,0.001,0.004,3
AKAP9,0.30,0.42,4
BRCA1,0.75,0.80,5
`

const gerpCSV = `GENE,pval,fdr,z
DNMT1,0.02,0.05,2.5
TP53,0.90,0.95,-1.0
`

func writeTable(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func newNormalizer(t *testing.T) *Normalizer {
	t.Helper()
	paths := map[Group]string{
		GroupSYNVEP: writeTable(t, "synvep.csv", synvepCSV),
		GroupGERP:   writeTable(t, "gerp.csv", gerpCSV),
	}
	return New(paths, "")
}

func TestNormalizeCentersFullDistribution(t *testing.T) {
	n := newNormalizer(t)

	// z values are [1,2,3,4,5]: the middle row scales to exactly 0 no
	// matter which gene is filtered afterwards.
	rec, err := n.Normalize(GroupSYNVEP, "DNMT1")
	require.NoError(t, err)
	assert.Equal(t, "DNMT1", rec.Gene)
	assert.InDelta(t, 3.0, rec.Score, 1e-9)
	assert.InDelta(t, 0.0, rec.NormScore, 1e-9)
	assert.InDelta(t, 0.001, rec.PValue, 1e-9)
	assert.InDelta(t, 0.004, rec.FDR, 1e-9)
	assert.Equal(t, GroupSYNVEP, rec.Group)

	// Symmetric tails scale to opposite values.
	lo, err := n.Normalize(GroupSYNVEP, "A1BG")
	require.NoError(t, err)
	hi, err := n.Normalize(GroupSYNVEP, "BRCA1")
	require.NoError(t, err)
	assert.InDelta(t, -hi.NormScore, lo.NormScore, 1e-9)
	assert.Less(t, lo.NormScore, 0.0)
}

func TestNormalizeGeneColumnPerGroup(t *testing.T) {
	n := newNormalizer(t)

	// GERP tables name the gene column GENE, not GENES.
	rec, err := n.Normalize(GroupGERP, "TP53")
	require.NoError(t, err)
	assert.InDelta(t, -1.0, rec.Score, 1e-9)
	assert.Equal(t, GroupGERP, rec.Group)
}

func TestNormalizeGeneNotFound(t *testing.T) {
	n := newNormalizer(t)

	_, err := n.Normalize(GroupSYNVEP, "NOT_A_GENE")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNormalizeInvalidGroupTouchesNoFile(t *testing.T) {
	// Paths deliberately point at files that don't exist: an invalid
	// group must fail before any load is attempted.
	n := New(map[Group]string{GroupSYNVEP: "/nonexistent/synvep.csv"}, "")

	_, err := n.Normalize(Group("NOT_A_GROUP"), "A1BG")
	assert.ErrorIs(t, err, ErrInvalidGroup)
}

func TestNormalizeUnconfiguredGroup(t *testing.T) {
	n := newNormalizer(t)

	_, err := n.Normalize(GroupSURF, "A1BG")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidGroup)
}

func TestParseGroup(t *testing.T) {
	g, err := ParseGroup("synvep")
	require.NoError(t, err)
	assert.Equal(t, GroupSYNVEP, g)

	g, err = ParseGroup("SpliceAI")
	require.NoError(t, err)
	assert.Equal(t, GroupSPLICEAI, g)

	_, err = ParseGroup("NOT_A_GROUP")
	assert.ErrorIs(t, err, ErrInvalidGroup)
}

func TestReadConstraintTableMissingColumn(t *testing.T) {
	path := writeTable(t, "bad.csv", "GENES,pval,z\nA1BG,0.1,1\n")
	_, err := readConstraintTable(path, "GENES")
	assert.ErrorContains(t, err, "fdr")
}
