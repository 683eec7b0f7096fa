package liftover

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inodb/symetrics/internal/store"
	"github.com/inodb/symetrics/internal/variant"
)

// newBridgeDB seeds a SYNVEP bridge table with one unique mapping
// (chr19) and one ambiguous mapping (chr5: a single hg19 position with
// two hg38 candidates).
func newBridgeDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "symetrics.duckdb")
	s, err := store.Open(path)
	require.NoError(t, err)
	require.NoError(t, s.EnsureScoreSchema())

	rows := [][]any{
		{"19", int64(10305513), int64(10194837), "G", "T", "DNMT1", 0.62},
		{"5", int64(100), int64(200), "C", "A", "AMBIG1", 0.10},
		{"5", int64(101), int64(200), "C", "A", "AMBIG1", 0.11},
	}
	for _, r := range rows {
		_, err = s.DB().Exec(`INSERT INTO SYNVEP VALUES (?, ?, ?, ?, ?, ?, ?)`, r...)
		require.NoError(t, err)
	}
	require.NoError(t, s.Close())
	return path
}

func TestTranslateForward(t *testing.T) {
	r := New(newBridgeDB(t))

	v := variant.Variant{Chrom: "19", Pos: 10305513, Ref: "G", Alt: "T", Build: variant.HG19}
	out, err := r.Translate(v)
	require.NoError(t, err)

	assert.Equal(t, "19", out.Chrom)
	assert.Equal(t, int64(10194837), out.Pos)
	assert.Equal(t, "G", out.Ref)
	assert.Equal(t, "T", out.Alt)
	assert.Equal(t, variant.HG38, out.Build)
}

func TestTranslateReverse(t *testing.T) {
	r := New(newBridgeDB(t))

	v := variant.Variant{Chrom: "19", Pos: 10194837, Ref: "G", Alt: "T", Build: variant.HG38}
	out, err := r.Translate(v)
	require.NoError(t, err)

	assert.Equal(t, int64(10305513), out.Pos)
	assert.Equal(t, variant.HG19, out.Build)
}

func TestTranslateRoundTripUnique(t *testing.T) {
	r := New(newBridgeDB(t))

	orig := variant.Variant{Chrom: "19", Pos: 10305513, Ref: "G", Alt: "T", Build: variant.HG19}
	there, err := r.Translate(orig)
	require.NoError(t, err)
	back, err := r.Translate(there)
	require.NoError(t, err)

	// Unique mapping: the round trip reproduces the variant exactly.
	assert.Equal(t, orig, back)
}

func TestTranslateRoundTripAmbiguous(t *testing.T) {
	r := New(newBridgeDB(t))

	orig := variant.Variant{Chrom: "5", Pos: 101, Ref: "C", Alt: "A", Build: variant.HG19}
	there, err := r.Translate(orig)
	require.NoError(t, err)
	assert.Equal(t, int64(200), there.Pos)

	back, err := r.Translate(there)
	require.NoError(t, err)

	// Chrom and alleles always survive the round trip; the position may
	// land on either hg19 candidate because the bridge mapping is not
	// unique.
	assert.Equal(t, orig.Chrom, back.Chrom)
	assert.Equal(t, orig.Ref, back.Ref)
	assert.Equal(t, orig.Alt, back.Alt)
	assert.Equal(t, variant.HG19, back.Build)
	assert.Contains(t, []int64{100, 101}, back.Pos)
}

func TestTranslateNotFound(t *testing.T) {
	r := New(newBridgeDB(t))

	v := variant.Variant{Chrom: "1", Pos: 1, Ref: "A", Alt: "T", Build: variant.HG19}
	_, err := r.Translate(v)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestTranslateInvalidBuild(t *testing.T) {
	r := New(newBridgeDB(t))

	v := variant.Variant{Chrom: "19", Pos: 10305513, Ref: "G", Alt: "T", Build: "hg18"}
	_, err := r.Translate(v)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, store.ErrNotFound)
}
