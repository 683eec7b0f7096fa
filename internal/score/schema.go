package score

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/inodb/symetrics/internal/store"
	"github.com/inodb/symetrics/internal/variant"
)

// Adapter translates a variant into one table-specific exact-match query
// and normalizes the result row.
type Adapter interface {
	Family() Family
	Table() string
	// SupportsBuild returns nil when the table indexes the given build,
	// otherwise ErrBuildMismatch or ErrUnsupportedBuild. It performs no I/O.
	SupportsBuild(b variant.GenomeBuild) error
	// Lookup runs the exact-match query against an already-open store.
	// Zero rows yields store.ErrNotFound; on duplicates the first row wins.
	Lookup(s *store.Store, v variant.Variant) (*Record, error)
}

// valueColumn maps one source column to its metric name in Record.Scores.
type valueColumn struct {
	column string // column name in the table
	name   string // metric name in the result
}

// tableSchema is the static description of one score table: its column
// mapping and the position column per supported build. All adapters are
// built from these declarations; no query strings are assembled from
// caller input.
type tableSchema struct {
	family   Family
	table    string
	chromCol string
	refCol   string
	altCol   string
	geneCol  string // empty when the table carries no gene column
	posCols  map[variant.GenomeBuild]string
	values   []valueColumn
	buildErr error // error for builds absent from posCols
}

func (t *tableSchema) Family() Family { return t.family }
func (t *tableSchema) Table() string  { return t.table }

func (t *tableSchema) SupportsBuild(b variant.GenomeBuild) error {
	if !b.Valid() {
		return fmt.Errorf("%w: %q", ErrBuildMismatch, b)
	}
	if _, ok := t.posCols[b]; !ok {
		return fmt.Errorf("%w: %s does not index %s", t.buildErr, t.table, b)
	}
	return nil
}

// selectSQL builds the parameterized lookup for one build. Column and
// table names come from the static schema above, values are bound.
func (t *tableSchema) selectSQL(b variant.GenomeBuild) string {
	cols := []string{
		store.QuoteIdent(t.chromCol),
		store.QuoteIdent(t.posCols[b]),
		store.QuoteIdent(t.refCol),
		store.QuoteIdent(t.altCol),
	}
	if t.geneCol != "" {
		cols = append(cols, store.QuoteIdent(t.geneCol))
	}
	for _, v := range t.values {
		cols = append(cols, store.QuoteIdent(v.column))
	}
	return fmt.Sprintf("SELECT %s FROM %s WHERE %s = ? AND %s = ? AND %s = ? AND %s = ? LIMIT 1",
		strings.Join(cols, ", "),
		store.QuoteIdent(t.table),
		store.QuoteIdent(t.chromCol),
		store.QuoteIdent(t.posCols[b]),
		store.QuoteIdent(t.refCol),
		store.QuoteIdent(t.altCol))
}

func (t *tableSchema) Lookup(s *store.Store, v variant.Variant) (*Record, error) {
	if err := t.SupportsBuild(v.Build); err != nil {
		return nil, err
	}

	rec := &Record{Scores: make(map[string]float64, len(t.values))}

	dests := []any{&rec.Chrom, &rec.Pos, &rec.Ref, &rec.Alt}
	var gene sql.NullString
	if t.geneCol != "" {
		dests = append(dests, &gene)
	}
	vals := make([]sql.NullFloat64, len(t.values))
	for i := range vals {
		dests = append(dests, &vals[i])
	}

	row := s.DB().QueryRow(t.selectSQL(v.Build), v.NormalizeChrom(), v.Pos, v.Ref, v.Alt)
	if err := row.Scan(dests...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("query %s: %w", t.table, errors.Join(store.ErrUnavailable, err))
	}

	rec.Gene = gene.String
	for i, val := range vals {
		// A NULL metric would leave the record partially populated, which
		// callers never see: the row is reported as malformed instead.
		if !val.Valid {
			return nil, fmt.Errorf("%s row %s-%d-%s-%s: column %s is NULL",
				t.table, rec.Chrom, rec.Pos, rec.Ref, rec.Alt, t.values[i].column)
		}
		rec.Scores[t.values[i].name] = val.Float64
	}
	return rec, nil
}
