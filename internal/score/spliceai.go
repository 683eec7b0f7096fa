package score

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/inodb/symetrics/internal/store"
	"github.com/inodb/symetrics/internal/variant"
)

// The SPLICEAI table packs its annotation into a single pipe-delimited
// INFO column, in the order used by the SpliceAI VCF release.
const spliceInfoHeader = "ALLELE|SYMBOL|DS_AG|DS_AL|DS_DG|DS_DL|DP_AG|DP_AL|DP_DG|DP_DL"

var spliceInfoFields = strings.Split(spliceInfoHeader, "|")

// MaxDeltaScore is the metric name the splice adapter emits: the maximum
// of the four directional delta scores (DS_AG, DS_AL, DS_DG, DS_DL).
const MaxDeltaScore = "MAX_DS"

// spliceTableAdapter unpacks the INFO payload and reduces the four
// directional delta scores to MAX_DS. The reduction is part of the
// adapter's contract, not a convenience.
type spliceTableAdapter struct {
	tableSchema
}

var spliceAdapter = &spliceTableAdapter{tableSchema{
	family:   FamilySplice,
	table:    "SPLICEAI",
	chromCol: "chr",
	refCol:   "ref",
	altCol:   "alt",
	posCols:  map[variant.GenomeBuild]string{variant.HG38: "pos"},
	values:   []valueColumn{{column: "INFO", name: "INFO"}},
	buildErr: ErrBuildMismatch,
}}

func (a *spliceTableAdapter) Lookup(s *store.Store, v variant.Variant) (*Record, error) {
	if err := a.SupportsBuild(v.Build); err != nil {
		return nil, err
	}

	rec := &Record{}
	var info string
	row := s.DB().QueryRow(a.selectSQL(v.Build), v.NormalizeChrom(), v.Pos, v.Ref, v.Alt)
	if err := row.Scan(&rec.Chrom, &rec.Pos, &rec.Ref, &rec.Alt, &info); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("query %s: %w", a.table, errors.Join(store.ErrUnavailable, err))
	}

	gene, maxDS, err := reduceSpliceInfo(info)
	if err != nil {
		return nil, fmt.Errorf("%s row %s-%d-%s-%s: %w", a.table, rec.Chrom, rec.Pos, rec.Ref, rec.Alt, err)
	}
	rec.Gene = gene
	rec.Scores = map[string]float64{MaxDeltaScore: maxDS}
	return rec, nil
}

// reduceSpliceInfo splits the packed annotation into its named components
// and returns the gene symbol and the maximum directional delta score.
func reduceSpliceInfo(info string) (gene string, maxDS float64, err error) {
	fields := strings.Split(info, "|")
	if len(fields) < len(spliceInfoFields) {
		return "", 0, fmt.Errorf("malformed INFO payload: %d fields, want %d (%s)",
			len(fields), len(spliceInfoFields), spliceInfoHeader)
	}

	gene = fields[1]
	// DS_AG..DS_DL occupy fields 2..5.
	for i := 2; i <= 5; i++ {
		ds, perr := strconv.ParseFloat(fields[i], 64)
		if perr != nil {
			return "", 0, fmt.Errorf("parse %s=%q: %w", spliceInfoFields[i], fields[i], perr)
		}
		if i == 2 || ds > maxDS {
			maxDS = ds
		}
	}
	return gene, maxDS, nil
}
