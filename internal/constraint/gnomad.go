package constraint

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
)

// GnomadConstraint is one transcript's row from the gnomAD gene-constraint
// release (tab-delimited; only the columns of interest are bound, the rest
// of the release's columns are ignored).
type GnomadConstraint struct {
	Gene       string  `csv:"gene" json:"gene"`
	Transcript string  `csv:"transcript" json:"transcript"`
	SynZ       float64 `csv:"syn_z" json:"syn_z"`
	MisZ       float64 `csv:"mis_z" json:"mis_z"`
	LofZ       float64 `csv:"lof_z" json:"lof_z"`
	PLI        float64 `csv:"pLI" json:"pLI"`
}

// GnomadConstraints returns the gnomAD constraint rows for one gene
// (one per transcript). A gene absent from the release yields ErrNotFound.
func (n *Normalizer) GnomadConstraints(gene string) ([]GnomadConstraint, error) {
	if n.gnomadPath == "" {
		return nil, fmt.Errorf("no gnomad constraint table configured")
	}

	f, err := os.Open(n.gnomadPath)
	if err != nil {
		return nil, fmt.Errorf("open gnomad constraints: %w", err)
	}
	defer f.Close()

	// The release file is tab-delimited. The reader is built per call:
	// this package holds no state observable across calls, so concurrent
	// callers stay independent.
	r := csv.NewReader(f)
	r.Comma = '\t'
	r.LazyQuotes = true

	var records []*GnomadConstraint
	if err := gocsv.UnmarshalCSV(r, &records); err != nil {
		return nil, fmt.Errorf("parse gnomad constraints: %w", err)
	}

	var out []GnomadConstraint
	for _, r := range records {
		if r.Gene == gene {
			out = append(out, *r)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %s in gnomad constraints", ErrNotFound, gene)
	}
	return out, nil
}
