// Package score resolves per-variant annotation scores from the
// precomputed DuckDB tables. Each table family is handled by an adapter
// that statically declares its schema and which genome build(s) it
// natively indexes; the Resolver picks the adapter and performs one
// scoped, exact-match lookup per call.
package score

import (
	"errors"
	"fmt"
	"strings"
)

// Family names a score table family.
type Family string

const (
	// FamilyConservation is the SILVA table: codon usage (RSCU/dRSCU),
	// GERP++ conservation and CpG context. hg19 only.
	FamilyConservation Family = "silva"
	// FamilySurface is the SURF surface-accessibility table. hg38 only.
	FamilySurface Family = "surf"
	// FamilySynonymous is the synVep synonymous-variant pathogenicity
	// table, indexed in both builds.
	FamilySynonymous Family = "synvep"
	// FamilySplice is the SpliceAI delta-score table. hg38 only.
	FamilySplice Family = "spliceai"
	// FamilyFrequency is the gnomAD allele-frequency table. hg38 only;
	// hg19 data is not shipped, so the other build is unsupported rather
	// than mismatched.
	FamilyFrequency Family = "gnomad"
)

// Families lists every table family in a stable order.
func Families() []Family {
	return []Family{FamilyConservation, FamilySurface, FamilySynonymous, FamilySplice, FamilyFrequency}
}

// ParseFamily parses a family name as given on the command line.
func ParseFamily(s string) (Family, error) {
	f := Family(strings.ToLower(s))
	for _, known := range Families() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown score family %q (expected one of silva, surf, synvep, spliceai, gnomad)", s)
}

var (
	// ErrBuildMismatch means the table does not index the variant's build
	// and the lookup was refused before any I/O.
	ErrBuildMismatch = errors.New("table does not index this genome build")

	// ErrUnsupportedBuild means the table family only ships data for one
	// build and the requested one is not it.
	ErrUnsupportedBuild = errors.New("genome build not supported for this table")
)

// Record is the uniform shape every adapter returns. The key fields echo
// the matched row; Scores maps metric names to their values.
type Record struct {
	Chrom  string             `json:"chrom"`
	Pos    int64              `json:"pos"`
	Ref    string             `json:"ref"`
	Alt    string             `json:"alt"`
	Gene   string             `json:"gene,omitempty"`
	Scores map[string]float64 `json:"scores"`
}
