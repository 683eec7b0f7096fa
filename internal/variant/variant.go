// Package variant defines the genomic variant value objects shared by the
// score, liftover and constraint layers.
package variant

import (
	"fmt"
	"strconv"
	"strings"
)

// GenomeBuild identifies the coordinate reference system a variant's
// position belongs to. Positions are not comparable across builds.
type GenomeBuild string

// The two supported builds. Every score table declares which of these it
// natively indexes.
const (
	HG19 GenomeBuild = "hg19"
	HG38 GenomeBuild = "hg38"
)

// Opposite returns the other supported build.
func (b GenomeBuild) Opposite() GenomeBuild {
	if b == HG19 {
		return HG38
	}
	return HG19
}

// Valid reports whether b is one of the supported builds.
func (b GenomeBuild) Valid() bool {
	return b == HG19 || b == HG38
}

// ParseGenomeBuild parses a build name. Both the UCSC (hg19/hg38) and
// Ensembl (GRCh37/GRCh38) spellings are accepted.
func ParseGenomeBuild(s string) (GenomeBuild, error) {
	switch strings.ToLower(s) {
	case "hg19", "grch37":
		return HG19, nil
	case "hg38", "grch38":
		return HG38, nil
	}
	return "", fmt.Errorf("unknown genome build %q (expected hg19/GRCh37 or hg38/GRCh38)", s)
}

// Variant is the canonical identity of a single-nucleotide substitution.
// It is a value object: constructed once, never mutated.
type Variant struct {
	Chrom string      `json:"chrom"` // chromosome name without "chr" prefix (e.g. "7", "X")
	Pos   int64       `json:"pos"`   // 1-based position in Build's coordinate system
	Ref   string      `json:"ref"`   // reference allele
	Alt   string      `json:"alt"`   // alternate allele
	Build GenomeBuild `json:"build"` // coordinate system Pos is expressed in
}

// ID formats the variant as chrom-pos-ref-alt.
func (v Variant) ID() string {
	return v.Chrom + "-" + strconv.FormatInt(v.Pos, 10) + "-" + v.Ref + "-" + v.Alt
}

// NormalizeChrom returns the chromosome name without "chr" prefix.
func (v Variant) NormalizeChrom() string {
	if len(v.Chrom) > 3 && v.Chrom[:3] == "chr" {
		return v.Chrom[3:]
	}
	return v.Chrom
}

// IsSNV returns true if both alleles are single nucleotides.
func (v Variant) IsSNV() bool {
	return len(v.Ref) == 1 && len(v.Alt) == 1
}
