package score

import "github.com/inodb/symetrics/internal/variant"

// BridgeSchema describes the one table indexed by both genome builds.
// Liftover derives its column mapping from this declaration in both
// directions instead of hardcoding per-direction queries.
type BridgeSchema struct {
	Table string
	Chrom string
	Ref   string
	Alt   string
	Gene  string
	Pos   map[variant.GenomeBuild]string
}

// Bridge is the SYNVEP table: pos carries hg19 coordinates, pos_GRCh38
// carries hg38 coordinates.
var Bridge = BridgeSchema{
	Table: "SYNVEP",
	Chrom: "chr",
	Ref:   "ref",
	Alt:   "alt",
	Gene:  "HGNC_gene_symbol",
	Pos: map[variant.GenomeBuild]string{
		variant.HG19: "pos",
		variant.HG38: "pos_GRCh38",
	},
}

// silvaAdapter serves the SILVA conservation table. The source release
// keeps its odd header names; only the output metric names are cleaned up.
var silvaAdapter = &tableSchema{
	family:   FamilyConservation,
	table:    "SILVA",
	chromCol: "#chrom",
	refCol:   "ref",
	altCol:   "alt",
	geneCol:  "gene",
	posCols:  map[variant.GenomeBuild]string{variant.HG19: "pos"},
	values: []valueColumn{
		{column: "#RSCU", name: "RSCU"},
		{column: "dRSCU", name: "DRSCU"},
		{column: "#GERP++", name: "GERP"},
		{column: "#CpG?", name: "CPG"},
		{column: "CpG_exon", name: "CPGX"},
	},
	buildErr: ErrBuildMismatch,
}

var surfAdapter = &tableSchema{
	family:   FamilySurface,
	table:    "SURF",
	chromCol: "CHR",
	refCol:   "REF",
	altCol:   "ALT",
	geneCol:  "GENE",
	posCols:  map[variant.GenomeBuild]string{variant.HG38: "POS"},
	values:   []valueColumn{{column: "SURF", name: "SURF"}},
	buildErr: ErrBuildMismatch,
}

var synvepAdapter = &tableSchema{
	family:   FamilySynonymous,
	table:    Bridge.Table,
	chromCol: Bridge.Chrom,
	refCol:   Bridge.Ref,
	altCol:   Bridge.Alt,
	geneCol:  Bridge.Gene,
	posCols:  Bridge.Pos,
	values:   []valueColumn{{column: "synVep", name: "SYNVEP"}},
	buildErr: ErrBuildMismatch,
}

var frequencyAdapter = &tableSchema{
	family:   FamilyFrequency,
	table:    "gnomad_db",
	chromCol: "chr",
	refCol:   "ref",
	altCol:   "alt",
	posCols:  map[variant.GenomeBuild]string{variant.HG38: "pos"},
	values: []valueColumn{
		{column: "AC", name: "AC"},
		{column: "AN", name: "AN"},
		{column: "AF", name: "AF"},
	},
	buildErr: ErrUnsupportedBuild,
}

// adapters maps each family to its adapter. spliceAdapter lives in
// spliceai.go because it post-processes the packed INFO payload.
func adapters() map[Family]Adapter {
	return map[Family]Adapter{
		FamilyConservation: silvaAdapter,
		FamilySurface:      surfAdapter,
		FamilySynonymous:   synvepAdapter,
		FamilySplice:       spliceAdapter,
		FamilyFrequency:    frequencyAdapter,
	}
}
