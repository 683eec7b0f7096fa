// Package constraint normalizes per-gene constraint statistics from the
// precomputed metric-group tables. The raw statistic comes from a pooled
// z proportion test computed upstream; this package only rescales it
// against the group-wide distribution and filters to one gene.
package constraint

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"
)

var (
	// ErrInvalidGroup means the metric group name is not in the closed
	// enumeration. It fires before any file is touched.
	ErrInvalidGroup = errors.New("invalid metric group")

	// ErrNotFound means the gene has no row in the group's table.
	ErrNotFound = errors.New("gene not found in constraint table")
)

// Group names a metric-group constraint table.
type Group string

const (
	GroupSYNVEP   Group = "SYNVEP"
	GroupSURF     Group = "SURF"
	GroupGERP     Group = "GERP"
	GroupCPG      Group = "CPG"
	GroupCPGX     Group = "CPGX"
	GroupRSCU     Group = "RSCU"
	GroupDRSCU    Group = "DRSCU"
	GroupSPLICEAI Group = "SPLICEAI"
)

// Groups lists the closed metric-group enumeration in a stable order.
func Groups() []Group {
	return []Group{
		GroupSYNVEP, GroupSURF, GroupGERP, GroupCPG,
		GroupCPGX, GroupRSCU, GroupDRSCU, GroupSPLICEAI,
	}
}

// groupSpec is the per-group table layout. The constraint files were
// produced by different pipelines and do not agree on the gene column
// name, so the mapping is data, not branching.
type groupSpec struct {
	geneColumn string
}

var groupSpecs = map[Group]groupSpec{
	GroupSYNVEP:   {geneColumn: "GENES"},
	GroupSURF:     {geneColumn: "GENES"},
	GroupGERP:     {geneColumn: "GENE"},
	GroupCPG:      {geneColumn: "GENE"},
	GroupCPGX:     {geneColumn: "GENE"},
	GroupRSCU:     {geneColumn: "GENE"},
	GroupDRSCU:    {geneColumn: "GENE"},
	GroupSPLICEAI: {geneColumn: "GENE"},
}

// ParseGroup parses a metric-group name, case-insensitively.
func ParseGroup(s string) (Group, error) {
	g := Group(strings.ToUpper(s))
	if _, ok := groupSpecs[g]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidGroup, s)
	}
	return g, nil
}

// Record is one gene's constraint statistic within a metric group.
// NormScore is Score rescaled against the whole group distribution.
type Record struct {
	Gene      string  `json:"gene"`
	PValue    float64 `json:"pval"`
	FDR       float64 `json:"fdr"`
	Score     float64 `json:"symetric_score"`
	NormScore float64 `json:"norm_symetric_score"`
	Group     Group   `json:"group"`
}

// Normalizer loads metric-group constraint tables and rescales their raw
// statistic. It holds only file paths; every call reads its table fresh.
type Normalizer struct {
	paths      map[Group]string
	gnomadPath string
	logger     *zap.Logger
}

// New creates a Normalizer. paths maps each metric group to its
// constraint table; gnomadPath points at the gnomAD gene-constraint TSV
// (may be empty if unused).
func New(paths map[Group]string, gnomadPath string) *Normalizer {
	return &Normalizer{paths: paths, gnomadPath: gnomadPath, logger: zap.NewNop()}
}

// SetLogger sets the logger for file-boundary failures.
func (n *Normalizer) SetLogger(l *zap.Logger) {
	n.logger = l
}

// Normalize loads the whole table for the group, fits a zero-mean /
// unit-variance transform over the raw statistic column across all rows,
// then reads off the scaled value for the requested gene. Fitting before
// filtering is required: the scaling parameters depend on the full
// distribution.
func (n *Normalizer) Normalize(group Group, gene string) (*Record, error) {
	spec, ok := groupSpecs[group]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidGroup, group)
	}
	path, ok := n.paths[group]
	if !ok || path == "" {
		return nil, fmt.Errorf("no constraint table configured for group %s", group)
	}

	rows, err := readConstraintTable(path, spec.geneColumn)
	if err != nil {
		n.logger.Error("load constraint table failed",
			zap.String("group", string(group)),
			zap.String("path", path),
			zap.Error(err))
		return nil, fmt.Errorf("load constraint table for %s: %w", group, err)
	}

	zs := make([]float64, len(rows))
	for i, r := range rows {
		zs[i] = r.z
	}
	mean := stat.Mean(zs, nil)
	// Population SD: the scaled value of each row depends only on the
	// distribution itself, not on a sampling correction.
	sd := stat.PopStdDev(zs, nil)

	for _, r := range rows {
		if r.gene != gene {
			continue
		}
		norm := 0.0
		if sd > 0 {
			norm = (r.z - mean) / sd
		}
		return &Record{
			Gene:      r.gene,
			PValue:    r.pval,
			FDR:       r.fdr,
			Score:     r.z,
			NormScore: norm,
			Group:     group,
		}, nil
	}
	return nil, fmt.Errorf("%w: %s in group %s", ErrNotFound, gene, group)
}

type constraintRow struct {
	gene string
	pval float64
	fdr  float64
	z    float64
}

// readConstraintTable reads a whole constraint CSV. The gene column name
// varies per group and is canonicalized here; pval, fdr and z are common
// to all groups.
func readConstraintTable(path, geneColumn string) ([]constraintRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	required := []string{geneColumn, "pval", "fdr", "z"}
	for _, col := range required {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("missing column %q (header: %s)", col, strings.Join(header, ","))
		}
	}

	var rows []constraintRow
	for line := 2; ; line++ {
		fields, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		row := constraintRow{gene: fields[idx[geneColumn]]}
		for col, dst := range map[string]*float64{
			"pval": &row.pval, "fdr": &row.fdr, "z": &row.z,
		} {
			v, err := strconv.ParseFloat(fields[idx[col]], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: parse %s=%q: %w", line, col, fields[idx[col]], err)
			}
			*dst = v
		}
		rows = append(rows, row)
	}
	return rows, nil
}
