package store

import "fmt"

// The score tables keep the column names of the upstream release files,
// including the awkward ones ("#GERP++", "#CpG?"), so that a database
// built elsewhere from the same files stays queryable.
var scoreSchema = []string{
	`CREATE TABLE IF NOT EXISTS SILVA (
		"#chrom" VARCHAR,
		pos BIGINT,
		ref VARCHAR,
		alt VARCHAR,
		gene VARCHAR,
		"#RSCU" DOUBLE,
		dRSCU DOUBLE,
		"#GERP++" DOUBLE,
		"#CpG?" DOUBLE,
		CpG_exon DOUBLE
	)`,
	`CREATE TABLE IF NOT EXISTS SURF (
		CHR VARCHAR,
		POS BIGINT,
		REF VARCHAR,
		ALT VARCHAR,
		GENE VARCHAR,
		SURF DOUBLE
	)`,
	`CREATE TABLE IF NOT EXISTS SYNVEP (
		chr VARCHAR,
		pos BIGINT,
		pos_GRCh38 BIGINT,
		ref VARCHAR,
		alt VARCHAR,
		HGNC_gene_symbol VARCHAR,
		synVep DOUBLE
	)`,
	`CREATE TABLE IF NOT EXISTS SPLICEAI (
		chr VARCHAR,
		pos BIGINT,
		ref VARCHAR,
		alt VARCHAR,
		INFO VARCHAR
	)`,
}

var scoreIndexes = []string{
	`CREATE INDEX IF NOT EXISTS idx_silva_lookup ON SILVA ("#chrom", pos, ref, alt)`,
	`CREATE INDEX IF NOT EXISTS idx_surf_lookup ON SURF (CHR, POS, REF, ALT)`,
	`CREATE INDEX IF NOT EXISTS idx_synvep_hg19 ON SYNVEP (chr, pos, ref, alt)`,
	`CREATE INDEX IF NOT EXISTS idx_synvep_hg38 ON SYNVEP (chr, pos_GRCh38, ref, alt)`,
	`CREATE INDEX IF NOT EXISTS idx_spliceai_lookup ON SPLICEAI (chr, pos, ref, alt)`,
}

var frequencySchema = []string{
	`CREATE TABLE IF NOT EXISTS gnomad_db (
		chr VARCHAR,
		pos BIGINT,
		ref VARCHAR,
		alt VARCHAR,
		AC BIGINT,
		AN BIGINT,
		AF DOUBLE
	)`,
}

var frequencyIndexes = []string{
	`CREATE INDEX IF NOT EXISTS idx_gnomad_lookup ON gnomad_db (chr, pos, ref, alt)`,
}

// EnsureScoreSchema creates the SILVA, SURF, SYNVEP and SPLICEAI tables
// if they don't exist.
func (s *Store) EnsureScoreSchema() error {
	return s.ensure(scoreSchema, scoreIndexes)
}

// EnsureFrequencySchema creates the gnomAD allele-frequency table if it
// doesn't exist.
func (s *Store) EnsureFrequencySchema() error {
	return s.ensure(frequencySchema, frequencyIndexes)
}

func (s *Store) ensure(tables, indexes []string) error {
	for _, stmt := range tables {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	for _, stmt := range indexes {
		// Index creation is best-effort; lookups stay correct without it.
		s.db.Exec(stmt)
	}
	return nil
}
