package store

import "fmt"

// tableLoad describes how one score table is bulk-loaded from its
// tab-separated release file via DuckDB's read_csv.
type tableLoad struct {
	table   string
	columns string // read_csv columns spec, in table column order
}

var loads = map[string]tableLoad{
	"SILVA": {
		table: "SILVA",
		columns: `{'#chrom': 'VARCHAR', 'pos': 'BIGINT', 'ref': 'VARCHAR', 'alt': 'VARCHAR',
			'gene': 'VARCHAR', '#RSCU': 'DOUBLE', 'dRSCU': 'DOUBLE', '#GERP++': 'DOUBLE',
			'#CpG?': 'DOUBLE', 'CpG_exon': 'DOUBLE'}`,
	},
	"SURF": {
		table: "SURF",
		columns: `{'CHR': 'VARCHAR', 'POS': 'BIGINT', 'REF': 'VARCHAR', 'ALT': 'VARCHAR',
			'GENE': 'VARCHAR', 'SURF': 'DOUBLE'}`,
	},
	"SYNVEP": {
		table: "SYNVEP",
		columns: `{'chr': 'VARCHAR', 'pos': 'BIGINT', 'pos_GRCh38': 'BIGINT', 'ref': 'VARCHAR',
			'alt': 'VARCHAR', 'HGNC_gene_symbol': 'VARCHAR', 'synVep': 'DOUBLE'}`,
	},
	"SPLICEAI": {
		table: "SPLICEAI",
		columns: `{'chr': 'VARCHAR', 'pos': 'BIGINT', 'ref': 'VARCHAR', 'alt': 'VARCHAR',
			'INFO': 'VARCHAR'}`,
	},
	"gnomad_db": {
		table: "gnomad_db",
		columns: `{'chr': 'VARCHAR', 'pos': 'BIGINT', 'ref': 'VARCHAR', 'alt': 'VARCHAR',
			'AC': 'BIGINT', 'AN': 'BIGINT', 'AF': 'DOUBLE'}`,
	},
}

// LoadTable bulk-loads a tab-separated score file into the named table,
// replacing any existing rows (idempotent reload). The file may be
// gzipped; read_csv detects that from the extension.
func (s *Store) LoadTable(table, tsvPath string) error {
	ld, ok := loads[table]
	if !ok {
		return fmt.Errorf("no loader for table %q", table)
	}

	if _, err := s.db.Exec("DELETE FROM " + QuoteIdent(ld.table)); err != nil {
		return fmt.Errorf("clear %s: %w", ld.table, err)
	}

	query := fmt.Sprintf(`INSERT INTO %s
		SELECT * FROM read_csv('%s', delim='\t', header=true, columns=%s)`,
		QuoteIdent(ld.table), tsvPath, ld.columns)
	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("loading %s from %s: %w", ld.table, tsvPath, err)
	}
	return nil
}

// LoadableTables returns the table names LoadTable accepts.
func LoadableTables() []string {
	return []string{"SILVA", "SURF", "SYNVEP", "SPLICEAI", "gnomad_db"}
}
