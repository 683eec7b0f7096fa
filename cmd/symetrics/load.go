package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/inodb/symetrics/internal/store"
)

func newLoadCmd() *cobra.Command {
	var (
		table  string
		input  string
		dbPath string
	)

	cmd := &cobra.Command{
		Use:   "load",
		Short: "Bulk-load a score table from its tab-separated release file",
		Long: `Load one of the score tables (SILVA, SURF, SYNVEP, SPLICEAI, gnomad_db)
from its tab-separated release file into the configured database,
replacing any existing rows. gnomad_db goes into the gnomAD database,
everything else into the symetrics database.`,
		Example: `  symetrics load --table SURF --input surf_scores.tsv
  symetrics load --table gnomad_db --input gnomad.tsv.gz`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			isFrequency := strings.EqualFold(table, "gnomad_db")

			path := dbPath
			if path == "" {
				if isFrequency {
					path = frequencyDBPath()
				} else {
					path = scoresDBPath()
				}
			}
			if path == "" {
				key := "databases.symetrics"
				if isFrequency {
					key = "databases.gnomad"
				}
				return fmt.Errorf("no database configured; set %s or pass --db", key)
			}

			s, err := store.Open(path)
			if err != nil {
				return err
			}
			defer s.Close()

			if isFrequency {
				err = s.EnsureFrequencySchema()
			} else {
				err = s.EnsureScoreSchema()
			}
			if err != nil {
				return err
			}

			if err := s.LoadTable(table, input); err != nil {
				return err
			}

			n, err := s.RowCount(table)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Loaded %d rows into %s (%s)\n", n, table, path)
			return nil
		},
	}

	cmd.Flags().StringVar(&table, "table", "", "table to load: "+strings.Join(store.LoadableTables(), ", "))
	cmd.Flags().StringVarP(&input, "input", "i", "", "tab-separated input file (may be gzipped)")
	cmd.Flags().StringVar(&dbPath, "db", "", "database path (default: from config)")
	cmd.MarkFlagRequired("table")
	cmd.MarkFlagRequired("input")

	return cmd
}
