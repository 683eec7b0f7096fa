package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inodb/symetrics/internal/constraint"
)

func newConstraintCmd() *cobra.Command {
	var (
		group string
		gene  string
	)

	cmd := &cobra.Command{
		Use:   "constraint",
		Short: "Normalize a gene's constraint statistic for one metric group",
		Long: `Load a metric group's constraint table, rescale its raw statistic to zero
mean and unit variance over the whole group, and report the requested
gene's row. The table paths come from the constraints section of the
config file.`,
		Example: `  symetrics constraint --group SYNVEP --gene DNMT1
  symetrics constraint --group GERP --gene TP53`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := constraint.ParseGroup(group)
			if err != nil {
				return err
			}

			paths, gnomadPath := constraintPaths()
			n := constraint.New(paths, gnomadPath)
			n.SetLogger(newLogger())

			rec, err := n.Normalize(g, gene)
			if errors.Is(err, constraint.ErrNotFound) {
				return fmt.Errorf("gene %s has no row in the %s constraint table", gene, g)
			}
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), rec)
		},
	}

	cmd.Flags().StringVarP(&group, "group", "g", "", "metric group (SYNVEP, SURF, GERP, CPG, CPGX, RSCU, DRSCU, SPLICEAI)")
	cmd.Flags().StringVar(&gene, "gene", "", "HGNC gene symbol")
	cmd.MarkFlagRequired("group")
	cmd.MarkFlagRequired("gene")

	return cmd
}

func newGnomadCmd() *cobra.Command {
	var gene string

	cmd := &cobra.Command{
		Use:     "gnomad",
		Short:   "Show gnomAD gene constraints (syn_z, mis_z, lof_z, pLI)",
		Example: `  symetrics gnomad --gene DNMT1`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, gnomadPath := constraintPaths()
			n := constraint.New(paths, gnomadPath)
			n.SetLogger(newLogger())

			recs, err := n.GnomadConstraints(gene)
			if errors.Is(err, constraint.ErrNotFound) {
				return fmt.Errorf("gene %s has no gnomAD constraint rows", gene)
			}
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), recs)
		},
	}

	cmd.Flags().StringVar(&gene, "gene", "", "HGNC gene symbol")
	cmd.MarkFlagRequired("gene")

	return cmd
}
