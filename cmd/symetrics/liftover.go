package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inodb/symetrics/internal/liftover"
	"github.com/inodb/symetrics/internal/store"
)

func newLiftoverCmd() *cobra.Command {
	var (
		chrom string
		pos   int64
		ref   string
		alt   string
		build string
	)

	cmd := &cobra.Command{
		Use:   "liftover",
		Short: "Translate a variant to the opposite genome build",
		Long: `Translate a variant's coordinates to the opposite genome build using the
synVep bridge table. Coverage is limited to positions present in that
table; positions outside it (e.g. intergenic) cannot be translated.`,
		Example: `  symetrics liftover --chrom 19 --pos 10305513 --ref G --alt T --build hg19`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseVariant(chrom, pos, ref, alt, build)
			if err != nil {
				return err
			}

			r := liftover.New(scoresDBPath())
			r.SetLogger(newLogger())

			out, err := r.Translate(v)
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("%s (%s) is not covered by the bridge table", v.ID(), v.Build)
			}
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}

	variantFlags(cmd, &chrom, &pos, &ref, &alt, &build)

	return cmd
}
