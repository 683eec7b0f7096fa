package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inodb/symetrics/internal/score"
	"github.com/inodb/symetrics/internal/store"
	"github.com/inodb/symetrics/internal/variant"
)

// variantFlags registers the shared variant-identity flags.
func variantFlags(cmd *cobra.Command, chrom *string, pos *int64, ref, alt, build *string) {
	cmd.Flags().StringVar(chrom, "chrom", "", "chromosome (e.g. 7, X)")
	cmd.Flags().Int64Var(pos, "pos", 0, "1-based position")
	cmd.Flags().StringVar(ref, "ref", "", "reference allele")
	cmd.Flags().StringVar(alt, "alt", "", "alternate allele")
	cmd.Flags().StringVar(build, "build", "", "genome build: hg19 or hg38")
	for _, f := range []string{"chrom", "pos", "ref", "alt", "build"} {
		cmd.MarkFlagRequired(f)
	}
}

func parseVariant(chrom string, pos int64, ref, alt, build string) (variant.Variant, error) {
	b, err := variant.ParseGenomeBuild(build)
	if err != nil {
		return variant.Variant{}, err
	}
	return variant.Variant{Chrom: chrom, Pos: pos, Ref: ref, Alt: alt, Build: b}, nil
}

func newScoreCmd() *cobra.Command {
	var (
		source string
		chrom  string
		pos    int64
		ref    string
		alt    string
		build  string
	)

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Look up a variant's scores in one table family",
		Example: `  symetrics score --source silva --chrom 19 --pos 10305513 --ref G --alt T --build hg19
  symetrics score --source spliceai --chrom 7 --pos 91763673 --ref C --alt A --build hg38
  symetrics score --source gnomad --chrom 19 --pos 10194837 --ref G --alt T --build hg38`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			family, err := score.ParseFamily(source)
			if err != nil {
				return err
			}
			v, err := parseVariant(chrom, pos, ref, alt, build)
			if err != nil {
				return err
			}

			r := score.NewResolver(scoresDBPath(), frequencyDBPath())
			r.SetLogger(newLogger())

			rec, err := r.Resolve(family, v)
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("no %s scores for %s (%s)", family, v.ID(), v.Build)
			}
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), rec)
		},
	}

	cmd.Flags().StringVarP(&source, "source", "s", "", "score family: silva, surf, synvep, spliceai, gnomad")
	cmd.MarkFlagRequired("source")
	variantFlags(cmd, &chrom, &pos, &ref, &alt, &build)

	return cmd
}
