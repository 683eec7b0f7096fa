// Package main provides the symetrics command-line tool.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/inodb/symetrics/internal/constraint"
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Exit codes
const (
	ExitSuccess = 0
	ExitError   = 1
	ExitUsage   = 2
)

// errUsage marks flag and argument parse failures so they exit with
// ExitUsage instead of ExitError.
var errUsage = errors.New("usage error")

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		if errors.Is(err, errUsage) {
			return ExitUsage
		}
		return ExitError
	}
	return ExitSuccess
}

func newRootCmd() *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "symetrics",
		Short: "Resolve precomputed variant scores and gene constraint statistics",
		Long: `symetrics resolves per-variant annotation scores (conservation, splicing,
surface accessibility, synonymous-variant pathogenicity, allele frequency)
from precomputed score databases, lifts variant coordinates between hg19
and hg38 via the synVep bridge table, and normalizes per-gene constraint
statistics.`,
		Version:       fmt.Sprintf("%s (%s) built %s", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.symetrics.yaml)")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose logging")
	viper.BindPFlag("verbose", cmd.PersistentFlags().Lookup("verbose"))

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", errUsage, err)
	})
	cmd.PersistentPreRun = func(c *cobra.Command, args []string) {
		initConfig(cfgFile)
	}

	cmd.AddCommand(newScoreCmd())
	cmd.AddCommand(newLiftoverCmd())
	cmd.AddCommand(newConstraintCmd())
	cmd.AddCommand(newGnomadCmd())
	cmd.AddCommand(newLoadCmd())
	cmd.AddCommand(newConfigCmd())

	return cmd
}

func initConfig(cfgFile string) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
		viper.SetConfigName(".symetrics")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("SYMETRICS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// A missing config file is fine; paths can come from flags or env.
	viper.ReadInConfig()
}

// newLogger builds the logger injected into the resolvers.
func newLogger() *zap.Logger {
	if viper.GetBool("verbose") {
		if l, err := zap.NewDevelopment(); err == nil {
			return l
		}
	}
	return zap.NewNop()
}

func scoresDBPath() string {
	return viper.GetString("databases.symetrics")
}

func frequencyDBPath() string {
	return viper.GetString("databases.gnomad")
}

// constraintPaths reads the per-group constraint table paths from config.
// The "gnomad" key holds the gnomAD gene-constraint TSV and is returned
// separately.
func constraintPaths() (map[constraint.Group]string, string) {
	paths := make(map[constraint.Group]string)
	var gnomadPath string
	for key, path := range viper.GetStringMapString("constraints") {
		if strings.EqualFold(key, "gnomad") {
			gnomadPath = path
			continue
		}
		group, err := constraint.ParseGroup(key)
		if err != nil {
			continue
		}
		paths[group] = path
	}
	return paths, gnomadPath
}

func printJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
