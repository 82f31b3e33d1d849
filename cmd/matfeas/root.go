package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/telluric-labs/matfeas"
	"github.com/telluric-labs/matfeas/internal/logging"
	"github.com/telluric-labs/matfeas/pkg/adapters/matsim"
	"github.com/telluric-labs/matfeas/pkg/adapters/subst"
)

var rootCmd = &cobra.Command{
	Use:   "matfeas",
	Short: "matfeas grades the synthesizability of hypothetical inorganic compounds",
	Long: `matfeas is a feasibility triage engine: given a chemical formula with no
authoritative database record, it runs symbolic chemistry gates, synthesizes a
prototype structure, estimates its formation energy and places it on the
convex hull, producing a graded verdict with an auditable decision trail.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("oracle-url", "", "Base URL of the materials-simulation sidecar (energy + hull)")
	rootCmd.PersistentFlags().String("catalog", "", "YAML overlay for the competing-phase catalog")
	rootCmd.PersistentFlags().String("substitutions", "", "YAML overlay for the substitution likelihood table")
}

// createLogger configures the application logger. In debug mode it writes
// to Stderr so Stdout stays clean for reports and JSON.
func createLogger(debug bool) *slog.Logger {
	if debug {
		return logging.New(slog.LevelDebug)
	}
	return logging.NewNop()
}

// buildEngine assembles the engine from the shared flags.
func buildEngine(cmd *cobra.Command, logger *slog.Logger, extra ...matfeas.Option) (*matfeas.Engine, error) {
	oracleURL, _ := cmd.Flags().GetString("oracle-url")
	catalogPath, _ := cmd.Flags().GetString("catalog")
	substPath, _ := cmd.Flags().GetString("substitutions")

	opts := []matfeas.Option{matfeas.WithLogger(logger)}

	if catalogPath != "" {
		opts = append(opts, matfeas.WithCatalogOverlay(catalogPath))
	}

	if substPath != "" {
		model, err := subst.FromFile(substPath)
		if err != nil {
			return nil, err
		}
		opts = append(opts, matfeas.WithSubstitutionModel(model))
	} else {
		opts = append(opts, matfeas.WithSubstitutionModel(subst.Builtin()))
	}

	if oracleURL != "" {
		client := matsim.New(oracleURL)
		opts = append(opts,
			matfeas.WithEnergyPredictor(client),
			matfeas.WithHullCalculator(client),
		)
	}

	opts = append(opts, extra...)
	return matfeas.New(opts...)
}
