package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/telluric-labs/matfeas/internal/presentation/tui"
	"github.com/telluric-labs/matfeas/pkg/domain"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate <formula> [formula...]",
	Short: "Evaluate the synthesizability of one or more formulas",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		debug, _ := cmd.Flags().GetBool("debug")
		jsonMode, _ := cmd.Flags().GetBool("json")
		plain, _ := cmd.Flags().GetBool("plain")

		logger := createLogger(debug)
		engine, err := buildEngine(cmd, logger)
		if err != nil {
			return err
		}

		// Render through glamour only on a real terminal.
		interactive := !plain && term.IsTerminal(int(os.Stdout.Fd()))
		var render func(string) (string, error)
		if interactive {
			render = tui.NewRenderer()
		}

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		var failed bool
		for _, formula := range args {
			result, err := engine.Evaluate(cmd.Context(), formula)
			if err != nil {
				if errors.Is(err, domain.ErrParse) {
					fmt.Fprintf(os.Stderr, "%s: %v\n", formula, err)
					failed = true
					continue
				}
				return err
			}

			if jsonMode {
				if err := encoder.Encode(result); err != nil {
					return err
				}
				continue
			}

			report := tui.BuildReport(result)
			if render != nil {
				if out, err := render(report); err == nil {
					report = out
				}
			}
			fmt.Print(report)
		}

		if failed {
			return fmt.Errorf("some formulas could not be parsed")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(evaluateCmd)
	evaluateCmd.Flags().Bool("json", false, "Emit raw JSON results instead of a rendered report")
	evaluateCmd.Flags().Bool("plain", false, "Disable terminal rendering even on a TTY")
}
