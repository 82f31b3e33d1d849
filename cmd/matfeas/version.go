package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/telluric-labs/matfeas"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("matfeas version %s\n", strings.TrimSpace(matfeas.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
