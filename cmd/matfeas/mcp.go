package main

import (
	"github.com/spf13/cobra"

	mcpAdapter "github.com/telluric-labs/matfeas/pkg/adapters/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server on stdio",
	Long:  `Exposes the feasibility engine to LLM agents over the Model Context Protocol (stdio transport).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		debug, _ := cmd.Flags().GetBool("debug")

		logger := createLogger(debug)
		engine, err := buildEngine(cmd, logger)
		if err != nil {
			return err
		}

		return mcpAdapter.NewServer(engine).ServeStdio()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
