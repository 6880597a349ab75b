package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mcpserver "github.com/marcelocantos/clish/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the shell as a Model Context Protocol server",
	Long: `Starts clish as an MCP server on stdio. Agents run the builtin
commands as tools through the same tiers, rules and validation as the
interactive prompt, against one persistent session working directory.`,
	Run: func(cmd *cobra.Command, args []string) {
		_, reg, wd, err := setup()
		if err != nil {
			fmt.Fprintf(os.Stderr, "clish: %v\n", err)
			os.Exit(1)
		}
		if err := mcpserver.NewServer(reg, wd, version).ServeStdio(); err != nil {
			fmt.Fprintf(os.Stderr, "clish mcp: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
