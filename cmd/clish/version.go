package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the clish version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("clish version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
