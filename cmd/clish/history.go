package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/marcelocantos/clish/internal/history"
)

var historyTailN int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect the hash-chained command history log",
}

var historyVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check the history log's hash chain integrity",
	Run: func(cmd *cobra.Command, args []string) {
		if err := history.Verify(historyPath()); err != nil {
			fmt.Fprintf(os.Stderr, "history verification FAILED: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("history log integrity verified")
	},
}

var historyTailCmd = &cobra.Command{
	Use:   "tail",
	Short: "Show the most recent history entries",
	Run: func(cmd *cobra.Command, args []string) {
		entries, err := history.Tail(historyPath(), historyTailN)
		if err != nil {
			fmt.Fprintf(os.Stderr, "clish history: %v\n", err)
			os.Exit(1)
		}
		if len(entries) == 0 {
			fmt.Println("no history entries")
			return
		}
		for _, e := range entries {
			data, _ := json.MarshalIndent(e, "", "  ")
			fmt.Printf("%s\n", data)
		}
	},
}

func historyPath() string {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "clish: config: %v\n", err)
		os.Exit(1)
	}
	return cfg.History.Path
}

func init() {
	historyTailCmd.Flags().IntVarP(&historyTailN, "lines", "n", 20, "number of entries to show")
	historyCmd.AddCommand(historyVerifyCmd, historyTailCmd)
	rootCmd.AddCommand(historyCmd)
}
