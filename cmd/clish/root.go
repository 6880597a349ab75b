package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/marcelocantos/clish/internal/cap"
	"github.com/marcelocantos/clish/internal/cap/builtin"
	"github.com/marcelocantos/clish/internal/config"
	"github.com/marcelocantos/clish/internal/history"
	"github.com/marcelocantos/clish/internal/shell"
)

var version = "dev"

var (
	configPath string
	oneShot    string
)

var rootCmd = &cobra.Command{
	Use:   "clish",
	Short: "clish is a minimal interactive command shell",
	Long: `clish reads one line at a time and dispatches it to built-in file and
directory commands, with output redirection (>, >>) and single-pipe
chaining (|). Type 'help' at the prompt for the command list.`,
	Run: func(cmd *cobra.Command, args []string) {
		runShell()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/clish/config.yaml)")
	rootCmd.Flags().StringVarP(&oneShot, "command", "c", "", "execute one line and exit")
}

func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFrom(configPath)
	}
	return config.Load()
}

// setup loads the config and builds the registry and session workdir
// shared by the shell, one-shot and mcp paths.
func setup() (*config.Config, *cap.Registry, *cap.Workdir, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}

	reg := cap.NewRegistry()
	builtin.RegisterAll(reg)
	cfg.ApplyTiers(reg)
	if err := cfg.ApplyRules(reg); err != nil {
		return nil, nil, nil, err
	}

	cwd, err := os.Getwd()
	if err != nil {
		cwd = "/"
	}
	return cfg, reg, cap.NewWorkdir(cwd), nil
}

// openHistory builds the history logger, or nil when disabled or broken.
func openHistory(cfg *config.Config) *history.Logger {
	if cfg.History.Disabled {
		return nil
	}
	logger, err := history.NewLogger(cfg.History.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "clish: history: %v\n", err)
		// Continue without history logging.
		return nil
	}
	return logger
}

func runShell() {
	cfg, reg, wd, err := setup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "clish: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sh := &shell.Shell{
		Registry:    reg,
		Workdir:     wd,
		In:          os.Stdin,
		Out:         os.Stdout,
		Err:         os.Stderr,
		History:     openHistory(cfg),
		Version:     version,
		Interactive: term.IsTerminal(int(os.Stdin.Fd())),
	}

	if oneShot != "" {
		if err := sh.Execute(ctx, strings.TrimSpace(oneShot), os.Stdin); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := sh.Run(ctx); err != nil && ctx.Err() == nil {
		fmt.Fprintf(os.Stderr, "clish: %v\n", err)
		os.Exit(1)
	}
}
