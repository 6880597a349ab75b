package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// Banner writes the startup banner. Colors degrade to plain text when
// the terminal has no color support.
func Banner(w io.Writer, version string) {
	p := termenv.ColorProfile()
	name := termenv.String("clish").Foreground(p.Color("#34d399")).Bold()
	fmt.Fprintf(w, "%s %s\n", name, version)
	fmt.Fprintln(w, "A small interactive shell for everyday file work")
	fmt.Fprintln(w, "Type 'help' for available commands, 'exit' to quit")
	fmt.Fprintln(w)
}

// Prompt renders the prompt for the current working directory.
func Prompt(cwd string) string {
	p := termenv.ColorProfile()
	dir := termenv.String(cwd).Foreground(p.Color("#818cf8"))
	return fmt.Sprintf("%s> ", dir)
}
