package builtin

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/marcelocantos/clish/internal/cap"
)

type Ls struct{}

var _ cap.Capability = (*Ls)(nil)

func (l *Ls) Name() string        { return "ls" }
func (l *Ls) Description() string { return "list directory contents" }
func (l *Ls) Tier() cap.Tier      { return cap.TierRead }

func (l *Ls) Validate(args []string) error { return nil }

func (l *Ls) Run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	showAll := hasFlag(args, "-a")
	long := hasFlag(args, "-l")

	dir := "."
	if ops := operands(args); len(ops) > 0 {
		dir = ops[0]
	}

	// ReadDir returns entries sorted by name.
	entries, err := os.ReadDir(cap.ResolvePath(ctx, dir))
	if err != nil {
		return err
	}

	for _, entry := range entries {
		name := entry.Name()
		if !showAll && strings.HasPrefix(name, ".") {
			continue
		}
		if long {
			info, err := entry.Info()
			if err != nil {
				return err
			}
			kind := "-"
			if entry.IsDir() {
				kind = "d"
			}
			fmt.Fprintf(stdout, "%s %10d %s\n", kind, info.Size(), name)
		} else {
			fmt.Fprintln(stdout, name)
		}
	}
	return nil
}
