package builtin

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/marcelocantos/clish/internal/cap"
)

type Rm struct{}

var _ cap.Capability = (*Rm)(nil)

func (r *Rm) Name() string        { return "rm" }
func (r *Rm) Description() string { return "remove files or directories (dangerous)" }
func (r *Rm) Tier() cap.Tier      { return cap.TierDangerous }

func (r *Rm) Validate(args []string) error {
	if len(operands(args)) == 0 {
		return fmt.Errorf("rm: missing operand")
	}
	return nil
}

func (r *Rm) Run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	recursive := hasFlag(args, "-r") || hasFlag(args, "-R")
	for _, target := range operands(args) {
		path := cap.ResolvePath(ctx, target)
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				return fmt.Errorf("rm: %s: no such file or directory", target)
			}
			return err
		}
		if info.IsDir() {
			if !recursive {
				return fmt.Errorf("rm: %s: is a directory", target)
			}
			if err := os.RemoveAll(path); err != nil {
				return err
			}
			continue
		}
		if err := os.Remove(path); err != nil {
			return err
		}
	}
	return nil
}
