package builtin

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/marcelocantos/clish/internal/cap"
)

type Rmdir struct{}

var _ cap.Capability = (*Rmdir)(nil)

func (r *Rmdir) Name() string        { return "rmdir" }
func (r *Rmdir) Description() string { return "remove empty directories" }
func (r *Rmdir) Tier() cap.Tier      { return cap.TierWrite }

func (r *Rmdir) Validate(args []string) error {
	if len(operands(args)) == 0 {
		return fmt.Errorf("rmdir: missing operand")
	}
	return nil
}

func (r *Rmdir) Run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	for _, dir := range operands(args) {
		path := cap.ResolvePath(ctx, dir)
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				return fmt.Errorf("rmdir: %s: no such file or directory", dir)
			}
			return err
		}
		if !info.IsDir() {
			return fmt.Errorf("rmdir: %s: not a directory", dir)
		}
		// Remove refuses non-empty directories.
		if err := os.Remove(path); err != nil {
			return err
		}
	}
	return nil
}
