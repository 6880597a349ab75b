package builtin

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/marcelocantos/clish/internal/cap"
)

type Mv struct{}

var _ cap.Capability = (*Mv)(nil)

func (m *Mv) Name() string        { return "mv" }
func (m *Mv) Description() string { return "move or rename files and directories" }
func (m *Mv) Tier() cap.Tier      { return cap.TierWrite }

func (m *Mv) Validate(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("mv: missing destination file operand")
	}
	return nil
}

func (m *Mv) Run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	src := cap.ResolvePath(ctx, args[0])
	dst := cap.ResolvePath(ctx, args[1])
	return os.Rename(src, dst)
}
