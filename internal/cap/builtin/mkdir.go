package builtin

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/marcelocantos/clish/internal/cap"
)

type Mkdir struct{}

var _ cap.Capability = (*Mkdir)(nil)

func (m *Mkdir) Name() string        { return "mkdir" }
func (m *Mkdir) Description() string { return "create directories" }
func (m *Mkdir) Tier() cap.Tier      { return cap.TierWrite }

func (m *Mkdir) Validate(args []string) error {
	if len(operands(args)) == 0 {
		return fmt.Errorf("mkdir: missing operand")
	}
	return nil
}

func (m *Mkdir) Run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	parents := hasFlag(args, "-p")
	for _, dir := range operands(args) {
		path := cap.ResolvePath(ctx, dir)
		if parents {
			if err := os.MkdirAll(path, 0755); err != nil {
				return err
			}
			continue
		}
		if err := os.Mkdir(path, 0755); err != nil {
			return err
		}
	}
	return nil
}
