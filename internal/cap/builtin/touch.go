package builtin

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/marcelocantos/clish/internal/cap"
)

type Touch struct{}

var _ cap.Capability = (*Touch)(nil)

func (t *Touch) Name() string        { return "touch" }
func (t *Touch) Description() string { return "create empty files" }
func (t *Touch) Tier() cap.Tier      { return cap.TierWrite }

func (t *Touch) Validate(args []string) error {
	if len(operands(args)) == 0 {
		return fmt.Errorf("touch: missing operand")
	}
	return nil
}

func (t *Touch) Run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	for _, file := range operands(args) {
		path := cap.ResolvePath(ctx, file)
		// Existing files are left as they are, contents and timestamps both.
		if _, err := os.Stat(path); err == nil {
			continue
		} else if !os.IsNotExist(err) {
			return err
		}
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		f.Close()
	}
	return nil
}
