package builtin

import (
	"context"
	"io"
	"os"

	"github.com/marcelocantos/clish/internal/cap"
)

type Cat struct{}

var _ cap.Capability = (*Cat)(nil)

func (c *Cat) Name() string        { return "cat" }
func (c *Cat) Description() string { return "concatenate and display files" }
func (c *Cat) Tier() cap.Tier      { return cap.TierRead }

func (c *Cat) Validate(args []string) error { return nil }

func (c *Cat) Run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	// With no arguments cat copies its input stream.
	if len(args) == 0 {
		_, err := io.Copy(stdout, stdin)
		return err
	}
	for _, file := range operands(args) {
		data, err := os.ReadFile(cap.ResolvePath(ctx, file))
		if err != nil {
			return err
		}
		if _, err := stdout.Write(data); err != nil {
			return err
		}
	}
	return nil
}
