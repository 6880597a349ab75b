package builtin

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/marcelocantos/clish/internal/cap"
)

type Echo struct{}

var _ cap.Capability = (*Echo)(nil)

func (e *Echo) Name() string        { return "echo" }
func (e *Echo) Description() string { return "display a line of text" }
func (e *Echo) Tier() cap.Tier      { return cap.TierRead }

func (e *Echo) Validate(args []string) error { return nil }

func (e *Echo) Run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	fmt.Fprintln(stdout, strings.Join(args, " "))
	return nil
}
