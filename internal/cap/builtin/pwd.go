package builtin

import (
	"context"
	"fmt"
	"io"

	"github.com/marcelocantos/clish/internal/cap"
)

type Pwd struct{}

var _ cap.Capability = (*Pwd)(nil)

func (p *Pwd) Name() string        { return "pwd" }
func (p *Pwd) Description() string { return "print the current working directory" }
func (p *Pwd) Tier() cap.Tier      { return cap.TierRead }

func (p *Pwd) Validate(args []string) error { return nil }

func (p *Pwd) Run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	fmt.Fprintln(stdout, cap.WorkingDir(ctx))
	return nil
}
