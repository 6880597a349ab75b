package builtin

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/marcelocantos/clish/internal/cap"
)

type Cd struct{}

var _ cap.Capability = (*Cd)(nil)

func (c *Cd) Name() string        { return "cd" }
func (c *Cd) Description() string { return "change the current working directory" }
func (c *Cd) Tier() cap.Tier      { return cap.TierRead }

func (c *Cd) Validate(args []string) error { return nil }

func (c *Cd) Run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	wd, ok := cap.WorkdirFromContext(ctx)
	if !ok {
		return fmt.Errorf("cd: no session working directory")
	}

	var operand, target string
	if len(args) == 0 {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("cd: could not determine home directory")
		}
		operand, target = home, home
	} else {
		operand = args[0]
		target = wd.Resolve(args[0])
	}

	info, err := os.Stat(target)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("cd: %s: no such file or directory", operand)
		}
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("cd: %s: not a directory", operand)
	}

	wd.Set(target)
	return nil
}
