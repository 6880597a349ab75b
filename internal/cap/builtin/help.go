package builtin

import (
	"context"
	_ "embed"
	"io"

	"github.com/marcelocantos/clish/internal/cap"
)

//go:embed help.txt
var helpText string

type Help struct{}

var _ cap.Capability = (*Help)(nil)

func (h *Help) Name() string        { return "help" }
func (h *Help) Description() string { return "show available commands and syntax" }
func (h *Help) Tier() cap.Tier      { return cap.TierRead }

func (h *Help) Validate(args []string) error { return nil }

func (h *Help) Run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	_, err := io.WriteString(stdout, helpText)
	return err
}
