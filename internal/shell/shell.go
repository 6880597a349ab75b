package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/marcelocantos/clish/internal/cap"
	"github.com/marcelocantos/clish/internal/history"
	"github.com/marcelocantos/clish/internal/pipeline"
	"github.com/marcelocantos/clish/internal/tui"
)

// Shell is the read-eval-print loop. Streams are injected so tests can
// script a whole session; Interactive controls the banner and prompt.
// Registry, Workdir, In, Out and Err must all be set.
type Shell struct {
	Registry    *cap.Registry
	Workdir     *cap.Workdir
	In          io.Reader
	Out         io.Writer
	Err         io.Writer
	History     *history.Logger // optional; recording is best effort
	Version     string
	Interactive bool
}

// Run reads and executes lines until the exit sentinel or end of input.
// Command errors are reported on the error stream and never stop the
// loop; only a read failure on the input stream is returned.
func (s *Shell) Run(ctx context.Context) error {
	if s.Interactive {
		tui.Banner(s.Out, s.Version)
	}

	r := bufio.NewReader(s.In)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.Interactive {
			fmt.Fprint(s.Out, tui.Prompt(s.Workdir.Path()))
		}

		line, err := r.ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}
		atEOF := err == io.EOF

		line = strings.TrimSpace(line)
		switch line {
		case "":
			// Blank line: nothing to do.
		case "exit", "quit":
			// The sentinels are handled here and never dispatched.
			fmt.Fprintln(s.Out, "Goodbye!")
			return nil
		default:
			if err := s.Execute(ctx, line, r); err != nil {
				fmt.Fprintf(s.Err, "Error: %v\n", err)
			}
		}

		if atEOF {
			if s.Interactive {
				fmt.Fprintln(s.Out)
			}
			return nil
		}
	}
}

// Execute runs one trimmed input line through the executor and records
// it in the history log. The returned error is the command's own
// failure; callers decide how to report it.
func (s *Shell) Execute(ctx context.Context, line string, stdin io.Reader) error {
	ctx = cap.NewContext(ctx, s.Workdir)
	start := time.Now()
	err := pipeline.Run(ctx, s.Registry, line, stdin, s.Out)
	s.record(line, err, time.Since(start))
	return err
}

func (s *Shell) record(line string, err error, duration time.Duration) {
	if s.History == nil {
		return
	}
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	// Best-effort history logging; a failure never breaks the command.
	_ = s.History.Record(line, pipeline.CommandNames(line), errMsg, duration, s.Workdir.Path())
}
