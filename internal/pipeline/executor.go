package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/marcelocantos/clish/internal/cap"
)

// catName is the pass-through stage. A bare cat in a pipeline is not
// dispatched; the previous stage's text simply becomes its output.
const catName = "cat"

// Run executes one raw input line: a pipeline, a command with an output
// redirect, or a plain command. Command output is captured per stage and
// only the executor writes to stdout, so a redirected or piped-over
// stage never leaks text to the screen.
func Run(ctx context.Context, reg *cap.Registry, line string, stdin io.Reader, stdout io.Writer) error {
	if HasPipe(line) {
		return runPipeline(ctx, reg, line, stdin, stdout)
	}

	text, redir, err := ParseRedirect(line)
	if err != nil {
		return err
	}
	out, err := runStage(ctx, reg, text, stdin)
	if err != nil {
		return err
	}
	if redir != nil {
		return writeRedirect(ctx, redir, out)
	}
	_, err = io.WriteString(stdout, out)
	return err
}

// runPipeline executes stages strictly in order: a stage never starts
// before the previous one has returned. Only a bare cat consumes the
// previous stage's text; every other stage discards it and runs as if
// invoked alone. A failing stage aborts the rest of the pipeline, but
// side effects of earlier stages persist. The final stage's text is
// written to stdout as is.
func runPipeline(ctx context.Context, reg *cap.Registry, line string, stdin io.Reader, stdout io.Writer) error {
	segments, err := SplitPipeline(line)
	if err != nil {
		return err
	}

	out, err := runStage(ctx, reg, segments[0], stdin)
	if err != nil {
		return err
	}
	for _, seg := range segments[1:] {
		name, args := Tokenize(seg)
		if name == catName && len(args) == 0 {
			continue
		}
		out, err = runStage(ctx, reg, seg, stdin)
		if err != nil {
			return err
		}
	}
	_, err = io.WriteString(stdout, out)
	return err
}

// runStage dispatches one command text and captures its output. Empty
// text yields empty output without any dispatch, so a bare redirect
// still creates its target file.
func runStage(ctx context.Context, reg *cap.Registry, text string, stdin io.Reader) (string, error) {
	name, args := Tokenize(text)
	if name == "" {
		return "", nil
	}

	c, err := reg.Lookup(name)
	if err != nil {
		return "", err
	}
	if err := reg.CheckTier(c.Tier()); err != nil {
		return "", fmt.Errorf("%s: %w", name, err)
	}
	if err := reg.CheckRules(name, args); err != nil {
		return "", err
	}
	if err := c.Validate(args); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := c.Run(ctx, args, stdin, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// writeRedirect writes the captured text to the redirect target,
// resolved against the session working directory.
func writeRedirect(ctx context.Context, r *Redirect, text string) error {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if r.Mode == Append {
		flags = os.O_WRONLY | os.O_CREATE | os.O_APPEND
	}
	f, err := os.OpenFile(cap.ResolvePath(ctx, r.Target), flags, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = io.WriteString(f, text)
	return err
}
