package pipeline

import (
	"fmt"
	"strings"
)

// HasPipe reports whether a raw line takes the pipeline path. Pipe
// detection runs before redirection parsing, so > and >> inside a piped
// line are never extracted and reach the stage commands as plain tokens.
func HasPipe(line string) bool {
	return strings.Contains(line, OpPipe)
}

// ParseRedirect splits a pipe-free line into command text and an optional
// output redirect. >> is matched before > so an append never half-parses
// as an overwrite. The command text may be empty; a bare redirect still
// creates its target file. A missing target is a syntax error.
func ParseRedirect(line string) (string, *Redirect, error) {
	op := ""
	mode := Overwrite
	if strings.Contains(line, OpAppend) {
		op = OpAppend
		mode = Append
	} else if strings.Contains(line, OpOverwrite) {
		op = OpOverwrite
	}
	if op == "" {
		return strings.TrimSpace(line), nil, nil
	}

	cmd, target, _ := strings.Cut(line, op)
	target = strings.TrimSpace(target)
	if target == "" {
		return "", nil, fmt.Errorf("%s requires a file path", op)
	}
	return strings.TrimSpace(cmd), &Redirect{Target: target, Mode: mode}, nil
}

// SplitPipeline splits a raw line on every pipe into trimmed stage texts.
// A pipeline needs at least two stages and no stage may be empty.
func SplitPipeline(line string) ([]string, error) {
	parts := strings.Split(line, OpPipe)
	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		seg := strings.TrimSpace(part)
		if seg == "" {
			return nil, fmt.Errorf("empty pipeline segment")
		}
		segments = append(segments, seg)
	}
	if len(segments) < 2 {
		return nil, fmt.Errorf("invalid pipe syntax")
	}
	return segments, nil
}

// Tokenize splits a command text on whitespace into a name and its
// arguments. Empty text yields an empty name.
func Tokenize(text string) (string, []string) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return "", nil
	}
	return fields[0], fields[1:]
}

// CommandNames extracts the command name of every stage in a raw line.
// It is used for history records and never fails; lines the executor
// would reject just yield whatever names are recognizable.
func CommandNames(line string) []string {
	if HasPipe(line) {
		var names []string
		for _, part := range strings.Split(line, OpPipe) {
			if name, _ := Tokenize(part); name != "" {
				names = append(names, name)
			}
		}
		return names
	}
	text, _, err := ParseRedirect(line)
	if err != nil {
		text = line
	}
	if name, _ := Tokenize(text); name != "" {
		return []string{name}
	}
	return nil
}
