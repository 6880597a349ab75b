package rules

import (
	"fmt"

	"go.starlark.net/starlark"
)

// LoadScript compiles a Starlark rules script into a CheckFunc. The script
// must define check(command, args). Returning a non-empty string blocks the
// command with that message; returning None or "" allows it.
//
// Module globals are frozen after load, so the returned CheckFunc is safe to
// call repeatedly.
func LoadScript(path string) (CheckFunc, error) {
	thread := &starlark.Thread{Name: "rules"}
	globals, err := starlark.ExecFile(thread, path, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("load rules script: %w", err)
	}

	v, ok := globals["check"]
	if !ok {
		return nil, fmt.Errorf("rules script %s: missing check(command, args)", path)
	}
	check, ok := v.(starlark.Callable)
	if !ok {
		return nil, fmt.Errorf("rules script %s: check is not callable", path)
	}

	return func(command string, args []string) error {
		elems := make([]starlark.Value, len(args))
		for i, a := range args {
			elems[i] = starlark.String(a)
		}
		call := starlark.Tuple{starlark.String(command), starlark.NewList(elems)}
		res, err := starlark.Call(&starlark.Thread{Name: "rules"}, check, call, nil)
		if err != nil {
			return fmt.Errorf("rules script: %w", err)
		}
		switch r := res.(type) {
		case starlark.NoneType:
			return nil
		case starlark.String:
			if r == "" {
				return nil
			}
			return fmt.Errorf("%s: %s (script rule)", command, string(r))
		default:
			return fmt.Errorf("rules script: check returned %s, want string or None", res.Type())
		}
	}, nil
}
