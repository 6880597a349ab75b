package rules

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Hardcoded returns the built-in safety rules that are always enforced
// regardless of configuration. These block permanently catastrophic
// operations no config file can re-enable.
func Hardcoded() []CheckFunc {
	return []CheckFunc{
		checkRmCatastrophic,
	}
}

// checkRmCatastrophic blocks recursive removal of root, home, or the current
// directory.
func checkRmCatastrophic(command string, args []string) error {
	if command != "rm" {
		return nil
	}
	if !hasAnyFlag(args, "-r", "-R") {
		return nil
	}
	for _, arg := range args {
		if arg == "" || arg[0] == '-' {
			continue
		}
		cleaned := filepath.Clean(arg)
		if cleaned == "/" || cleaned == "." || cleaned == ".." {
			return fmt.Errorf("refusing to recursively remove %q", arg)
		}
		if arg == "~" || strings.HasPrefix(arg, "~/") {
			return fmt.Errorf("refusing to recursively remove %q", arg)
		}
	}
	return nil
}
