package rules

import "strings"

// CheckFunc validates arguments for a named command.
// Returns a non-nil error to block execution.
type CheckFunc func(command string, args []string) error

// RuleSet holds an ordered list of validation rules. Hardcoded rules run first
// and cannot be removed. Config and script rules are appended after.
type RuleSet struct {
	hardcoded []CheckFunc
	config    []CheckFunc
}

// NewRuleSet creates a RuleSet with the given hardcoded rules.
func NewRuleSet(hardcoded ...CheckFunc) *RuleSet {
	return &RuleSet{hardcoded: hardcoded}
}

// AddConfig appends a config- or script-driven rule.
func (rs *RuleSet) AddConfig(fn CheckFunc) {
	rs.config = append(rs.config, fn)
}

// Check runs all rules against the given command name and args.
// Hardcoded rules always run first.
func (rs *RuleSet) Check(command string, args []string) error {
	for _, fn := range rs.hardcoded {
		if err := fn(command, args); err != nil {
			return err
		}
	}
	for _, fn := range rs.config {
		if err := fn(command, args); err != nil {
			return err
		}
	}
	return nil
}

// hasAnyFlag checks whether any element in args matches one of the given flags.
// It handles:
//   - Exact match: "-r" matches "-r"
//   - Combined short flags: "-rf" matches "-r" and "-f"
//   - Short flag with value: "-n5" matches "-n"
//   - Long flag with =: "--flag=value" matches "--flag"
func hasAnyFlag(args []string, flags ...string) bool {
	for _, arg := range args {
		if arg == "" || arg[0] != '-' {
			continue
		}
		for _, flag := range flags {
			if arg == flag {
				return true
			}
			// Short flag: "-n" matches "-n5" (value suffix) and "-rf" (combined)
			if len(flag) == 2 && flag[0] == '-' && flag[1] != '-' &&
				len(arg) > 2 && arg[0] == '-' && arg[1] != '-' {
				if strings.ContainsRune(arg[1:], rune(flag[1])) {
					return true
				}
			}
			// Long flag with =: "--force" matches "--force=yes"
			if len(flag) > 2 && flag[0:2] == "--" && strings.HasPrefix(arg, flag+"=") {
				return true
			}
		}
	}
	return false
}
