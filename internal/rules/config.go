package rules

import "fmt"

// CommandRuleConfig represents one command's rules from YAML config.
type CommandRuleConfig struct {
	RejectFlags []string `yaml:"reject_flags"`
}

// CompileCommandRule turns a single command's config into CheckFuncs.
func CompileCommandRule(command string, cfg CommandRuleConfig) []CheckFunc {
	var fns []CheckFunc

	if len(cfg.RejectFlags) > 0 {
		flags := cfg.RejectFlags
		name := command
		fns = append(fns, func(cmd string, args []string) error {
			if cmd != name {
				return nil
			}
			if hasAnyFlag(args, flags...) {
				return fmt.Errorf("%s: rejected flag (config rule)", name)
			}
			return nil
		})
	}

	return fns
}
