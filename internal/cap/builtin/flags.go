package builtin

// hasFlag reports whether args contains the exact flag.
func hasFlag(args []string, flag string) bool {
	for _, a := range args {
		if a == flag {
			return true
		}
	}
	return false
}

// operands returns the args that are not flags. Anything starting with '-'
// is skipped, which is how every builtin selects its path operands.
func operands(args []string) []string {
	var ops []string
	for _, a := range args {
		if a == "" || a[0] == '-' {
			continue
		}
		ops = append(ops, a)
	}
	return ops
}
