package pipeline

// Metacharacters recognized in a raw input line. There is no quoting or
// escaping; the first occurrence wins.
const (
	OpPipe      = "|"  // pipe between command stages
	OpAppend    = ">>" // redirect output to a file, appending
	OpOverwrite = ">"  // redirect output to a file, truncating
)

// Mode selects how redirected output is written to its target.
type Mode int

const (
	Overwrite Mode = iota // truncate or create
	Append                // append or create
)

func (m Mode) String() string {
	if m == Append {
		return OpAppend
	}
	return OpOverwrite
}

// Redirect is the output destination parsed from a command text.
type Redirect struct {
	Target string
	Mode   Mode
}
