package builtin

import "github.com/marcelocantos/clish/internal/cap"

// RegisterAll adds all built-in commands to the registry.
func RegisterAll(r *cap.Registry) {
	r.Register(&Cat{})
	r.Register(&Cd{})
	r.Register(&Echo{})
	r.Register(&Help{})
	r.Register(&Ls{})
	r.Register(&Mkdir{})
	r.Register(&Mv{})
	r.Register(&Pwd{})
	r.Register(&Rm{})
	r.Register(&Rmdir{})
	r.Register(&Touch{})
}
