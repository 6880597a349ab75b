package cap

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/marcelocantos/clish/internal/rules"
)

// Tier represents the safety level of a command.
type Tier int

const (
	TierRead      Tier = iota // read-only operations (ls, pwd, cd, cat, echo, help)
	TierWrite                 // file mutations (mkdir, rmdir, touch, mv)
	TierDangerous             // destructive operations (rm)
)

func (t Tier) String() string {
	switch t {
	case TierRead:
		return "read"
	case TierWrite:
		return "write"
	case TierDangerous:
		return "dangerous"
	default:
		return fmt.Sprintf("tier(%d)", int(t))
	}
}

// Capability is the interface every builtin command implements.
type Capability interface {
	// Name returns the command name typed at the prompt.
	Name() string

	// Description returns a human-readable summary for help output.
	Description() string

	// Tier returns the safety classification.
	Tier() Tier

	// Validate checks args before execution. Returns a descriptive error
	// if args are invalid. Called before Run.
	Validate(args []string) error

	// Run executes the command. All output goes to stdout, which the
	// executor captures; builtins never write to the terminal directly.
	// Failures are reported through the returned error.
	Run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error
}

// Registry maps command names to implementations and controls tier access.
type Registry struct {
	mu    sync.RWMutex
	caps  map[string]Capability
	tiers map[Tier]bool
	rules *rules.RuleSet
}

// NewRegistry creates a registry with every tier enabled. Hardcoded safety
// rules are always active.
func NewRegistry() *Registry {
	return &Registry{
		caps: make(map[string]Capability),
		tiers: map[Tier]bool{
			TierRead:      true,
			TierWrite:     true,
			TierDangerous: true,
		},
		rules: rules.NewRuleSet(rules.Hardcoded()...),
	}
}

// Register adds a capability to the registry.
func (r *Registry) Register(c Capability) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.caps[c.Name()] = c
}

// Lookup returns a capability by name.
func (r *Registry) Lookup(name string) (Capability, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.caps[name]
	if !ok {
		return nil, fmt.Errorf("command not found: %q", name)
	}
	return c, nil
}

// CheckTier returns an error if the given tier is not enabled.
func (r *Registry) CheckTier(t Tier) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if !r.tiers[t] {
		return fmt.Errorf("tier %q is disabled", t)
	}
	return nil
}

// SetTier enables or disables a tier.
func (r *Registry) SetTier(t Tier, enabled bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tiers[t] = enabled
}

// SetRules replaces the rule set. Config-driven rules are added on top of
// the hardcoded safety rules which are always present.
func (r *Registry) SetRules(rs *rules.RuleSet) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rules = rs
}

// CheckRules validates args against all rules for the named command.
func (r *Registry) CheckRules(command string, args []string) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.rules == nil {
		return nil
	}
	return r.rules.Check(command, args)
}

// All returns all registered capabilities sorted by name.
func (r *Registry) All() []Capability {
	r.mu.RLock()
	defer r.mu.RUnlock()
	caps := make([]Capability, 0, len(r.caps))
	for _, c := range r.caps {
		caps = append(caps, c)
	}
	sort.Slice(caps, func(i, j int) bool {
		return caps[i].Name() < caps[j].Name()
	})
	return caps
}
