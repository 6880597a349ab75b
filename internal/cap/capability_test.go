package cap

import (
	"context"
	"io"
	"strings"
	"testing"
)

type stubCap struct {
	name string
	tier Tier
}

func (s *stubCap) Name() string                 { return s.name }
func (s *stubCap) Description() string          { return "stub" }
func (s *stubCap) Tier() Tier                   { return s.tier }
func (s *stubCap) Validate(args []string) error { return nil }
func (s *stubCap) Run(_ context.Context, _ []string, _ io.Reader, _ io.Writer) error {
	return nil
}

func TestRegistryLookup(t *testing.T) {
	r := NewRegistry()
	r.Register(&stubCap{name: "echo", tier: TierRead})

	c, err := r.Lookup("echo")
	if err != nil {
		t.Fatal(err)
	}
	if c.Name() != "echo" {
		t.Errorf("expected echo, got %s", c.Name())
	}
}

func TestRegistryLookupUnknown(t *testing.T) {
	r := NewRegistry()
	_, err := r.Lookup("frobnicate")
	if err == nil {
		t.Fatal("expected error for unknown command")
	}
	if !strings.Contains(err.Error(), "command not found") {
		t.Errorf("error should say command not found, got %v", err)
	}
	if !strings.Contains(err.Error(), "frobnicate") {
		t.Errorf("error should carry the offending name, got %v", err)
	}
}

func TestRegistryTiers(t *testing.T) {
	r := NewRegistry()

	// All tiers start enabled.
	for _, tier := range []Tier{TierRead, TierWrite, TierDangerous} {
		if err := r.CheckTier(tier); err != nil {
			t.Errorf("tier %s should start enabled: %v", tier, err)
		}
	}

	r.SetTier(TierDangerous, false)
	if err := r.CheckTier(TierDangerous); err == nil {
		t.Error("expected error for disabled tier")
	}
	if err := r.CheckTier(TierRead); err != nil {
		t.Errorf("read tier should stay enabled: %v", err)
	}
}

func TestRegistryHardcodedRulesActive(t *testing.T) {
	r := NewRegistry()
	if err := r.CheckRules("rm", []string{"-r", "/"}); err == nil {
		t.Fatal("expected the hardcoded rm guard to fire on a fresh registry")
	}
	if err := r.CheckRules("rm", []string{"file.txt"}); err != nil {
		t.Errorf("plain rm should pass rules: %v", err)
	}
}

func TestRegistryAllSorted(t *testing.T) {
	r := NewRegistry()
	r.Register(&stubCap{name: "rm"})
	r.Register(&stubCap{name: "cat"})
	r.Register(&stubCap{name: "ls"})

	all := r.All()
	if len(all) != 3 {
		t.Fatalf("expected 3 capabilities, got %d", len(all))
	}
	want := []string{"cat", "ls", "rm"}
	for i, c := range all {
		if c.Name() != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], c.Name())
		}
	}
}

func TestTierString(t *testing.T) {
	tests := []struct {
		tier Tier
		want string
	}{
		{TierRead, "read"},
		{TierWrite, "write"},
		{TierDangerous, "dangerous"},
	}
	for _, tt := range tests {
		if got := tt.tier.String(); got != tt.want {
			t.Errorf("Tier(%d).String() = %q, want %q", int(tt.tier), got, tt.want)
		}
	}
}
