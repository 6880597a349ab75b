package rules

import "testing"

func TestCompileCommandRuleRejectFlags(t *testing.T) {
	cfg := CommandRuleConfig{
		RejectFlags: []string{"-r"},
	}
	fns := CompileCommandRule("rm", cfg)
	if len(fns) != 1 {
		t.Fatalf("expected 1 check func, got %d", len(fns))
	}

	tests := []struct {
		name    string
		command string
		args    []string
		wantErr bool
	}{
		{"r flag blocked", "rm", []string{"-r", "build"}, true},
		{"combined rf blocked", "rm", []string{"-rf", "build"}, true},
		{"no r flag", "rm", []string{"file.txt"}, false},
		{"different command", "ls", []string{"-r"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := fns[0](tt.command, tt.args)
			if (err != nil) != tt.wantErr {
				t.Errorf("reject_flags check(%q, %v) error = %v, wantErr %v",
					tt.command, tt.args, err, tt.wantErr)
			}
		})
	}
}

func TestCompileCommandRuleEmpty(t *testing.T) {
	fns := CompileCommandRule("rm", CommandRuleConfig{})
	if len(fns) != 0 {
		t.Fatalf("expected no check funcs for empty config, got %d", len(fns))
	}
}
