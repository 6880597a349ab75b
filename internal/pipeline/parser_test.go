package pipeline

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseRedirectOverwrite(t *testing.T) {
	text, redir, err := ParseRedirect("echo hello > out.txt")
	if err != nil {
		t.Fatalf("ParseRedirect: %v", err)
	}
	if text != "echo hello" {
		t.Errorf("text = %q, want %q", text, "echo hello")
	}
	if redir == nil {
		t.Fatal("expected a redirect")
	}
	if redir.Target != "out.txt" {
		t.Errorf("target = %q, want %q", redir.Target, "out.txt")
	}
	if redir.Mode != Overwrite {
		t.Errorf("mode = %v, want %v", redir.Mode, Overwrite)
	}
}

func TestParseRedirectAppend(t *testing.T) {
	text, redir, err := ParseRedirect("echo hello >> log.txt")
	if err != nil {
		t.Fatalf("ParseRedirect: %v", err)
	}
	if text != "echo hello" {
		t.Errorf("text = %q, want %q", text, "echo hello")
	}
	if redir == nil {
		t.Fatal("expected a redirect")
	}
	if redir.Target != "log.txt" {
		t.Errorf("target = %q, want %q", redir.Target, "log.txt")
	}
	if redir.Mode != Append {
		t.Errorf("mode = %v, want %v", redir.Mode, Append)
	}
}

func TestParseRedirectAppendWinsOverOverwrite(t *testing.T) {
	// >> contains > so the append operator must be matched first.
	_, redir, err := ParseRedirect("echo x >> f")
	if err != nil {
		t.Fatalf("ParseRedirect: %v", err)
	}
	if redir.Mode != Append {
		t.Errorf("mode = %v, want %v", redir.Mode, Append)
	}
	if redir.Target != "f" {
		t.Errorf("target = %q, want %q", redir.Target, "f")
	}
}

func TestParseRedirectNone(t *testing.T) {
	text, redir, err := ParseRedirect("ls -l work")
	if err != nil {
		t.Fatalf("ParseRedirect: %v", err)
	}
	if redir != nil {
		t.Errorf("redir = %+v, want nil", redir)
	}
	if text != "ls -l work" {
		t.Errorf("text = %q, want %q", text, "ls -l work")
	}
}

func TestParseRedirectTightSpacing(t *testing.T) {
	text, redir, err := ParseRedirect("echo hi>out.txt")
	if err != nil {
		t.Fatalf("ParseRedirect: %v", err)
	}
	if text != "echo hi" {
		t.Errorf("text = %q, want %q", text, "echo hi")
	}
	if redir == nil || redir.Target != "out.txt" {
		t.Errorf("redir = %+v, want target out.txt", redir)
	}
}

func TestParseRedirectEmptyCommand(t *testing.T) {
	// A bare redirect is legal at parse level; the executor creates the
	// file without dispatching anything.
	text, redir, err := ParseRedirect("> blank.txt")
	if err != nil {
		t.Fatalf("ParseRedirect: %v", err)
	}
	if text != "" {
		t.Errorf("text = %q, want empty", text)
	}
	if redir == nil || redir.Target != "blank.txt" {
		t.Errorf("redir = %+v, want target blank.txt", redir)
	}
}

func TestParseRedirectMissingTarget(t *testing.T) {
	for _, line := range []string{"echo hi >", "echo hi >>", ">", ">>  "} {
		if _, _, err := ParseRedirect(line); err == nil {
			t.Errorf("ParseRedirect(%q): expected error", line)
		} else if !strings.Contains(err.Error(), "file path") {
			t.Errorf("ParseRedirect(%q): error = %v, want file path message", line, err)
		}
	}
}

func TestHasPipe(t *testing.T) {
	if !HasPipe("ls | cat") {
		t.Error("expected pipe in piped line")
	}
	if HasPipe("echo hi > f") {
		t.Error("did not expect pipe in redirect line")
	}
}

func TestSplitPipeline(t *testing.T) {
	segments, err := SplitPipeline("ls -l |  cat | echo done")
	if err != nil {
		t.Fatalf("SplitPipeline: %v", err)
	}
	want := []string{"ls -l", "cat", "echo done"}
	if !reflect.DeepEqual(segments, want) {
		t.Errorf("segments = %v, want %v", segments, want)
	}
}

func TestSplitPipelineErrors(t *testing.T) {
	for _, line := range []string{"ls |", "| cat", "ls || cat", "|"} {
		if _, err := SplitPipeline(line); err == nil {
			t.Errorf("SplitPipeline(%q): expected error", line)
		}
	}
}

func TestTokenize(t *testing.T) {
	name, args := Tokenize("  echo  a   b ")
	if name != "echo" {
		t.Errorf("name = %q, want %q", name, "echo")
	}
	if !reflect.DeepEqual(args, []string{"a", "b"}) {
		t.Errorf("args = %v, want [a b]", args)
	}

	name, args = Tokenize("   ")
	if name != "" || args != nil {
		t.Errorf("Tokenize(blank) = %q, %v, want empty", name, args)
	}
}

func TestCommandNames(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{"ls -l work", []string{"ls"}},
		{"echo hi > out.txt", []string{"echo"}},
		{"ls | cat", []string{"ls", "cat"}},
		{"ls | echo hi | cat", []string{"ls", "echo", "cat"}},
		{"> out.txt", nil},
		{"", nil},
		{"echo hi >", []string{"echo"}},
	}
	for _, tt := range tests {
		got := CommandNames(tt.line)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("CommandNames(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}
