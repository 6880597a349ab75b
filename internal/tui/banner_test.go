package tui

import (
	"bytes"
	"strings"
	"testing"
)

func TestBanner(t *testing.T) {
	var buf bytes.Buffer
	Banner(&buf, "1.2.3")
	out := buf.String()
	if !strings.Contains(out, "clish") {
		t.Errorf("banner = %q, want the shell name", out)
	}
	if !strings.Contains(out, "1.2.3") {
		t.Errorf("banner = %q, want the version", out)
	}
	if !strings.Contains(out, "help") {
		t.Errorf("banner = %q, want the help hint", out)
	}
	if !strings.Contains(out, "exit") {
		t.Errorf("banner = %q, want the exit hint", out)
	}
	if got := strings.Count(out, "\n"); got != 4 {
		t.Errorf("banner has %d newlines, want 4", got)
	}
}

func TestPromptShape(t *testing.T) {
	got := Prompt("/home/user")
	if !strings.Contains(got, "/home/user") {
		t.Errorf("prompt = %q, want the working directory", got)
	}
	if !strings.HasSuffix(got, "> ") {
		t.Errorf("prompt = %q, want trailing %q", got, "> ")
	}
}
