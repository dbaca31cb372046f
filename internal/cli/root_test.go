package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/phanxgames/reveal"
)

func TestSetVersion(t *testing.T) {
	SetVersion("1.0.0", "abc123", "2024-01-01")

	if version != "1.0.0" {
		t.Errorf("version = %q, want %q", version, "1.0.0")
	}
	if commit != "abc123" {
		t.Errorf("commit = %q, want %q", commit, "abc123")
	}
	if date != "2024-01-01" {
		t.Errorf("date = %q, want %q", date, "2024-01-01")
	}
}

// runCLI executes the root command with args and returns stdout and stderr.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Cleanup(func() { reveal.SetLogger(nil) })

	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestRootCommands(t *testing.T) {
	root := newRootCmd()
	for _, name := range []string{"lines", "preview", "play"} {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
	if root.PersistentFlags().Lookup("verbose") == nil {
		t.Error("missing --verbose")
	}
}

func TestLinesCommand(t *testing.T) {
	out, _, err := runCLI(t, "lines", "--cells", "-w", "10", "Hello world again")
	if err != nil {
		t.Fatalf("lines: %v", err)
	}
	if !strings.Contains(out, "3 lines") {
		t.Errorf("missing line count in %q", out)
	}
	rows := strings.Split(strings.TrimSpace(out), "\n")
	if len(rows) != 4 {
		t.Fatalf("got %d rows, want 4:\n%s", len(rows), out)
	}
	for i, word := range []string{"Hello", "world", "again"} {
		if !strings.Contains(rows[i+1], word) {
			t.Errorf("row %d = %q, want %q", i+1, rows[i+1], word)
		}
	}
}

func TestLinesCommandUnits(t *testing.T) {
	out, _, err := runCLI(t, "lines", "--cells", "-w", "10", "-t", "word", "--units", "Hello world")
	if err != nil {
		t.Fatalf("lines: %v", err)
	}
	for _, want := range []string{"2 word units", "start 0.000s", "start 0.075s"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestLinesCommandDefaultFont(t *testing.T) {
	out, _, err := runCLI(t, "lines", "-w", "0", "Hello world")
	if err != nil {
		t.Fatalf("lines: %v", err)
	}
	if !strings.Contains(out, "1 line") || !strings.Contains(out, "Hello world") {
		t.Errorf("unwrapped text should be one line:\n%s", out)
	}
}

func TestLinesCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no text", []string{"lines", "--cells"}},
		{"bad target", []string{"lines", "--cells", "-t", "glyph", "hi"}},
		{"bad opacity", []string{"lines", "--cells", "--opacity", "3", "hi"}},
		{"missing config", []string{"lines", "--cells", "-c", "/nonexistent/reveal.toml", "hi"}},
		{"missing font", []string{"lines", "--font", "/nonexistent/font.ttf", "hi"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := runCLI(t, tt.args...); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestVerboseLogsDebug(t *testing.T) {
	t.Cleanup(func() { reveal.SetDebugMode(false) })
	_, stderr, err := runCLI(t, "-v", "lines", "--cells", "Hello")
	if err != nil {
		t.Fatalf("lines: %v", err)
	}
	if !strings.Contains(stderr, "measuring") {
		t.Errorf("verbose run should log at debug level, got %q", stderr)
	}
}
