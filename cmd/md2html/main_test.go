package main

// Notes:
// - runMain: we test dispatch and exit codes; conversion itself is covered
//   by convert_test.go
// - main() is not tested: it only wires automaxprocs, signals and os.Exit

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestRunMain - Command dispatch
// ---------------------------------------------------------------------------

func TestRunMain(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := writeFile(t, dir, "doc.md", "# A\n")

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{"no command", []string{"md2html"}, ExitUsage, "", "Usage: md2html"},
		{"unknown command", []string{"md2html", "bogus"}, ExitUsage, "", "Unknown command: bogus"},
		{"version", []string{"md2html", "version"}, ExitSuccess, "md2html dev", ""},
		{"help", []string{"md2html", "help"}, ExitSuccess, "Commands:", ""},
		{"help convert", []string{"md2html", "help", "convert"}, ExitSuccess, "--toc-collapse", ""},
		{"help config", []string{"md2html", "help", "config"}, ExitSuccess, "md2html config", ""},
		{"help unknown", []string{"md2html", "help", "bogus"}, ExitUsage, "", "Unknown command: bogus"},
		{"convert -h", []string{"md2html", "convert", "-h"}, ExitSuccess, "", "Usage: md2html convert"},
		{"unknown flag", []string{"md2html", "convert", "--bogus"}, ExitUsage, "", "invalid usage"},
		{"convert", []string{"md2html", "convert", in, "--stdout"}, ExitSuccess, "<h1>A</h1>", ""},
		{"implicit convert", []string{"md2html", in, "--stdout", "--no-toc"}, ExitSuccess, "<h1>A</h1>\n", ""},
		{"missing input", []string{"md2html", "convert", filepath.Join(dir, "nope.md")}, ExitIO, "", "no such file"},
		{"config", []string{"md2html", "config"}, ExitSuccess, "headingClass", ""},
		{"config extra argument", []string{"md2html", "config", "extra"}, ExitUsage, "", "unexpected argument"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := testEnv("", nil)
			code := runMain(context.Background(), tt.args, env)

			if code != tt.wantCode {
				t.Errorf("runMain(%v) = %d, want %d (stderr %q)", tt.args, code, tt.wantCode, stderr.String())
			}
			if tt.wantStdout != "" && !strings.Contains(stdout.String(), tt.wantStdout) {
				t.Errorf("stdout = %q, want %q", stdout.String(), tt.wantStdout)
			}
			if tt.wantStderr != "" && !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr = %q, want %q", stderr.String(), tt.wantStderr)
			}
		})
	}
}

func TestRunConfigCmd_EnvOverrides(t *testing.T) {
	t.Parallel()

	env, stdout, _ := testEnv("", map[string]string{"MD2HTML_STYLE": "minimal"})
	if err := runConfigCmd(nil, env); err != nil {
		t.Fatalf("runConfigCmd() error = %v", err)
	}
	if !strings.Contains(stdout.String(), "style: minimal") {
		t.Errorf("stdout = %q, want env style", stdout.String())
	}
}

func TestLooksLikeInput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	tests := []struct {
		arg  string
		want bool
	}{
		{"doc.md", true},
		{"notes.MARKDOWN", true},
		{dir, true},
		{"convert", false},
		{"file.txt", false},
		{filepath.Join(dir, "missing"), false},
	}

	for _, tt := range tests {
		if got := looksLikeInput(tt.arg); got != tt.want {
			t.Errorf("looksLikeInput(%q) = %v, want %v", tt.arg, got, tt.want)
		}
	}
}

func TestVerboseRequested(t *testing.T) {
	t.Parallel()

	if !verboseRequested([]string{"md2html", "convert", "-v"}) {
		t.Error("-v not detected")
	}
	if !verboseRequested([]string{"md2html", "--verbose"}) {
		t.Error("--verbose not detected")
	}
	if verboseRequested([]string{"md2html", "convert", "-q"}) {
		t.Error("verbose detected without flag")
	}
}
