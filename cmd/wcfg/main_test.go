package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(append([]string{"--width", "80"}, args...), strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunOptionsText(t *testing.T) {
	code, out, errOut := runCLI(t, "", "1:One*|2:Two")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	if out != "* 1  One\n  2  Two\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestRunOptionsConfigFromStdin(t *testing.T) {
	code, out, errOut := runCLI(t, "1:One*|2:Two\n", "-f", "config")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	want := "value='1' default='true' option='One'|value='2' option='Two'\n"
	if out != want {
		t.Fatalf("got %q want %q", out, want)
	}
}

func TestRunToolbar(t *testing.T) {
	code, out, errOut := runCLI(t, "", "-m", "toolbar", "-f", "config", "[;bold;-;-;italic;];")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	if out != "[;bold;-;italic;];\n" {
		t.Fatalf("unexpected output: %q", out)
	}

	code, out, _ = runCLI(t, "", "-m", "toolbar", "-e", "link", "--hide", "italic", "bold;-;italic;link;unlink")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if out != "[ bold | link unlink ]\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestRunWidgetWithDefaultsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "widgets.yaml")
	data := "widgets:\n  cli-test:\n    configuration: \"buttonbar:[;bold;link;unlink;anchor;]\"\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write defaults: %v", err)
	}
	code, out, errOut := runCLI(t, "link\n", "-m", "widget", "-f", "config", "-d", path, "-c", "cli-test")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	if out != "link\n[;bold;link;unlink;];\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestRunReadsFileArgument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "options.txt")
	if err := os.WriteFile(path, []byte("a|b*\n"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	code, out, errOut := runCLI(t, "", "-f", "config", "@"+path, "c")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	if out != "value='a'|value='b' default='true'\nvalue='c'\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestRunValidate(t *testing.T) {
	code, out, errOut := runCLI(t, "", "--validate", "a|default='true'")
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(errOut, "malformed option fragment") {
		t.Fatalf("expected validation error, got %q", errOut)
	}
	if out != "  a  a\n" {
		t.Fatalf("options should still be printed, got %q", out)
	}

	code, _, errOut = runCLI(t, "", "--validate", "-m", "toolbar", "[;bold;]")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, errOut)
	}
}

func TestRunRejectsBadFlags(t *testing.T) {
	if code, _, _ := runCLI(t, "", "-m", "nope", "x"); code != 2 {
		t.Fatalf("expected exit 2 for unknown mode, got %d", code)
	}
	if code, _, _ := runCLI(t, "", "-f", "html", "x"); code != 2 {
		t.Fatalf("expected exit 2 for unknown format, got %d", code)
	}
	if code, _, _ := runCLI(t, "", "--no-such-flag"); code != 2 {
		t.Fatalf("expected exit 2 for unknown flag, got %d", code)
	}
	if code, _, _ := runCLI(t, "", "-d", filepath.Join(t.TempDir(), "missing.yaml"), "x"); code != 1 {
		t.Fatalf("expected exit 1 for missing defaults file, got %d", code)
	}
}

func TestTruncateWithEllipsis(t *testing.T) {
	if got := truncateWithEllipsis("abcdef", 4); got != "abc…" {
		t.Fatalf("unexpected truncation %q", got)
	}
	if got := truncateWithEllipsis("abc", 4); got != "abc" {
		t.Fatalf("unexpected truncation %q", got)
	}
}

func TestPrinterWrapsLongRows(t *testing.T) {
	var buf bytes.Buffer
	p := printer{w: &buf, width: 20}
	p.line(p.wrap("alpha beta gamma delta epsilon", 4))
	for i, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		if len(line) > 20 {
			t.Fatalf("line %d exceeds width: %q", i, line)
		}
		if i > 0 && !strings.HasPrefix(line, "    ") {
			t.Fatalf("continuation line %d not indented: %q", i, line)
		}
	}
}
