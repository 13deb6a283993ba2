// Package testutil provides test utilities for CLI testing.
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/leapstack-labs/nuctab/internal/cli/output"
	"github.com/leapstack-labs/nuctab/internal/source"
)

// NubaseLine places values at their NUBASE2003 columns.
func NubaseLine(a, zzzi, mass, energy, halfLife, spin, decay string) string {
	b := []byte(strings.Repeat(" ", 110))
	put := func(s source.Span, v string) {
		copy(b[s.Start-1:], v)
	}
	l := source.NubaseLayout
	put(l.A, a)
	put(l.ZZZi, zzzi)
	put(l.MassDefect, mass)
	put(l.Energy, energy)
	put(l.HalfLife, halfLife)
	put(l.Spin, spin)
	return string(b) + decay
}

// NubaseSample is a small NUBASE table: 12C, 99Tc with its isomer, and one
// entry with an unknown half-life unit.
func NubaseSample() string {
	return strings.Join([]string{
		"# NUBASE2003 sample",
		NubaseLine("012", "0060", "0.0 0.0", "", "stbl", "0+", "IS=98.93 8"),
		NubaseLine("099", "0430", "-87323.1 2.1", "", "211.1 ky 1.2", "9/2+", "B-=100"),
		NubaseLine("099", "0431", "-87180.5 2.1", "142.6836 0.0011", "6.0072 h 0.0009", "1/2-", "IT=100;B-=0.0037 0.0006"),
		NubaseLine("014", "0060", "3019.893 0.004", "", "5.70 parsec 0.03", "0+", "B-=100"),
		"",
	}, "\n")
}

// SetupTestProject creates a temporary project with a nuctab.yaml, an
// in-directory state database and a NUBASE sample at data/nubase.asc.
func SetupTestProject(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(tmpDir, "data"), 0o755); err != nil {
		t.Fatalf("failed to create data directory: %v", err)
	}

	cfg := `dialect: nubase
state:
  driver: sqlite
  dsn: .nuctab/state.db
`
	if err := os.WriteFile(filepath.Join(tmpDir, "nuctab.yaml"), []byte(cfg), 0o644); err != nil {
		t.Fatalf("failed to create nuctab.yaml: %v", err)
	}
	if err := os.WriteFile(filepath.Join(tmpDir, "data", "nubase.asc"), []byte(NubaseSample()), 0o644); err != nil {
		t.Fatalf("failed to create nubase.asc: %v", err)
	}

	return tmpDir
}

// TestRenderer wraps a Renderer for testing with captured output buffers.
type TestRenderer struct {
	*output.Renderer
	Out    *bytes.Buffer
	ErrOut *bytes.Buffer
}

// NewTestRenderer creates a new test renderer with the specified mode and TTY state.
// Output is captured in buffers for inspection.
func NewTestRenderer(mode output.OutputMode, isTTY bool) *TestRenderer {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return &TestRenderer{
		Renderer: output.NewRendererWithTTY(out, errOut, isTTY, mode),
		Out:      out,
		ErrOut:   errOut,
	}
}

// Output returns the stdout output as a string.
func (tr *TestRenderer) Output() string {
	return tr.Out.String()
}

// ErrorOutput returns the stderr output as a string.
func (tr *TestRenderer) ErrorOutput() string {
	return tr.ErrOut.String()
}

// ansiPattern matches ANSI escape codes.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// AssertNoANSI checks that a string contains no ANSI escape codes.
func AssertNoANSI(t *testing.T, s string) {
	t.Helper()
	if ansiPattern.MatchString(s) {
		t.Errorf("string contains ANSI escape codes: %q", s)
	}
}

// AssertValidMarkdown performs basic markdown validation.
// It checks for unclosed code fences and empty headers.
func AssertValidMarkdown(t *testing.T, md string) {
	t.Helper()

	fenceCount := strings.Count(md, "```")
	if fenceCount%2 != 0 {
		t.Errorf("unbalanced code fences in markdown: found %d occurrences", fenceCount)
	}

	lines := strings.Split(md, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") && strings.TrimLeft(trimmed, "# ") == "" {
			t.Errorf("empty header at line %d: %q", i+1, line)
		}
	}
}
