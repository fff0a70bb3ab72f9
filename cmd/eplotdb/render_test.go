package main

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"eplotdb/internal/catalog"
	"eplotdb/internal/deps"
	"eplotdb/internal/preflight"
)

func TestRenderStatusLineNoColor(t *testing.T) {
	got := renderStatusLine("Database", statusError, "missing", false)
	want := fmt.Sprintf("%s%-*s %s", statusIndent, statusLabelWidth, "Database:", "[ERROR] missing")
	if got != want {
		t.Fatalf("renderStatusLine mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestRenderStatusLineWithColor(t *testing.T) {
	got := renderStatusLine("Rows", statusOK, "2 series", true)
	if !strings.HasPrefix(got, ansiGreen) || !strings.HasSuffix(got, ansiReset) {
		t.Fatalf("expected green line, got %q", got)
	}
}

func TestDependencyLines(t *testing.T) {
	lines := dependencyLines([]deps.Status{
		{Name: "Git", Available: true, Command: "git"},
		{Name: "Git", Available: false, Optional: true, Detail: "binary \"git\" not found"},
		{Name: "Git", Available: false, Detail: "binary \"git\" not found"},
	}, false)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	requireContains(t, lines[0], "[OK] ready (command: git)")
	requireContains(t, lines[1], "[WARN]")
	requireContains(t, lines[1], "(optional)")
	requireContains(t, lines[2], "[ERROR]")
}

func TestDatabaseLinesMissingFile(t *testing.T) {
	lines := databaseLines(catalog.DatabaseHealth{DBPath: "/tmp/x.db"}, false)
	if len(lines) != 2 || !strings.Contains(lines[1], "not created yet") {
		t.Fatalf("unexpected lines %q", lines)
	}
}

func TestDatabaseLinesEmptyCatalogWarns(t *testing.T) {
	lines := databaseLines(catalog.DatabaseHealth{
		DBPath:         "/tmp/x.db",
		DatabaseExists: true,
		SizeBytes:      4096,
		IntegrityCheck: true,
	}, false)
	last := lines[len(lines)-1]
	if !strings.Contains(last, "[WARN]") || !strings.Contains(last, "0 series, 0 episodes") {
		t.Fatalf("unexpected rows line %q", last)
	}
	requireContains(t, lines[1], "4.1 kB")
}

func TestRenderTableWrapsAndPads(t *testing.T) {
	out := renderTable([]column{{header: "ID", align: alignRight}, {header: "Name"}}, [][]string{{"1"}, {"22", "Two"}})
	requireContains(t, out, "ID")
	requireContains(t, out, "Two")
	if renderTable(nil, nil) != "" {
		t.Fatal("expected empty output without columns")
	}
}

func TestShouldColorizeNonFile(t *testing.T) {
	if shouldColorize(io.Discard) {
		t.Fatalf("expected non-file writer to disable color")
	}
}

func TestPreflightLines(t *testing.T) {
	lines := preflightLines([]preflight.Result{
		{Name: "Database directory", Passed: true, Detail: "/tmp (read/write ok)"},
		{Name: "Content directory", Detail: "/nope (error: does not exist)"},
	}, false)
	requireContains(t, lines[0], "[OK] /tmp (read/write ok)")
	requireContains(t, lines[1], "[ERROR] /nope")
}
