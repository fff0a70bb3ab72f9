package deps

import (
	"os"
	"path/filepath"
	"testing"

	"eplotdb/internal/config"
)

func TestCheckBinaries(t *testing.T) {
	binDir := t.TempDir()
	present := filepath.Join(binDir, "present")
	script := []byte("#!/bin/sh\nexit 0\n")
	if err := os.WriteFile(present, script, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	reqs := []Requirement{
		{Name: "Present", Command: present},
		{Name: "Missing", Command: "clearly-not-present-binary"},
		{Name: "Blank", Command: "  "},
	}

	results := CheckBinaries(reqs)
	if len(results) != len(reqs) {
		t.Fatalf("expected %d results, got %d", len(reqs), len(results))
	}

	if !results[0].Available {
		t.Fatalf("expected first requirement to be available, got %#v", results[0])
	}
	if results[0].Detail != "" {
		t.Fatalf("unexpected detail for absolute command: %s", results[0].Detail)
	}

	if results[1].Available {
		t.Fatalf("expected missing binary to be unavailable")
	}
	if results[1].Detail == "" {
		t.Fatalf("expected detail message for missing binary")
	}
	if results[1].Command != "clearly-not-present-binary" {
		t.Fatalf("unexpected command recorded: %s", results[1].Command)
	}

	if results[2].Available || results[2].Detail != "command not configured" {
		t.Fatalf("unexpected status for blank command: %#v", results[2])
	}
}

func TestRequirementsGitOptionalWithoutSync(t *testing.T) {
	cfg := config.Default()
	cfg.Source.Sync = false
	reqs := Requirements(&cfg)
	if len(reqs) != 1 || reqs[0].Command != "git" || !reqs[0].Optional {
		t.Fatalf("unexpected requirements %#v", reqs)
	}

	cfg.Source.Sync = true
	cfg.Source.GitBinary = "/opt/git/bin/git"
	reqs = Requirements(&cfg)
	if reqs[0].Optional || reqs[0].Command != "/opt/git/bin/git" {
		t.Fatalf("expected mandatory custom git, got %#v", reqs[0])
	}

	cfg.Source.ContentDir = "/srv/posts"
	if reqs = Requirements(&cfg); !reqs[0].Optional {
		t.Fatal("expected git optional when content dir is fixed")
	}
}

func TestMissingSkipsOptional(t *testing.T) {
	statuses := []Status{
		{Name: "a", Available: false, Optional: true},
		{Name: "b", Available: false},
		{Name: "c", Available: true},
	}
	missing := Missing(statuses)
	if len(missing) != 1 || missing[0].Name != "b" {
		t.Fatalf("unexpected missing %#v", missing)
	}
}
