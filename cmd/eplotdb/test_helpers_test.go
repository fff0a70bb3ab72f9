package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"eplotdb/internal/config"
	"eplotdb/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
	contentDir string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	cfg := testsupport.NewConfig(t)
	homeDir := filepath.Join(testsupport.BaseDir(cfg), "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	t.Setenv("EPLOTDB_CONTENT_DIR", "")
	t.Setenv("EPLOTDB_REPO_URL", "")

	configPath := filepath.Join(homeDir, ".config", "eplotdb", "config.toml")
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	writeTestConfig(t, configPath, cfg)

	return &cliTestEnv{
		cfg:        cfg,
		configPath: configPath,
		contentDir: cfg.Source.ContentDir,
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	content := fmt.Sprintf(
		"[paths]\ndatabase_path = %q\nlog_dir = %q\n\n[source]\ncontent_dir = %q\nsync = false\n\n[logging]\nlevel = \"error\"\n\n[api]\nbind = %q\n",
		cfg.Paths.DatabasePath,
		cfg.Paths.LogDir,
		cfg.Source.ContentDir,
		cfg.API.Bind,
	)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func writeShowAPosts(t *testing.T, dir string) {
	t.Helper()
	testsupport.WritePost(t, dir, "Show A_01_x.md", testsupport.Post("Show A 1", "t, 202401", "first", ""))
	testsupport.WritePost(t, dir, "Show A_02_x.md", testsupport.Post("Show A 2", "t, 202402", "", "Second body"))
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
