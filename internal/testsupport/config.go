package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"eplotdb/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// Sync is disabled and the content directory points at an empty "posts"
// directory under the temp root.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.DatabasePath = filepath.Join(base, "data", "eplot.db")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Source.CheckoutDir = filepath.Join(base, "checkout")
	cfgVal.Source.ContentDir = filepath.Join(base, "posts")
	cfgVal.Source.Sync = false
	cfgVal.API.Bind = "127.0.0.1:0"

	if err := os.MkdirAll(cfgVal.Source.ContentDir, 0o755); err != nil {
		t.Fatalf("mkdir posts dir: %v", err)
	}

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithSync enables repository acquisition and derives the content directory
// from the checkout.
func WithSync(repoURL string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Source.Sync = true
		b.cfg.Source.RepoURL = repoURL
		b.cfg.Source.ContentDir = ""
	}
}

// WithStubbedBinaries writes stub executables for the provided names and
// prepends them to PATH. If names is empty, git is stubbed.
func WithStubbedBinaries(names ...string) ConfigOption {
	return func(b *configBuilder) {
		if len(names) == 0 {
			names = []string{"git"}
		}
		binDir := filepath.Join(b.baseDir, "bin")
		if err := os.MkdirAll(binDir, 0o755); err != nil {
			b.t.Fatalf("mkdir bin dir: %v", err)
		}
		script := []byte("#!/bin/sh\nexit 0\n")
		for _, name := range names {
			target := filepath.Join(binDir, name)
			if err := os.WriteFile(target, script, 0o755); err != nil {
				b.t.Fatalf("write stub %s: %v", name, err)
			}
		}

		oldPath := os.Getenv("PATH")
		if err := os.Setenv("PATH", binDir+string(os.PathListSeparator)+oldPath); err != nil {
			b.t.Fatalf("set PATH: %v", err)
		}
		b.t.Cleanup(func() {
			_ = os.Setenv("PATH", oldPath)
		})
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.LogDir)
}
