package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeSource(); err != nil {
		return err
	}
	c.normalizeLogging()
	c.API.Bind = strings.TrimSpace(c.API.Bind)
	if c.API.Bind == "" {
		c.API.Bind = defaultAPIBind
	}
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DatabasePath) == "" {
		c.Paths.DatabasePath = defaultDatabasePath
	}
	if c.Paths.DatabasePath, err = expandPath(c.Paths.DatabasePath); err != nil {
		return fmt.Errorf("paths.database_path: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeSource() error {
	var err error
	if value, ok := os.LookupEnv("EPLOTDB_REPO_URL"); ok && strings.TrimSpace(value) != "" {
		c.Source.RepoURL = value
	}
	c.Source.RepoURL = strings.TrimSpace(c.Source.RepoURL)
	if value, ok := os.LookupEnv("EPLOTDB_CONTENT_DIR"); ok && strings.TrimSpace(value) != "" {
		c.Source.ContentDir = value
	}
	if c.Source.CheckoutDir, err = expandPath(strings.TrimSpace(c.Source.CheckoutDir)); err != nil {
		return fmt.Errorf("source.checkout_dir: %w", err)
	}
	if c.Source.ContentDir, err = expandPath(strings.TrimSpace(c.Source.ContentDir)); err != nil {
		return fmt.Errorf("source.content_dir: %w", err)
	}
	c.Source.ContentSubdir = filepath.Clean(strings.TrimSpace(c.Source.ContentSubdir))
	if c.Source.ContentSubdir == "." {
		c.Source.ContentSubdir = ""
	}
	c.Source.GitBinary = strings.TrimSpace(c.Source.GitBinary)
	if c.Source.GitBinary == "" {
		c.Source.GitBinary = defaultGitBinary
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
