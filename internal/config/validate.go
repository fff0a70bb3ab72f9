package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateSource(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.DatabasePath) == "" {
		return errors.New("paths.database_path must be set")
	}
	if strings.HasSuffix(c.Paths.DatabasePath, string(filepath.Separator)) {
		return fmt.Errorf("paths.database_path %q must name a file", c.Paths.DatabasePath)
	}
	return nil
}

func (c *Config) validateSource() error {
	if strings.TrimSpace(c.Source.ContentDir) != "" {
		return nil
	}
	if strings.TrimSpace(c.Source.CheckoutDir) == "" {
		return errors.New("source.checkout_dir must be set when source.content_dir is empty")
	}
	if c.Source.Sync && c.Source.RepoURL == "" {
		return errors.New("source.repo_url must be set when source.sync is true (or set EPLOTDB_REPO_URL)")
	}
	if filepath.IsAbs(c.Source.ContentSubdir) || strings.HasPrefix(c.Source.ContentSubdir, "..") {
		return fmt.Errorf("source.content_subdir %q must be relative to the checkout", c.Source.ContentSubdir)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level %q must be one of debug, info, warn, error", c.Logging.Level)
	}
}
