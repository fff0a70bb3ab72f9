package source

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"eplotdb/internal/config"
	"eplotdb/internal/deps"
	"eplotdb/internal/failure"
	"eplotdb/internal/logging"
)

// Action names what Acquire did with the checkout.
type Action string

const (
	ActionClone Action = "clone"
	ActionPull  Action = "pull"
	ActionSkip  Action = "skip"
)

// Result describes the checkout after Acquire.
type Result struct {
	CheckoutDir string `json:"checkout_dir"`
	ContentDir  string `json:"content_dir"`
	Action      Action `json:"action"`
	Output      string `json:"output,omitempty"`
}

// Options adjusts a single acquisition.
type Options struct {
	// NoPull keeps an existing checkout as is.
	NoPull bool
}

// Acquire clones the configured repository when the checkout is missing and
// pulls it otherwise. It returns the directory holding the posts.
func Acquire(ctx context.Context, cfg *config.Config, opts Options, logger *slog.Logger) (Result, error) {
	if cfg == nil {
		return Result{}, failure.Wrap(failure.ErrConfiguration, "source", "acquire", "config is required", nil)
	}
	logger = logging.WithContext(ctx, logging.NewComponentLogger(logger, "source"))

	checkout := cfg.Source.CheckoutDir
	result := Result{CheckoutDir: checkout, ContentDir: cfg.ContentDir()}

	if strings.TrimSpace(cfg.Source.RepoURL) == "" {
		return result, failure.Wrap(failure.ErrConfiguration, "source", "acquire", "source.repo_url is empty", nil)
	}
	if strings.TrimSpace(checkout) == "" {
		return result, failure.Wrap(failure.ErrConfiguration, "source", "acquire", "source.checkout_dir is empty", nil)
	}

	exists, err := checkoutExists(checkout)
	if err != nil {
		return result, failure.Wrap(failure.ErrAcquire, "source", "stat", checkout, err)
	}
	if exists && opts.NoPull {
		result.Action = ActionSkip
		logger.Info("using existing checkout", logging.String("dir", checkout))
		return result, nil
	}

	git := strings.TrimSpace(cfg.Source.GitBinary)
	if git == "" {
		git = "git"
	}
	if missing := deps.Missing(deps.CheckBinaries([]deps.Requirement{{Name: "Git", Command: git}})); len(missing) > 0 {
		return result, failure.Wrap(failure.ErrAcquire, "source", "check git", missing[0].Detail, nil)
	}

	var args []string
	if exists {
		result.Action = ActionPull
		args = []string{"-C", checkout, "pull"}
	} else {
		result.Action = ActionClone
		if err := os.MkdirAll(filepath.Dir(checkout), 0o755); err != nil {
			return result, failure.Wrap(failure.ErrAcquire, "source", "clone", "create parent directory", err)
		}
		args = []string{"clone", cfg.Source.RepoURL, checkout}
	}

	logger.Info("syncing posts repository",
		logging.String("action", string(result.Action)),
		logging.String("repo_url", cfg.Source.RepoURL),
		logging.String("dir", checkout),
	)
	output, err := runCommand(ctx, git, args...)
	result.Output = strings.TrimSpace(string(output))
	if err != nil {
		detail := result.Output
		if detail == "" {
			detail = string(result.Action)
		}
		return result, failure.Wrap(failure.ErrAcquire, "source", string(result.Action), detail, err)
	}
	logger.Debug("git finished", logging.String("output", result.Output))
	return result, nil
}

func checkoutExists(dir string) (bool, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	if !info.IsDir() {
		return false, fmt.Errorf("%s is not a directory", dir)
	}
	return true, nil
}
