package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"eplotdb/internal/extract"
	"eplotdb/internal/failure"
	"eplotdb/internal/loader"
	"eplotdb/internal/logging"
	"eplotdb/internal/posts"
)

// Summary describes a completed rebuild.
type Summary struct {
	RunID      string        `json:"run_id"`
	ContentDir string        `json:"content_dir"`
	Files      int           `json:"files"`
	Degraded   int           `json:"degraded"`
	Series     int           `json:"series"`
	Episodes   int           `json:"episodes"`
	Duration   time.Duration `json:"duration"`
}

// Options configures a rebuild.
type Options struct {
	// ContentDir holds the markdown posts.
	ContentDir string
	// LockPath is the advisory lock file. Empty disables locking.
	LockPath string
	Logger   *slog.Logger
}

// Run rebuilds the catalog from the posts in opts.ContentDir.
func Run(ctx context.Context, store loader.Rebuilder, opts Options) (Summary, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	start := time.Now()
	summary := Summary{RunID: uuid.NewString(), ContentDir: opts.ContentDir}
	ctx = logging.WithRunID(ctx, summary.RunID)
	logger := logging.WithContext(ctx, logging.NewComponentLogger(opts.Logger, "ingest"))

	if opts.LockPath != "" {
		lock := flock.New(opts.LockPath)
		ok, err := lock.TryLock()
		if err != nil {
			return summary, fmt.Errorf("acquire lock: %w", err)
		}
		if !ok {
			return summary, failure.Wrap(failure.ErrRunLocked, "ingest", "lock", opts.LockPath, nil)
		}
		defer func() {
			if err := lock.Unlock(); err != nil {
				logger.Warn("failed to release rebuild lock", logging.Error(err))
			}
		}()
	}

	logger.Info("rebuild started", logging.String("content_dir", opts.ContentDir))

	docs, err := posts.Collect(opts.ContentDir, opts.Logger)
	if err != nil {
		return summary, err
	}
	summary.Files = len(docs)

	episodes := ExtractAll(docs, logger)
	for _, ep := range episodes {
		if len(ep.Degraded) > 0 {
			summary.Degraded++
		}
	}

	index := loader.Consolidate(episodes)
	result, err := loader.Load(ctx, store, episodes, index, opts.Logger)
	if err != nil {
		return summary, err
	}
	summary.Series = result.Series
	summary.Episodes = result.Episodes
	summary.Duration = time.Since(start)

	logger.Info("rebuild completed",
		logging.Int("files", summary.Files),
		logging.Int("degraded", summary.Degraded),
		logging.Int("series", summary.Series),
		logging.Int("episodes", summary.Episodes),
		logging.Duration("duration", summary.Duration),
	)
	return summary, nil
}

// ExtractAll runs the extractor over docs in order. Missing patterns are
// logged at debug level and never stop the run.
func ExtractAll(docs []posts.Document, logger *slog.Logger) []extract.Episode {
	if logger == nil {
		logger = logging.NewNop()
	}
	episodes := make([]extract.Episode, 0, len(docs))
	for _, doc := range docs {
		ep := extract.Extract(doc.Name, doc.Content)
		if err := ep.DegradedErr(); err != nil {
			logger.Debug("fields degraded",
				logging.String(logging.FieldFile, doc.Name),
				logging.String(logging.FieldEventType, failure.Kind(err)),
				logging.Error(err),
			)
		}
		episodes = append(episodes, ep)
	}
	return episodes
}

// Inspect extracts metadata from the given files without touching the
// catalog. Unreadable files are extracted as empty posts.
func Inspect(paths []string, logger *slog.Logger) []extract.Episode {
	logger = logging.NewComponentLogger(logger, "inspect")
	docs := make([]posts.Document, 0, len(paths))
	for _, path := range paths {
		doc, err := posts.Load(path)
		if err != nil {
			logging.WarnWithContext(logger, "post unreadable; using empty content", "post_unreadable",
				logging.String(logging.FieldFile, path),
				logging.Error(err),
			)
		}
		docs = append(docs, doc)
	}
	return ExtractAll(docs, logger)
}
