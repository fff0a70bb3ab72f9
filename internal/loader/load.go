package loader

import (
	"context"
	"log/slog"
	"time"

	"eplotdb/internal/catalog"
	"eplotdb/internal/extract"
	"eplotdb/internal/failure"
	"eplotdb/internal/logging"
)

// Rebuilder opens the transaction a load runs in. *catalog.Store satisfies it.
type Rebuilder interface {
	Rebuild(ctx context.Context, fn func(catalog.Writer) error) error
}

// Result summarizes a successful load.
type Result struct {
	Series   int
	Episodes int
	Duration time.Duration
}

// Load replaces the catalog contents with index and episodes.
func Load(ctx context.Context, store Rebuilder, episodes []extract.Episode, index Index, logger *slog.Logger) (Result, error) {
	logger = logging.WithContext(ctx, logging.NewComponentLogger(logger, "loader"))
	start := time.Now()
	var result Result

	err := store.Rebuild(ctx, func(w catalog.Writer) error {
		if err := w.Reset(ctx); err != nil {
			return failure.Wrap(failure.ErrStoreWrite, "load", "reset", "clear tables", err)
		}

		for _, entry := range index.entries {
			if _, err := w.InsertSeries(ctx, catalog.Series{
				Name:  entry.Name,
				Year:  entry.Year,
				Month: entry.Month,
			}); err != nil {
				return failure.Wrap(failure.ErrStoreWrite, "load", "insert series", entry.Name, err)
			}
			result.Series++
		}

		for _, ep := range episodes {
			if err := ctx.Err(); err != nil {
				return err
			}
			clean := extract.CleanSeriesName(ep.SeriesNameRaw)
			seriesID, ok, err := w.SeriesIDByName(ctx, clean)
			if err != nil {
				return failure.Wrap(failure.ErrStoreWrite, "load", "lookup series", clean, err)
			}
			if !ok {
				return failure.Wrap(failure.ErrLookupMiss, "load", ep.File, clean, nil)
			}

			logger.Info("inserting episode",
				logging.String(logging.FieldFile, ep.File),
				logging.String("ep_name", ep.SeriesNameRaw),
				logging.String("ep_num", ep.EpNum),
				logging.String("ep_year", ep.EpYear),
				logging.String("ep_month", ep.EpMonth),
				logging.Int64("series_id", seriesID),
				logging.Int("abstract_len", len([]rune(ep.Abstract))),
			)
			if _, err := w.InsertEpisode(ctx, catalog.Episode{
				Name:     ep.SeriesNameRaw,
				Num:      ep.EpNum,
				Year:     ep.EpYear,
				Month:    ep.EpMonth,
				SeriesID: seriesID,
				Abstract: ep.Abstract,
			}); err != nil {
				return failure.Wrap(failure.ErrStoreWrite, "load", "insert episode", ep.File, err)
			}
			result.Episodes++
		}
		return nil
	})
	if err != nil {
		if failure.Kind(err) == "unknown" && ctx.Err() == nil {
			// Begin and commit failures come back unmarked.
			err = failure.Wrap(failure.ErrStoreWrite, "load", "rebuild", "", err)
		}
		return Result{}, err
	}

	result.Duration = time.Since(start)
	logger.Info("catalog rebuilt",
		logging.Int("series", result.Series),
		logging.Int("episodes", result.Episodes),
		logging.Duration("duration", result.Duration),
	)
	return result, nil
}
