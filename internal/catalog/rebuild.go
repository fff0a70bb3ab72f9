package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Writer is the write side of a rebuild. Every call runs inside the
// transaction opened by Store.Rebuild.
type Writer interface {
	// Reset deletes every episode and series and restarts both id counters at 1.
	Reset(ctx context.Context) error
	InsertSeries(ctx context.Context, series Series) (int64, error)
	// SeriesIDByName reports the id of the series with the exact name, if any.
	SeriesIDByName(ctx context.Context, name string) (int64, bool, error)
	InsertEpisode(ctx context.Context, episode Episode) (int64, error)
}

// Rebuild runs fn inside one transaction. The transaction commits when fn
// returns nil and rolls back otherwise, so readers never observe a partial
// rebuild.
func (s *Store) Rebuild(ctx context.Context, fn func(Writer) error) error {
	ctx = ensureContext(ctx)
	if fn == nil {
		return errors.New("catalog: rebuild function is required")
	}

	var tx *sql.Tx
	if err := retryOnBusy(ctx, func() error {
		var beginErr error
		tx, beginErr = s.db.BeginTx(ctx, nil)
		return beginErr
	}); err != nil {
		return fmt.Errorf("begin rebuild: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(&txWriter{tx: tx}); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit rebuild: %w", err)
	}
	return nil
}

type txWriter struct {
	tx *sql.Tx
}

func (w *txWriter) Reset(ctx context.Context) error {
	statements := []string{
		"DELETE FROM ep_data",
		"DELETE FROM sqlite_sequence WHERE name = 'ep_data'",
		"DELETE FROM series_data",
		"DELETE FROM sqlite_sequence WHERE name = 'series_data'",
	}
	for _, stmt := range statements {
		if _, err := w.tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%s: %w", stmt, err)
		}
	}
	return nil
}

func (w *txWriter) InsertSeries(ctx context.Context, series Series) (int64, error) {
	res, err := w.tx.ExecContext(ctx,
		`INSERT INTO series_data (series_name, series_year, series_month) VALUES (?, ?, ?)`,
		series.Name, series.Year, series.Month,
	)
	if err != nil {
		return 0, fmt.Errorf("insert series %q: %w", series.Name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	return id, nil
}

func (w *txWriter) SeriesIDByName(ctx context.Context, name string) (int64, bool, error) {
	var id int64
	err := w.tx.QueryRowContext(ctx, `SELECT id FROM series_data WHERE series_name = ?`, name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("lookup series %q: %w", name, err)
	}
	return id, true, nil
}

func (w *txWriter) InsertEpisode(ctx context.Context, episode Episode) (int64, error) {
	res, err := w.tx.ExecContext(ctx,
		`INSERT INTO ep_data (ep_name, ep_num, ep_year, ep_month, series_id, abstract)
         VALUES (?, ?, ?, ?, ?, ?)`,
		episode.Name, episode.Num, episode.Year, episode.Month, episode.SeriesID, episode.Abstract,
	)
	if err != nil {
		return 0, fmt.Errorf("insert episode %q %q: %w", episode.Name, episode.Num, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	return id, nil
}
