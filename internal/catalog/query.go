package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

const (
	seriesColumns  = "id, series_name, series_year, series_month"
	episodeColumns = "id, ep_name, ep_num, ep_year, ep_month, series_id, abstract"
)

type rowScanner interface{ Scan(dest ...any) error }

func scanSeries(scanner rowScanner) (Series, error) {
	var (
		series Series
		name   sql.NullString
		year   sql.NullString
		month  sql.NullString
	)
	if err := scanner.Scan(&series.ID, &name, &year, &month); err != nil {
		return Series{}, err
	}
	series.Name = name.String
	series.Year = year.String
	series.Month = month.String
	return series, nil
}

func scanEpisode(scanner rowScanner) (Episode, error) {
	var (
		episode  Episode
		name     sql.NullString
		num      sql.NullString
		year     sql.NullString
		month    sql.NullString
		seriesID sql.NullInt64
		abstract sql.NullString
	)
	if err := scanner.Scan(&episode.ID, &name, &num, &year, &month, &seriesID, &abstract); err != nil {
		return Episode{}, err
	}
	episode.Name = name.String
	episode.Num = num.String
	episode.Year = year.String
	episode.Month = month.String
	episode.SeriesID = seriesID.Int64
	episode.Abstract = abstract.String
	return episode, nil
}

// ListSeries returns every series ordered by id.
func (s *Store) ListSeries(ctx context.Context) ([]Series, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(ctx, "SELECT "+seriesColumns+" FROM series_data ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list series: %w", err)
	}
	defer rows.Close()

	var out []Series
	for rows.Next() {
		series, err := scanSeries(rows)
		if err != nil {
			return nil, fmt.Errorf("scan series: %w", err)
		}
		out = append(out, series)
	}
	return out, rows.Err()
}

// SeriesByID returns the series with id, or nil when it does not exist.
func (s *Store) SeriesByID(ctx context.Context, id int64) (*Series, error) {
	ctx = ensureContext(ctx)
	row := s.db.QueryRowContext(ctx, "SELECT "+seriesColumns+" FROM series_data WHERE id = ?", id)
	series, err := scanSeries(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get series %d: %w", id, err)
	}
	return &series, nil
}

// SeriesByName returns the series with the exact name, or nil.
func (s *Store) SeriesByName(ctx context.Context, name string) (*Series, error) {
	ctx = ensureContext(ctx)
	row := s.db.QueryRowContext(ctx, "SELECT "+seriesColumns+" FROM series_data WHERE series_name = ?", name)
	series, err := scanSeries(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get series %q: %w", name, err)
	}
	return &series, nil
}

// ListEpisodes returns every episode ordered by id.
func (s *Store) ListEpisodes(ctx context.Context) ([]Episode, error) {
	return s.queryEpisodes(ctx, "SELECT "+episodeColumns+" FROM ep_data ORDER BY id")
}

// EpisodesForSeries returns the episodes that reference seriesID, ordered by id.
func (s *Store) EpisodesForSeries(ctx context.Context, seriesID int64) ([]Episode, error) {
	return s.queryEpisodes(ctx, "SELECT "+episodeColumns+" FROM ep_data WHERE series_id = ? ORDER BY id", seriesID)
}

func (s *Store) queryEpisodes(ctx context.Context, query string, args ...any) ([]Episode, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list episodes: %w", err)
	}
	defer rows.Close()

	var out []Episode
	for rows.Next() {
		episode, err := scanEpisode(rows)
		if err != nil {
			return nil, fmt.Errorf("scan episode: %w", err)
		}
		out = append(out, episode)
	}
	return out, rows.Err()
}

// Counts returns the row count of both tables.
func (s *Store) Counts(ctx context.Context) (Counts, error) {
	ctx = ensureContext(ctx)
	var counts Counts
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM series_data").Scan(&counts.Series); err != nil {
		return Counts{}, fmt.Errorf("count series: %w", err)
	}
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM ep_data").Scan(&counts.Episodes); err != nil {
		return Counts{}, fmt.Errorf("count episodes: %w", err)
	}
	return counts, nil
}
