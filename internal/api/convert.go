package api

import (
	"eplotdb/internal/catalog"
	"eplotdb/internal/deps"
)

// FromSeries converts a catalog series to its API representation.
func FromSeries(s catalog.Series) Series {
	return Series{ID: s.ID, Name: s.Name, Year: s.Year, Month: s.Month}
}

// FromSeriesList converts a slice, returning an empty (not nil) slice.
func FromSeriesList(list []catalog.Series) []Series {
	out := make([]Series, 0, len(list))
	for _, s := range list {
		out = append(out, FromSeries(s))
	}
	return out
}

// FromEpisode converts a catalog episode to its API representation.
func FromEpisode(ep catalog.Episode) Episode {
	return Episode{
		ID:       ep.ID,
		Name:     ep.Name,
		Number:   ep.Num,
		Year:     ep.Year,
		Month:    ep.Month,
		SeriesID: ep.SeriesID,
		Abstract: ep.Abstract,
	}
}

// FromEpisodes converts a slice, returning an empty (not nil) slice.
func FromEpisodes(list []catalog.Episode) []Episode {
	out := make([]Episode, 0, len(list))
	for _, ep := range list {
		out = append(out, FromEpisode(ep))
	}
	return out
}

// FromHealth converts database health and dependency checks.
func FromHealth(health catalog.DatabaseHealth, statuses []deps.Status) Status {
	status := Status{
		DatabasePath:   health.DBPath,
		DatabaseExists: health.DatabaseExists,
		SizeBytes:      health.SizeBytes,
		ModifiedAt:     health.ModifiedAt,
		IntegrityOK:    health.IntegrityCheck,
		SeriesCount:    health.Counts.Series,
		EpisodeCount:   health.Counts.Episodes,
		Error:          health.Error,
	}
	for _, dep := range statuses {
		status.Dependencies = append(status.Dependencies, DependencyStatus{
			Name:        dep.Name,
			Command:     dep.Command,
			Description: dep.Description,
			Optional:    dep.Optional,
			Available:   dep.Available,
			Detail:      dep.Detail,
		})
	}
	return status
}
