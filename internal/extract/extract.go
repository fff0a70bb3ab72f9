package extract

import (
	"strings"

	"eplotdb/internal/failure"
)

// Episode is the metadata derived from one post.
type Episode struct {
	File            string
	SeriesNameRaw   string
	SeriesNameClean string
	EpNum           string
	EpYear          string
	EpMonth         string
	Abstract        string
	// Degraded lists the fields whose pattern was not found.
	Degraded []string
}

// Extract derives an Episode from a post's filename and content.
func Extract(filename, content string) Episode {
	ep := Episode{File: filename}

	fallback, epNum := SplitFilename(filename)
	ep.EpNum = epNum
	if epNum == "" {
		ep.Degraded = append(ep.Degraded, "ep_num")
	}

	title, ok := ExtractTitle(content)
	if !ok {
		title = fallback
		ep.Degraded = append(ep.Degraded, "title")
	}
	ep.SeriesNameRaw = title
	ep.SeriesNameClean = CleanSeriesName(title)

	ep.EpYear, ep.EpMonth = ExtractTagsYYYYMM(content)
	if ep.EpYear == "" {
		ep.Degraded = append(ep.Degraded, "year_month")
	}

	ep.Abstract = ExtractDescription(content)
	if ep.Abstract == "" {
		ep.Abstract = ExtractFallbackAbstract(content)
	}
	if ep.Abstract == "" {
		ep.Degraded = append(ep.Degraded, "abstract")
	}
	return ep
}

// DegradedErr reports the missing patterns as an ErrPatternNotFound error, or
// nil when every field was found.
func (e Episode) DegradedErr() error {
	if len(e.Degraded) == 0 {
		return nil
	}
	return failure.Wrap(failure.ErrPatternNotFound, "extract", e.File, strings.Join(e.Degraded, ", "), nil)
}
