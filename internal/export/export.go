// Package export renders the catalog as a JSON or YAML document.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"eplotdb/internal/catalog"
)

// Format names an output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts json, yaml, or yml in any case.
func ParseFormat(value string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "json", "":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported export format %q (use json or yaml)", value)
	}
}

// Reader is the read side of the catalog an export needs.
type Reader interface {
	ListSeries(ctx context.Context) ([]catalog.Series, error)
	ListEpisodes(ctx context.Context) ([]catalog.Episode, error)
}

// SeriesDocument is a series with its episodes nested.
type SeriesDocument struct {
	catalog.Series `yaml:",inline"`
	Episodes       []catalog.Episode `json:"episodes" yaml:"episodes"`
}

// Document is the full export.
type Document struct {
	GeneratedAt string           `json:"generated_at" yaml:"generated_at"`
	Series      []SeriesDocument `json:"series" yaml:"series"`
}

// Build reads the catalog and nests every episode under its series. Series
// and episodes keep id order.
func Build(ctx context.Context, reader Reader, now time.Time) (Document, error) {
	series, err := reader.ListSeries(ctx)
	if err != nil {
		return Document{}, err
	}
	episodes, err := reader.ListEpisodes(ctx)
	if err != nil {
		return Document{}, err
	}

	doc := Document{
		GeneratedAt: now.UTC().Format(time.RFC3339),
		Series:      make([]SeriesDocument, len(series)),
	}
	position := make(map[int64]int, len(series))
	for i, s := range series {
		doc.Series[i] = SeriesDocument{Series: s, Episodes: []catalog.Episode{}}
		position[s.ID] = i
	}
	for _, ep := range episodes {
		if i, ok := position[ep.SeriesID]; ok {
			doc.Series[i].Episodes = append(doc.Series[i].Episodes, ep)
		}
	}
	return doc, nil
}

// Write encodes doc to w.
func Write(w io.Writer, format Format, doc Document) error {
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(doc)
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(doc); err != nil {
			return err
		}
		return encoder.Close()
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
}
