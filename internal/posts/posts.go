package posts

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"eplotdb/internal/failure"
	"eplotdb/internal/logging"
)

// Extension is the suffix a file needs to be treated as a post.
const Extension = ".md"

// Document is one markdown file and its full text.
type Document struct {
	Name    string
	Path    string
	Content string
}

// Enumerate returns the paths of the markdown files directly inside dir,
// sorted by filename.
func Enumerate(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, failure.Wrap(failure.ErrDirectoryUnavailable, "posts", "list", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if mode := entry.Type(); !mode.IsRegular() && mode&os.ModeSymlink == 0 {
			continue
		}
		if filepath.Ext(entry.Name()) != Extension {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	paths := make([]string, len(names))
	for i, name := range names {
		paths[i] = filepath.Join(dir, name)
	}
	return paths, nil
}

// Load reads one post. A file that cannot be read yields a Document with
// empty content so extraction degrades to filename-derived fields.
func Load(path string) (Document, error) {
	doc := Document{Name: filepath.Base(path), Path: path}
	data, err := os.ReadFile(path)
	if err != nil {
		return doc, err
	}
	doc.Content = decode(data)
	return doc, nil
}

// decode strips a byte order mark, converting UTF-16 input when the mark says
// so, and replaces invalid UTF-8 sequences with U+FFFD.
func decode(data []byte) string {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return strings.ToValidUTF8(string(data), "\uFFFD")
	}
	return string(out)
}

// Collect enumerates dir and loads every post in order. Only a listing failure
// is fatal; unreadable files are logged and kept with empty content.
func Collect(dir string, logger *slog.Logger) ([]Document, error) {
	logger = logging.NewComponentLogger(logger, "posts")

	paths, err := Enumerate(dir)
	if err != nil {
		return nil, err
	}

	docs := make([]Document, 0, len(paths))
	for _, path := range paths {
		doc, err := Load(path)
		if err != nil {
			logging.WarnWithContext(logger, "post unreadable; using empty content", "post_unreadable",
				logging.String(logging.FieldFile, doc.Name),
				logging.Error(err),
				logging.String(logging.FieldErrorHint, "check file permissions"),
			)
		}
		docs = append(docs, doc)
	}
	logger.Debug("posts collected", logging.String("dir", dir), logging.Int("count", len(docs)))
	return docs, nil
}
