package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WritePost writes content to dir/name, creating dir when needed, and returns
// the file path.
func WritePost(t testing.TB, dir, name, content string) string {
	t.Helper()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", name, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// Post renders a minimal front matter block followed by body. Empty fields
// are left out so callers can exercise the fallbacks.
func Post(title, tags, description, body string) string {
	out := "---\n"
	if title != "" {
		out += "title: \"" + title + "\"\n"
	}
	if tags != "" {
		out += "tags: [" + tags + "]\n"
	}
	if description != "" {
		out += "description: \"" + description + "\"\n"
	}
	out += "---\n" + body
	return out
}
