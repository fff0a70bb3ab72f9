package posts_test

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"eplotdb/internal/failure"
	"eplotdb/internal/logging"
	"eplotdb/internal/posts"
	"eplotdb/internal/testsupport"
)

func TestEnumerateSortsMarkdownFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b_02.md", "B_01.md", "a_10.md", "a_9.md", "notes.txt", "draft.MD", "readme.markdown"} {
		testsupport.WritePost(t, dir, name, "")
	}
	if err := os.Mkdir(filepath.Join(dir, "nested.md"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	testsupport.WritePost(t, filepath.Join(dir, "sub"), "c_01.md", "")

	paths, err := posts.Enumerate(dir)
	if err != nil {
		t.Fatalf("Enumerate: %v", err)
	}
	want := []string{"B_01.md", "a_10.md", "a_9.md", "b_02.md"}
	if len(paths) != len(want) {
		t.Fatalf("expected %d paths, got %v", len(want), paths)
	}
	for i, name := range want {
		if paths[i] != filepath.Join(dir, name) {
			t.Fatalf("position %d: got %q want %q", i, paths[i], name)
		}
	}
}

func TestEnumerateMissingDirectory(t *testing.T) {
	_, err := posts.Enumerate(filepath.Join(t.TempDir(), "missing"))
	if !errors.Is(err, failure.ErrDirectoryUnavailable) {
		t.Fatalf("expected ErrDirectoryUnavailable, got %v", err)
	}
}

func TestEnumerateEmptyDirectory(t *testing.T) {
	paths, err := posts.Enumerate(t.TempDir())
	if err != nil {
		t.Fatalf("Enumerate: %v", err)
	}
	if len(paths) != 0 {
		t.Fatalf("expected no paths, got %v", paths)
	}
}

func TestCollectLoadsContentInOrder(t *testing.T) {
	dir := t.TempDir()
	testsupport.WritePost(t, dir, "Show B_01_x.md", "title: \"Show B\"\n")
	testsupport.WritePost(t, dir, "Show A_01_x.md", "title: \"Show A\"\n")

	docs, err := posts.Collect(dir, logging.NewNop())
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 docs, got %d", len(docs))
	}
	if docs[0].Name != "Show A_01_x.md" || docs[0].Content != "title: \"Show A\"\n" {
		t.Fatalf("unexpected first doc %+v", docs[0])
	}
	if docs[1].Name != "Show B_01_x.md" {
		t.Fatalf("unexpected second doc %+v", docs[1])
	}
}

func TestCollectKeepsUnreadableFiles(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for this user")
	}
	dir := t.TempDir()
	path := testsupport.WritePost(t, dir, "Locked_01.md", "title: \"Locked\"\n")
	if err := os.Chmod(path, 0o000); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	t.Cleanup(func() { _ = os.Chmod(path, 0o644) })

	docs, err := posts.Collect(dir, nil)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if len(docs) != 1 || docs[0].Name != "Locked_01.md" || docs[0].Content != "" {
		t.Fatalf("expected unreadable post with empty content, got %+v", docs)
	}
}

func TestCollectMissingDirectoryIsFatal(t *testing.T) {
	if _, err := posts.Collect(filepath.Join(t.TempDir(), "gone"), nil); !errors.Is(err, failure.ErrDirectoryUnavailable) {
		t.Fatalf("expected ErrDirectoryUnavailable, got %v", err)
	}
}

func TestLoadDecodesByteOrderMarks(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{name: "utf8_bom.md", data: []byte("\xEF\xBB\xBF---\ntitle: \"x\"\n"), want: "---\ntitle: \"x\"\n"},
		{name: "utf16le.md", data: []byte{0xFF, 0xFE, '-', 0, '-', 0, '-', 0}, want: "---"},
		{name: "invalid.md", data: []byte("ab\xffc"), want: "ab�c"},
		{name: "plain.md", data: []byte("plain"), want: "plain"},
	}
	for _, tt := range tests {
		path := filepath.Join(dir, tt.name)
		if err := os.WriteFile(path, tt.data, 0o644); err != nil {
			t.Fatalf("write %s: %v", tt.name, err)
		}
		doc, err := posts.Load(path)
		if err != nil {
			t.Fatalf("Load %s: %v", tt.name, err)
		}
		if doc.Content != tt.want {
			t.Errorf("%s: got %q want %q", tt.name, doc.Content, tt.want)
		}
	}
}
