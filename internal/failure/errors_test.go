package failure_test

import (
	"errors"
	"strings"
	"testing"

	"eplotdb/internal/failure"
)

func TestWrapIncludesContext(t *testing.T) {
	base := errors.New("disk full")
	err := failure.Wrap(failure.ErrStoreWrite, "loader", "insert series", "Show A", base)
	if !errors.Is(err, failure.ErrStoreWrite) {
		t.Fatalf("expected marker to be retained, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to contain base error, got %v", err)
	}
	msg := err.Error()
	for _, fragment := range []string{"loader", "insert series", "Show A", "disk full"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in error string %q", fragment, msg)
		}
	}
}

func TestWrapWithoutContext(t *testing.T) {
	err := failure.Wrap(failure.ErrLookupMiss, "", "", "", nil)
	if err.Error() != "series lookup miss: pipeline failure" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestKindAndFatal(t *testing.T) {
	cases := []struct {
		name  string
		err   error
		kind  string
		fatal bool
	}{
		{"nil", nil, "", false},
		{"directory", failure.Wrap(failure.ErrDirectoryUnavailable, "posts", "list", "", nil), "directory_unavailable", true},
		{"lookup", failure.Wrap(failure.ErrLookupMiss, "loader", "lookup", "", nil), "lookup_miss", true},
		{"write", failure.Wrap(failure.ErrStoreWrite, "loader", "insert", "", nil), "store_write_failure", true},
		{"acquire", failure.Wrap(failure.ErrAcquire, "source", "clone", "", nil), "acquire_failed", true},
		{"locked", failure.Wrap(failure.ErrRunLocked, "ingest", "lock", "", nil), "run_locked", true},
		{"pattern", failure.Wrap(failure.ErrPatternNotFound, "extract", "title", "", nil), "pattern_not_found", false},
		{"plain", errors.New("boom"), "unknown", true},
	}
	for _, tc := range cases {
		if got := failure.Kind(tc.err); got != tc.kind {
			t.Fatalf("%s: kind = %q, want %q", tc.name, got, tc.kind)
		}
		if got := failure.Fatal(tc.err); got != tc.fatal {
			t.Fatalf("%s: fatal = %v, want %v", tc.name, got, tc.fatal)
		}
	}
}
