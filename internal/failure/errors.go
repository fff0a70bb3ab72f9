package failure

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrDirectoryUnavailable = errors.New("directory unavailable")
	ErrPatternNotFound      = errors.New("pattern not found")
	ErrStoreWrite           = errors.New("store write failure")
	ErrLookupMiss           = errors.New("series lookup miss")
	ErrAcquire              = errors.New("repository acquisition failed")
	ErrConfiguration        = errors.New("configuration error")
	ErrRunLocked            = errors.New("rebuild already running")
)

// Wrap builds an error message that includes stage context while tagging it with
// the provided marker. The marker should be one of the exported sentinel errors above.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if marker == nil {
		marker = ErrStoreWrite
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Kind returns the log event type for err.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrDirectoryUnavailable):
		return "directory_unavailable"
	case errors.Is(err, ErrLookupMiss):
		return "lookup_miss"
	case errors.Is(err, ErrStoreWrite):
		return "store_write_failure"
	case errors.Is(err, ErrAcquire):
		return "acquire_failed"
	case errors.Is(err, ErrConfiguration):
		return "configuration"
	case errors.Is(err, ErrRunLocked):
		return "run_locked"
	case errors.Is(err, ErrPatternNotFound):
		return "pattern_not_found"
	default:
		return "unknown"
	}
}

// Fatal reports whether err must terminate the run. Only a missing pattern is
// recoverable; it degrades a single field to empty.
func Fatal(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, ErrPatternNotFound)
}

func buildDetail(stage, operation, message string) string {
	parts := make([]string, 0, 3)
	if stage = strings.TrimSpace(stage); stage != "" {
		parts = append(parts, stage)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "pipeline failure"
	}
	return strings.Join(parts, ": ")
}
