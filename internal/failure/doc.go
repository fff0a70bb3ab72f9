// Package failure defines the error markers shared by the ingestion pipeline.
//
// Stages wrap their errors with Wrap so callers can classify them with
// errors.Is regardless of how much context was layered on top. Kind maps an
// error to the short event type used in structured logs.
package failure
