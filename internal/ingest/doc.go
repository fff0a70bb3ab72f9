// Package ingest runs one full rebuild: enumerate posts, extract their
// metadata, consolidate series, and load the catalog.
//
// A run holds an advisory file lock next to the database so two processes
// never rebuild the same catalog at once, and tags its log lines with a
// fresh run id.
package ingest
