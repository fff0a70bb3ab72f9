// Package api defines wire-format types and the read-only HTTP view of the
// catalog.
//
// # Key Types
//
// Series and Episode: transport representations of catalog rows.
//
// Status: database health, row counts, and dependency availability.
//
// # Routes
//
//	GET /api/series                series in id order
//	GET /api/series/{id}           one series
//	GET /api/series/{id}/episodes  episodes of one series
//	GET /api/episodes              all episodes, ?series=NAME filters by cleaned name
//	GET /api/status                database health
//
// # Design Notes
//
// DTOs use camelCase JSON tags for JavaScript consumers. Empty strings are
// kept rather than omitted: an empty year or abstract means the post did not
// carry one. The view never writes; rebuilding happens through the CLI.
package api
