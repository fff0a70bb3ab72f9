// Package catalog persists series and episodes in SQLite.
//
// The Store owns the database connection, the schema, and the SQLITE_BUSY
// retry policy. Writes happen only through Rebuild, which hands a Writer bound
// to a single transaction: the tables are cleared, their AUTOINCREMENT
// counters reset, and everything is inserted again. A failed rebuild rolls
// back and leaves the previous contents intact.
//
// The read side (ListSeries, ListEpisodes, EpisodesForSeries, SeriesByID,
// Counts, CheckHealth) backs the CLI listings, exports, and the HTTP view.
//
// There is no schema versioning. Tables are created with IF NOT EXISTS and the
// data is disposable since every sync rebuilds it.
package catalog
