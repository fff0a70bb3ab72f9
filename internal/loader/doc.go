// Package loader turns extracted episodes into catalog rows.
//
// Consolidate is the first pass: one series per distinct cleaned name, dated
// by the first episode seen. Load is the second: inside a single catalog
// rebuild it clears both tables, inserts the series in first-seen order, then
// resolves each episode's series id by name and inserts the episode. Any
// failure aborts the rebuild and the previous tables survive.
package loader
