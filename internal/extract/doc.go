// Package extract derives episode metadata from a post's filename and text.
//
// Every rule is a small pure function over strings so it can be exercised on
// its own. Extract composes them and never fails: a missing pattern leaves
// the matching field empty and is recorded in Episode.Degraded.
//
// The year/month rule is a heuristic. It takes the first run of exactly six
// digits inside the tags list, which is not necessarily the most year-like tag.
package extract
