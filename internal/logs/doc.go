// Package logs reads the JSON log file written by the operator logger.
//
// Last returns the final lines of the file with bounded memory; Follow polls
// for appended lines until its context ends. Filter narrows lines to one
// rebuild by run id so `eplotdb logs --run` can show a single sync.
package logs
