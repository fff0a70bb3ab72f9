// Package preflight provides readiness checks for the filesystem paths
// eplotdb reads and writes.
//
// The CLI "eplotdb status" command renders every Result; "eplotdb sync"
// runs the writable-path checks before a rebuild so a read-only database
// directory fails before git or the extractor do any work.
package preflight
