// Package source keeps a local checkout of the posts repository current.
//
// A missing checkout is cloned; an existing one is pulled. Git runs as an
// external process through a package-level runner that tests replace.
package source
