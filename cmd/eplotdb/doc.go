// Package main hosts the eplotdb CLI entrypoint and command graph.
//
// The Cobra-based command tree turns terminal invocations into catalog
// rebuilds, listings, exports, and the read-only HTTP view. It centralizes
// configuration resolution and logger setup so subcommands stay declarative.
//
// Keep this package lean: add new functionality in the internal packages
// first, then surface it through a dedicated command or flag here.
package main
