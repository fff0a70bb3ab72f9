// Package posts lists and reads the markdown documents a rebuild consumes.
//
// Enumeration is flat and ordered: only regular files directly
// inside the content directory with a .md extension are returned, sorted by
// filename in byte order. The order decides which post is the first-seen
// representative of a series, so it must never depend on the filesystem.
package posts
