// Package testutil provides test doubles shared across pystack test
// suites, most notably the in-memory types.FS implementation used to
// exercise the materializer without touching the real filesystem.
package testutil
