// Package materialize reconciles desired artifact content against the
// filesystem with backup-safety.
//
// For each artifact the materializer decides between four actions:
// create the file, skip it because the content is already identical,
// back it up to <path>.bak and overwrite, or overwrite in place when
// --force is set. Dry runs compute the same decision read-only and
// report it without touching the filesystem.
//
// Running the materializer twice in a row with unchanged desired
// content yields created-then-skipped; a second backup is never taken.
// Backups are single-generation: a new backup replaces any prior .bak.
package materialize
