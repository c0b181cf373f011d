// Package types defines the core types shared across pystack packages.
//
// It contains the artifact model (ArtifactSpec, Result), the per-invocation
// RunMode, and the FS interface that abstracts filesystem access for
// testing.
package types
