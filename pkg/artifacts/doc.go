// Package artifacts assembles the catalog of configuration files
// pystack ensures exist in a project: the pre-commit hook
// configuration, the Dependabot update policy and the security policy
// document. The catalog is pure data generation; writing is the
// materializer's job.
package artifacts
