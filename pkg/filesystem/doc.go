// Package filesystem provides filesystem implementations for pystack.
//
// This package contains the production implementation of the types.FS
// interface backed by the OS filesystem. Writes go through renameio so
// a file is either fully written or left untouched.
package filesystem
