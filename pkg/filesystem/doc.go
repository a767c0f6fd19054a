// Package filesystem provides the OS-backed implementation of the
// types.FS storage port.
package filesystem
