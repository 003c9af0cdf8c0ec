// Package core holds the small set of abstractions shared by every scafsln
// package: the FileSystem seam used for all project I/O, its OS and in-memory
// implementations, file permission constants and the error taxonomy surfaced
// to callers of the resolution engine.
package core
