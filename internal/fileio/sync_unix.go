//go:build linux || freebsd || openbsd || netbsd || dragonfly

package fileio

import (
	"os"

	"golang.org/x/sys/unix"
)

// syncFile flushes f's data (and, where the platform distinguishes it,
// skips the metadata-only portion of a full fsync) to durable storage.
func syncFile(f *os.File) error {
	return unix.Fdatasync(int(f.Fd()))
}
