//go:build !(linux || freebsd || openbsd || netbsd || dragonfly)

package fileio

import "os"

// syncFile falls back to a full fsync on platforms without a distinct
// fdatasync syscall (or where x/sys/unix doesn't expose one).
func syncFile(f *os.File) error {
	return f.Sync()
}
