// Package fileio implements the editor's two external file operations:
// reading a file into lines with CRLF normalized away, and writing lines
// back atomically. Neither operation understands documents, undo, or
// cursors — it only moves bytes.
package fileio

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/transform"
)

// crlfToLF is a transform.Transformer that rewrites "\r\n" to "\n" across
// chunk boundaries, so a "\r" at the end of one read buffer and the "\n"
// at the start of the next are still recognized as one line ending.
type crlfToLF struct{ transform.NopResetter }

func (crlfToLF) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		b := src[nSrc]
		if b == '\r' {
			// Need to know whether the next byte is '\n'; if we're at
			// the end of src and not at EOF, ask for more input first.
			if nSrc+1 >= len(src) {
				if !atEOF {
					return nDst, nSrc, transform.ErrShortSrc
				}
				if nDst >= len(dst) {
					return nDst, nSrc, transform.ErrShortDst
				}
				dst[nDst] = '\r'
				nDst++
				nSrc++
				continue
			}
			if src[nSrc+1] == '\n' {
				if nDst >= len(dst) {
					return nDst, nSrc, transform.ErrShortDst
				}
				dst[nDst] = '\n'
				nDst++
				nSrc += 2
				continue
			}
		}
		if nDst >= len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		dst[nDst] = b
		nDst++
		nSrc++
	}
	return nDst, nSrc, nil
}

// ReadLines reads path, normalizes CRLF line endings to LF, and splits on
// '\n' into lines. An empty or missing-newline-terminated file still
// yields a well-formed slice; an entirely empty file yields a single
// empty line, since a document may never have zero lines.
func ReadLines(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fileio: read %s: %w", path, err)
	}

	normalized, _, err := transform.Bytes(crlfToLF{}, raw)
	if err != nil {
		return nil, fmt.Errorf("fileio: normalize %s: %w", path, err)
	}

	if len(normalized) == 0 {
		return []string{""}, nil
	}
	text := string(normalized)
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n"), nil
}

// WriteFile writes lines to path atomically: it writes to path+".tmp",
// flushes and syncs that file to durable storage, then renames it over
// path. A partial crash during the write leaves the original file
// untouched.
func WriteFile(lines []string, path string) error {
	dir := filepath.Dir(path)
	tmp := path + ".tmp"

	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("fileio: create %s: %w", tmp, err)
	}

	w := bufio.NewWriter(f)
	for i, line := range lines {
		if _, err := w.WriteString(line); err != nil {
			f.Close()
			os.Remove(tmp)
			return fmt.Errorf("fileio: write %s: %w", tmp, err)
		}
		if i+1 < len(lines) {
			if err := w.WriteByte('\n'); err != nil {
				f.Close()
				os.Remove(tmp)
				return fmt.Errorf("fileio: write %s: %w", tmp, err)
			}
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("fileio: flush %s: %w", tmp, err)
	}

	if err := syncFile(f); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("fileio: sync %s: %w", tmp, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("fileio: close %s: %w", tmp, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("fileio: rename %s to %s: %w", tmp, path, err)
	}

	// Best-effort: sync the containing directory so the rename itself
	// survives a crash on filesystems that need it. Failure here is not
	// reported; the rename has already succeeded.
	if dirf, err := os.Open(dir); err == nil {
		dirf.Sync()
		dirf.Close()
	}
	return nil
}
