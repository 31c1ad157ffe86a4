package term

import (
	"fmt"

	"github.com/rivo/uniseg"
)

// StatusLine renders the one-line status bar: mode name, file path (with
// a dirty marker), backend name, and cursor position, truncated to fit
// the terminal width. Display width is measured with uniseg rather than
// a byte or rune count, since the path or mode name could in principle
// contain multi-cell grapheme clusters even though the byte-indexed
// editing model itself never needs this — this is purely a rendering
// concern at the outer boundary.
type StatusLine struct {
	Mode     string
	Path     string
	Dirty    bool
	Backend  string
	Row, Col int
}

// Render formats the status line's text, clipping it (without an
// ellipsis) if it would exceed width display cells.
func (s StatusLine) Render(width int) string {
	marker := ""
	if s.Dirty {
		marker = "[+]"
	}
	path := s.Path
	if path == "" {
		path = "[No Name]"
	}
	text := fmt.Sprintf("%s %s%s  (%s)  %d,%d", s.Mode, path, marker, s.Backend, s.Row+1, s.Col+1)
	return truncateToWidth(text, width)
}

// truncateToWidth clips text so its display width (via uniseg grapheme
// clustering) does not exceed width cells.
func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if DisplayWidth(text) <= width {
		return text
	}
	g := uniseg.NewGraphemes(text)
	var out []byte
	used := 0
	for g.Next() {
		cluster := g.Str()
		w := uniseg.StringWidth(cluster)
		if used+w > width {
			break
		}
		out = append(out, cluster...)
		used += w
	}
	return string(out)
}

// DisplayWidth returns the terminal display width of text.
func DisplayWidth(text string) int {
	return uniseg.StringWidth(text)
}
