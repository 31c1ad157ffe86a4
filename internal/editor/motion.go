package editor

import (
	"github.com/dshills/mvim/internal/coord"
	"github.com/dshills/mvim/internal/linestore"
)

// charClass buckets a byte into one of three classes word motions treat
// as runs: letters/digits/underscore, punctuation/symbols, or
// whitespace. A blank line is its own one-cell space run so word motions
// can land on it.
type charClass uint8

const (
	classSpace charClass = iota
	classWord
	classSymbol
)

func classify(b byte) charClass {
	switch {
	case b == ' ' || b == '\t':
		return classSpace
	case b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9'):
		return classWord
	default:
		return classSymbol
	}
}

// moveWordForward advances pos to the start of the next word or symbol
// run, crossing line boundaries; an empty line counts as one stop.
func moveWordForward(s linestore.LineStore, pos coord.Position) coord.Position {
	row, col := pos.Row, pos.Col
	line := s.Get(row)

	if len(line) == 0 {
		return nextLineStart(s, row)
	}

	startClass := classify(line[col])
	// Skip the remainder of the current run.
	for col < len(line) && classify(line[col]) == startClass && startClass != classSpace {
		col++
	}
	for {
		if col >= len(line) {
			next := nextLineStart(s, row)
			if next.Row == row {
				return coord.Position{Row: row, Col: col}
			}
			row, col = next.Row, 0
			line = s.Get(row)
			if len(line) == 0 {
				return next
			}
			continue
		}
		if classify(line[col]) != classSpace {
			return coord.Position{Row: row, Col: col}
		}
		col++
	}
}

// nextLineStart returns the first cell of the next non-empty boundary:
// either column 0 of the next line (even if empty, which is itself a
// valid word-motion stop) or stays put at the end of the document.
func nextLineStart(s linestore.LineStore, row int) coord.Position {
	if row+1 >= s.Count() {
		last := s.Get(row)
		return coord.Position{Row: row, Col: maxInt(0, len(last))}
	}
	return coord.Position{Row: row + 1, Col: 0}
}

// moveWordEnd advances pos to the last byte of the current or next word
// or symbol run.
func moveWordEnd(s linestore.LineStore, pos coord.Position) coord.Position {
	row, col := pos.Row, pos.Col
	line := s.Get(row)

	col++
	for {
		if col >= len(line) {
			if row+1 >= s.Count() {
				if len(line) == 0 {
					return coord.Position{Row: row, Col: 0}
				}
				return coord.Position{Row: row, Col: len(line) - 1}
			}
			row++
			line = s.Get(row)
			col = 0
			continue
		}
		if classify(line[col]) != classSpace {
			break
		}
		col++
	}
	runClass := classify(line[col])
	for col+1 < len(line) && classify(line[col+1]) == runClass {
		col++
	}
	return coord.Position{Row: row, Col: col}
}

// moveWordBackward retreats pos to the start of the previous word or
// symbol run.
func moveWordBackward(s linestore.LineStore, pos coord.Position) coord.Position {
	row, col := pos.Row, pos.Col
	line := s.Get(row)

	col--
	for {
		if col < 0 {
			if row == 0 {
				return coord.Position{Row: 0, Col: 0}
			}
			row--
			line = s.Get(row)
			col = len(line) - 1
			if len(line) == 0 {
				return coord.Position{Row: row, Col: 0}
			}
			continue
		}
		if classify(line[col]) != classSpace {
			break
		}
		col--
	}
	runClass := classify(line[col])
	for col-1 >= 0 && classify(line[col-1]) == runClass {
		col--
	}
	return coord.Position{Row: row, Col: col}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// kmpTable builds the KMP partial-match table for pattern.
func kmpTable(pattern string) []int {
	t := make([]int, len(pattern))
	k := 0
	for i := 1; i < len(pattern); i++ {
		for k > 0 && pattern[i] != pattern[k] {
			k = t[k-1]
		}
		if pattern[i] == pattern[k] {
			k++
		}
		t[i] = k
	}
	return t
}

// kmpFindFrom returns the column of the first occurrence of pattern in
// text at or after fromCol, or -1.
func kmpFindFrom(text, pattern string, fromCol int) int {
	if pattern == "" || fromCol < 0 || fromCol > len(text) {
		return -1
	}
	table := kmpTable(pattern)
	k := 0
	for i := fromCol; i < len(text); i++ {
		for k > 0 && text[i] != pattern[k] {
			k = table[k-1]
		}
		if text[i] == pattern[k] {
			k++
		}
		if k == len(pattern) {
			return i - k + 1
		}
	}
	return -1
}

// kmpFindAllInLine returns every match column of pattern in text.
func kmpFindAllInLine(text, pattern string) []int {
	if pattern == "" {
		return nil
	}
	var hits []int
	table := kmpTable(pattern)
	k := 0
	for i := 0; i < len(text); i++ {
		for k > 0 && text[i] != pattern[k] {
			k = table[k-1]
		}
		if text[i] == pattern[k] {
			k++
		}
		if k == len(pattern) {
			hits = append(hits, i-k+1)
			k = table[k-1]
		}
	}
	return hits
}

// searchForward finds the next match of pattern strictly after from,
// scanning forward without wrapping past the last line.
func searchForward(s linestore.LineStore, from coord.Position, pattern string) (coord.Position, bool) {
	if pattern == "" {
		return coord.Position{}, false
	}
	row := from.Row
	col := kmpFindFrom(s.Get(row), pattern, from.Col+1)
	if col >= 0 {
		return coord.Position{Row: row, Col: col}, true
	}
	for row++; row < s.Count(); row++ {
		col := kmpFindFrom(s.Get(row), pattern, 0)
		if col >= 0 {
			return coord.Position{Row: row, Col: col}, true
		}
	}
	return coord.Position{}, false
}

// searchBackward finds the previous match of pattern strictly before
// from, scanning backward without wrapping past the first line.
func searchBackward(s linestore.LineStore, from coord.Position, pattern string) (coord.Position, bool) {
	if pattern == "" {
		return coord.Position{}, false
	}
	row := from.Row
	if hits := kmpFindAllInLine(s.Get(row), pattern); len(hits) > 0 {
		for i := len(hits) - 1; i >= 0; i-- {
			if hits[i] < from.Col {
				return coord.Position{Row: row, Col: hits[i]}, true
			}
		}
	}
	for row--; row >= 0; row-- {
		hits := kmpFindAllInLine(s.Get(row), pattern)
		if len(hits) > 0 {
			return coord.Position{Row: row, Col: hits[len(hits)-1]}, true
		}
	}
	return coord.Position{}, false
}

// recomputeSearchHits rebuilds the full match set for pattern across
// every line of s, used to drive highlight rendering. It runs on each
// explicit search; edits do not refresh the hit set.
func recomputeSearchHits(s linestore.LineStore, pattern string) []SearchHit {
	if pattern == "" {
		return nil
	}
	var hits []SearchHit
	for row := 0; row < s.Count(); row++ {
		for _, col := range kmpFindAllInLine(s.Get(row), pattern) {
			hits = append(hits, SearchHit{Row: row, Col: col, Len: len(pattern)})
		}
	}
	return hits
}
