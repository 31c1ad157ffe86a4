// Package coord provides the shared cursor/position type used by the
// history, layout, and editor packages.
package coord

import "fmt"

// Position is a (row, col) pair addressing a byte within a LineStore.
// Both fields are 0-indexed; Col is a byte offset within the row.
type Position struct {
	Row int
	Col int
}

// String returns a human-readable "row:col" representation.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Row, p.Col)
}

// Add returns p shifted by delta.
func (p Position) Add(delta Position) Position {
	return Position{Row: p.Row + delta.Row, Col: p.Col + delta.Col}
}

// Sub returns the delta from other to p (p - other).
func (p Position) Sub(other Position) Position {
	return Position{Row: p.Row - other.Row, Col: p.Col - other.Col}
}

// ClampRow returns p with Row clamped to [0, maxRow].
func (p Position) ClampRow(maxRow int) Position {
	r := p.Row
	if r < 0 {
		r = 0
	}
	if r > maxRow {
		r = maxRow
	}
	return Position{Row: r, Col: p.Col}
}

// Clamp returns p with Row clamped to [0, maxRow] and Col to [0, maxCol].
func (p Position) Clamp(maxRow, maxCol int) Position {
	p = p.ClampRow(maxRow)
	c := p.Col
	if c < 0 {
		c = 0
	}
	if c > maxCol {
		c = maxCol
	}
	return Position{Row: p.Row, Col: c}
}
