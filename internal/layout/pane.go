// Package layout implements the multi-document, tree-split pane model: a
// binary tree of Leaf/Vertical/Horizontal nodes partitions screen space
// by ratio, and each Leaf names a Pane holding a cursor and viewport over
// a shared Document.
package layout

import "github.com/dshills/mvim/internal/coord"

// Viewport is the scroll position of a pane: the first visible row and
// the first visible column.
type Viewport struct {
	TopLine  int
	LeftCol  int
}

// Pane is one view onto a document: its own cursor and viewport, so the
// same Document can be shown at two different scroll positions by two
// panes simultaneously.
type Pane struct {
	ID  int
	Doc int // key into the editor's document table
	Cur coord.Position
	VP  Viewport
}

// Direction names a Ctrl-W h/j/k/l focus move.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)
