// Package history implements the grouped, replayable undo log that sits
// between the editor and a linestore.LineStore: every mutating editor
// action records one or more tagged Operations, groups them under a
// single undo/redo unit, and can walk either direction by replaying each
// operation's inverse.
package history

import "github.com/dshills/mvim/internal/coord"

// OpType tags which inverse an Operation requires during Undo/Redo.
type OpType uint8

const (
	InsertChar OpType = iota
	DeleteChar
	InsertLine
	DeleteLine
	ReplaceLine
	InsertLinesBlock
	DeleteLinesBlock
)

// String names the operation kind, used only in diagnostics.
func (t OpType) String() string {
	switch t {
	case InsertChar:
		return "insert-char"
	case DeleteChar:
		return "delete-char"
	case InsertLine:
		return "insert-line"
	case DeleteLine:
		return "delete-line"
	case ReplaceLine:
		return "replace-line"
	case InsertLinesBlock:
		return "insert-lines-block"
	case DeleteLinesBlock:
		return "delete-lines-block"
	default:
		return "unknown"
	}
}

// Operation is one recorded mutation. Payload/Alt hold whatever bytes the
// operation's inverse needs to reconstruct the prior (Payload) or new
// (Alt) state; which fields are meaningful depends on Type:
//
//   - InsertChar/DeleteChar: Payload[0] is the single affected byte.
//   - InsertLine: Payload is the inserted line's text (undo erases it).
//   - DeleteLine: Payload is the removed line's text (undo reinserts it).
//   - ReplaceLine: Payload is the line's prior text, Alt its new text.
//   - InsertLinesBlock/DeleteLinesBlock: Payload is the affected lines
//     joined by '\n'.
type Operation struct {
	Type    OpType
	Row     int
	Col     int
	Payload string
	Alt     string
}

// Group is one undoable unit: every Operation recorded between Begin and
// Commit, plus the cursor position immediately before and after.
type Group struct {
	Ops  []Operation
	Pre  coord.Position
	Post coord.Position
}
