package history

import (
	"errors"
	"strings"

	"github.com/dshills/mvim/internal/coord"
	"github.com/dshills/mvim/internal/linestore"
)

// Common errors for undo/redo operations.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// Log is the undo/redo stack for a single document. It never touches a
// LineStore directly except while replaying Undo/Redo, and never
// observes editor-level concepts like modes or registers.
type Log struct {
	undo []Group
	redo []Group

	grouping bool
	current  Group
}

// NewLog creates an empty undo/redo log.
func NewLog() *Log {
	return &Log{}
}

// Begin opens a new group, recording pre as its pre-edit cursor. Nested
// Begin calls while already grouping are no-ops: grouping is single-level.
func (l *Log) Begin(pre coord.Position) {
	if l.grouping {
		return
	}
	l.grouping = true
	l.current = Group{Pre: pre}
}

// Push appends op to the open group. A Push outside Begin/Commit is
// silently dropped.
func (l *Log) Push(op Operation) {
	if !l.grouping {
		return
	}
	l.current.Ops = append(l.current.Ops, op)
}

// Commit closes the open group, recording post as its post-edit cursor,
// and pushes it onto the undo stack (clearing the redo stack) as long as
// it recorded at least one operation. An empty group (a keystroke that
// changed nothing) is discarded without disturbing redo. It returns the
// committed group and true, or the zero Group and false if nothing was
// committed — the caller (Document) uses this to stamp last_change.
func (l *Log) Commit(post coord.Position) (Group, bool) {
	if !l.grouping {
		return Group{}, false
	}
	l.grouping = false
	l.current.Post = post
	g := l.current
	l.current = Group{}
	if len(g.Ops) == 0 {
		return Group{}, false
	}
	l.undo = append(l.undo, g)
	l.redo = nil
	return g, true
}

// ClearRedo discards the redo stack, for a change applied outside the
// Begin/Push/Commit protocol. Commit already clears the redo stack for
// every non-empty group.
func (l *Log) ClearRedo() {
	l.redo = nil
}

// CanUndo reports whether Undo would do anything.
func (l *Log) CanUndo() bool { return len(l.undo) > 0 }

// CanRedo reports whether Redo would do anything.
func (l *Log) CanRedo() bool { return len(l.redo) > 0 }

// Undo pops the most recent group, applies each operation's inverse to
// store in reverse order, moves the group to the redo stack, and returns
// the cursor position to restore. It returns ErrNothingToUndo if the undo
// stack is empty.
func (l *Log) Undo(store linestore.LineStore) (coord.Position, error) {
	if len(l.undo) == 0 {
		return coord.Position{}, ErrNothingToUndo
	}
	g := l.undo[len(l.undo)-1]
	l.undo = l.undo[:len(l.undo)-1]

	for i := len(g.Ops) - 1; i >= 0; i-- {
		undoOne(store, g.Ops[i])
	}

	l.redo = append(l.redo, g)
	return g.Pre, nil
}

// Redo pops the most recent redo group, re-applies each operation
// forward, moves the group back onto the undo stack, and returns the
// cursor position to restore. It returns ErrNothingToRedo if the redo
// stack is empty.
func (l *Log) Redo(store linestore.LineStore) (coord.Position, error) {
	if len(l.redo) == 0 {
		return coord.Position{}, ErrNothingToRedo
	}
	g := l.redo[len(l.redo)-1]
	l.redo = l.redo[:len(l.redo)-1]

	for i := range g.Ops {
		redoOne(store, g.Ops[i])
	}

	l.undo = append(l.undo, g)
	return g.Post, nil
}

func undoOne(store linestore.LineStore, op Operation) {
	switch op.Type {
	case InsertChar:
		s := store.Get(op.Row)
		if op.Col >= 0 && op.Col < len(s) {
			store.ReplaceLine(op.Row, s[:op.Col]+s[op.Col+1:])
		}
	case DeleteChar:
		s := store.Get(op.Row)
		if op.Col >= 0 && op.Col <= len(s) && len(op.Payload) > 0 {
			store.ReplaceLine(op.Row, s[:op.Col]+op.Payload+s[op.Col:])
		}
	case InsertLine:
		if op.Row < store.Count() {
			store.EraseLine(op.Row)
		}
	case DeleteLine:
		store.InsertLine(op.Row, op.Payload)
	case ReplaceLine:
		if op.Row >= 0 && op.Row < store.Count() {
			store.ReplaceLine(op.Row, op.Payload)
		}
	case InsertLinesBlock:
		count := splitCount(op.Payload)
		if op.Row >= 0 && op.Row+count <= store.Count() {
			store.EraseLines(op.Row, op.Row+count)
		}
	case DeleteLinesBlock:
		store.InsertLines(op.Row, splitLines(op.Payload))
	}
}

func redoOne(store linestore.LineStore, op Operation) {
	switch op.Type {
	case InsertChar:
		s := store.Get(op.Row)
		if op.Col >= 0 && op.Col <= len(s) && len(op.Payload) > 0 {
			store.ReplaceLine(op.Row, s[:op.Col]+op.Payload+s[op.Col:])
		}
	case DeleteChar:
		s := store.Get(op.Row)
		if op.Col >= 0 && op.Col < len(s) {
			store.ReplaceLine(op.Row, s[:op.Col]+s[op.Col+1:])
		}
	case InsertLine:
		store.InsertLine(op.Row, op.Payload)
	case DeleteLine:
		if op.Row < store.Count() {
			store.EraseLine(op.Row)
		}
	case ReplaceLine:
		if op.Row >= 0 && op.Row < store.Count() {
			store.ReplaceLine(op.Row, op.Alt)
		}
	case InsertLinesBlock:
		store.InsertLines(op.Row, splitLines(op.Payload))
	case DeleteLinesBlock:
		count := splitCount(op.Payload)
		if op.Row >= 0 && op.Row+count <= store.Count() {
			store.EraseLines(op.Row, op.Row+count)
		}
	}
}

func splitLines(payload string) []string {
	return strings.Split(payload, "\n")
}

func splitCount(payload string) int {
	return strings.Count(payload, "\n") + 1
}
