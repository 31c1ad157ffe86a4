// Package document ties one editable file's state together: a
// linestore.LineStore, a history.Log, an optional backing path, a dirty
// flag, and the last committed undo group (the basis for dot-repeat).
package document

import (
	"github.com/dshills/mvim/internal/coord"
	"github.com/dshills/mvim/internal/history"
	"github.com/dshills/mvim/internal/linestore"
)

// Document is one editable file's full editing state.
type Document struct {
	Store linestore.LineStore
	Log   *history.Log

	// LastChange is a copy of the most recently committed group, used by
	// dot-repeat. Zero value (nil Ops) means no change has been
	// committed yet in this session.
	LastChange history.Group

	// Path is the backing file path, or "" for a scratch buffer with no
	// file on disk.
	Path string

	// Dirty is true iff at least one edit has been applied since the
	// last successful save (or open).
	Dirty bool
}

// New creates a scratch Document (no backing path) over a fresh LineStore
// of the given backend.
func New(backend linestore.Backend) *Document {
	return &Document{
		Store: linestore.New(backend),
		Log:   history.NewLog(),
	}
}

// Open creates a Document over lines read from path, not yet dirty.
func Open(backend linestore.Backend, path string, lines []string) *Document {
	return &Document{
		Store: linestore.NewFromLines(backend, lines),
		Log:   history.NewLog(),
		Path:  path,
	}
}

// Begin opens an undo group at pre. See history.Log.Begin.
func (d *Document) Begin(pre coord.Position) {
	d.Log.Begin(pre)
}

// Push appends op to the open undo group. See history.Log.Push.
func (d *Document) Push(op history.Operation) {
	d.Log.Push(op)
}

// Commit closes the open undo group, marks the document dirty if it
// recorded any operation, and stamps LastChange for dot-repeat.
func (d *Document) Commit(post coord.Position) {
	g, ok := d.Log.Commit(post)
	if !ok {
		return
	}
	d.Dirty = true
	d.LastChange = g
}

// Undo restores the document to the state before its most recent
// committed group, returning the cursor to set.
func (d *Document) Undo() (coord.Position, error) {
	return d.Log.Undo(d.Store)
}

// Redo re-applies the most recently undone group, returning the cursor
// to set.
func (d *Document) Redo() (coord.Position, error) {
	return d.Log.Redo(d.Store)
}

// MarkSaved clears the dirty flag after a successful write, and sets
// Path if save-as wrote to a new location.
func (d *Document) MarkSaved(path string) {
	if path != "" {
		d.Path = path
	}
	d.Dirty = false
}
