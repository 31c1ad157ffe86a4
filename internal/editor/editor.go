// Package editor is the top-level coordinator: it owns documents and
// panes, routes keys by mode, exposes the colon-command registry, and
// services search. Every mutating action is mediated through a
// document's history.Log so undo/redo and dot-repeat stay consistent.
package editor

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/dshills/mvim/internal/config"
	"github.com/dshills/mvim/internal/coord"
	"github.com/dshills/mvim/internal/document"
	"github.com/dshills/mvim/internal/fileio"
	"github.com/dshills/mvim/internal/input"
	"github.com/dshills/mvim/internal/layout"
	"github.com/dshills/mvim/internal/linestore"
	"github.com/dshills/mvim/internal/logging"
)

// Mode is the editor's current input mode.
type Mode uint8

const (
	ModeNormal Mode = iota
	ModeInsert
	ModeCommand
	ModeVisual
	ModeVisualLine
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeInsert:
		return "INSERT"
	case ModeCommand:
		return "COMMAND"
	case ModeVisual:
		return "VISUAL"
	case ModeVisualLine:
		return "V-LINE"
	default:
		return "?"
	}
}

// Register holds the most recently yanked or deleted text.
type Register struct {
	Lines    []string
	Linewise bool
}

// Editor is the full in-memory editing session: documents, the pane
// layout tree, the register, search state, and the command line.
type Editor struct {
	Backend linestore.Backend
	Options config.Options
	Log     *logging.Logger

	Mode    Mode
	Decoder *input.Decoder

	docs      map[int]*document.Document
	pathToDoc map[string]int
	nextDocID int

	tree       *layout.Tree
	activePane int
	screen     layout.Rect

	Register Register

	VisualAnchor coord.Position

	LastSearch        string
	LastSearchForward bool
	LastSearchHits    []SearchHit

	CmdLine    string
	CmdPrefix  byte // ':', '/', or '?'
	Message    string

	insertBuf insertBuffer

	commands map[string]commandFunc

	ShouldQuit bool
}

// SearchHit is one match recorded by a search, for highlight rendering.
type SearchHit struct {
	Row, Col, Len int
}

// New creates an Editor with a single pane over path (or a scratch buffer
// if path is ""), using backend for every new document's LineStore.
func New(backend linestore.Backend, path string, log *logging.Logger) (*Editor, error) {
	if log == nil {
		log = logging.Null
	}
	e := &Editor{
		Backend:           backend,
		Options:           config.Default(),
		Log:               log,
		Mode:              ModeNormal,
		Decoder:           input.NewDecoder(),
		docs:              make(map[int]*document.Document),
		pathToDoc:         make(map[string]int),
		LastSearchForward: true,
	}
	e.registerCommands()

	docID, err := e.openDocument(path)
	if err != nil {
		return nil, err
	}
	e.tree = layout.NewTree(docID)
	e.activePane = 0
	return e, nil
}

// openDocument returns the doc id for path, sharing an already-open
// Document if one exists, or creating and reading a new one.
func (e *Editor) openDocument(path string) (int, error) {
	if path == "" {
		id := e.nextDocID
		e.nextDocID++
		e.docs[id] = document.New(e.Backend)
		return id, nil
	}
	abs, err := canonicalize(path)
	if err != nil {
		return 0, err
	}
	if id, ok := e.pathToDoc[abs]; ok {
		return id, nil
	}
	lines, err := fileio.ReadLines(abs)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return 0, err
		}
		// A nonexistent path is a legitimate "new file" target, not a
		// read failure: open it as a scratch buffer over that path.
		id := e.nextDocID
		e.nextDocID++
		d := document.Open(e.Backend, abs, nil)
		e.docs[id] = d
		e.pathToDoc[abs] = id
		return id, nil
	}
	id := e.nextDocID
	e.nextDocID++
	e.docs[id] = document.Open(e.Backend, abs, lines)
	e.pathToDoc[abs] = id
	return id, nil
}

// ActivePane returns the currently focused pane.
func (e *Editor) ActivePane() *layout.Pane {
	return e.tree.Pane(e.activePane)
}

// ActiveDoc returns the Document behind the currently focused pane.
func (e *Editor) ActiveDoc() *document.Document {
	return e.docs[e.ActivePane().Doc]
}

// PaneAt returns the pane with the given id, for drawing every pane in
// the layout rather than just the active one.
func (e *Editor) PaneAt(id int) *layout.Pane {
	return e.tree.Pane(id)
}

// DocAt returns the Document behind the pane with the given id.
func (e *Editor) DocAt(id int) *document.Document {
	return e.docs[e.PaneAt(id).Doc]
}

// SetScreen records the current terminal size so layout and directional
// focus computations have an area to partition.
func (e *Editor) SetScreen(rows, cols int) {
	e.screen = layout.Rect{Row: 0, Col: 0, Height: rows - 1, Width: cols} // last row reserved for the status line
}

// Layout returns the current pane rects.
func (e *Editor) Layout() []layout.PaneRect {
	return e.tree.CollectLayout(e.screen)
}

func (e *Editor) maxColForRow(row int) int {
	s := e.ActiveDoc().Store
	if row < 0 || row >= s.Count() {
		return 0
	}
	n := len([]byte(s.Get(row)))
	if e.Options.OneMore {
		return n
	}
	if n == 0 {
		return 0
	}
	return n - 1
}

// clampCursor clamps the active pane's cursor to the current document's
// bounds, honoring the onemore virtual column.
func (e *Editor) clampCursor() {
	p := e.ActivePane()
	s := e.ActiveDoc().Store
	maxRow := s.Count() - 1
	if maxRow < 0 {
		maxRow = 0
	}
	if p.Cur.Row > maxRow {
		p.Cur.Row = maxRow
	}
	if p.Cur.Row < 0 {
		p.Cur.Row = 0
	}
	maxCol := e.maxColForRow(p.Cur.Row)
	if p.Cur.Col > maxCol {
		p.Cur.Col = maxCol
	}
	if p.Cur.Col < 0 {
		p.Cur.Col = 0
	}
}

// canonicalize resolves path to an absolute, lexically normalized form
// used to key the document table.
func canonicalize(path string) (string, error) {
	abs, err := absPath(path)
	if err != nil {
		return "", fmt.Errorf("editor: canonicalize %s: %w", path, err)
	}
	return abs, nil
}
