package editor

import "github.com/dshills/mvim/internal/coord"

// insertBuffer tracks the undo group open for the current Insert-mode
// session: it begins on entry and commits as one group on Escape, so a
// whole insert run (however many characters) undoes in a single step.
type insertBuffer struct {
	active bool
	pre    coord.Position
}

// beginInsert opens the Insert-mode undo group at the current cursor.
func (e *Editor) beginInsert() {
	p := e.ActivePane()
	e.insertBuf = insertBuffer{active: true, pre: p.Cur}
	e.ActiveDoc().Begin(p.Cur)
	e.Mode = ModeInsert
}

// insertTyped inserts a typed character (not Enter/Backspace, which have
// their own handling) at the cursor, recording it in the open group. With
// auto-pair on, an opening bracket inserts its closing partner too (cursor
// left between them), and typing a closing bracket that the cursor
// already sits on types over it instead of duplicating it.
func (e *Editor) insertTyped(r rune) {
	p := e.ActivePane()
	d := e.ActiveDoc()
	s := d.Store.Get(p.Cur.Row)
	col := p.Cur.Col

	if e.Options.AutoPair {
		if close, ok := pairClose(r); ok {
			next := s[:col] + string(r) + string(close) + s[col:]
			d.Store.ReplaceLine(p.Cur.Row, next)
			d.Push(insertCharOp(p.Cur.Row, col, string(r)))
			d.Push(insertCharOp(p.Cur.Row, col+1, string(close)))
			p.Cur.Col = col + 1
			return
		}
		if isCloseBracket(r) && col < len(s) && s[col] == byte(r) {
			p.Cur.Col = col + 1
			return
		}
	}

	text := string(r)
	next := s[:col] + text + s[col:]
	d.Store.ReplaceLine(p.Cur.Row, next)
	for i := 0; i < len(text); i++ {
		d.Push(insertCharOp(p.Cur.Row, col+i, text[i:i+1]))
	}
	p.Cur.Col += len(text)
}

// pairClose returns the closing bracket auto-paired with an opening one.
func pairClose(r rune) (rune, bool) {
	switch r {
	case '(':
		return ')', true
	case '[':
		return ']', true
	case '{':
		return '}', true
	}
	return 0, false
}

func isCloseBracket(r rune) bool {
	switch r {
	case ')', ']', '}':
		return true
	}
	return false
}

// insertEnter splits the current line at the cursor, continuing the same
// open Insert-mode group, honoring auto-indent.
func (e *Editor) insertEnter() {
	p := e.ActivePane()
	d := e.ActiveDoc()
	s := d.Store.Get(p.Cur.Row)
	prefix, suffix := s[:p.Cur.Col], s[p.Cur.Col:]
	indent := ""
	if e.Options.AutoIndent {
		indent = leadingWhitespace(prefix)
	}
	d.Store.ReplaceLine(p.Cur.Row, prefix)
	d.Push(replaceLineOp(p.Cur.Row, s, prefix))
	d.Store.InsertLine(p.Cur.Row+1, indent+suffix)
	d.Push(insertLineOp(p.Cur.Row+1, indent+suffix))
	p.Cur = coord.Position{Row: p.Cur.Row + 1, Col: len(indent)}
}

// insertBackspace deletes the byte before the cursor while staying
// inside the same Insert-mode group, joining lines at column 0.
func (e *Editor) insertBackspace() {
	p := e.ActivePane()
	d := e.ActiveDoc()
	if p.Cur.Col > 0 {
		s := d.Store.Get(p.Cur.Row)
		col := p.Cur.Col - 1
		removed := s[col]
		d.Store.ReplaceLine(p.Cur.Row, s[:col]+s[col+1:])
		d.Push(deleteCharOp(p.Cur.Row, col, removed))
		p.Cur.Col = col
		return
	}
	if p.Cur.Row == 0 {
		return
	}
	prevRow := p.Cur.Row - 1
	prev := d.Store.Get(prevRow)
	cur := d.Store.Get(p.Cur.Row)
	d.Store.ReplaceLine(prevRow, prev+cur)
	d.Push(replaceLineOp(prevRow, prev, prev+cur))
	d.Store.EraseLine(p.Cur.Row)
	d.Push(deleteLineOp(p.Cur.Row, cur))
	p.Cur = coord.Position{Row: prevRow, Col: len(prev)}
}

// endInsert closes the Insert-mode undo group and returns to Normal
// mode, moving the cursor one column left per Normal-mode convention
// (the cursor never rests past the last character when not inserting).
func (e *Editor) endInsert() {
	p := e.ActivePane()
	e.ActiveDoc().Commit(p.Cur)
	e.insertBuf = insertBuffer{}
	e.Mode = ModeNormal
	if p.Cur.Col > 0 {
		p.Cur.Col--
	}
	e.clampCursor()
}
