package editor

import (
	"github.com/dshills/mvim/internal/coord"
	"github.com/dshills/mvim/internal/history"
)

// insertCharAt records and applies inserting byte b at pos, wrapped in
// its own undo group, then advances the cursor past it.
func (e *Editor) insertCharAt(pos coord.Position, b byte) {
	d := e.ActiveDoc()
	d.Begin(pos)
	s := d.Store.Get(pos.Row)
	d.Store.ReplaceLine(pos.Row, s[:pos.Col]+string(b)+s[pos.Col:])
	d.Push(history.Operation{Type: history.InsertChar, Row: pos.Row, Col: pos.Col, Payload: string(b)})
	post := coord.Position{Row: pos.Row, Col: pos.Col + 1}
	d.Commit(post)
	e.ActivePane().Cur = post
}

// deleteCharAt removes the byte at pos (a no-op past end of line),
// wrapped in its own undo group.
func (e *Editor) deleteCharAt(pos coord.Position) {
	d := e.ActiveDoc()
	s := d.Store.Get(pos.Row)
	if pos.Col < 0 || pos.Col >= len(s) {
		return
	}
	d.Begin(pos)
	removed := s[pos.Col]
	d.Store.ReplaceLine(pos.Row, s[:pos.Col]+s[pos.Col+1:])
	d.Push(history.Operation{Type: history.DeleteChar, Row: pos.Row, Col: pos.Col, Payload: string(removed)})
	d.Commit(pos)
	e.clampCursor()
}

// splitLineAtCursor splits the current line at col into two lines,
// replacing the original with its prefix and inserting its suffix as a
// new line below.
func (e *Editor) splitLineAtCursor(pos coord.Position) {
	d := e.ActiveDoc()
	s := d.Store.Get(pos.Row)
	prefix, suffix := s[:pos.Col], s[pos.Col:]
	d.Begin(pos)
	d.Store.ReplaceLine(pos.Row, prefix)
	d.Push(history.Operation{Type: history.ReplaceLine, Row: pos.Row, Payload: s, Alt: prefix})
	d.Store.InsertLine(pos.Row+1, suffix)
	d.Push(history.Operation{Type: history.InsertLine, Row: pos.Row + 1, Payload: suffix})
	post := coord.Position{Row: pos.Row + 1, Col: 0}
	d.Commit(post)
	e.ActivePane().Cur = post
}

// insertLineBelow opens a new, possibly auto-indented, empty line below
// row and moves the cursor onto it.
func (e *Editor) insertLineBelow(row int) {
	d := e.ActiveDoc()
	indent := ""
	if e.Options.AutoIndent {
		indent = leadingWhitespace(d.Store.Get(row))
	}
	pos := coord.Position{Row: row, Col: len(d.Store.Get(row))}
	d.Begin(pos)
	d.Store.InsertLine(row+1, indent)
	d.Push(history.Operation{Type: history.InsertLine, Row: row + 1, Payload: indent})
	post := coord.Position{Row: row + 1, Col: len(indent)}
	d.Commit(post)
	e.ActivePane().Cur = post
}

// insertLineAbove opens a new, possibly auto-indented, empty line above
// row and moves the cursor onto it.
func (e *Editor) insertLineAbove(row int) {
	d := e.ActiveDoc()
	indent := ""
	if e.Options.AutoIndent {
		indent = leadingWhitespace(d.Store.Get(row))
	}
	pos := coord.Position{Row: row, Col: 0}
	d.Begin(pos)
	d.Store.InsertLine(row, indent)
	d.Push(history.Operation{Type: history.InsertLine, Row: row, Payload: indent})
	post := coord.Position{Row: row, Col: len(indent)}
	d.Commit(post)
	e.ActivePane().Cur = post
}

func leadingWhitespace(s string) string {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return s[:i]
}

// backspace deletes the byte before the cursor, joining with the
// previous line when the cursor sits at column 0.
func (e *Editor) backspace() {
	p := e.ActivePane()
	d := e.ActiveDoc()
	if p.Cur.Col > 0 {
		e.deleteCharAt(coord.Position{Row: p.Cur.Row, Col: p.Cur.Col - 1})
		p.Cur.Col--
		return
	}
	if p.Cur.Row == 0 {
		return
	}
	prevRow := p.Cur.Row - 1
	prev := d.Store.Get(prevRow)
	cur := d.Store.Get(p.Cur.Row)
	pre := coord.Position{Row: p.Cur.Row, Col: 0}
	d.Begin(pre)
	d.Store.ReplaceLine(prevRow, prev+cur)
	d.Push(history.Operation{Type: history.ReplaceLine, Row: prevRow, Payload: prev, Alt: prev + cur})
	d.Store.EraseLine(p.Cur.Row)
	d.Push(history.Operation{Type: history.DeleteLine, Row: p.Cur.Row, Payload: cur})
	post := coord.Position{Row: prevRow, Col: len(prev)}
	d.Commit(post)
	p.Cur = post
}

// deleteLine removes row entirely (dd with no count beyond one), leaving
// the cursor at the same row index (clamped).
func (e *Editor) deleteLine(row int) {
	e.deleteLinesRange(row, row+1)
}

// deleteLinesRange removes rows [rowStart, rowEnd), recording one
// DeleteLinesBlock op (or DeleteLine if exactly one row), and yanks the
// removed text into the register as linewise.
func (e *Editor) deleteLinesRange(rowStart, rowEnd int) {
	d := e.ActiveDoc()
	n := d.Store.Count()
	if rowStart < 0 {
		rowStart = 0
	}
	if rowEnd > n {
		rowEnd = n
	}
	if rowEnd <= rowStart {
		return
	}
	var removed []string
	for r := rowStart; r < rowEnd; r++ {
		removed = append(removed, d.Store.Get(r))
	}
	e.Register = Register{Lines: removed, Linewise: true}

	pre := coord.Position{Row: rowStart, Col: 0}
	d.Begin(pre)
	if rowEnd-rowStart == 1 {
		d.Store.EraseLine(rowStart)
		d.Push(history.Operation{Type: history.DeleteLine, Row: rowStart, Payload: removed[0]})
	} else {
		d.Store.EraseLines(rowStart, rowEnd)
		d.Push(history.Operation{Type: history.DeleteLinesBlock, Row: rowStart, Payload: joinLines(removed)})
	}
	post := coord.Position{Row: minInt(rowStart, d.Store.Count()-1), Col: 0}
	d.Commit(post)
	e.ActivePane().Cur = post
}

// indentRange shifts every row in [rowStart, rowEnd) one tab-width of
// spaces to the right (>>), recording one ReplaceLine op per changed row.
func (e *Editor) indentRange(rowStart, rowEnd int) {
	e.shiftRange(rowStart, rowEnd, true)
}

// dedentRange is indentRange's inverse (<<): it removes up to one
// tab-width of leading spaces/tabs from every row in the range.
func (e *Editor) dedentRange(rowStart, rowEnd int) {
	e.shiftRange(rowStart, rowEnd, false)
}

func (e *Editor) shiftRange(rowStart, rowEnd int, indent bool) {
	d := e.ActiveDoc()
	n := d.Store.Count()
	if rowStart < 0 {
		rowStart = 0
	}
	if rowEnd > n {
		rowEnd = n
	}
	if rowEnd <= rowStart {
		return
	}
	pad := spaces(e.Options.TabWidth)
	pre := coord.Position{Row: rowStart, Col: 0}
	d.Begin(pre)
	for r := rowStart; r < rowEnd; r++ {
		old := d.Store.Get(r)
		var next string
		if indent {
			next = pad + old
		} else {
			next = dedentOnce(old, e.Options.TabWidth)
		}
		if next == old {
			continue
		}
		d.Store.ReplaceLine(r, next)
		d.Push(history.Operation{Type: history.ReplaceLine, Row: r, Payload: old, Alt: next})
	}
	post := coord.Position{Row: rowStart, Col: 0}
	d.Commit(post)
	e.ActivePane().Cur = post
}

func dedentOnce(s string, width int) string {
	i := 0
	for i < len(s) && i < width {
		if s[i] == '\t' {
			// A tab counts as a full tab-width and ends the removal.
			i++
			break
		}
		if s[i] != ' ' {
			break
		}
		i++
	}
	return s[i:]
}

func spaces(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}

func joinLines(lines []string) string {
	out := lines[0]
	for _, l := range lines[1:] {
		out += "\n" + l
	}
	return out
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// pasteBelow inserts the register's contents after the cursor (linewise
// paste opens new lines below; charwise paste splices into the current
// line, splitting it across multiple new lines if the register held more
// than one line).
func (e *Editor) pasteBelow() {
	if len(e.Register.Lines) == 0 {
		return
	}
	p := e.ActivePane()
	d := e.ActiveDoc()

	if e.Register.Linewise {
		pre := p.Cur
		d.Begin(pre)
		d.Store.InsertLines(p.Cur.Row+1, e.Register.Lines)
		d.Push(history.Operation{Type: history.InsertLinesBlock, Row: p.Cur.Row + 1, Payload: joinLines(e.Register.Lines)})
		post := coord.Position{Row: p.Cur.Row + 1, Col: 0}
		d.Commit(post)
		p.Cur = post
		return
	}

	if len(e.Register.Lines) == 1 {
		row := p.Cur.Row
		s := d.Store.Get(row)
		col := p.Cur.Col
		if len(s) > 0 {
			col++
		}
		pre := p.Cur
		d.Begin(pre)
		next := s[:col] + e.Register.Lines[0] + s[col:]
		d.Store.ReplaceLine(row, next)
		d.Push(history.Operation{Type: history.ReplaceLine, Row: row, Payload: s, Alt: next})
		post := coord.Position{Row: row, Col: col + len(e.Register.Lines[0]) - 1}
		if post.Col < col {
			post.Col = col
		}
		d.Commit(post)
		p.Cur = post
		return
	}

	row := p.Cur.Row
	s := d.Store.Get(row)
	col := p.Cur.Col
	if len(s) > 0 {
		col++
	}
	prefix, suffix := s[:col], s[col:]
	first := prefix + e.Register.Lines[0]
	middle := e.Register.Lines[1 : len(e.Register.Lines)-1]
	last := e.Register.Lines[len(e.Register.Lines)-1] + suffix

	pre := p.Cur
	d.Begin(pre)
	d.Store.ReplaceLine(row, first)
	d.Push(history.Operation{Type: history.ReplaceLine, Row: row, Payload: s, Alt: first})
	toInsert := append(append([]string{}, middle...), last)
	d.Store.InsertLines(row+1, toInsert)
	d.Push(history.Operation{Type: history.InsertLinesBlock, Row: row + 1, Payload: joinLines(toInsert)})
	post := coord.Position{Row: row + len(toInsert), Col: len(e.Register.Lines[len(e.Register.Lines)-1])}
	d.Commit(post)
	p.Cur = post
}
