package editor

import (
	"github.com/dshills/mvim/internal/coord"
	"github.com/dshills/mvim/internal/history"
)

// enterVisualChar enters charwise Visual mode, anchoring the selection
// at the current cursor.
func (e *Editor) enterVisualChar() {
	e.VisualAnchor = e.ActivePane().Cur
	e.Mode = ModeVisual
}

// enterVisualLine enters linewise Visual mode (V), anchoring at the
// current cursor's row.
func (e *Editor) enterVisualLine() {
	e.VisualAnchor = e.ActivePane().Cur
	e.Mode = ModeVisualLine
}

// exitVisual returns to Normal mode, discarding the selection anchor.
func (e *Editor) exitVisual() {
	e.Mode = ModeNormal
}

// visualRange returns the ordered (start, end inclusive) span between
// the anchor and the current cursor.
func (e *Editor) visualRange() (start, end coord.Position) {
	a, c := e.VisualAnchor, e.ActivePane().Cur
	if a.Row < c.Row || (a.Row == c.Row && a.Col <= c.Col) {
		return a, c
	}
	return c, a
}

// deleteSelection removes the active Visual/Visual-Line selection,
// yanking it into the register, and returns to Normal mode.
func (e *Editor) deleteSelection() {
	start, end := e.visualRange()
	linewise := e.Mode == ModeVisualLine
	e.Mode = ModeNormal
	d := e.ActiveDoc()

	if linewise {
		e.deleteLinesRange(start.Row, end.Row+1)
		return
	}

	if start.Row == end.Row {
		s := d.Store.Get(start.Row)
		endCol := end.Col
		if endCol >= len(s) {
			endCol = len(s) - 1
		}
		if endCol < start.Col {
			return
		}
		removed := s[start.Col : endCol+1]
		e.Register = Register{Lines: []string{removed}, Linewise: false}
		next := s[:start.Col] + s[endCol+1:]
		d.Begin(start)
		d.Store.ReplaceLine(start.Row, next)
		d.Push(history.Operation{Type: history.ReplaceLine, Row: start.Row, Payload: s, Alt: next})
		d.Commit(start)
		e.ActivePane().Cur = start
		e.clampCursor()
		return
	}

	firstLine := d.Store.Get(start.Row)
	lastLine := d.Store.Get(end.Row)
	endCol := end.Col
	if endCol >= len(lastLine) {
		endCol = len(lastLine) - 1
	}
	var reg, fullRows []string
	reg = append(reg, firstLine[start.Col:])
	for r := start.Row + 1; r < end.Row; r++ {
		full := d.Store.Get(r)
		reg = append(reg, full)
		fullRows = append(fullRows, full)
	}
	reg = append(reg, lastLine[:endCol+1])
	fullRows = append(fullRows, lastLine)
	e.Register = Register{Lines: reg, Linewise: false}

	merged := firstLine[:start.Col] + lastLine[endCol+1:]
	d.Begin(start)
	d.Store.ReplaceLine(start.Row, merged)
	d.Push(history.Operation{Type: history.ReplaceLine, Row: start.Row, Payload: firstLine, Alt: merged})
	d.Store.EraseLines(start.Row+1, end.Row+1)
	d.Push(history.Operation{Type: history.DeleteLinesBlock, Row: start.Row + 1, Payload: joinLines(fullRows)})
	d.Commit(start)
	e.ActivePane().Cur = start
	e.clampCursor()
}

// yankSelection copies the active selection into the register without
// modifying the document, and returns to Normal mode.
func (e *Editor) yankSelection() {
	start, end := e.visualRange()
	linewise := e.Mode == ModeVisualLine
	e.Mode = ModeNormal
	d := e.ActiveDoc()

	if linewise {
		var lines []string
		for r := start.Row; r <= end.Row && r < d.Store.Count(); r++ {
			lines = append(lines, d.Store.Get(r))
		}
		e.Register = Register{Lines: lines, Linewise: true}
		e.ActivePane().Cur = start
		return
	}

	if start.Row == end.Row {
		s := d.Store.Get(start.Row)
		endCol := end.Col
		if endCol >= len(s) {
			endCol = len(s) - 1
		}
		if endCol < start.Col {
			e.ActivePane().Cur = start
			return
		}
		e.Register = Register{Lines: []string{s[start.Col : endCol+1]}, Linewise: false}
		e.ActivePane().Cur = start
		return
	}

	firstLine := d.Store.Get(start.Row)
	lastLine := d.Store.Get(end.Row)
	endCol := end.Col
	if endCol >= len(lastLine) {
		endCol = len(lastLine) - 1
	}
	var reg []string
	reg = append(reg, firstLine[start.Col:])
	for r := start.Row + 1; r < end.Row; r++ {
		reg = append(reg, d.Store.Get(r))
	}
	reg = append(reg, lastLine[:endCol+1])
	e.Register = Register{Lines: reg, Linewise: false}
	e.ActivePane().Cur = start
}
