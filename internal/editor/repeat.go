package editor

import (
	"github.com/dshills/mvim/internal/coord"
	"github.com/dshills/mvim/internal/history"
)

// applyOperationForward re-applies op to store at the current cursor's
// row, shifted by delta from the row/col it was originally recorded at,
// clamping the target row to the document's current bounds.
func (e *Editor) applyOperationForward(op history.Operation, delta coord.Position) {
	d := e.ActiveDoc()
	n := d.Store.Count()
	row := op.Row + delta.Row
	col := op.Col + delta.Col

	switch op.Type {
	case history.InsertChar:
		row = clampRow(row, n-1)
		s := d.Store.Get(row)
		if col < 0 {
			col = 0
		}
		if col > len(s) {
			col = len(s)
		}
		next := s[:col] + op.Payload + s[col:]
		d.Store.ReplaceLine(row, next)
		d.Push(history.Operation{Type: history.InsertChar, Row: row, Col: col, Payload: op.Payload})
	case history.DeleteChar:
		row = clampRow(row, n-1)
		s := d.Store.Get(row)
		if col < 0 || col >= len(s) {
			return
		}
		removed := s[col]
		d.Store.ReplaceLine(row, s[:col]+s[col+1:])
		d.Push(history.Operation{Type: history.DeleteChar, Row: row, Col: col, Payload: string(removed)})
	case history.InsertLine:
		row = clampRow(row, n)
		d.Store.InsertLine(row, op.Payload)
		d.Push(history.Operation{Type: history.InsertLine, Row: row, Payload: op.Payload})
	case history.DeleteLine:
		row = clampRow(row, n-1)
		removed := d.Store.Get(row)
		d.Store.EraseLine(row)
		d.Push(history.Operation{Type: history.DeleteLine, Row: row, Payload: removed})
	case history.ReplaceLine:
		row = clampRow(row, n-1)
		old := d.Store.Get(row)
		d.Store.ReplaceLine(row, op.Alt)
		d.Push(history.Operation{Type: history.ReplaceLine, Row: row, Payload: old, Alt: op.Alt})
	case history.InsertLinesBlock:
		row = clampRow(row, n)
		lines := splitPayloadLines(op.Payload)
		d.Store.InsertLines(row, lines)
		d.Push(history.Operation{Type: history.InsertLinesBlock, Row: row, Payload: op.Payload})
	case history.DeleteLinesBlock:
		row = clampRow(row, n-1)
		count := countPayloadLines(op.Payload)
		if row+count > d.Store.Count() {
			count = d.Store.Count() - row
		}
		if count <= 0 {
			return
		}
		d.Store.EraseLines(row, row+count)
		d.Push(history.Operation{Type: history.DeleteLinesBlock, Row: row, Payload: op.Payload})
	}
}

func clampRow(row, max int) int {
	if row < 0 {
		return 0
	}
	if row > max {
		return max
	}
	return row
}

func splitPayloadLines(payload string) []string {
	var out []string
	start := 0
	for i := 0; i < len(payload); i++ {
		if payload[i] == '\n' {
			out = append(out, payload[start:i])
			start = i + 1
		}
	}
	out = append(out, payload[start:])
	return out
}

func countPayloadLines(payload string) int {
	n := 1
	for i := 0; i < len(payload); i++ {
		if payload[i] == '\n' {
			n++
		}
	}
	return n
}

// repeatLastChange replays the document's last committed group (the dot
// command): every operation is re-applied with a row/col delta equal to
// the current cursor minus the group's original pre-edit position, and
// the whole replay is wrapped in its own undo group.
func (e *Editor) repeatLastChange() {
	d := e.ActiveDoc()
	g := d.LastChange
	if len(g.Ops) == 0 {
		return
	}
	p := e.ActivePane()
	delta := p.Cur.Sub(g.Pre)

	d.Begin(p.Cur)
	for _, op := range g.Ops {
		e.applyOperationForward(op, delta)
	}
	post := g.Post.Add(delta)
	post = post.Clamp(maxInt(0, d.Store.Count()-1), e.maxColForRow(clampRow(post.Row, d.Store.Count()-1)))
	d.Commit(post)
	p.Cur = post
	e.clampCursor()
}
