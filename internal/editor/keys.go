package editor

import (
	"github.com/dshills/mvim/internal/coord"
	"github.com/dshills/mvim/internal/input"
)

// HandleKey routes one input rune to the handler for the current mode.
func (e *Editor) HandleKey(r rune) {
	switch e.Mode {
	case ModeNormal:
		e.handleNormal(r)
	case ModeInsert:
		e.handleInsert(r)
	case ModeCommand:
		e.handleCommand(r)
	case ModeVisual, ModeVisualLine:
		e.handleVisual(r)
	}
}

const (
	keyEscape     = 0x1b
	keyEnter      = '\r'
	keyEnterLF    = '\n'
	keyBackspace  = 0x7f
	keyBackspace2 = 0x08
)

func (e *Editor) handleNormal(r rune) {
	if r == keyEscape {
		e.Decoder.Reset()
		return
	}
	res := e.Decoder.Feed(r)
	switch res.Status {
	case input.StatusPending:
		return
	case input.StatusPaneFocus:
		e.applyPaneFocus(res)
		return
	case input.StatusComplete:
		e.applyNormalResult(res)
	}
}

func (e *Editor) applyPaneFocus(res input.Result) {
	if res.CycleNext {
		if id := e.tree.FocusNext(e.activePane); id >= 0 {
			e.activePane = id
		}
		return
	}
	if id := e.tree.FocusDir(e.screen, e.activePane, res.Dir); id >= 0 {
		e.activePane = id
	}
}

func (e *Editor) applyNormalResult(res input.Result) {
	if res.Operator != input.OpNone {
		e.applyOperatorMotion(res)
		return
	}
	switch res.Motion {
	case input.MotionWordForward:
		e.repeatMotion(res.Count, func() { e.ActivePane().Cur = moveWordForward(e.ActiveDoc().Store, e.ActivePane().Cur) })
		return
	case input.MotionWordEnd:
		e.repeatMotion(res.Count, func() { e.ActivePane().Cur = moveWordEnd(e.ActiveDoc().Store, e.ActivePane().Cur) })
		return
	case input.MotionLinewise:
		// gg / {n}gg: jump to the first line, or to line n if a count
		// was given.
		if res.Key == 'g' {
			row := res.Count - 1
			if row < 0 {
				row = 0
			}
			e.ActivePane().Cur = coord.Position{Row: row, Col: 0}
			e.clampCursor()
		}
		return
	}
	e.applyPlainKey(res)
}

func (e *Editor) repeatMotion(count int, step func()) {
	for i := 0; i < count; i++ {
		step()
	}
}

// applyOperatorMotion completes a d/y/>/< operator once the decoder
// resolves its motion (w, e, or the linewise self-pair).
func (e *Editor) applyOperatorMotion(res input.Result) {
	p := e.ActivePane()
	start := p.Cur

	if res.Motion == input.MotionLinewise {
		rowEnd := start.Row + res.Count
		switch res.Operator {
		case input.OpDelete:
			e.deleteLinesRange(start.Row, rowEnd)
		case input.OpYank:
			e.yankLinesRange(start.Row, rowEnd)
		case input.OpIndent:
			e.indentRange(start.Row, rowEnd)
		case input.OpDedent:
			e.dedentRange(start.Row, rowEnd)
		}
		return
	}

	end := start
	for i := 0; i < res.Count; i++ {
		if res.Motion == input.MotionWordEnd {
			end = moveWordEnd(e.ActiveDoc().Store, end)
		} else {
			end = moveWordForward(e.ActiveDoc().Store, end)
		}
	}

	switch res.Operator {
	case input.OpDelete:
		e.deleteCharRange(start, end, res.Motion)
	case input.OpYank:
		e.yankCharRange(start, end, res.Motion)
	}
}

// yankLinesRange copies rows [rowStart, rowEnd) into the register as
// linewise, without modifying the document.
func (e *Editor) yankLinesRange(rowStart, rowEnd int) {
	d := e.ActiveDoc()
	n := d.Store.Count()
	if rowEnd > n {
		rowEnd = n
	}
	if rowEnd <= rowStart {
		return
	}
	var lines []string
	for r := rowStart; r < rowEnd; r++ {
		lines = append(lines, d.Store.Get(r))
	}
	e.Register = Register{Lines: lines, Linewise: true}
}

// deleteCharRange removes [start, end) for a word-forward motion, or
// [start, end] inclusive for a word-end motion (dw vs de semantics).
func (e *Editor) deleteCharRange(start, end coord.Position, motion input.Motion) {
	e.VisualAnchor = start
	e.ActivePane().Cur = e.inclusiveEnd(end, motion)
	e.Mode = ModeVisual
	e.deleteSelection()
}

// yankCharRange is deleteCharRange's non-mutating counterpart.
func (e *Editor) yankCharRange(start, end coord.Position, motion input.Motion) {
	e.VisualAnchor = start
	e.ActivePane().Cur = e.inclusiveEnd(end, motion)
	e.Mode = ModeVisual
	e.yankSelection()
}

// inclusiveEnd converts a word-forward motion's exclusive endpoint to an
// inclusive one (one column back), leaving a word-end motion's endpoint
// (already inclusive) untouched.
func (e *Editor) inclusiveEnd(end coord.Position, motion input.Motion) coord.Position {
	if motion == input.MotionWordEnd {
		return end
	}
	if end.Col > 0 {
		return coord.Position{Row: end.Row, Col: end.Col - 1}
	}
	if end.Row > 0 {
		prev := e.ActiveDoc().Store.Get(end.Row - 1)
		col := len(prev) - 1
		if col < 0 {
			col = 0
		}
		return coord.Position{Row: end.Row - 1, Col: col}
	}
	return end
}

func (e *Editor) applyPlainKey(res input.Result) {
	p := e.ActivePane()
	d := e.ActiveDoc()
	count := res.Count

	switch res.Key {
	case 'h':
		e.repeatMotion(count, func() { e.moveCursorCol(-1) })
	case 'l':
		e.repeatMotion(count, func() { e.moveCursorCol(1) })
	case 'j':
		e.repeatMotion(count, func() { e.moveCursorRow(1) })
	case 'k':
		e.repeatMotion(count, func() { e.moveCursorRow(-1) })
	case '0':
		p.Cur.Col = 0
	case '$':
		p.Cur.Col = e.maxColForRow(p.Cur.Row)
	case 'b':
		e.repeatMotion(count, func() { p.Cur = moveWordBackward(d.Store, p.Cur) })
	case 'G':
		if count > 1 {
			p.Cur.Row = count - 1
		} else {
			p.Cur.Row = d.Store.Count() - 1
		}
		p.Cur.Col = 0
		e.clampCursor()
	case 'x':
		e.repeatMotion(count, func() { e.deleteCharAt(e.ActivePane().Cur) })
	case 'i':
		e.beginInsert()
	case 'a':
		if p.Cur.Col < len(d.Store.Get(p.Cur.Row)) {
			p.Cur.Col++
		}
		e.beginInsert()
	case 'o':
		e.insertLineBelow(p.Cur.Row)
		e.beginInsert()
	case 'O':
		e.insertLineAbove(p.Cur.Row)
		e.beginInsert()
	case 'v':
		e.enterVisualChar()
	case 'V':
		e.enterVisualLine()
	case 'p':
		e.repeatMotion(count, func() { e.pasteBelow() })
	case 'u':
		if pos, err := d.Undo(); err == nil {
			p.Cur = pos
			e.clampCursor()
		}
	case '.':
		e.repeatLastChange()
	case ':':
		e.Mode = ModeCommand
		e.CmdPrefix = ':'
		e.CmdLine = ""
	case '/':
		e.Mode = ModeCommand
		e.CmdPrefix = '/'
		e.CmdLine = ""
	case '?':
		e.Mode = ModeCommand
		e.CmdPrefix = '?'
		e.CmdLine = ""
	case 'n':
		e.searchNext()
	case 'N':
		e.searchPrev()
	}
	e.clampCursor()
}

// Redo applies Ctrl-r, the editor's redo key (kept outside the Normal
// decoder's grammar since Ctrl-r never participates in a count/operator
// sequence).
func (e *Editor) Redo() {
	d := e.ActiveDoc()
	if pos, err := d.Redo(); err == nil {
		e.ActivePane().Cur = pos
		e.clampCursor()
	}
}

func (e *Editor) moveCursorCol(delta int) {
	p := e.ActivePane()
	p.Cur.Col += delta
	e.clampCursor()
}

func (e *Editor) moveCursorRow(delta int) {
	p := e.ActivePane()
	p.Cur.Row += delta
	e.clampCursor()
}

func (e *Editor) handleInsert(r rune) {
	switch r {
	case keyEscape:
		e.endInsert()
	case keyEnter, keyEnterLF:
		e.insertEnter()
	case keyBackspace, keyBackspace2:
		e.insertBackspace()
	default:
		e.insertTyped(r)
	}
}

func (e *Editor) handleVisual(r rune) {
	if r == keyEscape {
		e.exitVisual()
		return
	}
	p := e.ActivePane()
	d := e.ActiveDoc()
	switch r {
	case 'h':
		p.Cur.Col--
		e.clampCursor()
	case 'l':
		p.Cur.Col++
		e.clampCursor()
	case 'j':
		p.Cur.Row++
		e.clampCursor()
	case 'k':
		p.Cur.Row--
		e.clampCursor()
	case 'w':
		p.Cur = moveWordForward(d.Store, p.Cur)
	case 'e':
		p.Cur = moveWordEnd(d.Store, p.Cur)
	case 'b':
		p.Cur = moveWordBackward(d.Store, p.Cur)
	case '0':
		p.Cur.Col = 0
	case '$':
		p.Cur.Col = e.maxColForRow(p.Cur.Row)
	case 'v':
		if e.Mode == ModeVisual {
			e.exitVisual()
		} else {
			e.Mode = ModeVisual
		}
	case 'V':
		if e.Mode == ModeVisualLine {
			e.exitVisual()
		} else {
			e.Mode = ModeVisualLine
		}
	case 'd', 'x':
		e.deleteSelection()
	case 'y':
		e.yankSelection()
	case '>':
		start, end := e.visualRange()
		e.indentRange(start.Row, end.Row+1)
		e.Mode = ModeNormal
	case '<':
		start, end := e.visualRange()
		e.dedentRange(start.Row, end.Row+1)
		e.Mode = ModeNormal
	}
}

