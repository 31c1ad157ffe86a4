// Package term adapts a real terminal to the narrow surface the editing
// engine calls into for drawing: size, clear, positioned text (plain,
// highlighted, or colored), cursor placement, and refresh. The engine
// itself never imports tcell directly; everything terminal-specific
// lives here.
package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/mvim/internal/config"
)

// Terminal is the tcell-backed implementation of the editor's abstract
// drawing surface.
type Terminal struct {
	screen tcell.Screen

	background  tcell.Color
	searchColor tcell.Color
}

// New creates and initializes a Terminal over the real screen.
func New() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("term: new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("term: init screen: %w", err)
	}
	return &Terminal{
		screen:      screen,
		background:  tcell.ColorDefault,
		searchColor: NamedColor(config.ColorYellow),
	}, nil
}

// Shutdown restores the terminal to its pre-editor state.
func (t *Terminal) Shutdown() {
	t.screen.Fini()
}

// Size returns the current terminal size as (rows, cols).
func (t *Terminal) Size() (rows, cols int) {
	w, h := t.screen.Size()
	return h, w
}

// Clear erases the entire screen.
func (t *Terminal) Clear() {
	t.screen.Clear()
}

// ClearToEOL blanks row from col to the right edge.
func (t *Terminal) ClearToEOL(row, col int) {
	_, width := 0, 0
	width, _ = t.screen.Size()
	style := tcell.StyleDefault.Background(t.background)
	for x := col; x < width; x++ {
		t.screen.SetContent(x, row, ' ', nil, style)
	}
}

// DrawText writes text starting at (row, col) with the default style.
func (t *Terminal) DrawText(row, col int, text string) {
	t.drawRunes(row, col, text, tcell.StyleDefault.Background(t.background))
}

// DrawHighlighted writes text at (row, col), rendering the hlStart..
// hlStart+hlLen byte range (measured in the rune sequence's index, not
// raw bytes, since the editor indexes columns by byte but search
// highlight ranges are always ASCII-safe substrings in practice) in the
// search-highlight color and the remainder in the default style.
func (t *Terminal) DrawHighlighted(row, col int, text string, hlStart, hlLen int) {
	runes := []rune(text)
	plain := tcell.StyleDefault.Background(t.background)
	hl := tcell.StyleDefault.Background(t.searchColor).Foreground(tcell.ColorBlack)
	for i, r := range runes {
		style := plain
		if i >= hlStart && i < hlStart+hlLen {
			style = hl
		}
		t.screen.SetContent(col+i, row, r, nil, style)
	}
}

// DrawColored writes text at (row, col) in the named foreground color.
func (t *Terminal) DrawColored(row, col int, text string, colorName config.ColorName) {
	style := tcell.StyleDefault.Background(t.background).Foreground(NamedColor(colorName))
	t.drawRunes(row, col, text, style)
}

func (t *Terminal) drawRunes(row, col int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		t.screen.SetContent(col+i, row, r, nil, style)
	}
}

// MoveCursor places the terminal cursor at (row, col).
func (t *Terminal) MoveCursor(row, col int) {
	t.screen.ShowCursor(col, row)
}

// Refresh flushes pending drawing operations to the terminal.
func (t *Terminal) Refresh() {
	t.screen.Show()
}

// SetBackground sets the background color used by ClearToEOL, DrawText,
// DrawColored and the unhighlighted part of DrawHighlighted. Clear does
// not use it.
func (t *Terminal) SetBackground(name config.ColorName) {
	t.background = NamedColor(name)
}

// SetSearchColor sets the highlight color DrawHighlighted uses for
// matched ranges.
func (t *Terminal) SetSearchColor(name config.ColorName) {
	t.searchColor = NamedColor(name)
}

// PollEvent blocks for the next terminal event and returns the raw
// tcell.Event (key, resize, or any other kind) unchanged; translating
// keys into runes is left to the caller.
func (t *Terminal) PollEvent() tcell.Event {
	return t.screen.PollEvent()
}
