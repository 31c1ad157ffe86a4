package editor

import "github.com/dshills/mvim/internal/coord"

// startSearch records pattern as the active search term, sets the
// direction, recomputes the highlight set, and jumps to the first match.
func (e *Editor) startSearch(pattern string, forward bool) {
	e.LastSearch = pattern
	e.LastSearchForward = forward
	d := e.ActiveDoc()
	e.LastSearchHits = recomputeSearchHits(d.Store, pattern)
	if forward {
		e.searchNext()
	} else {
		e.searchPrev()
	}
}

// searchNext jumps to the next match in the search's recorded direction.
func (e *Editor) searchNext() {
	e.repeatSearch(e.LastSearchForward)
}

// searchPrev jumps to the next match opposite the search's recorded
// direction (N).
func (e *Editor) searchPrev() {
	e.repeatSearch(!e.LastSearchForward)
}

func (e *Editor) repeatSearch(forward bool) {
	if e.LastSearch == "" {
		return
	}
	p := e.ActivePane()
	d := e.ActiveDoc()
	var pos coord.Position
	var ok bool
	if forward {
		pos, ok = searchForward(d.Store, p.Cur, e.LastSearch)
	} else {
		pos, ok = searchBackward(d.Store, p.Cur, e.LastSearch)
	}
	if ok {
		p.Cur = pos
	}
}
