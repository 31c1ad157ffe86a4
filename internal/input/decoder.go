// Package input implements the stateful Normal-mode key decoder: count
// accumulation, pending-operator tracking, the five double-key latches
// (dd/yy/gg/>>/<<), and the Ctrl-W pane-focus prefix.
package input

import "github.com/dshills/mvim/internal/layout"

// Operator is the operator a motion is pending for.
type Operator uint8

const (
	OpNone Operator = iota
	OpDelete
	OpYank
	OpIndent
	OpDedent
)

func (o Operator) String() string {
	switch o {
	case OpDelete:
		return "delete"
	case OpYank:
		return "yank"
	case OpIndent:
		return "indent"
	case OpDedent:
		return "dedent"
	default:
		return "none"
	}
}

// Motion names what an operator applies to, or what a bare motion key
// moves the cursor by.
type Motion uint8

const (
	MotionNone Motion = iota
	MotionWordForward
	MotionWordEnd
	MotionLinewise // the operator's own self-pair: dd, yy, >>, <<
	MotionKey      // an ordinary key passed through unresolved (h, j, k, x, i, ...)
)

// Status reports whether Feed produced a complete command.
type Status uint8

const (
	// StatusPending means more keys are needed before a command is complete.
	StatusPending Status = iota
	// StatusComplete means Result names a fully formed command.
	StatusComplete
	// StatusPaneFocus means Result names a completed Ctrl-W focus command.
	StatusPaneFocus
)

// Result is what one Feed call yields once a command completes.
type Result struct {
	Status Status
	Count  int // always >= 1 once resolved

	Operator Operator
	Motion   Motion
	Key      rune // the triggering key, meaningful when Motion == MotionKey or Operator == OpNone and a latch completed

	// Pane focus fields, valid when Status == StatusPaneFocus.
	Dir       layout.Direction
	CycleNext bool
}

// Decoder is the Normal-mode key-stream state machine. It holds no
// reference to the document or editor; it only turns a rune stream into
// Results.
type Decoder struct {
	count        int
	op           Operator
	ctrlWPending bool

	// Latches: true while the first of a double-key pair is pending.
	pendD, pendY, pendG, pendGT, pendLT bool
}

// NewDecoder creates a Decoder in its initial (no count, no operator, no
// latches) state.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Reset clears all pending state: count, operator, latches, and the
// Ctrl-W prefix. The editor calls it on Escape in Normal mode.
func (d *Decoder) Reset() {
	*d = Decoder{}
}

func (d *Decoder) resetLatches() {
	d.pendD, d.pendY, d.pendG, d.pendGT, d.pendLT = false, false, false, false, false
}

// effectiveCount returns the accumulated count, defaulting to 1.
func (d *Decoder) effectiveCount() int {
	if d.count == 0 {
		return 1
	}
	return d.count
}

// Feed processes one input rune and returns the decoding result. The
// Ctrl-W control code (0x17) is recognized here and starts the
// pane-focus prefix; the next rune completes it.
func (d *Decoder) Feed(r rune) Result {
	if d.ctrlWPending {
		return d.feedPaneFocus(r)
	}
	if r == ctrlW {
		d.ctrlWPending = true
		return Result{Status: StatusPending}
	}

	// Rule 1: digit accumulation. '0' only counts as a digit once a
	// count is already in progress; bare '0' is the motion "column 0".
	if r >= '1' && r <= '9' {
		d.count = d.count*10 + int(r-'0')
		return Result{Status: StatusPending}
	}
	if r == '0' && d.count > 0 {
		d.count = d.count * 10
		return Result{Status: StatusPending}
	}

	switch r {
	case 'd':
		return d.feedLatch(&d.pendD, OpDelete, 'd')
	case 'y':
		return d.feedLatch(&d.pendY, OpYank, 'y')
	case '>':
		return d.feedLatch(&d.pendGT, OpIndent, '>')
	case '<':
		return d.feedLatch(&d.pendLT, OpDedent, '<')
	case 'g':
		if d.pendG {
			d.pendG = false
			count := d.effectiveCount()
			d.count = 0
			d.op = OpNone
			return Result{Status: StatusComplete, Count: count, Motion: MotionLinewise, Key: 'g'}
		}
		d.pendG = true
		return Result{Status: StatusPending}
	case 'w', 'e':
		if d.op != OpNone {
			count := d.effectiveCount()
			op := d.op
			d.count = 0
			d.op = OpNone
			d.resetLatches()
			motion := MotionWordForward
			if r == 'e' {
				motion = MotionWordEnd
			}
			return Result{Status: StatusComplete, Count: count, Operator: op, Motion: motion}
		}
		count := d.effectiveCount()
		d.count = 0
		d.resetLatches()
		motion := MotionWordForward
		if r == 'e' {
			motion = MotionWordEnd
		}
		return Result{Status: StatusComplete, Count: count, Motion: motion}
	default:
		// Any other key: resolve the pending count (default 1) and pass
		// the key through as a plain motion/command key. A pending
		// operator that isn't satisfied by one of its supported motions
		// (w, e, self-pair) is simply dropped.
		count := d.effectiveCount()
		d.count = 0
		d.op = OpNone
		d.resetLatches()
		return Result{Status: StatusComplete, Count: count, Motion: MotionKey, Key: r}
	}
}

// feedLatch implements rule 3 for a single latch character: if the
// corresponding operator is already pending (so this is the second of
// the pair), complete the linewise self-pair action; otherwise set the
// operator pending and arm the latch for the next key.
func (d *Decoder) feedLatch(latch *bool, op Operator, r rune) Result {
	if d.op == op && *latch {
		count := d.effectiveCount()
		d.count = 0
		d.op = OpNone
		*latch = false
		return Result{Status: StatusComplete, Count: count, Operator: op, Motion: MotionLinewise, Key: r}
	}
	d.op = op
	*latch = true
	return Result{Status: StatusPending}
}

func (d *Decoder) feedPaneFocus(r rune) Result {
	d.ctrlWPending = false
	switch r {
	case 'h':
		return Result{Status: StatusPaneFocus, Dir: layout.DirLeft}
	case 'j':
		return Result{Status: StatusPaneFocus, Dir: layout.DirDown}
	case 'k':
		return Result{Status: StatusPaneFocus, Dir: layout.DirUp}
	case 'l':
		return Result{Status: StatusPaneFocus, Dir: layout.DirRight}
	case 'w':
		return Result{Status: StatusPaneFocus, CycleNext: true}
	default:
		return Result{Status: StatusPending}
	}
}

// ctrlW is the control code produced by Ctrl-W (ASCII 0x17, ETB).
const ctrlW = 0x17

// IsCtrlW reports whether r is the Ctrl-W control code, letting callers
// decide whether to route a key through Feed or treat it as literal
// insert-mode text.
func IsCtrlW(r rune) bool { return r == ctrlW }
