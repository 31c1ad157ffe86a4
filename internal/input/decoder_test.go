package input

import (
	"testing"

	"github.com/dshills/mvim/internal/layout"
)

func TestBareMotionKeyDefaultsToCountOne(t *testing.T) {
	d := NewDecoder()
	res := d.Feed('j')
	if res.Status != StatusComplete {
		t.Fatalf("expected StatusComplete, got %v", res.Status)
	}
	if res.Count != 1 {
		t.Errorf("expected default count 1, got %d", res.Count)
	}
	if res.Motion != MotionKey || res.Key != 'j' {
		t.Errorf("expected MotionKey 'j', got motion=%v key=%q", res.Motion, res.Key)
	}
}

func TestCountAccumulation(t *testing.T) {
	d := NewDecoder()
	for _, r := range "12" {
		if res := d.Feed(r); res.Status != StatusPending {
			t.Fatalf("expected digit %q to stay pending, got %v", r, res.Status)
		}
	}
	res := d.Feed('j')
	if res.Count != 12 {
		t.Errorf("expected accumulated count 12, got %d", res.Count)
	}
}

func TestBareZeroIsColumnZeroNotADigit(t *testing.T) {
	d := NewDecoder()
	res := d.Feed('0')
	if res.Status != StatusComplete || res.Motion != MotionKey || res.Key != '0' {
		t.Errorf("expected bare '0' to resolve as a motion key, got %+v", res)
	}
}

func TestZeroContinuesAnInProgressCount(t *testing.T) {
	d := NewDecoder()
	d.Feed('1')
	d.Feed('0')
	res := d.Feed('j')
	if res.Count != 10 {
		t.Errorf("expected count 10 from \"10j\", got %d", res.Count)
	}
}

func TestDeleteLatchSelfPair(t *testing.T) {
	d := NewDecoder()
	if res := d.Feed('d'); res.Status != StatusPending {
		t.Fatalf("expected first 'd' to be pending, got %v", res.Status)
	}
	res := d.Feed('d')
	if res.Status != StatusComplete || res.Operator != OpDelete || res.Motion != MotionLinewise {
		t.Errorf("expected dd to complete as a linewise delete, got %+v", res)
	}
}

func TestOperatorPendingWordMotion(t *testing.T) {
	d := NewDecoder()
	d.Feed('d')
	res := d.Feed('w')
	if res.Status != StatusComplete || res.Operator != OpDelete || res.Motion != MotionWordForward {
		t.Errorf("expected dw to complete as delete+word-forward, got %+v", res)
	}
}

func TestIndentAndDedentLatchesAreIndependent(t *testing.T) {
	d := NewDecoder()
	d.Feed('>')
	res := d.Feed('>')
	if res.Operator != OpIndent || res.Motion != MotionLinewise {
		t.Fatalf("expected >> to complete as linewise indent, got %+v", res)
	}

	d2 := NewDecoder()
	d2.Feed('<')
	res2 := d2.Feed('<')
	if res2.Operator != OpDedent || res2.Motion != MotionLinewise {
		t.Fatalf("expected << to complete as linewise dedent, got %+v", res2)
	}

	// A '<' following a pending '>' must not be confused with the '>>' pair.
	d3 := NewDecoder()
	d3.Feed('>')
	res3 := d3.Feed('<')
	if res3.Status == StatusComplete && res3.Operator == OpIndent {
		t.Errorf("'><' must not complete as an indent self-pair, got %+v", res3)
	}
}

func TestDoubleGJumpsToTop(t *testing.T) {
	d := NewDecoder()
	d.Feed('g')
	res := d.Feed('g')
	if res.Status != StatusComplete || res.Motion != MotionLinewise || res.Key != 'g' {
		t.Errorf("expected gg to complete as a linewise 'g' jump, got %+v", res)
	}
}

func TestCtrlWPaneFocus(t *testing.T) {
	d := NewDecoder()
	if !IsCtrlW(ctrlW) {
		t.Fatal("IsCtrlW must recognize the literal Ctrl-W byte")
	}
	if res := d.Feed(ctrlW); res.Status != StatusPending {
		t.Fatalf("expected Ctrl-W to be pending its direction key, got %v", res.Status)
	}
	res := d.Feed('l')
	if res.Status != StatusPaneFocus || res.Dir != layout.DirRight {
		t.Errorf("expected Ctrl-W l to report a rightward pane-focus result, got %+v", res)
	}
}

func TestResetClearsAllPendingState(t *testing.T) {
	d := NewDecoder()
	d.Feed('3')
	d.Feed('d')
	d.Reset()
	res := d.Feed('j')
	if res.Count != 1 {
		t.Errorf("expected Reset to clear the pending count, got %d", res.Count)
	}
	if res.Operator != OpNone {
		t.Errorf("expected Reset to clear the pending operator, got %v", res.Operator)
	}
}
