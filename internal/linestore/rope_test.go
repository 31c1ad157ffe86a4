package linestore

import "testing"

func TestRopeLargeDocumentBuildsAndReadsBack(t *testing.T) {
	const n = ropeParallelThreshold + 500
	lines := make([]string, n)
	for i := range lines {
		lines[i] = string(rune('a' + i%26))
	}
	s := newRopeStore()
	s.Init(lines)
	if s.Count() != n {
		t.Fatalf("expected %d lines, got %d", n, s.Count())
	}
	for _, i := range []int{0, 1, n / 2, n - 1} {
		if got := s.Get(i); got != lines[i] {
			t.Errorf("Get(%d) = %q, want %q", i, got, lines[i])
		}
	}
}

func TestRopeNormalizeAfterManySmallInserts(t *testing.T) {
	s := newRopeStore()
	s.Init([]string{""})
	for i := 0; i < ropeLeafMaxLines*3; i++ {
		s.InsertLine(s.Count(), "x")
	}
	if s.Count() != ropeLeafMaxLines*3+1 {
		t.Fatalf("expected %d lines, got %d", ropeLeafMaxLines*3+1, s.Count())
	}
	for i := 1; i < s.Count(); i++ {
		if s.Get(i) != "x" {
			t.Errorf("Get(%d) = %q, want x", i, s.Get(i))
		}
	}
}

func TestRopeSplitAndConcatPreserveOrder(t *testing.T) {
	s := newRopeStore()
	s.Init([]string{"a", "b", "c", "d", "e", "f"})
	s.EraseLines(2, 4)
	want := []string{"a", "b", "e", "f"}
	if s.Count() != len(want) {
		t.Fatalf("expected %d lines, got %d", len(want), s.Count())
	}
	for i, w := range want {
		if s.Get(i) != w {
			t.Errorf("Get(%d) = %q, want %q", i, s.Get(i), w)
		}
	}
}
