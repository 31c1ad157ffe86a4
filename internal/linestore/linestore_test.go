package linestore

import "testing"

func allBackends() []Backend {
	return []Backend{BackendVector, BackendGap, BackendRope}
}

func TestNewEmptyStoreHasOneLine(t *testing.T) {
	for _, b := range allBackends() {
		s := New(b)
		if s.Count() != 1 {
			t.Errorf("%s: expected Count() == 1, got %d", b, s.Count())
		}
		if s.Get(0) != "" {
			t.Errorf("%s: expected empty first line, got %q", b, s.Get(0))
		}
	}
}

func TestInsertAndGet(t *testing.T) {
	for _, b := range allBackends() {
		s := NewFromLines(b, []string{"alpha", "beta", "gamma"})
		if s.Count() != 3 {
			t.Fatalf("%s: expected Count() == 3, got %d", b, s.Count())
		}
		if s.Get(1) != "beta" {
			t.Errorf("%s: expected Get(1) == beta, got %q", b, s.Get(1))
		}
		s.InsertLine(1, "inserted")
		if s.Count() != 4 || s.Get(1) != "inserted" || s.Get(2) != "beta" {
			t.Errorf("%s: InsertLine(1, ...) produced %d lines, Get(1)=%q Get(2)=%q", b, s.Count(), s.Get(1), s.Get(2))
		}
	}
}

func TestEraseLineReseedsWhenEmpty(t *testing.T) {
	for _, b := range allBackends() {
		s := NewFromLines(b, []string{"only"})
		s.EraseLine(0)
		if s.Count() != 1 || s.Get(0) != "" {
			t.Errorf("%s: expected re-seeded empty line, got Count()=%d Get(0)=%q", b, s.Count(), s.Get(0))
		}
	}
}

func TestEraseLinesRange(t *testing.T) {
	for _, b := range allBackends() {
		s := NewFromLines(b, []string{"a", "b", "c", "d", "e"})
		s.EraseLines(1, 3)
		if s.Count() != 3 {
			t.Fatalf("%s: expected 3 lines remaining, got %d", b, s.Count())
		}
		want := []string{"a", "d", "e"}
		for i, w := range want {
			if s.Get(i) != w {
				t.Errorf("%s: Get(%d) = %q, want %q", b, i, s.Get(i), w)
			}
		}
	}
}

func TestReplaceLine(t *testing.T) {
	for _, b := range allBackends() {
		s := NewFromLines(b, []string{"one", "two"})
		s.ReplaceLine(1, "TWO")
		if s.Get(1) != "TWO" {
			t.Errorf("%s: expected ReplaceLine to update row 1, got %q", b, s.Get(1))
		}
	}
}

func TestOutOfRangeReadsAndWritesAreSafe(t *testing.T) {
	for _, b := range allBackends() {
		s := NewFromLines(b, []string{"only"})
		if got := s.Get(5); got != "" {
			t.Errorf("%s: expected Get out of range to return \"\", got %q", b, got)
		}
		s.EraseLine(5) // must not panic
		s.ReplaceLine(5, "x")
		if s.Count() != 1 {
			t.Errorf("%s: out-of-range ReplaceLine must not grow the store, got Count()=%d", b, s.Count())
		}
	}
}

func TestBackendIdentity(t *testing.T) {
	cases := map[Backend]string{BackendVector: "vector", BackendGap: "gap", BackendRope: "rope"}
	for b, name := range cases {
		s := New(b)
		if s.Backend() != b {
			t.Errorf("expected Backend() == %v, got %v", b, s.Backend())
		}
		if b.String() != name {
			t.Errorf("expected String() == %q, got %q", name, b.String())
		}
		parsed, ok := ParseBackend(name)
		if !ok || parsed != b {
			t.Errorf("ParseBackend(%q) = (%v, %v), want (%v, true)", name, parsed, ok, b)
		}
	}
}

// TestBackendEquivalence drives the same script of mutations across all
// three backends and checks they end up byte-identical: the three
// implementations must be observably interchangeable.
func TestBackendEquivalence(t *testing.T) {
	seed := []string{"one", "two", "three", "four", "five"}
	var results [][]string
	for _, b := range allBackends() {
		s := NewFromLines(b, seed)
		s.InsertLine(2, "inserted")
		s.InsertLines(0, []string{"first-a", "first-b"})
		s.EraseLine(3)
		s.ReplaceLine(1, "REPLACED")
		s.EraseLines(4, 6)

		var out []string
		for i := 0; i < s.Count(); i++ {
			out = append(out, s.Get(i))
		}
		results = append(results, out)
	}
	for i := 1; i < len(results); i++ {
		if len(results[i]) != len(results[0]) {
			t.Fatalf("backend %v produced %d lines, backend %v produced %d", allBackends()[i], len(results[i]), allBackends()[0], len(results[0]))
		}
		for j := range results[0] {
			if results[i][j] != results[0][j] {
				t.Errorf("backend %v line %d = %q, backend %v = %q", allBackends()[i], j, results[i][j], allBackends()[0], results[0][j])
			}
		}
	}
}
