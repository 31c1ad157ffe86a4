package term

import (
	"strings"
	"testing"
)

func TestRenderShowsModePathAndPosition(t *testing.T) {
	s := StatusLine{Mode: "NORMAL", Path: "main.go", Backend: "gap", Row: 4, Col: 2}
	got := s.Render(80)
	want := "NORMAL main.go  (gap)  5,3"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRenderShowsNoNameAndDirtyMarker(t *testing.T) {
	s := StatusLine{Mode: "INSERT", Path: "", Dirty: true, Backend: "vector", Row: 0, Col: 0}
	got := s.Render(80)
	if !strings.Contains(got, "[No Name]") {
		t.Errorf("expected an empty Path to render as [No Name], got %q", got)
	}
	if !strings.Contains(got, "[+]") {
		t.Errorf("expected Dirty to render a [+] marker, got %q", got)
	}
}

func TestRenderTruncatesToWidth(t *testing.T) {
	s := StatusLine{Mode: "NORMAL", Path: "somewhat-long-file-name.go", Backend: "rope", Row: 0, Col: 0}
	got := s.Render(10)
	if DisplayWidth(got) > 10 {
		t.Errorf("Render(10) = %q, display width %d exceeds 10", got, DisplayWidth(got))
	}
}

func TestRenderZeroWidthYieldsEmpty(t *testing.T) {
	s := StatusLine{Mode: "NORMAL"}
	if got := s.Render(0); got != "" {
		t.Errorf("Render(0) = %q, want empty", got)
	}
}

func TestDisplayWidthASCII(t *testing.T) {
	if got := DisplayWidth("hello"); got != 5 {
		t.Errorf("DisplayWidth(\"hello\") = %d, want 5", got)
	}
}
