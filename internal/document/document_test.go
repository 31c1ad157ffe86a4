package document

import (
	"testing"

	"github.com/dshills/mvim/internal/coord"
	"github.com/dshills/mvim/internal/history"
	"github.com/dshills/mvim/internal/linestore"
)

func TestNewDocumentIsCleanAndEmpty(t *testing.T) {
	d := New(linestore.BackendVector)
	if d.Dirty {
		t.Error("a new scratch document must start clean")
	}
	if d.Path != "" {
		t.Errorf("expected empty Path, got %q", d.Path)
	}
	if d.Store.Count() != 1 {
		t.Errorf("expected 1 seeded line, got %d", d.Store.Count())
	}
}

func TestOpenSetsPathAndLines(t *testing.T) {
	d := Open(linestore.BackendGap, "/tmp/x.txt", []string{"a", "b"})
	if d.Path != "/tmp/x.txt" {
		t.Errorf("expected Path to be set, got %q", d.Path)
	}
	if d.Dirty {
		t.Error("Open must not mark the document dirty")
	}
	if d.Store.Get(1) != "b" {
		t.Errorf("expected line 1 == b, got %q", d.Store.Get(1))
	}
}

func TestCommitMarksDirtyAndStampsLastChange(t *testing.T) {
	d := New(linestore.BackendVector)
	d.Begin(coord.Position{})
	d.Store.ReplaceLine(0, "hi")
	d.Push(history.Operation{Type: history.ReplaceLine, Row: 0, Payload: "", Alt: "hi"})
	d.Commit(coord.Position{Row: 0, Col: 2})

	if !d.Dirty {
		t.Error("expected Commit with a non-empty group to mark the document dirty")
	}
	if len(d.LastChange.Ops) != 1 {
		t.Fatalf("expected LastChange to record 1 op, got %d", len(d.LastChange.Ops))
	}
}

func TestEmptyCommitLeavesLastChangeAlone(t *testing.T) {
	d := New(linestore.BackendVector)
	d.Begin(coord.Position{})
	d.Push(history.Operation{Type: history.ReplaceLine, Row: 0, Payload: "a", Alt: "b"})
	d.Commit(coord.Position{})
	first := d.LastChange

	d.Begin(coord.Position{})
	d.Commit(coord.Position{}) // no Push: empty group, discarded
	if len(d.LastChange.Ops) != len(first.Ops) {
		t.Error("an empty commit must not overwrite LastChange")
	}
	if d.Dirty != true {
		t.Error("the document should still be dirty from the first commit")
	}
}

func TestUndoRedoThroughDocument(t *testing.T) {
	d := New(linestore.BackendVector)
	d.Begin(coord.Position{})
	d.Store.ReplaceLine(0, "abc")
	d.Push(history.Operation{Type: history.ReplaceLine, Row: 0, Payload: "", Alt: "abc"})
	d.Commit(coord.Position{Row: 0, Col: 3})

	if _, err := d.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if d.Store.Get(0) != "" {
		t.Errorf("expected line restored to empty, got %q", d.Store.Get(0))
	}
	if _, err := d.Redo(); err != nil {
		t.Fatalf("Redo: %v", err)
	}
	if d.Store.Get(0) != "abc" {
		t.Errorf("expected line restored to abc, got %q", d.Store.Get(0))
	}
}

func TestMarkSaved(t *testing.T) {
	d := New(linestore.BackendVector)
	d.Dirty = true
	d.MarkSaved("/tmp/new.txt")
	if d.Dirty {
		t.Error("MarkSaved must clear Dirty")
	}
	if d.Path != "/tmp/new.txt" {
		t.Errorf("expected Path updated by save-as, got %q", d.Path)
	}

	d.Dirty = true
	d.MarkSaved("")
	if d.Path != "/tmp/new.txt" {
		t.Errorf("MarkSaved(\"\") must not clear an existing Path, got %q", d.Path)
	}
}
