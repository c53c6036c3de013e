package history

import (
	"os"
	"path/filepath"
	"testing"
)

func newManager() *Manager {
	return &Manager{maxSize: 1000}
}

func TestAdd(t *testing.T) {
	m := newManager()
	m.Add("one")
	m.Add("two")
	m.Add("two")
	m.Add("  ")
	m.Add("")
	all := m.All()
	if len(all) != 2 || all[0] != "one" || all[1] != "two" {
		t.Errorf("entries = %v, want [one two]", all)
	}
}

func TestAddTrimsToMaxSize(t *testing.T) {
	m := newManager()
	m.SetMaxSize(3)
	for _, cmd := range []string{"a", "b", "c", "d", "e"} {
		m.Add(cmd)
	}
	all := m.All()
	if len(all) != 3 || all[0] != "c" || all[2] != "e" {
		t.Errorf("entries = %v, want [c d e]", all)
	}
	if m.Size() != 3 {
		t.Errorf("Size = %d", m.Size())
	}
}

func TestNavigation(t *testing.T) {
	m := newManager()
	m.Add("first")
	m.Add("second")
	m.Add("third")

	if s, ok := m.Previous(); !ok || s != "third" {
		t.Errorf("Previous = (%q, %v)", s, ok)
	}
	if s, ok := m.Previous(); !ok || s != "second" {
		t.Errorf("Previous = (%q, %v)", s, ok)
	}
	if s, ok := m.Previous(); !ok || s != "first" {
		t.Errorf("Previous = (%q, %v)", s, ok)
	}
	// Sticks at the oldest entry.
	if s, ok := m.Previous(); !ok || s != "first" {
		t.Errorf("Previous at start = (%q, %v)", s, ok)
	}

	if s, ok := m.Next(); !ok || s != "second" {
		t.Errorf("Next = (%q, %v)", s, ok)
	}
	if s, ok := m.Next(); !ok || s != "third" {
		t.Errorf("Next = (%q, %v)", s, ok)
	}
	// Past the newest entry: back to the draft.
	if s, ok := m.Next(); ok {
		t.Errorf("Next past end = (%q, %v), want not ok", s, ok)
	}

	m.Reset()
	if s, ok := m.Previous(); !ok || s != "third" {
		t.Errorf("Previous after Reset = (%q, %v)", s, ok)
	}
}

func TestNavigationEmpty(t *testing.T) {
	m := newManager()
	if _, ok := m.Previous(); ok {
		t.Error("Previous on empty history should not be ok")
	}
	if _, ok := m.Next(); ok {
		t.Error("Next on empty history should not be ok")
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hist")

	m := newManager()
	m.SetFile(path)
	m.Add("load a.bin")
	m.Add("xd")
	if err := m.Save(); err != nil {
		t.Fatal(err)
	}

	m2 := newManager()
	m2.SetFile(path)
	if err := m2.Load(); err != nil {
		t.Fatal(err)
	}
	all := m2.All()
	if len(all) != 2 || all[0] != "load a.bin" || all[1] != "xd" {
		t.Errorf("loaded = %v", all)
	}
}

func TestLoadMissingFile(t *testing.T) {
	m := newManager()
	m.SetFile(filepath.Join(t.TempDir(), "nope"))
	if err := m.Load(); err != nil {
		t.Errorf("Load of missing file = %v, want nil", err)
	}
	if m.Size() != 0 {
		t.Errorf("Size = %d", m.Size())
	}
}

func TestLoadSkipsBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hist")
	if err := os.WriteFile(path, []byte("a\n\n  \nb\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	m := newManager()
	m.SetFile(path)
	if err := m.Load(); err != nil {
		t.Fatal(err)
	}
	all := m.All()
	if len(all) != 2 || all[0] != "a" || all[1] != "b" {
		t.Errorf("loaded = %v", all)
	}
}
