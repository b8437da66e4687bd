package histstore

import "testing"

func TestStoreAddAndGet(t *testing.T) {
	s := New()
	id, err := s.Add("ls -la", "", "/home/user")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	e, err := s.Get(id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if e.Normalized != "ls -la" {
		t.Errorf("Normalized = %q, want %q", e.Normalized, "ls -la")
	}
}

func TestStoreRejectsLeadingSpace(t *testing.T) {
	s := New()
	if _, err := s.Add(" ls -la", "", ""); err != ErrLeadingSpace {
		t.Fatalf("Add with leading space: err = %v, want ErrLeadingSpace", err)
	}
}

func TestStoreRejectsEmpty(t *testing.T) {
	s := New()
	if _, err := s.Add("   ", "", ""); err != ErrEmptyCommand {
		t.Fatalf("Add empty: err = %v, want ErrEmptyCommand", err)
	}
}

func TestStoreDeduplicatesByNormalized(t *testing.T) {
	s := New()
	id1, _ := s.Add("git status", "", "")
	id2, _ := s.Add("git status", "", "")
	if id1 != id2 {
		t.Errorf("duplicate Add returned different ids: %d != %d", id1, id2)
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestStoreEvictsOldestOnOverflow(t *testing.T) {
	s := New(WithCapacity(2))
	id1, _ := s.Add("cmd1", "", "")
	_, _ = s.Add("cmd2", "", "")
	_, _ = s.Add("cmd3", "", "")

	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	if _, err := s.Get(id1); err != ErrNotFound {
		t.Errorf("expected cmd1 evicted, got err = %v", err)
	}
}

func TestStoreGetNotFound(t *testing.T) {
	s := New()
	if _, err := s.Get(999); err != ErrNotFound {
		t.Errorf("Get(999) err = %v, want ErrNotFound", err)
	}
}

func TestStoreMarkEdited(t *testing.T) {
	s := New()
	id, _ := s.Add("echo hi", "", "")
	if err := s.MarkEdited(id); err != nil {
		t.Fatalf("MarkEdited: %v", err)
	}
	e, _ := s.Get(id)
	if e.EditCount != 1 {
		t.Errorf("EditCount = %d, want 1", e.EditCount)
	}
}

func TestStoreSetExitCode(t *testing.T) {
	s := New()
	id, _ := s.Add("false", "", "")
	if err := s.SetExitCode(id, 1); err != nil {
		t.Fatalf("SetExitCode: %v", err)
	}
	e, _ := s.Get(id)
	if e.ExitCode != 1 {
		t.Errorf("ExitCode = %d, want 1", e.ExitCode)
	}
}

func TestStoreEntriesOldestFirst(t *testing.T) {
	s := New()
	_, _ = s.Add("first", "", "")
	_, _ = s.Add("second", "", "")
	_, _ = s.Add("third", "", "")

	entries := s.Entries()
	if len(entries) != 3 {
		t.Fatalf("len(Entries()) = %d, want 3", len(entries))
	}
	want := []string{"first", "second", "third"}
	for i, w := range want {
		if entries[i].Normalized != w {
			t.Errorf("Entries()[%d] = %q, want %q", i, entries[i].Normalized, w)
		}
	}
}

func TestStoreNewest(t *testing.T) {
	s := New()
	if _, ok := s.Newest(); ok {
		t.Fatal("Newest() on empty store returned ok=true")
	}
	_, _ = s.Add("one", "", "")
	_, _ = s.Add("two", "", "")
	e, ok := s.Newest()
	if !ok || e.Normalized != "two" {
		t.Errorf("Newest() = %+v, ok=%v, want \"two\"", e, ok)
	}
}
