package store

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

type record struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func newTestFileStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(t.TempDir(), zap.NewNop())
}

func TestInitializeCreatesCollectionFiles(t *testing.T) {
	dir := t.TempDir()
	s := NewFileStore(dir, zap.NewNop())

	if err := s.Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	for _, name := range Collections {
		data, err := os.ReadFile(filepath.Join(dir, name+".json"))
		if err != nil {
			t.Fatalf("collection file %s missing: %v", name, err)
		}
		if string(data) != "[]\n" {
			t.Fatalf("collection %s = %q, want empty array", name, data)
		}
	}
}

func TestInitializeLeavesExistingFilesAlone(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, Users+".json")
	if err := os.WriteFile(path, []byte(`[{"id":"u1","name":"Kai"}]`), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	s := NewFileStore(dir, zap.NewNop())
	if err := s.Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	var got []record
	if err := s.ReadAll(Users, &got); err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(got) != 1 || got[0].ID != "u1" {
		t.Fatalf("existing data clobbered: %+v", got)
	}
}

func TestReadAllMissingFileIsEmpty(t *testing.T) {
	s := newTestFileStore(t)

	var got []record
	if err := s.ReadAll("nosuch", &got); err != nil {
		t.Fatalf("ReadAll on missing file: %v", err)
	}
	if got != nil {
		t.Fatalf("got %+v, want nil", got)
	}
}

func TestReadAllMalformedFileErrors(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, Users+".json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	s := NewFileStore(dir, zap.NewNop())
	var got []record
	if err := s.ReadAll(Users, &got); err == nil {
		t.Fatal("expected parse error, got nil")
	}
}

func TestWriteAllRoundTripPreservesOrder(t *testing.T) {
	s := newTestFileStore(t)

	in := []record{{ID: "a", Name: "first"}, {ID: "b", Name: "second"}, {ID: "c", Name: "third"}}
	if err := s.WriteAll(Users, in); err != nil {
		t.Fatalf("WriteAll: %v", err)
	}

	var got []record
	if err := s.ReadAll(Users, &got); err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(got) != len(in) {
		t.Fatalf("got %d records, want %d", len(got), len(in))
	}
	for i := range in {
		if got[i] != in[i] {
			t.Fatalf("record %d = %+v, want %+v", i, got[i], in[i])
		}
	}
}

func TestWriteAllReplacesWholeCollection(t *testing.T) {
	s := newTestFileStore(t)

	if err := s.WriteAll(Users, []record{{ID: "a"}, {ID: "b"}}); err != nil {
		t.Fatalf("first WriteAll: %v", err)
	}
	if err := s.WriteAll(Users, []record{{ID: "c"}}); err != nil {
		t.Fatalf("second WriteAll: %v", err)
	}

	var got []record
	if err := s.ReadAll(Users, &got); err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(got) != 1 || got[0].ID != "c" {
		t.Fatalf("got %+v, want single record c", got)
	}
}

func TestWriteAllLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s := NewFileStore(dir, zap.NewNop())

	if err := s.WriteAll(Users, []record{{ID: "a"}}); err != nil {
		t.Fatalf("WriteAll: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != Users+".json" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Fatalf("unexpected files in data dir: %v", names)
	}
}

func TestGenerateIDUnique(t *testing.T) {
	s := newTestFileStore(t)
	a, b := s.GenerateID(), s.GenerateID()
	if a == "" || a == b {
		t.Fatalf("ids not unique: %q %q", a, b)
	}
}
